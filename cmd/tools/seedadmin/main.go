package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/tompettersson/reparatur-formular/internal/modules/users"
)

// Seeds the first staff account so someone can log into the admin console.
func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "staff email (required)")
	name := flag.String("name", "Admin", "display name")
	password := flag.String("password", "", "password (required, min 8 chars)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	u, err := users.NewService(db).Create(context.Background(), *email, *name, *password)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			log.Fatalf("staff user %s already exists", *email)
		}
		log.Fatalf("Failed to create staff user: %v", err)
	}

	log.Printf("✓ staff user created: %s (%s)", u.Email, u.ID)
}
