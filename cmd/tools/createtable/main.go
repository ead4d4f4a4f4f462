package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS orders (
	  id CHAR(36) NOT NULL,
	  order_number VARCHAR(32) NULL,
	  status VARCHAR(16) NOT NULL,
	  salutation VARCHAR(16) NOT NULL DEFAULT '',
	  first_name VARCHAR(128) NOT NULL DEFAULT '',
	  last_name VARCHAR(128) NOT NULL DEFAULT '',
	  street VARCHAR(255) NOT NULL DEFAULT '',
	  zip VARCHAR(8) NOT NULL DEFAULT '',
	  city VARCHAR(128) NOT NULL DEFAULT '',
	  phone VARCHAR(32) NOT NULL DEFAULT '',
	  email VARCHAR(255) NOT NULL,
	  delivery_same TINYINT(1) NOT NULL DEFAULT 1,
	  delivery_salutation VARCHAR(16) NULL,
	  delivery_first_name VARCHAR(128) NULL,
	  delivery_last_name VARCHAR(128) NULL,
	  delivery_street VARCHAR(255) NULL,
	  delivery_zip VARCHAR(8) NULL,
	  delivery_city VARCHAR(128) NULL,
	  station_notes TEXT NULL,
	  gdpr_accepted TINYINT(1) NOT NULL DEFAULT 0,
	  agb_accepted TINYINT(1) NOT NULL DEFAULT 0,
	  newsletter TINYINT(1) NOT NULL DEFAULT 0,
	  total_price DECIMAL(10,2) NOT NULL DEFAULT 0,
	  draft_payload JSON NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_orders_number (order_number),
	  KEY ix_orders_status (status),
	  KEY ix_orders_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS order_items (
	  id CHAR(36) NOT NULL,
	  order_id CHAR(36) NOT NULL,
	  quantity DECIMAL(4,1) NOT NULL,
	  manufacturer VARCHAR(64) NOT NULL,
	  model VARCHAR(128) NOT NULL,
	  color VARCHAR(64) NULL,
	  size VARCHAR(8) NOT NULL,
	  sole VARCHAR(32) NULL,
	  edge_rubber VARCHAR(16) NOT NULL DEFAULT '',
	  closure TINYINT(1) NOT NULL DEFAULT 0,
	  disinfection TINYINT(1) NOT NULL DEFAULT 0,
	  trust_professionals TINYINT(1) NOT NULL DEFAULT 0,
	  additional_work TEXT NULL,
	  internal_notes TEXT NULL,
	  photo_url VARCHAR(512) NULL,
	  calculated_price DECIMAL(10,2) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_order_items_order_id (order_id),
	  CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS order_status_changes (
	  id CHAR(36) NOT NULL,
	  order_id CHAR(36) NOT NULL,
	  from_status VARCHAR(16) NOT NULL,
	  to_status VARCHAR(16) NOT NULL,
	  comment TEXT NULL,
	  tracking_carrier VARCHAR(64) NULL,
	  tracking_number VARCHAR(64) NULL,
	  changed_by VARCHAR(255) NOT NULL,
	  changed_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_status_changes_order_id (order_id),
	  CONSTRAINT fk_status_changes_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS order_field_changes (
	  id CHAR(36) NOT NULL,
	  order_id CHAR(36) NOT NULL,
	  field VARCHAR(64) NOT NULL,
	  old_value TEXT NULL,
	  new_value TEXT NULL,
	  changed_by VARCHAR(255) NOT NULL,
	  changed_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_field_changes_order_id (order_id),
	  CONSTRAINT fk_field_changes_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS order_number_seq (
	  day CHAR(10) NOT NULL,
	  seq INT NOT NULL DEFAULT 0,
	  PRIMARY KEY (day)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS staff_users (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  name VARCHAR(128) NOT NULL,
	  password_hash VARCHAR(255) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_staff_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS sessions (
	  id CHAR(36) NOT NULL,
	  staff_id CHAR(36) NOT NULL,
	  expires_at DATETIME(3) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  last_seen_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_sessions_staff_id (staff_id),
	  CONSTRAINT fk_sessions_staff FOREIGN KEY (staff_id) REFERENCES staff_users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ repair schema created successfully")
}
