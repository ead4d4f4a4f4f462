package users

import (
	"context"
	"errors"
	"strings"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// StaffUser is an admin-console account. There is no customer login; the
// intake form is anonymous.
type StaffUser struct {
	ID           string    `gorm:"primaryKey;type:char(36)"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_staff_users_email"`
	Name         string    `gorm:"type:varchar(128);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt    time.Time `gorm:"type:datetime(3);not null"`
}

func (StaffUser) TableName() string { return "staff_users" }

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Authenticate verifies email and password. Both unknown email and wrong
// password return ErrInvalidCredentials so callers can't distinguish them.
func (s *Service) Authenticate(ctx context.Context, email, password string) (StaffUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u StaffUser
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffUser{}, ErrInvalidCredentials
		}
		return StaffUser{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return StaffUser{}, ErrInvalidCredentials
	}
	return u, nil
}

// Create registers a staff account; used by the seeding tool.
func (s *Service) Create(ctx context.Context, email, name, password string) (StaffUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return StaffUser{}, err
	}

	now := time.Now()
	u := StaffUser{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		var me *driver.MySQLError
		if errors.As(err, &me) && me.Number == 1062 { // duplicate key
			return StaffUser{}, ErrEmailTaken
		}
		return StaffUser{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (StaffUser, error) {
	var u StaffUser
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return StaffUser{}, err
	}
	return u, nil
}
