package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env      string // "dev" or "prod"
	HTTPAddr string
	DBDSN    string

	SessionCookie string
	SessionTTL    time.Duration
	SecureCookies bool

	// PricingRuleset selects the active surcharge policy ("current" or
	// "legacy").
	PricingRuleset string

	Mail     MailConfig
	SMTP     SMTPConfig
	Shopware ShopwareConfig
	Upload   UploadConfig
}

// UploadConfig selects where customer shoe photos are stored.
type UploadConfig struct {
	Driver         string // "local" or "s3"
	LocalDir       string
	LocalURLPrefix string

	S3Region        string
	S3Bucket        string
	S3Prefix        string
	S3PublicBaseURL string
}

type MailConfig struct {
	Driver   string // "smtp", "resend" or "mock"
	APIURL   string
	APIKey   string
	FromAddr string
	FromName string
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	TLSMode       string // "", "starttls" or "tls"
	SkipVerifyTLS bool
}

// ShopwareConfig holds credentials for the read-only product search against
// the shop backend.
type ShopwareConfig struct {
	APIURL          string
	AccessKeyID     string
	SecretAccessKey string
}

// Load reads configuration from the environment. Only DB_DSN is mandatory;
// everything else has development defaults.
func Load() (Config, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}

	cfg := Config{
		Env:            envOr("APP_ENV", "dev"),
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		DBDSN:          dsn,
		SessionCookie:  envOr("SESSION_COOKIE", "repair_admin_session"),
		SessionTTL:     envDuration("SESSION_TTL", 12*time.Hour),
		SecureCookies:  envBool("SECURE_COOKIES", false),
		PricingRuleset: envOr("PRICING_RULESET", "current"),
		Mail: MailConfig{
			Driver:   envOr("MAIL_DRIVER", "mock"),
			APIURL:   os.Getenv("MAIL_API_URL"),
			APIKey:   os.Getenv("MAIL_API_KEY"),
			FromAddr: envOr("EMAIL_FROM", "noreply@kletterschuhe.de"),
			FromName: envOr("EMAIL_FROM_NAME", "kletterschuhe.de Reparatur-Service"),
		},
		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          envOr("SMTP_PORT", "587"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			TLSMode:       envOr("SMTP_TLS_MODE", "starttls"),
			SkipVerifyTLS: envBool("SMTP_SKIP_VERIFY_TLS", false),
		},
		Shopware: ShopwareConfig{
			APIURL:          envOr("SHOPWARE_API_URL", "https://www.kletterschuhe.de/api"),
			AccessKeyID:     os.Getenv("SHOPWARE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("SHOPWARE_SECRET_ACCESS_KEY"),
		},
		Upload: UploadConfig{
			Driver:          envOr("STORAGE_DRIVER", "local"),
			LocalDir:        envOr("LOCAL_UPLOAD_DIR", "./storage/uploads"),
			LocalURLPrefix:  envOr("LOCAL_UPLOAD_URL_PREFIX", "/uploads"),
			S3Region:        os.Getenv("S3_REGION"),
			S3Bucket:        os.Getenv("S3_BUCKET"),
			S3Prefix:        envOr("S3_PREFIX", "uploads"),
			S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		},
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
