package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = 8080
	defaultMaxOpenConns = 5
)

// S3Options configures the media bucket uploads are delegated to.
type S3Options struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	CustomDomain    string
}

// MailOptions configures the transactional email provider.
type MailOptions struct {
	APIKeyPublic  string
	APIKeyPrivate string
	From          string
	FromName      string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
}

// AppConfig is the full application configuration, read from the
// environment. A .env file is honoured when present.
type AppConfig struct {
	Env            string
	Port           int
	DSN            string
	MaxOpenConns   int
	RedisURL       string
	JWTSecret      string
	AllowedOrigins []string
	FrontendURL    string

	AdminUsername string
	AdminPassword string

	S3   S3Options
	Mail MailOptions
}

// Load reads configuration from the environment. The token-signing secret
// has no usable default, so its absence is fatal at startup.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return nil, errors.New("missing JWT_SECRET environment variable")
	}

	cfg := &AppConfig{
		Env:          envOr("ENV", "prod"),
		Port:         intEnvOr("PORT", defaultPort),
		DSN:          os.Getenv("DB_DSN"),
		MaxOpenConns: intEnvOr("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
		RedisURL:     os.Getenv("REDIS_URL"),
		JWTSecret:    secret,
		FrontendURL:  strings.TrimRight(envOr("FRONTEND_URL", "http://localhost:5173"), "/"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		S3: S3Options{
			Bucket:          os.Getenv("S3_BUCKET"),
			Region:          envOr("S3_REGION", "us-east-1"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			CustomDomain:    os.Getenv("S3_CUSTOM_DOMAIN"),
		},
		Mail: MailOptions{
			APIKeyPublic:  os.Getenv("MJ_APIKEY_PUBLIC"),
			APIKeyPrivate: os.Getenv("MJ_APIKEY_PRIVATE"),
			From:          envOr("MAIL_FROM", "1000ttp@sesi-whingan.com"),
			FromName:      envOr("MAIL_FROM_NAME", "Hon. Sesi Whingan: 1000TTP"),
			SMTPHost:      os.Getenv("SMTP_HOST"),
			SMTPPort:      intEnvOr("SMTP_PORT", 587),
			SMTPUser:      os.Getenv("SMTP_USER"),
			SMTPPass:      os.Getenv("SMTP_PASS"),
		},
	}

	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env == "dev" || c.Env == "development" }

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnvOr(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
