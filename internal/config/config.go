package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr   string
	DBDSN      string
	AppBaseURL string

	SessionCookieName string
	SessionTTL        time.Duration
	CartCookieName    string
	CookieSecret      []byte
	CookieSecure      bool

	SMTP SMTPConfig
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	From          string
	FromName      string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

// FromEnv reads configuration from the environment. DB_DSN and COOKIE_SECRET
// are required; everything else has a development default.
func FromEnv() (Config, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("COOKIE_SECRET environment variable is required")
	}

	cfg := Config{
		HTTPAddr:   envOr("HTTP_ADDR", ":8080"),
		DBDSN:      dsn,
		AppBaseURL: envOr("APP_BASE_URL", "http://localhost:8080"),

		SessionCookieName: envOr("SESSION_COOKIE_NAME", "bz_session"),
		SessionTTL:        envDuration("SESSION_TTL", 30*24*time.Hour),
		CartCookieName:    envOr("CART_COOKIE_NAME", "bz_cart"),
		CookieSecret:      []byte(secret),
		CookieSecure:      envBool("COOKIE_SECURE", false),

		SMTP: SMTPConfig{
			Host:          envOr("SMTP_HOST", "localhost"),
			Port:          envOr("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			From:          envOr("SMTP_FROM", "no-reply@bzmarket.local"),
			FromName:      envOr("SMTP_FROM_NAME", "BZMarket"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: envBool("SMTP_SKIP_VERIFY_TLS", false),
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
