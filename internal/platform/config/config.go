package config

import (
	"os"
	"strings"
	"time"
)

// Config captures everything the server reads from the environment so main
// stays lean. Optional backends (postgres, redis, kafka, smtp) fall back to
// in-process implementations when their settings are absent.
type Config struct {
	Addr        string
	MetricsAddr string

	// DatabaseURL selects the postgres store; empty means in-memory.
	DatabaseURL string
	// RedisURL selects the redis revocation list; empty means in-memory.
	RedisURL string

	AdminPassword string
	JWTSigningKey string
	SessionTTL    time.Duration

	UploadDir string

	// Notification sinks. Absence disables the sink silently.
	SMTP  SMTPConfig
	Kafka KafkaConfig
}

// SMTPConfig carries outbound-mail credentials. Enabled when User is set,
// matching the original deployment's EMAIL_USER switch.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	To       string
}

func (c SMTPConfig) Enabled() bool { return c.User != "" }

// KafkaConfig carries the event-stream sink settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 && c.Topic != "" }

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := Config{
		Addr:          getenv("REGDESK_ADDR", ":8080"),
		MetricsAddr:   getenv("REGDESK_METRICS_ADDR", ""),
		DatabaseURL:   os.Getenv("REGDESK_DATABASE_URL"),
		RedisURL:      os.Getenv("REGDESK_REDIS_URL"),
		AdminPassword: CleanSecret(getenv("ADMIN_PASSWORD", "admin123")),
		JWTSigningKey: getenv("REGDESK_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		SessionTTL:    duration("REGDESK_SESSION_TTL", 12*time.Hour),
		UploadDir:     getenv("REGDESK_UPLOAD_DIR", "uploads"),
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getenv("SMTP_PORT", "587"),
			User:     os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
			From:     os.Getenv("EMAIL_USER"),
			To:       os.Getenv("RECEIVER_EMAIL"),
		},
		Kafka: KafkaConfig{
			Brokers: split(os.Getenv("KAFKA_BROKERS")),
			Topic:   os.Getenv("KAFKA_TOPIC"),
		},
	}
	return cfg
}

// CleanSecret trims whitespace and strips one layer of surrounding quotes.
// Deployments keep pasting the admin password into .env files with quotes
// around it; comparing against the raw value locks everyone out.
func CleanSecret(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			s = s[1 : len(s)-1]
		}
	}
	return s
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func split(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
