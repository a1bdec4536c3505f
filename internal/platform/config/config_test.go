package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCleanSecret(t *testing.T) {
	cases := map[string]string{
		"admin123":         "admin123",
		"  admin123  ":     "admin123",
		`"admin123"`:       "admin123",
		`'admin123'`:       "admin123",
		` "admin123" `:     "admin123",
		`"`:                `"`,
		`''`:               "",
		`"it's quoted"`:    "it's quoted",
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanSecret(in), "input %q", in)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("REGDESK_ADDR", ":9999")
	t.Setenv("ADMIN_PASSWORD", `  "s3cret"  `)
	t.Setenv("KAFKA_BROKERS", "localhost:9092, localhost:9093")
	t.Setenv("KAFKA_TOPIC", "registration.events")
	t.Setenv("EMAIL_USER", "admin@example.com")

	cfg := FromEnv()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.True(t, cfg.SMTP.Enabled())
}
