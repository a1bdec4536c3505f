package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regdesk/internal/platform/config"
	"regdesk/internal/registration/models"
)

type stubSink struct {
	calls int
	err   error
}

func (s *stubSink) RegistrationSubmitted(context.Context, *models.Record) error {
	s.calls++
	return s.err
}

func testRecord() *models.Record {
	return &models.Record{
		ID:          uuid.New(),
		User:        models.User{Email: "karim@example.com"},
		SubmittedAt: time.Now(),
		Status:      models.StatusPending,
		Type:        models.TypeCCP,
		ProofRef:    "receipt-x.jpg",
	}
}

func TestMulti_AttemptsAllSinks(t *testing.T) {
	first := &stubSink{err: errors.New("smtp down")}
	second := &stubSink{}
	m := Multi{first, second}

	err := m.RegistrationSubmitted(context.Background(), testRecord())
	assert.ErrorContains(t, err, "smtp down")
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls, "one failing sink must not stop the others")
}

func TestMulti_ReturnsFirstError(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	m := Multi{&stubSink{err: errA}, &stubSink{err: errB}}

	err := m.RegistrationSubmitted(context.Background(), testRecord())
	assert.ErrorIs(t, err, errA)
}

func TestInstrument_PropagatesError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	failing := &stubSink{err: errors.New("broker unreachable")}

	wrapped := Instrument("kafka", failing, nil, logger)
	err := wrapped.RegistrationSubmitted(context.Background(), testRecord())
	assert.ErrorContains(t, err, "broker unreachable")

	ok := &stubSink{}
	wrapped = Instrument("kafka", ok, nil, logger)
	assert.NoError(t, wrapped.RegistrationSubmitted(context.Background(), testRecord()))
}

func TestMailer_BuildsMessage(t *testing.T) {
	cfg := config.SMTPConfig{
		Host: "smtp.example.com",
		Port: "587",
		User: "robot@example.com",
		From: "robot@example.com",
		To:   "admin@example.com",
	}
	m := NewMailer(cfg)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	rec := testRecord()
	rec.User.LastName = "Haddad"
	rec.User.FirstName = "Karim"
	require.NoError(t, m.RegistrationSubmitted(context.Background(), rec))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "robot@example.com", gotFrom)
	assert.Equal(t, []string{"admin@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "Subject: Nouveau Recu - Haddad Karim")
	assert.Contains(t, msg, "Utilisateur: karim@example.com")
	assert.Contains(t, msg, "Recu: /uploads/receipt-x.jpg")
}

func TestMailer_DerivesNameFromEmail(t *testing.T) {
	m := NewMailer(config.SMTPConfig{Host: "h", Port: "25", From: "f", To: "t"})

	var subject string
	m.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		for _, line := range strings.Split(string(msg), "\r\n") {
			if strings.HasPrefix(line, "Subject: ") {
				subject = line
			}
		}
		return nil
	}

	rec := testRecord()
	rec.User.Email = "sara.benali@example.com"
	require.NoError(t, m.RegistrationSubmitted(context.Background(), rec))
	assert.Contains(t, subject, "Benali")
}

func TestMailer_SendFailure(t *testing.T) {
	m := NewMailer(config.SMTPConfig{Host: "h", Port: "25", From: "f", To: "t"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := m.RegistrationSubmitted(context.Background(), testRecord())
	assert.ErrorContains(t, err, "connection refused")
}
