package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"regdesk/internal/platform/config"
	"regdesk/internal/registration/models"
	"regdesk/pkg/email"
)

// Mailer emails the administrator about new proof submissions, the way the
// original deployment did. It speaks plain SMTP with STARTTLS-capable
// servers via net/smtp.
type Mailer struct {
	cfg  config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

func (m *Mailer) RegistrationSubmitted(_ context.Context, rec *models.Record) error {
	last, first := rec.User.LastName, rec.User.FirstName
	if last == "" && first == "" {
		first, last = email.DeriveNameFromEmail(rec.User.Email)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", m.cfg.To)
	fmt.Fprintf(&msg, "Subject: Nouveau Recu - %s %s\r\n", last, first)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&msg, "Utilisateur: %s\r\n", rec.User.Email)
	if rec.Type != "" {
		fmt.Fprintf(&msg, "Type: %s\r\n", rec.Type)
	}
	if rec.ProofRef != "" {
		fmt.Fprintf(&msg, "Recu: /uploads/%s\r\n", rec.ProofRef)
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send admin notification: %w", err)
	}
	return nil
}
