package models

import (
	"time"

	"github.com/google/uuid"

	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/email"
)

// Status is the lifecycle state of a registration record.
//
// Transitions: PENDING → VALIDATED (admin action). FREE_ACCESS is terminal
// and granted automatically to whitelisted users; VALIDATED is terminal.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusValidated  Status = "VALIDATED"
	StatusFreeAccess Status = "FREE_ACCESS"
)

// Type distinguishes how the registrant claims eligibility: a CCP payment
// receipt or a Kaizen subscription.
type Type string

const (
	TypeCCP    Type = "CCP"
	TypeKaizen Type = "KAIZEN"
)

// ParseType validates a submitted registration type. Empty is allowed; the
// original form omits it for legacy submissions.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case "", TypeCCP, TypeKaizen:
		return Type(s), nil
	default:
		return "", dErrors.New(dErrors.CodeBadRequest, "unknown registration type")
	}
}

// User identifies a registrant. Name fields are optional on proof
// submissions; the wire names stay nom/prenom for the existing frontend.
type User struct {
	LastName  string `json:"nom,omitempty"`
	FirstName string `json:"prenom,omitempty"`
	Email     string `json:"email"`
}

// WhitelistEntry is a pre-approved user, independent of any single event.
// Entries are keyed by normalized email; the store rejects duplicates.
type WhitelistEntry struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
}

func (e WhitelistEntry) User() User {
	return User{LastName: e.LastName, FirstName: e.FirstName, Email: e.Email}
}

// Record is one historical submission or approval event tied to an email.
// Records are append-only except for the PENDING → VALIDATED transition.
//
// Seq is the insertion sequence assigned by the store. The effective status
// for an email is the record with the latest SubmittedAt; equal timestamps
// tie-break on the highest Seq, so resolution is deterministic even when two
// submissions land in the same instant.
type Record struct {
	ID          uuid.UUID `json:"id"`
	Seq         int64     `json:"-"`
	User        User      `json:"user"`
	SubmittedAt time.Time `json:"date"`
	Status      Status    `json:"status"`
	Type        Type      `json:"type,omitempty"`
	ProofRef    string    `json:"receiptUrl,omitempty"`
}

// NewRecord builds a record dated now with a fresh ID. The email is
// normalized once here so stores never see mixed-case keys.
func NewRecord(user User, status Status, now time.Time) (*Record, error) {
	user.Email = email.Normalize(user.Email)
	if !email.Valid(user.Email) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "a valid email is required")
	}
	return &Record{
		ID:          uuid.New(),
		User:        user,
		SubmittedAt: now,
		Status:      status,
	}, nil
}

// CanValidate checks the PENDING → VALIDATED transition.
func (r *Record) CanValidate() error {
	if r.Status != StatusPending {
		return dErrors.New(dErrors.CodeConflict, "registration is not pending")
	}
	return nil
}

// ApplyValidation transitions the record to VALIDATED. Call CanValidate
// first.
func (r *Record) ApplyValidation() {
	r.Status = StatusValidated
}

// Resolution is the outcome of resolving an email's current access status.
type Resolution struct {
	Exists bool   `json:"exists"`
	Status Status `json:"status,omitempty"`
	User   *User  `json:"userData,omitempty"`
}

// Newer reports whether a beats b under the resolution ordering: latest
// SubmittedAt wins, ties broken by highest Seq.
func Newer(a, b *Record) bool {
	if a.SubmittedAt.Equal(b.SubmittedAt) {
		return a.Seq > b.Seq
	}
	return a.SubmittedAt.After(b.SubmittedAt)
}
