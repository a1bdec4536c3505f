package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"regdesk/internal/registration/models"
	"regdesk/pkg/email"
	"regdesk/pkg/platform/sentinel"
)

// Postgres persists the registration log and whitelist in PostgreSQL. The
// multi-row mutations (reconciliation insert, validation + whitelisting) run
// inside transactions, which is what removes the lost-update race the old
// flat-file deployment had.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const recordColumns = `id, seq, last_name, first_name, email, submitted_at, status, reg_type, proof_ref`

func (s *Postgres) LatestByEmail(ctx context.Context, addr string) (*models.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+` FROM registrations
		WHERE lower(email) = $1
		ORDER BY submitted_at DESC, seq DESC
		LIMIT 1`, email.Normalize(addr))
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("latest registration by email: %w", err)
	}
	return rec, nil
}

func (s *Postgres) Append(ctx context.Context, rec *models.Record) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO registrations (id, last_name, first_name, email, submitted_at, status, reg_type, proof_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq`,
		rec.ID, rec.User.LastName, rec.User.FirstName, email.Normalize(rec.User.Email),
		rec.SubmittedAt, string(rec.Status), string(rec.Type), rec.ProofRef,
	).Scan(&rec.Seq)
	if err != nil {
		return fmt.Errorf("append registration: %w", err)
	}
	return nil
}

func (s *Postgres) AppendIfUnregistered(ctx context.Context, rec *models.Record) (bool, error) {
	addr := email.Normalize(rec.User.Email)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin reconcile tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Advisory lock on the email serializes concurrent reconciliation for
	// the same address; a plain NOT EXISTS insert can double up under
	// READ COMMITTED.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, addr); err != nil {
		return false, fmt.Errorf("lock email for reconcile: %w", err)
	}

	var exists bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM registrations WHERE lower(email) = $1)`, addr).Scan(&exists); err != nil {
		return false, fmt.Errorf("check existing registration: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO registrations (id, last_name, first_name, email, submitted_at, status, reg_type, proof_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq`,
		rec.ID, rec.User.LastName, rec.User.FirstName, addr,
		rec.SubmittedAt, string(rec.Status), string(rec.Type), rec.ProofRef,
	).Scan(&rec.Seq); err != nil {
		return false, fmt.Errorf("append registration if unregistered: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit reconcile tx: %w", err)
	}
	return true, nil
}

func (s *Postgres) Validate(ctx context.Context, id uuid.UUID) (*models.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin validate tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		SELECT `+recordColumns+` FROM registrations WHERE id = $1 FOR UPDATE`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find registration for validation: %w", err)
	}
	if rec.CanValidate() != nil {
		return nil, sentinel.ErrInvalidState
	}

	rec.ApplyValidation()
	if _, err := tx.ExecContext(ctx, `
		UPDATE registrations SET status = $1 WHERE id = $2`, string(rec.Status), rec.ID); err != nil {
		return nil, fmt.Errorf("update registration status: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO whitelist (email, last_name, first_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		email.Normalize(rec.User.Email), rec.User.LastName, rec.User.FirstName); err != nil {
		return nil, fmt.Errorf("whitelist validated user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit validate tx: %w", err)
	}
	return rec, nil
}

func (s *Postgres) ListRegistrations(ctx context.Context) ([]*models.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM registrations
		ORDER BY submitted_at DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var out []*models.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return out, nil
}

func (s *Postgres) FindWhitelisted(ctx context.Context, addr string) (*models.WhitelistEntry, error) {
	var entry models.WhitelistEntry
	err := s.db.QueryRowContext(ctx, `
		SELECT email, last_name, first_name FROM whitelist WHERE email = $1`,
		email.Normalize(addr),
	).Scan(&entry.Email, &entry.LastName, &entry.FirstName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find whitelist entry: %w", err)
	}
	return &entry, nil
}

func (s *Postgres) AddToWhitelist(ctx context.Context, entry models.WhitelistEntry) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO whitelist (email, last_name, first_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		email.Normalize(entry.Email), entry.LastName, entry.FirstName)
	if err != nil {
		return fmt.Errorf("add whitelist entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("add whitelist entry: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	var rec models.Record
	var status, regType string
	if err := row.Scan(
		&rec.ID, &rec.Seq, &rec.User.LastName, &rec.User.FirstName, &rec.User.Email,
		&rec.SubmittedAt, &status, &regType, &rec.ProofRef,
	); err != nil {
		return nil, err
	}
	rec.Status = models.Status(status)
	rec.Type = models.Type(regType)
	return &rec, nil
}
