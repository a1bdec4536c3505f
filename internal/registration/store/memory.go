package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"regdesk/internal/registration/models"
	"regdesk/pkg/email"
	"regdesk/pkg/platform/sentinel"
)

// InMemory keeps both collections behind one mutex, which makes every Store
// operation atomic. Intended for development and tests; it intentionally
// favors clarity over performance.
type InMemory struct {
	mu        sync.RWMutex
	seq       int64
	records   []*models.Record
	whitelist map[string]models.WhitelistEntry
}

func NewInMemory() *InMemory {
	return &InMemory{whitelist: make(map[string]models.WhitelistEntry)}
}

// Seed pre-populates the whitelist, mirroring the bootstrap data the
// original deployment shipped with. Duplicates are ignored.
func (s *InMemory) Seed(entries []models.WhitelistEntry) {
	for _, e := range entries {
		_ = s.AddToWhitelist(context.Background(), e)
	}
}

func (s *InMemory) LatestByEmail(_ context.Context, addr string) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec := s.latestLocked(addr)
	if rec == nil {
		return nil, sentinel.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *InMemory) latestLocked(addr string) *models.Record {
	addr = email.Normalize(addr)
	var latest *models.Record
	for _, rec := range s.records {
		if email.Normalize(rec.User.Email) != addr {
			continue
		}
		if latest == nil || models.Newer(rec, latest) {
			latest = rec
		}
	}
	return latest
}

func (s *InMemory) Append(_ context.Context, rec *models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(rec)
	return nil
}

func (s *InMemory) appendLocked(rec *models.Record) {
	s.seq++
	rec.Seq = s.seq
	cp := *rec
	s.records = append(s.records, &cp)
}

func (s *InMemory) AppendIfUnregistered(_ context.Context, rec *models.Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latestLocked(rec.User.Email) != nil {
		return false, nil
	}
	s.appendLocked(rec)
	return true, nil
}

func (s *InMemory) Validate(_ context.Context, id uuid.UUID) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ID != id {
			continue
		}
		if err := rec.CanValidate(); err != nil {
			return nil, sentinel.ErrInvalidState
		}
		rec.ApplyValidation()
		key := email.Normalize(rec.User.Email)
		if _, ok := s.whitelist[key]; !ok {
			s.whitelist[key] = models.WhitelistEntry{
				LastName:  rec.User.LastName,
				FirstName: rec.User.FirstName,
				Email:     key,
			}
		}
		cp := *rec
		return &cp, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) ListRegistrations(_ context.Context) ([]*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Record, 0, len(s.records))
	for _, rec := range s.records {
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return models.Newer(out[i], out[j]) })
	return out, nil
}

func (s *InMemory) FindWhitelisted(_ context.Context, addr string) (*models.WhitelistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.whitelist[email.Normalize(addr)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &entry, nil
}

func (s *InMemory) AddToWhitelist(_ context.Context, entry models.WhitelistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := email.Normalize(entry.Email)
	if _, ok := s.whitelist[key]; ok {
		return sentinel.ErrAlreadyUsed
	}
	entry.Email = key
	s.whitelist[key] = entry
	return nil
}
