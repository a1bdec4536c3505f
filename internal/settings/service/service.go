// Package service manages event settings, currently just the meet link
// shown to validated registrants.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"regdesk/internal/settings/store"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/sentinel"
	"regdesk/pkg/requestcontext"
)

const meetLinkKey = "meetLink"

// Settings is the public settings document.
type Settings struct {
	MeetLink string `json:"meetLink"`
}

type Service struct {
	store  store.Store
	logger *slog.Logger
}

func New(store store.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the current settings. A link that was never set reads as
// empty rather than an error.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	link, err := s.store.Get(ctx, meetLinkKey)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return Settings{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read settings")
	}
	return Settings{MeetLink: link}, nil
}

// SetMeetLink updates the meet link. Empty clears it.
func (s *Service) SetMeetLink(ctx context.Context, link string) (Settings, error) {
	link = strings.TrimSpace(link)
	if err := s.store.Set(ctx, meetLinkKey, link); err != nil {
		return Settings{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store settings")
	}

	s.logger.InfoContext(ctx, "meet link updated",
		"request_id", requestcontext.RequestID(ctx),
	)
	return Settings{MeetLink: link}, nil
}
