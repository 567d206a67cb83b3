package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/ehagen/elevated/backend/internal/domain"
)

// SessionStore defines the store operations the session service depends on.
type SessionStore interface {
	ActiveProfile() domain.Profile
	SetActiveProfile(p domain.Profile)
	ViewMode() domain.ViewMode
	SetViewMode(ctx context.Context, mode domain.ViewMode)
}

// SessionService implements the PIN-gate policy: a 4-digit code unlocks one
// of the two fixed profiles. The store holds the resulting session state but
// enforces nothing — the gate lives entirely here and in the UI.
type SessionService struct {
	store SessionStore
	pins  map[domain.Profile]string
}

// NewSessionService constructs a SessionService. pins maps each profile to
// its 4-digit code (from configuration).
func NewSessionService(store SessionStore, pins map[domain.Profile]string) *SessionService {
	return &SessionService{store: store, pins: pins}
}

// Unlock activates the given profile when the PIN matches.
// Returns domain.ErrValidation for an unknown profile or a wrong PIN; the
// two cases share one message so responses don't leak which profiles exist.
func (s *SessionService) Unlock(ctx context.Context, profile domain.Profile, pin string) error {
	want, ok := s.pins[profile]
	if !ok || subtle.ConstantTimeCompare([]byte(want), []byte(pin)) != 1 {
		return fmt.Errorf("%w: incorrect profile or PIN", domain.ErrValidation)
	}
	s.store.SetActiveProfile(profile)
	return nil
}

// Lock clears the active profile.
func (s *SessionService) Lock(ctx context.Context) {
	s.store.SetActiveProfile(domain.ProfileNone)
}

// Current returns the active profile, or ProfileNone when locked.
func (s *SessionService) Current(ctx context.Context) domain.Profile {
	return s.store.ActiveProfile()
}

// ViewMode returns the persisted list-presentation preference.
func (s *SessionService) ViewMode(ctx context.Context) domain.ViewMode {
	return s.store.ViewMode()
}

// SetViewMode validates and persists the presentation preference.
func (s *SessionService) SetViewMode(ctx context.Context, mode domain.ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: view mode must be grid or list", domain.ErrValidation)
	}
	s.store.SetViewMode(ctx, mode)
	return nil
}
