package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/courtside/draftboard/internal/dependencies/clock"
	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/storage"
)

// ErrInvalidSession is returned when a session token is unknown or expired
var ErrInvalidSession = errors.New("invalid or expired session")

// Service manages anonymous browsing sessions. There are no accounts;
// a session exists only to scope draft state to one visitor
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	sessionDuration time.Duration
}

// Config holds configuration for the session service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new session service
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		sessionDuration: cfg.SessionDuration,
	}
}

// Create starts a new anonymous session
func (s *Service) Create(ctx context.Context) (*model.Session, error) {
	now := s.clock.Now()

	session := &model.Session{
		ID:        model.SessionID(generateID("sess_")),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks that a session exists and has not expired
func (s *Service) Validate(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if session.Expired(s.clock.Now()) {
		// Lazily reap the expired session and its draft state
		_ = s.storage.DeleteSession(ctx, id)
		return nil, ErrInvalidSession
	}

	return session, nil
}

// Invalidate ends a session and discards its draft state
func (s *Service) Invalidate(ctx context.Context, id model.SessionID) error {
	return s.storage.DeleteSession(ctx, id)
}

// generateID generates a random ID with a prefix
func generateID(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
