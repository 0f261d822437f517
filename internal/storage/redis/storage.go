package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	// Draft state belongs to the session, drop both together
	return s.client.Del(ctx, sessionKey(id), draftKey(id)).Err()
}

// Draft state operations

func (s *Storage) SaveDraftState(ctx context.Context, state *model.DraftState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKey(state.SessionID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetDraftState(ctx context.Context, sessionID model.SessionID) (*model.DraftState, error) {
	data, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDraftStateNotFound
		}
		return nil, err
	}

	var state model.DraftState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *Storage) DeleteDraftState(ctx context.Context, sessionID model.SessionID) error {
	return s.client.Del(ctx, draftKey(sessionID)).Err()
}

// Dataset operations

func (s *Storage) SaveDataset(ctx context.Context, dataset *model.Dataset) error {
	data, err := json.Marshal(dataset)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, datasetKey(), data, s.cfg.DatasetTTL).Err()
}

func (s *Storage) GetDataset(ctx context.Context) (*model.Dataset, error) {
	data, err := s.client.Get(ctx, datasetKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDatasetNotFound
		}
		return nil, err
	}

	var dataset model.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

func (s *Storage) DeleteDataset(ctx context.Context) error {
	return s.client.Del(ctx, datasetKey()).Err()
}
