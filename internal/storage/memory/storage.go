package memory

import (
	"context"
	"sync"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions    map[model.SessionID]*model.Session
	draftStates map[model.SessionID]*model.DraftState
	dataset     *model.Dataset
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:    make(map[model.SessionID]*model.Session),
		draftStates: make(map[model.SessionID]*model.DraftState),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	delete(s.draftStates, id)
	return nil
}

// Draft state operations

func (s *Storage) SaveDraftState(ctx context.Context, state *model.DraftState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftStates[state.SessionID] = state
	return nil
}

func (s *Storage) GetDraftState(ctx context.Context, sessionID model.SessionID) (*model.DraftState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.draftStates[sessionID]
	if !ok {
		return nil, model.ErrDraftStateNotFound
	}
	return state, nil
}

func (s *Storage) DeleteDraftState(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.draftStates, sessionID)
	return nil
}

// Dataset operations

func (s *Storage) SaveDataset(ctx context.Context, dataset *model.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = dataset
	return nil
}

func (s *Storage) GetDataset(ctx context.Context) (*model.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil, model.ErrDatasetNotFound
	}
	return s.dataset, nil
}

func (s *Storage) DeleteDataset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = nil
	return nil
}
