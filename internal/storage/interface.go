package storage

import (
	"context"

	"github.com/courtside/draftboard/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations. Deleting a session also discards its draft state
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Draft state operations, keyed by the owning session
	SaveDraftState(ctx context.Context, state *model.DraftState) error
	GetDraftState(ctx context.Context, sessionID model.SessionID) (*model.DraftState, error)
	DeleteDraftState(ctx context.Context, sessionID model.SessionID) error

	// Dataset operations. There is a single current dataset, replaced
	// wholesale on each refresh
	SaveDataset(ctx context.Context, dataset *model.Dataset) error
	GetDataset(ctx context.Context) (*model.Dataset, error)
	DeleteDataset(ctx context.Context) error
}
