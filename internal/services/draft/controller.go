package draft

import (
	"context"
	"errors"
	"log/slog"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/storage"
)

// Controller manages the per-session set of drafted players
type Controller struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewController creates a new draft controller
func NewController(storage storage.Storage, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		logger:  logger,
	}
}

// Mark records a player as drafted for the session. The player must exist
// in the current dataset
func (c *Controller) Mark(ctx context.Context, sessionID model.SessionID, name string) (*model.DraftState, error) {
	dataset, err := c.storage.GetDataset(ctx)
	if err != nil {
		if errors.Is(err, model.ErrDatasetNotFound) {
			return nil, model.ErrNoData
		}
		return nil, err
	}

	if !datasetContains(dataset, name) {
		return nil, model.ErrPlayerNotInDataset
	}

	state, err := c.stateOrEmpty(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Mark(name)
	if err := c.storage.SaveDraftState(ctx, state); err != nil {
		return nil, err
	}

	c.logger.Info("player drafted",
		slog.String("session_id", string(sessionID)),
		slog.String("player", name),
		slog.Int("drafted_count", state.Count()),
	)

	return state, nil
}

// Unmark removes a player from the session's drafted set. Unmarking a
// player who was never drafted is a no-op
func (c *Controller) Unmark(ctx context.Context, sessionID model.SessionID, name string) (*model.DraftState, error) {
	state, err := c.stateOrEmpty(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !state.IsDrafted(name) {
		return state, nil
	}

	state.Unmark(name)
	if err := c.storage.SaveDraftState(ctx, state); err != nil {
		return nil, err
	}

	c.logger.Info("player undrafted",
		slog.String("session_id", string(sessionID)),
		slog.String("player", name),
	)

	return state, nil
}

// Clear discards the session's entire drafted set
func (c *Controller) Clear(ctx context.Context, sessionID model.SessionID) error {
	if err := c.storage.DeleteDraftState(ctx, sessionID); err != nil {
		return err
	}

	c.logger.Info("draft state cleared",
		slog.String("session_id", string(sessionID)),
	)

	return nil
}

// State returns the session's draft state. A session that has never
// drafted anyone gets an empty state
func (c *Controller) State(ctx context.Context, sessionID model.SessionID) (*model.DraftState, error) {
	return c.stateOrEmpty(ctx, sessionID)
}

func (c *Controller) stateOrEmpty(ctx context.Context, sessionID model.SessionID) (*model.DraftState, error) {
	state, err := c.storage.GetDraftState(ctx, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrDraftStateNotFound) {
			return model.NewDraftState(sessionID), nil
		}
		return nil, err
	}
	return state, nil
}

func datasetContains(dataset *model.Dataset, name string) bool {
	for _, p := range dataset.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}
