package roster

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/courtside/draftboard/internal/dependencies/clock"
	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/provider"
	"github.com/courtside/draftboard/internal/services/scoring"
	"github.com/courtside/draftboard/internal/storage"
)

// Filter narrows the ranking view. A zero Filter selects every
// non-drafted player
type Filter struct {
	// Positions limits the view to these positions. Empty means all
	Positions []model.Position
	// NameSearch is a case-insensitive substring match on player names
	NameSearch string
}

// View is a filtered, drafted-excluded slice of the current dataset.
// Row order follows the dataset's fantasy-score ranking
type View struct {
	Season       int
	Source       model.DataSource
	Players      []model.PlayerRecord
	DraftedCount int
}

// Controller manages the dataset lifecycle and read views over it
type Controller struct {
	storage        storage.Storage
	provider       provider.Provider
	scoringService *scoring.Service
	clock          clock.Clock
	logger         *slog.Logger
}

// NewController creates a new roster controller
func NewController(
	storage storage.Storage,
	provider provider.Provider,
	scoringService *scoring.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		provider:       provider,
		scoringService: scoringService,
		clock:          clock,
		logger:         logger,
	}
}

// Refresh fetches player statistics, scores and ranks them, and replaces
// the current dataset. A season of zero means the current season
func (c *Controller) Refresh(ctx context.Context, season int) (*model.Dataset, error) {
	if season <= 0 {
		season = model.CurrentSeason(c.clock.Now())
	}

	raw, source, err := c.provider.FetchPlayers(ctx, season)
	if err != nil {
		return nil, err
	}

	records := c.scoringService.Normalize(raw)
	if len(records) == 0 {
		return nil, model.ErrNoData
	}

	dataset := &model.Dataset{
		Season:    season,
		Source:    source,
		FetchedAt: c.clock.Now(),
		Players:   records,
	}

	if err := c.storage.SaveDataset(ctx, dataset); err != nil {
		return nil, err
	}

	c.logger.Info("dataset refreshed",
		slog.Int("season", season),
		slog.String("source", string(source)),
		slog.Int("player_count", len(records)),
	)

	return dataset, nil
}

// Current returns the loaded dataset, fetching one if none is loaded
// or the stored one has expired
func (c *Controller) Current(ctx context.Context) (*model.Dataset, error) {
	dataset, err := c.storage.GetDataset(ctx)
	if err == nil {
		return dataset, nil
	}
	if !errors.Is(err, model.ErrDatasetNotFound) {
		return nil, err
	}
	return c.Refresh(ctx, 0)
}

// View returns the filtered ranking for a session, excluding its
// drafted players and preserving the dataset's score order
func (c *Controller) View(ctx context.Context, sessionID model.SessionID, filter Filter) (*View, error) {
	dataset, err := c.Current(ctx)
	if err != nil {
		return nil, err
	}
	if dataset.IsEmpty() {
		return nil, model.ErrNoData
	}

	drafted, err := c.draftStateOrEmpty(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	players := make([]model.PlayerRecord, 0, len(dataset.Players))
	for _, p := range dataset.Players {
		if drafted.IsDrafted(p.Name) {
			continue
		}
		if !filter.matches(p) {
			continue
		}
		players = append(players, p)
	}

	return &View{
		Season:       dataset.Season,
		Source:       dataset.Source,
		Players:      players,
		DraftedCount: drafted.Count(),
	}, nil
}

func (f Filter) matches(p model.PlayerRecord) bool {
	if len(f.Positions) > 0 {
		found := false
		for _, pos := range f.Positions {
			if p.Position == pos {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.NameSearch != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.NameSearch)) {
			return false
		}
	}
	return true
}

func (c *Controller) draftStateOrEmpty(ctx context.Context, sessionID model.SessionID) (*model.DraftState, error) {
	state, err := c.storage.GetDraftState(ctx, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrDraftStateNotFound) {
			return model.NewDraftState(sessionID), nil
		}
		return nil, err
	}
	return state, nil
}
