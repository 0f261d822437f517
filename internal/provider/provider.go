package provider

import (
	"context"

	"github.com/courtside/draftboard/internal/model"
)

// RawPlayer is one player entry as produced by a statistics provider,
// before normalization. Stats are season totals, not per-game averages
type RawPlayer struct {
	Name     string
	Team     string
	Position model.Position

	GamesPlayed int
	Points      float64
	Rebounds    float64
	Assists     float64
	Steals      float64
	Blocks      float64
	Turnovers   float64
}

// Provider fetches raw player entries for a season. Implementations must
// never surface network or parse failures as errors for individual records;
// a non-nil error means the provider could produce no records at all,
// including its fallback data
type Provider interface {
	FetchPlayers(ctx context.Context, season int) ([]RawPlayer, model.DataSource, error)
}
