package mocks

import (
	"context"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/provider"
)

// MockProvider is a scripted statistics provider for testing
type MockProvider struct {
	Players []provider.RawPlayer
	Source  model.DataSource
	Err     error

	// SeasonsRequested records every season passed to FetchPlayers
	SeasonsRequested []int
}

// Ensure MockProvider implements Provider
var _ provider.Provider = (*MockProvider)(nil)

// NewMockProvider creates a MockProvider that serves the built-in sample
// players as live data
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Players: provider.SamplePlayers(),
		Source:  model.SourceLive,
	}
}

// FetchPlayers returns the scripted players
func (p *MockProvider) FetchPlayers(_ context.Context, season int) ([]provider.RawPlayer, model.DataSource, error) {
	p.SeasonsRequested = append(p.SeasonsRequested, season)
	if p.Err != nil {
		return nil, "", p.Err
	}
	return p.Players, p.Source, nil
}
