package response

import (
	"time"

	"github.com/courtside/draftboard/internal/model"
)

// Session represents a session in API responses
type Session struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionFromModel converts a model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		Token:     string(s.ID),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

// Player represents one ranked player row in API responses
type Player struct {
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Position    string  `json:"position"`
	GamesPlayed int     `json:"games_played"`
	Points      float64 `json:"points"`
	Rebounds    float64 `json:"rebounds"`
	Assists     float64 `json:"assists"`
	Steals      float64 `json:"steals"`
	Blocks      float64 `json:"blocks"`
	Turnovers   float64 `json:"turnovers"`
	FPPG        float64 `json:"fppg"`
	Total       float64 `json:"total"`
}

// PlayerFromModel converts a model.PlayerRecord to a response Player
func PlayerFromModel(p model.PlayerRecord) Player {
	return Player{
		Name:        p.Name,
		Team:        p.Team,
		Position:    string(p.Position),
		GamesPlayed: p.GamesPlayed,
		Points:      p.Points,
		Rebounds:    p.Rebounds,
		Assists:     p.Assists,
		Steals:      p.Steals,
		Blocks:      p.Blocks,
		Turnovers:   p.Turnovers,
		FPPG:        p.FantasyScore,
		Total:       p.TotalScore,
	}
}

// Players is the ranked player listing with dataset metadata
type Players struct {
	Season       int      `json:"season"`
	Source       string   `json:"source"`
	Count        int      `json:"count"`
	DraftedCount int      `json:"drafted_count"`
	Players      []Player `json:"players"`
}

// Draft represents a session's drafted-player set
type Draft struct {
	Count   int      `json:"count"`
	Players []string `json:"players"`
}

// DraftFromModel converts a model.DraftState to a response Draft
func DraftFromModel(d *model.DraftState) Draft {
	return Draft{
		Count:   d.Count(),
		Players: d.Names(),
	}
}

// Refresh reports the outcome of a dataset refresh
type Refresh struct {
	Season      int       `json:"season"`
	Source      string    `json:"source"`
	PlayerCount int       `json:"player_count"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// RefreshFromModel converts a model.Dataset to a response Refresh
func RefreshFromModel(d *model.Dataset) Refresh {
	return Refresh{
		Season:      d.Season,
		Source:      string(d.Source),
		PlayerCount: len(d.Players),
		FetchedAt:   d.FetchedAt,
	}
}
