package scoring

import (
	"math"
	"sort"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/provider"
)

// Scoring weights for fantasy points per game
const (
	weightPoints    = 1.0
	weightRebounds  = 1.2
	weightAssists   = 1.5
	weightSteals    = 3.0
	weightBlocks    = 3.0
	weightTurnovers = -1.0
)

// Service normalizes heterogeneous raw provider entries into the uniform
// ranking table. Normalization is pure and total: malformed fields have
// already been defaulted upstream, and no input can make it fail
type Service struct{}

// New creates a new scoring service
func New() *Service {
	return &Service{}
}

// Normalize converts raw season-total entries to per-game records with the
// derived fantasy score, drops entries with zero games played, and orders
// the result by descending fantasy score. The sort is stable, so entries
// with equal scores keep their original relative order
func (s *Service) Normalize(raw []provider.RawPlayer) []model.PlayerRecord {
	records := make([]model.PlayerRecord, 0, len(raw))
	for _, r := range raw {
		if r.GamesPlayed <= 0 {
			continue
		}
		records = append(records, s.normalizeOne(r))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].FantasyScore > records[j].FantasyScore
	})

	return records
}

func (s *Service) normalizeOne(r provider.RawPlayer) model.PlayerRecord {
	games := float64(r.GamesPlayed)

	points := r.Points / games
	rebounds := r.Rebounds / games
	assists := r.Assists / games
	steals := r.Steals / games
	blocks := r.Blocks / games
	turnovers := r.Turnovers / games

	// The score is computed on unrounded per-game values, then rounded;
	// the displayed per-game columns are rounded separately
	fppg := Score(points, rebounds, assists, steals, blocks, turnovers)

	team := r.Team
	if team == "" {
		team = "UNK"
	}

	return model.PlayerRecord{
		Name:         r.Name,
		Team:         team,
		Position:     r.Position,
		GamesPlayed:  r.GamesPlayed,
		Points:       round1(points),
		Rebounds:     round1(rebounds),
		Assists:      round1(assists),
		Steals:       round1(steals),
		Blocks:       round1(blocks),
		Turnovers:    round1(turnovers),
		FantasyScore: fppg,
		TotalScore:   round1(fppg * games),
	}
}

// Score computes fantasy points per game from per-game stats, rounded to
// 2 decimal places. It is a pure function of its six inputs
func Score(points, rebounds, assists, steals, blocks, turnovers float64) float64 {
	return round2(points*weightPoints +
		rebounds*weightRebounds +
		assists*weightAssists +
		steals*weightSteals +
		blocks*weightBlocks +
		turnovers*weightTurnovers)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
