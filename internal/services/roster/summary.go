package roster

import (
	"context"
	"math"
	"sort"

	"github.com/courtside/draftboard/internal/model"
)

// PositionStats aggregates fantasy scores for one position. The quartile
// fields feed the score-distribution box chart
type PositionStats struct {
	Position  model.Position `json:"position"`
	Count     int            `json:"count"`
	MeanScore float64        `json:"mean_score"`
	Min       float64        `json:"min"`
	Q1        float64        `json:"q1"`
	Median    float64        `json:"median"`
	Q3        float64        `json:"q3"`
	Max       float64        `json:"max"`
}

// Summary holds aggregate statistics over a filtered view
type Summary struct {
	Season       int              `json:"season"`
	Source       model.DataSource `json:"source"`
	PlayerCount  int              `json:"player_count"`
	DraftedCount int              `json:"drafted_count"`
	MeanScore    float64          `json:"mean_score"`
	TopPlayer    string           `json:"top_player,omitempty"`
	TopScore     float64          `json:"top_score,omitempty"`
	ByPosition   []PositionStats  `json:"by_position"`
}

// Summary computes aggregates over the session's filtered view
func (c *Controller) Summary(ctx context.Context, sessionID model.SessionID, filter Filter) (*Summary, error) {
	view, err := c.View(ctx, sessionID, filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Season:       view.Season,
		Source:       view.Source,
		PlayerCount:  len(view.Players),
		DraftedCount: view.DraftedCount,
		ByPosition:   positionStats(view.Players),
	}

	if len(view.Players) > 0 {
		var total float64
		for _, p := range view.Players {
			total += p.FantasyScore
		}
		summary.MeanScore = round2(total / float64(len(view.Players)))

		// Rows are already ranked by score
		summary.TopPlayer = view.Players[0].Name
		summary.TopScore = view.Players[0].FantasyScore
	}

	return summary, nil
}

func positionStats(players []model.PlayerRecord) []PositionStats {
	scores := make(map[model.Position][]float64)
	for _, p := range players {
		scores[p.Position] = append(scores[p.Position], p.FantasyScore)
	}

	order := append([]model.Position{}, model.AllPositions...)
	order = append(order, model.PositionUnknown)

	stats := make([]PositionStats, 0, len(scores))
	for _, pos := range order {
		vals, ok := scores[pos]
		if !ok {
			continue
		}

		sorted := make([]float64, len(vals))
		copy(sorted, vals)
		sort.Float64s(sorted)

		var total float64
		for _, v := range sorted {
			total += v
		}

		stats = append(stats, PositionStats{
			Position:  pos,
			Count:     len(sorted),
			MeanScore: round2(total / float64(len(sorted))),
			Min:       sorted[0],
			Q1:        quantile(sorted, 0.25),
			Median:    quantile(sorted, 0.5),
			Q3:        quantile(sorted, 0.75),
			Max:       sorted[len(sorted)-1],
		})
	}
	return stats
}

// quantile linearly interpolates between the two nearest ranks.
// vals must be sorted ascending and non-empty
func quantile(vals []float64, q float64) float64 {
	if len(vals) == 1 {
		return vals[0]
	}
	pos := q * float64(len(vals)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return vals[lo]
	}
	frac := pos - float64(lo)
	return round2(vals[lo] + frac*(vals[hi]-vals[lo]))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
