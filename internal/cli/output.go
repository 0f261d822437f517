package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case Players:
		o.printPlayers(v)
	case Draft:
		o.printDraft(v)
	case RefreshResult:
		o.printRefreshResult(v)
	case Summary:
		o.printSummary(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Player response type
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

// Players response type
type Players struct {
	Season       int      `json:"season"`
	Source       string   `json:"source"`
	Count        int      `json:"count"`
	DraftedCount int      `json:"drafted_count"`
	Players      []Player `json:"players"`
}

// Draft response type
type Draft struct {
	Count   int      `json:"count"`
	Players []string `json:"players"`
}

// RefreshResult response type
type RefreshResult struct {
	Season      int       `json:"season"`
	Source      string    `json:"source"`
	PlayerCount int       `json:"player_count"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// PositionStats response type
type PositionStats struct {
	Position  string  `json:"position"`
	Count     int     `json:"count"`
	MeanScore float64 `json:"mean_score"`
	Min       float64 `json:"min"`
	Q1        float64 `json:"q1"`
	Median    float64 `json:"median"`
	Q3        float64 `json:"q3"`
	Max       float64 `json:"max"`
}

// Summary response type
type Summary struct {
	Season       int             `json:"season"`
	Source       string          `json:"source"`
	PlayerCount  int             `json:"player_count"`
	DraftedCount int             `json:"drafted_count"`
	MeanScore    float64         `json:"mean_score"`
	TopPlayer    string          `json:"top_player"`
	TopScore     float64         `json:"top_score"`
	ByPosition   []PositionStats `json:"by_position"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Token: %s\n", s.Token)
	fmt.Printf("Created: %s\n", s.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Expires: %s\n", s.ExpiresAt.Format(time.RFC3339))
}

func (o *Output) printPlayers(p Players) {
	fmt.Printf("Season: %d-%d (%s)\n", p.Season, p.Season+1, p.Source)
	if p.DraftedCount > 0 {
		fmt.Printf("Drafted: %d\n", p.DraftedCount)
	}
	fmt.Printf("Players (%d):\n", p.Count)
	fmt.Printf("  %-4s %-26s %-4s %-4s %4s %8s %9s\n", "RANK", "PLAYER", "TEAM", "POS", "GP", "FPPG", "TOTAL")
	for i, pl := range p.Players {
		fmt.Printf("  %-4d %-26s %-4s %-4s %4d %8.2f %9.1f\n",
			i+1, pl.Name, pl.Team, pl.Position, pl.GamesPlayed, pl.FPPG, pl.Total)
	}
}

func (o *Output) printDraft(d Draft) {
	if d.Count == 0 {
		fmt.Println("No players drafted")
		return
	}
	fmt.Printf("Drafted (%d):\n", d.Count)
	for _, name := range d.Players {
		fmt.Printf("  - %s\n", name)
	}
}

func (o *Output) printRefreshResult(r RefreshResult) {
	fmt.Printf("Season: %d-%d\n", r.Season, r.Season+1)
	fmt.Printf("Source: %s\n", r.Source)
	fmt.Printf("Players: %d\n", r.PlayerCount)
	fmt.Printf("Fetched: %s\n", r.FetchedAt.Format(time.RFC3339))
}

func (o *Output) printSummary(s Summary) {
	fmt.Printf("Season: %d-%d (%s)\n", s.Season, s.Season+1, s.Source)
	fmt.Printf("Players: %d\n", s.PlayerCount)
	fmt.Printf("Drafted: %d\n", s.DraftedCount)
	fmt.Printf("Mean FPPG: %.2f\n", s.MeanScore)
	if s.TopPlayer != "" {
		fmt.Printf("Top Player: %s (%.2f)\n", s.TopPlayer, s.TopScore)
	}
	if len(s.ByPosition) > 0 {
		fmt.Println("By Position:")
		fmt.Printf("  %-4s %5s %8s %8s %8s %8s %8s %8s\n", "POS", "COUNT", "MEAN", "MIN", "Q1", "MED", "Q3", "MAX")
		for _, ps := range s.ByPosition {
			fmt.Printf("  %-4s %5d %8.2f %8.2f %8.2f %8.2f %8.2f %8.2f\n",
				ps.Position, ps.Count, ps.MeanScore, ps.Min, ps.Q1, ps.Median, ps.Q3, ps.Max)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
