package model

// Position is an on-court position in the fixed five-position scheme
type Position string

const (
	PositionPointGuard    Position = "PG"
	PositionShootingGuard Position = "SG"
	PositionSmallForward  Position = "SF"
	PositionPowerForward  Position = "PF"
	PositionCenter        Position = "C"
	PositionUnknown       Position = "UNK"
)

// AllPositions lists the five real positions, in conventional order.
// The unknown sentinel is deliberately excluded
var AllPositions = []Position{
	PositionPointGuard,
	PositionShootingGuard,
	PositionSmallForward,
	PositionPowerForward,
	PositionCenter,
}

// ParsePosition maps a raw position string to the enum, defaulting to unknown
func ParsePosition(s string) Position {
	switch Position(s) {
	case PositionPointGuard, PositionShootingGuard, PositionSmallForward,
		PositionPowerForward, PositionCenter:
		return Position(s)
	default:
		return PositionUnknown
	}
}

// PlayerRecord is one row of the normalized ranking table: a player's
// per-game averages for a season plus the derived fantasy score
type PlayerRecord struct {
	Name     string   `json:"Player"`
	Team     string   `json:"Team"`
	Position Position `json:"Position"`

	GamesPlayed int `json:"GP"`

	// Per-game averages, rounded to 1 decimal place
	Points    float64 `json:"PTS"`
	Rebounds  float64 `json:"REB"`
	Assists   float64 `json:"AST"`
	Steals    float64 `json:"STL"`
	Blocks    float64 `json:"BLK"`
	Turnovers float64 `json:"TO"`

	// FantasyScore is fantasy points per game, rounded to 2 decimal places
	FantasyScore float64 `json:"FPPG"`
	// TotalScore is FantasyScore projected over games played, rounded to 1
	TotalScore float64 `json:"Total"`
}
