package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/courtside/draftboard/internal/model"
)

// Format selects an export serialization
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a format outside the supported set
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a raw format string to a Format
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", ErrUnknownFormat
	}
}

// Filename returns the download filename for a format
func (f Format) Filename() string {
	return "players_data." + string(f)
}

// ContentType returns the MIME type for a format
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	default:
		return "text/csv"
	}
}

// Write serializes the records in the given format, preserving row order
func Write(w io.Writer, format Format, players []model.PlayerRecord) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, players)
	case FormatJSON:
		return writeJSON(w, players)
	default:
		return ErrUnknownFormat
	}
}

// csvHeader matches the displayed column set and order
var csvHeader = []string{
	"Player", "Team", "Position", "GP",
	"PTS", "REB", "AST", "STL", "BLK", "TO",
	"FPPG", "Total",
}

func writeCSV(w io.Writer, players []model.PlayerRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range players {
		row := []string{
			p.Name,
			p.Team,
			string(p.Position),
			strconv.Itoa(p.GamesPlayed),
			formatStat(p.Points),
			formatStat(p.Rebounds),
			formatStat(p.Assists),
			formatStat(p.Steals),
			formatStat(p.Blocks),
			formatStat(p.Turnovers),
			strconv.FormatFloat(p.FantasyScore, 'f', 2, 64),
			formatStat(p.TotalScore),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func writeJSON(w io.Writer, players []model.PlayerRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(players)
}
