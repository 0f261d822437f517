package model

import "time"

// DataSource indicates where a dataset's records came from
type DataSource string

const (
	// SourceLive means the records came from a provider endpoint
	SourceLive DataSource = "live"
	// SourceSample means every provider endpoint failed and the built-in
	// sample records were used instead
	SourceSample DataSource = "sample"
)

// Dataset is the ordered collection of player records for the currently
// loaded season. It is replaced wholesale on each successful refresh and is
// immutable between refreshes; filtering and sorting produce views
type Dataset struct {
	Season    int            `json:"season"`
	Source    DataSource     `json:"source"`
	FetchedAt time.Time      `json:"fetched_at"`
	Players   []PlayerRecord `json:"players"`
}

// IsEmpty reports whether the dataset holds no usable records
func (d *Dataset) IsEmpty() bool {
	return d == nil || len(d.Players) == 0
}

// CurrentSeason infers the NBA season year for a point in time.
// The season starts in October, so before October the season is the
// previous calendar year
func CurrentSeason(now time.Time) int {
	if now.Month() < time.October {
		return now.Year() - 1
	}
	return now.Year()
}
