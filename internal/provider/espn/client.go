package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/provider"
)

// Default API roots, community-discovered endpoints
const (
	DefaultFantasyBaseURL = "https://fantasy.espn.com/apis/v3/games/fba"
	DefaultCoreBaseURL    = "https://sports.core.api.espn.com"
)

// Config holds settings for the ESPN client
type Config struct {
	FantasyBaseURL string
	CoreBaseURL    string
	Timeout        time.Duration
}

// DefaultConfig returns default client configuration
func DefaultConfig() Config {
	return Config{
		FantasyBaseURL: DefaultFantasyBaseURL,
		CoreBaseURL:    DefaultCoreBaseURL,
		Timeout:        30 * time.Second,
	}
}

// Client fetches NBA player statistics from ESPN's unofficial APIs.
// Endpoints are tried in a fixed priority order; the first one that yields
// at least one usable entry wins. If all of them fail, the built-in sample
// dataset is returned so callers always have non-empty input
type Client struct {
	httpClient *http.Client
	cfg        Config
	logger     *slog.Logger
	userAgent  string
}

// New creates a new ESPN API client
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.FantasyBaseURL == "" {
		cfg.FantasyBaseURL = DefaultFantasyBaseURL
	}
	if cfg.CoreBaseURL == "" {
		cfg.CoreBaseURL = DefaultCoreBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg:       cfg,
		logger:    logger,
		userAgent: "Mozilla/5.0 (compatible; DraftboardBot/1.0)",
	}
}

// Ensure Client implements the provider interface
var _ provider.Provider = (*Client)(nil)

// FetchPlayers fetches raw player entries for a season
func (c *Client) FetchPlayers(ctx context.Context, season int) ([]provider.RawPlayer, model.DataSource, error) {
	attempts := []struct {
		name  string
		fetch func(ctx context.Context, season int) ([]provider.RawPlayer, error)
	}{
		{"fantasy", c.fetchFantasy},
		{"athletes", c.fetchAthletes},
		{"athletes_with_stats", c.fetchAthletesWithStats},
	}

	for _, attempt := range attempts {
		players, err := attempt.fetch(ctx, season)
		if err != nil {
			c.logger.Warn("provider endpoint failed",
				slog.String("endpoint", attempt.name),
				slog.Int("season", season),
				slog.String("error", err.Error()),
			)
			continue
		}
		if len(players) == 0 {
			c.logger.Warn("provider endpoint returned no usable entries",
				slog.String("endpoint", attempt.name),
				slog.Int("season", season),
			)
			continue
		}
		c.logger.Info("fetched live player data",
			slog.String("endpoint", attempt.name),
			slog.Int("season", season),
			slog.Int("players", len(players)),
		)
		return players, model.SourceLive, nil
	}

	c.logger.Warn("all provider endpoints failed, using sample data", slog.Int("season", season))
	return provider.SamplePlayers(), model.SourceSample, nil
}

// Fantasy API response shapes. Stats maps are keyed by stat ID:
// "0" games played, "1" points, "2" rebounds, "3" assists,
// "4" steals, "5" blocks, "6" turnovers

type fantasyResponse struct {
	Players []fantasyEntry `json:"players"`
}

type fantasyEntry struct {
	ID     json.Number    `json:"id"`
	Player fantasyPlayer  `json:"player"`
	Stats  []fantasyStats `json:"stats"`
}

type fantasyPlayer struct {
	FullName          string `json:"fullName"`
	ProTeamID         int    `json:"proTeamId"`
	DefaultPositionID int    `json:"defaultPositionId"`
}

type fantasyStats struct {
	StatSourceID int                `json:"statSourceId"`
	Stats        map[string]float64 `json:"stats"`
}

func (c *Client) fetchFantasy(ctx context.Context, season int) ([]provider.RawPlayer, error) {
	url := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/standard?view=kona_player_info&scoringPeriodId=0",
		c.cfg.FantasyBaseURL, season)

	var resp fantasyResponse
	if err := c.fetch(ctx, url, &resp); err != nil {
		return nil, err
	}

	players := make([]provider.RawPlayer, 0, len(resp.Players))
	for _, entry := range resp.Players {
		if raw, ok := extractFantasyPlayer(entry); ok {
			players = append(players, raw)
		}
	}
	return players, nil
}

// extractFantasyPlayer maps one fantasy API entry to a raw player.
// Malformed entries are skipped, never fatal
func extractFantasyPlayer(entry fantasyEntry) (provider.RawPlayer, bool) {
	if entry.ID == "" {
		return provider.RawPlayer{}, false
	}

	// Season totals carry statSourceId 0
	var stats map[string]float64
	for _, s := range entry.Stats {
		if s.StatSourceID == 0 {
			stats = s.Stats
			break
		}
	}
	if stats == nil {
		return provider.RawPlayer{}, false
	}

	gamesPlayed := int(stats["0"])
	if gamesPlayed == 0 {
		return provider.RawPlayer{}, false
	}

	name := entry.Player.FullName
	if name == "" {
		name = "Unknown"
	}

	return provider.RawPlayer{
		Name:        name,
		Team:        teamAbbreviation(entry.Player.ProTeamID),
		Position:    positionName(entry.Player.DefaultPositionID),
		GamesPlayed: gamesPlayed,
		Points:      stats["1"],
		Rebounds:    stats["2"],
		Assists:     stats["3"],
		Steals:      stats["4"],
		Blocks:      stats["5"],
		Turnovers:   stats["6"],
	}, true
}

// Core athletes API response shapes. IDs come back as either numbers or
// strings depending on the endpoint, hence json.Number

type coreAthletesResponse struct {
	Items []coreAthlete `json:"items"`
}

type coreAthlete struct {
	ID          json.Number `json:"id"`
	DisplayName string      `json:"displayName"`
	Team        coreRef     `json:"team"`
	Position    coreRef     `json:"position"`
	Statistics  *coreStats  `json:"statistics,omitempty"`
}

type coreRef struct {
	ID json.Number `json:"id"`
}

type coreStats struct {
	Seasons []coreSeason `json:"seasons"`
}

type coreSeason struct {
	Stats coreSeasonStats `json:"stats"`
}

type coreSeasonStats struct {
	GamesPlayed float64 `json:"gamesPlayed"`
	Points      float64 `json:"points"`
	Rebounds    float64 `json:"rebounds"`
	Assists     float64 `json:"assists"`
	Steals      float64 `json:"steals"`
	Blocks      float64 `json:"blocks"`
	Turnovers   float64 `json:"turnovers"`
}

func (c *Client) fetchAthletes(ctx context.Context, season int) ([]provider.RawPlayer, error) {
	url := fmt.Sprintf("%s/v2/sports/basketball/leagues/nba/seasons/%d/athletes?limit=1000",
		c.cfg.CoreBaseURL, season)
	return c.fetchCoreAthletes(ctx, url)
}

func (c *Client) fetchAthletesWithStats(ctx context.Context, season int) ([]provider.RawPlayer, error) {
	url := fmt.Sprintf("%s/v2/sports/basketball/leagues/nba/seasons/%d/athletes?limit=1000&statistics=true",
		c.cfg.CoreBaseURL, season)
	return c.fetchCoreAthletes(ctx, url)
}

func (c *Client) fetchCoreAthletes(ctx context.Context, url string) ([]provider.RawPlayer, error) {
	var resp coreAthletesResponse
	if err := c.fetch(ctx, url, &resp); err != nil {
		return nil, err
	}

	players := make([]provider.RawPlayer, 0, len(resp.Items))
	for _, item := range resp.Items {
		if raw, ok := extractCoreAthlete(item); ok {
			players = append(players, raw)
		}
	}
	return players, nil
}

// extractCoreAthlete maps one core API athlete to a raw player. When the
// endpoint carries no statistics, games played defaults to 1 with zeroed
// stats so the record survives normalization
func extractCoreAthlete(item coreAthlete) (provider.RawPlayer, bool) {
	if item.ID == "" {
		return provider.RawPlayer{}, false
	}

	name := item.DisplayName
	if name == "" {
		name = "Unknown"
	}

	raw := provider.RawPlayer{
		Name:        name,
		Team:        teamAbbreviation(numberToInt(item.Team.ID)),
		Position:    positionName(numberToInt(item.Position.ID)),
		GamesPlayed: 1,
	}

	if item.Statistics != nil && len(item.Statistics.Seasons) > 0 {
		// Most recent season is last
		stats := item.Statistics.Seasons[len(item.Statistics.Seasons)-1].Stats
		gamesPlayed := int(stats.GamesPlayed)
		if gamesPlayed == 0 {
			gamesPlayed = 1
		}
		raw.GamesPlayed = gamesPlayed
		raw.Points = stats.Points
		raw.Rebounds = stats.Rebounds
		raw.Assists = stats.Assists
		raw.Steals = stats.Steals
		raw.Blocks = stats.Blocks
		raw.Turnovers = stats.Turnovers
	}

	return raw, true
}

func numberToInt(n json.Number) int {
	i, err := n.Int64()
	if err != nil {
		return 0
	}
	return int(i)
}

// fetch makes an HTTP GET request and decodes the JSON response
func (c *Client) fetch(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider API error: status=%d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
