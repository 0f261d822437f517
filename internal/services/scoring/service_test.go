package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/provider"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// Helper producing a raw entry whose season totals divide evenly into the
// given per-game values over the given number of games
func perGame(name string, games int, pts, reb, ast, stl, blk, to float64) provider.RawPlayer {
	g := float64(games)
	return provider.RawPlayer{
		Name:        name,
		Team:        "BOS",
		Position:    model.PositionCenter,
		GamesPlayed: games,
		Points:      pts * g,
		Rebounds:    reb * g,
		Assists:     ast * g,
		Steals:      stl * g,
		Blocks:      blk * g,
		Turnovers:   to * g,
	}
}

func (s *ServiceSuite) TestScoreFormula() {
	// 25 + 12 + 7.5 + 6 + 3 - 3 = 50.5
	s.InDelta(50.5, Score(25, 10, 5, 2, 1, 3), 0.0001)
}

func (s *ServiceSuite) TestScoreIsDeterministic() {
	a := Score(25, 10, 5, 2, 1, 3)
	b := Score(25, 10, 5, 2, 1, 3)
	s.Equal(a, b)
}

func (s *ServiceSuite) TestScoreRoundedToTwoDecimals() {
	// 1/3 per-game rebounds: 0.3333... * 1.2 = 0.4 exactly after rounding
	got := Score(0, 1.0/3.0, 0, 0, 0, 0)
	s.InDelta(0.4, got, 0.0001)
}

func (s *ServiceSuite) TestNormalizeComputesPerGameAverages() {
	records := s.service.Normalize([]provider.RawPlayer{
		perGame("Nikola Jokic", 70, 30, 10, 8.571428571, 1.428571429, 0.714285714, 2.857142857),
	})

	s.Require().Len(records, 1)
	r := records[0]
	s.Equal("Nikola Jokic", r.Name)
	s.Equal(70, r.GamesPlayed)
	s.InDelta(30.0, r.Points, 0.001)
	s.InDelta(10.0, r.Rebounds, 0.001)
	// Per-game display columns are rounded to 1 decimal
	s.InDelta(8.6, r.Assists, 0.001)
}

func (s *ServiceSuite) TestNormalizeDropsZeroGamesPlayed() {
	records := s.service.Normalize([]provider.RawPlayer{
		{Name: "Injured Reserve", GamesPlayed: 0, Points: 500},
		perGame("Healthy Player", 10, 20, 5, 5, 1, 1, 2),
	})

	s.Require().Len(records, 1)
	s.Equal("Healthy Player", records[0].Name)
}

func (s *ServiceSuite) TestNormalizeDefaultsMissingTeam() {
	raw := perGame("Journeyman", 10, 10, 5, 2, 1, 0, 1)
	raw.Team = ""
	raw.Position = model.PositionUnknown

	records := s.service.Normalize([]provider.RawPlayer{raw})

	s.Require().Len(records, 1)
	s.Equal("UNK", records[0].Team)
	s.Equal(model.PositionUnknown, records[0].Position)
}

func (s *ServiceSuite) TestNormalizeSortsDescendingByScore() {
	records := s.service.Normalize([]provider.RawPlayer{
		perGame("Low", 10, 10, 0, 0, 0, 0, 0),
		perGame("High", 10, 30, 0, 0, 0, 0, 0),
		perGame("Mid", 10, 20, 0, 0, 0, 0, 0),
	})

	s.Require().Len(records, 3)
	s.Equal("High", records[0].Name)
	s.Equal("Mid", records[1].Name)
	s.Equal("Low", records[2].Name)
}

func (s *ServiceSuite) TestNormalizeSortIsStableOnTies() {
	records := s.service.Normalize([]provider.RawPlayer{
		perGame("First", 10, 20, 0, 0, 0, 0, 0),
		perGame("Second", 20, 20, 0, 0, 0, 0, 0),
		perGame("Third", 30, 20, 0, 0, 0, 0, 0),
	})

	s.Require().Len(records, 3)
	s.Equal("First", records[0].Name)
	s.Equal("Second", records[1].Name)
	s.Equal("Third", records[2].Name)
}

func (s *ServiceSuite) TestNormalizeComputesTotalScore() {
	records := s.service.Normalize([]provider.RawPlayer{
		perGame("Scorer", 10, 25, 10, 5, 2, 1, 3),
	})

	s.Require().Len(records, 1)
	s.InDelta(50.5, records[0].FantasyScore, 0.0001)
	s.InDelta(505.0, records[0].TotalScore, 0.0001)
}

func (s *ServiceSuite) TestNormalizeEmptyInput() {
	s.Empty(s.service.Normalize(nil))
}
