package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/courtside/draftboard/internal/model"
)

type ExportSuite struct {
	suite.Suite
	players []model.PlayerRecord
}

func TestExportSuite(t *testing.T) {
	suite.Run(t, new(ExportSuite))
}

func (s *ExportSuite) SetupTest() {
	s.players = []model.PlayerRecord{
		{
			Name: "Nikola Jokic", Team: "DEN", Position: model.PositionCenter,
			GamesPlayed: 70,
			Points:      26.0, Rebounds: 12.4, Assists: 9.0,
			Steals: 1.4, Blocks: 0.9, Turnovers: 3.0,
			FantasyScore: 58.93, TotalScore: 4125.1,
		},
		{
			Name: "Luka Doncic", Team: "DAL", Position: model.PositionPointGuard,
			GamesPlayed: 65,
			Points:      33.1, Rebounds: 9.1, Assists: 9.5,
			Steals: 1.4, Blocks: 0.5, Turnovers: 4.0,
			FantasyScore: 59.73, TotalScore: 3882.5,
		},
	}
}

func (s *ExportSuite) TestParseFormat() {
	f, err := ParseFormat("csv")
	s.Require().NoError(err)
	s.Equal(FormatCSV, f)

	f, err = ParseFormat("json")
	s.Require().NoError(err)
	s.Equal(FormatJSON, f)

	_, err = ParseFormat("xml")
	s.ErrorIs(err, ErrUnknownFormat)
}

func (s *ExportSuite) TestFilename() {
	s.Equal("players_data.csv", FormatCSV.Filename())
	s.Equal("players_data.json", FormatJSON.Filename())
}

func (s *ExportSuite) TestContentType() {
	s.Equal("text/csv", FormatCSV.ContentType())
	s.Equal("application/json", FormatJSON.ContentType())
}

func (s *ExportSuite) TestCSVHeaderRow() {
	var buf bytes.Buffer
	s.Require().NoError(Write(&buf, FormatCSV, s.players))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	s.Equal("Player,Team,Position,GP,PTS,REB,AST,STL,BLK,TO,FPPG,Total", lines[0])
}

func (s *ExportSuite) TestCSVRowsPreserveOrder() {
	var buf bytes.Buffer
	s.Require().NoError(Write(&buf, FormatCSV, s.players))

	records, err := csv.NewReader(&buf).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 3)

	s.Equal("Nikola Jokic", records[1][0])
	s.Equal("DEN", records[1][1])
	s.Equal("C", records[1][2])
	s.Equal("70", records[1][3])
	s.Equal("26.0", records[1][4])
	s.Equal("58.93", records[1][10])

	s.Equal("Luka Doncic", records[2][0])
}

func (s *ExportSuite) TestCSVEmptyInputStillHasHeader() {
	var buf bytes.Buffer
	s.Require().NoError(Write(&buf, FormatCSV, nil))

	s.Equal("Player,Team,Position,GP,PTS,REB,AST,STL,BLK,TO,FPPG,Total", strings.TrimSpace(buf.String()))
}

func (s *ExportSuite) TestJSONRoundTrip() {
	var buf bytes.Buffer
	s.Require().NoError(Write(&buf, FormatJSON, s.players))

	var decoded []model.PlayerRecord
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &decoded))
	s.Require().Len(decoded, 2)
	s.Equal("Nikola Jokic", decoded[0].Name)
	s.Equal(58.93, decoded[0].FantasyScore)
}

func (s *ExportSuite) TestJSONUsesDisplayColumnNames() {
	var buf bytes.Buffer
	s.Require().NoError(Write(&buf, FormatJSON, s.players))

	out := buf.String()
	s.Contains(out, `"Player": "Nikola Jokic"`)
	s.Contains(out, `"FPPG": 58.93`)
	s.Contains(out, `"GP": 70`)
}

func (s *ExportSuite) TestWriteUnknownFormat() {
	var buf bytes.Buffer
	err := Write(&buf, Format("xml"), s.players)
	s.ErrorIs(err, ErrUnknownFormat)
}
