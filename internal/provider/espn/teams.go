package espn

import "github.com/courtside/draftboard/internal/model"

// teamAbbreviations maps ESPN pro-team IDs to franchise abbreviations
var teamAbbreviations = map[int]string{
	1: "ATL", 2: "BOS", 3: "BKN", 4: "CHA", 5: "CHI",
	6: "CLE", 7: "DAL", 8: "DEN", 9: "DET", 10: "GSW",
	11: "HOU", 12: "IND", 13: "LAC", 14: "LAL", 15: "MEM",
	16: "MIA", 17: "MIL", 18: "MIN", 19: "NO", 20: "NY",
	21: "OKC", 22: "ORL", 23: "PHI", 24: "PHX", 25: "POR",
	26: "SAC", 27: "SA", 28: "TOR", 29: "UTA", 30: "WSH",
}

// positionIDs maps ESPN position IDs to the position enum
var positionIDs = map[int]model.Position{
	1: model.PositionPointGuard,
	2: model.PositionShootingGuard,
	3: model.PositionSmallForward,
	4: model.PositionPowerForward,
	5: model.PositionCenter,
}

func teamAbbreviation(id int) string {
	if abbr, ok := teamAbbreviations[id]; ok {
		return abbr
	}
	return "UNK"
}

func positionName(id int) model.Position {
	if pos, ok := positionIDs[id]; ok {
		return pos
	}
	return model.PositionUnknown
}
