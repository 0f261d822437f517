package views

import (
	"embed"
	"html/template"
	"io"

	"github.com/courtside/draftboard/internal/model"
	"github.com/courtside/draftboard/internal/services/roster"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// FlashMessage is a one-shot notice shown on the next page render
type FlashMessage struct {
	Type    string
	Message string
}

// PageData carries fields common to every page
type PageData struct {
	Title string
	Flash *FlashMessage
}

// BoardData is the draft board page model
type BoardData struct {
	PageData

	Season       int
	Source       model.DataSource
	Players      []model.PlayerRecord
	Summary      *roster.Summary
	DraftedNames []string

	// Filter state echoed back into the controls
	Positions         []model.Position
	SelectedPositions map[model.Position]bool
	NameSearch        string
}

var boardTemplate = template.Must(template.ParseFS(templateFS,
	"templates/layout.gohtml",
	"templates/board.gohtml",
))

// RenderBoard writes the draft board page
func RenderBoard(w io.Writer, data BoardData) error {
	return boardTemplate.ExecuteTemplate(w, "layout", data)
}
