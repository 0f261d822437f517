package model

import "sort"

// DraftState is the set of players a session has marked as drafted.
// It lives only as long as the session and is never shared between sessions
type DraftState struct {
	SessionID SessionID       `json:"session_id"`
	Players   map[string]bool `json:"players"`
}

// NewDraftState creates an empty draft state for a session
func NewDraftState(sessionID SessionID) *DraftState {
	return &DraftState{
		SessionID: sessionID,
		Players:   make(map[string]bool),
	}
}

// Mark records a player as drafted
func (d *DraftState) Mark(name string) {
	if d.Players == nil {
		d.Players = make(map[string]bool)
	}
	d.Players[name] = true
}

// Unmark removes a player from the drafted set
func (d *DraftState) Unmark(name string) {
	delete(d.Players, name)
}

// IsDrafted reports whether a player has been marked drafted
func (d *DraftState) IsDrafted(name string) bool {
	return d != nil && d.Players[name]
}

// Count returns the number of drafted players
func (d *DraftState) Count() int {
	if d == nil {
		return 0
	}
	return len(d.Players)
}

// Names returns the drafted player names in sorted order
func (d *DraftState) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Players))
	for name := range d.Players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
