package model

import (
	"strings"
	"time"
)

// Roster is a named list of players kept between sittings.
type Roster struct {
	Name    string    `json:"name"`
	Players []string  `json:"players"`
	SavedAt time.Time `json:"savedAt"`
}

// Key normalizes the name so "Friday" and "friday " address the same roster.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
