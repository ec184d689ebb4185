package model

import (
	"time"

	"github.com/bloops-games/undercover/internal/undercover/match"
)

// State is an unfinished sitting saved on shutdown.
type State struct {
	Code    int64         `json:"code"`
	SavedAt time.Time     `json:"savedAt"`
	Session match.Session `json:"session"`
}

func NewState(s match.Session) State {
	return State{Code: s.Code, SavedAt: time.Now(), Session: s}
}

// Resumable reports whether restoring the state brings anything back.
func (s State) Resumable() bool {
	return len(s.Session.Players) > 0 || s.Session.Phase != match.PhaseHome
}
