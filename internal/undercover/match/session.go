package match

import "time"

type Direction uint8

const (
	DirectionUnset Direction = iota
	DirectionClockwise
	DirectionCounterClockwise
)

func (d Direction) String() string {
	switch d {
	case DirectionClockwise:
		return "clockwise"
	case DirectionCounterClockwise:
		return "counter_clockwise"
	default:
		return "unset"
	}
}

func NewSession() Session {
	return Session{
		Phase:    PhaseHome,
		Settings: DefaultSettings(),
	}
}

// Session is the full observable state of a sitting. The engine only ever
// publishes whole values of it, readers never see a half applied intent.
type Session struct {
	Code      int64     `json:"code"`
	CreatedAt time.Time `json:"createdAt"`

	Phase    Phase    `json:"phase"`
	Players  []Player `json:"players"`
	Settings Settings `json:"settings"`

	WordPair         WordPair  `json:"wordPair"`
	RevealIndex      int       `json:"revealIndex"`
	Winner           Role      `json:"winner"`
	MrWhiteGuessing  bool      `json:"mrWhiteGuessing"`
	StartingPlayerID string    `json:"startingPlayerId"`
	Direction        Direction `json:"direction"`
	LastEliminatedID string    `json:"lastEliminatedId"`
}

func (r Session) Clone() Session {
	c := r
	if r.Players != nil {
		c.Players = make([]Player, len(r.Players))
		copy(c.Players, r.Players)
	}
	return c
}

func (r Session) indexOf(id string) int {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return i
		}
	}
	return -1
}

func (r Session) FindPlayer(id string) (Player, bool) {
	if i := r.indexOf(id); i >= 0 {
		return r.Players[i], true
	}
	return Player{}, false
}

// CurrentRevealer is the player holding the device during the reveal phase.
func (r Session) CurrentRevealer() (Player, bool) {
	if r.Phase != PhaseReveal || r.RevealIndex < 0 || r.RevealIndex >= len(r.Players) {
		return Player{}, false
	}
	return r.Players[r.RevealIndex], true
}

func (r Session) StartingPlayer() (Player, bool) {
	if r.StartingPlayerID == "" {
		return Player{}, false
	}
	return r.FindPlayer(r.StartingPlayerID)
}

func (r Session) LastEliminated() (Player, bool) {
	if r.LastEliminatedID == "" {
		return Player{}, false
	}
	return r.FindPlayer(r.LastEliminatedID)
}

func (r Session) AlivePlayers() []Player {
	alive := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	return alive
}

// IsRoundActive reports whether roles have been dealt for the current sitting.
func (r Session) IsRoundActive() bool {
	return !r.WordPair.IsZero() && r.Phase != PhaseHome && r.Phase != PhaseSetup
}

func (r Session) Counts() Counts {
	return CountPlayers(r.Players)
}

// Counts is the faction census of a roster.
type Counts struct {
	Civilian   int
	Undercover int
	MrWhite    int

	AliveCivilian   int
	AliveUndercover int
	AliveMrWhite    int
}

// Bad is the number of alive players playing against the civilians.
func (c Counts) Bad() int {
	return c.AliveUndercover + c.AliveMrWhite
}

func CountPlayers(players []Player) Counts {
	var c Counts
	for _, p := range players {
		switch p.Role {
		case RoleCivilian:
			c.Civilian++
			if p.Alive {
				c.AliveCivilian++
			}
		case RoleUndercover:
			c.Undercover++
			if p.Alive {
				c.AliveUndercover++
			}
		case RoleMrWhite:
			c.MrWhite++
			if p.Alive {
				c.AliveMrWhite++
			}
		}
	}
	return c
}
