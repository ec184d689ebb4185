package match

import (
	"fmt"
	"strings"

	"github.com/bloops-games/undercover/internal/logging"
	"github.com/bloops-games/undercover/internal/undercover/resource"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Option func(e *Engine)

func WithRand(rnd Rand) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

func WithAvatars(avatars []string) Option {
	return func(e *Engine) {
		e.avatars = avatars
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSession starts the engine from a previously published snapshot.
func WithSession(s Session) Option {
	return func(e *Engine) {
		e.session = s.Clone()
	}
}

func NewEngine(catalog Catalog, opts ...Option) *Engine {
	e := &Engine{
		session: NewSession(),
		catalog: catalog,
		avatars: resource.Avatars,
		rnd:     DefaultRand,
		newID:   uuid.NewString,
		logger:  logging.DefaultLogger().Named("match.engine"),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Engine owns the session of one sitting. It is not safe for concurrent use,
// callers serialize intents through a single goroutine.
type Engine struct {
	session Session

	catalog Catalog
	avatars []string
	rnd     Rand
	newID   func() string
	logger  *zap.SugaredLogger
}

func (e *Engine) Snapshot() Session {
	return e.session.Clone()
}

func (e *Engine) publish(intent string, next Session) bool {
	e.session = next
	e.logger.Debugw("intent applied", "intent", intent, "phase", next.Phase.String(), "players", len(next.Players))
	return true
}

func (e *Engine) ignore(intent, reason string) bool {
	e.logger.Debugw("intent ignored", "intent", intent, "phase", e.session.Phase.String(), "reason", reason)
	return false
}

func (e *Engine) transition(intent string, from, to Phase) bool {
	if e.session.Phase != from {
		return e.ignore(intent, fmt.Sprintf("requires phase %s", from))
	}
	if !from.CanTransitionTo(to) {
		return e.ignore(intent, fmt.Sprintf("no edge %s -> %s", from, to))
	}

	s := e.session.Clone()
	s.Phase = to
	return e.publish(intent, s)
}

func (e *Engine) EnterSetup() bool {
	return e.transition("enter_setup", PhaseHome, PhaseSetup)
}

func (e *Engine) GoHome() bool {
	return e.transition("go_home", PhaseSetup, PhaseHome)
}

// StartDiscussion closes the discussion and opens the vote.
func (e *Engine) StartDiscussion() bool {
	return e.transition("start_discussion", PhaseDiscuss, PhaseVote)
}

func (e *Engine) StartNextRound() bool {
	return e.transition("start_next_round", PhaseRoundSummary, PhaseDiscuss)
}

func (e *Engine) AddPlayer(name string) bool {
	if len(e.session.Players) >= MaxPlayers {
		return e.ignore("add_player", "roster is full")
	}

	s := e.session.Clone()
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Player %d", len(s.Players)+1)
	}

	avatar := pickAvatar(e.rnd, e.avatars, s.Players)
	s.Players = append(s.Players, newPlayer(e.newID(), name, avatar))
	return e.publish("add_player", s)
}

func (e *Engine) RemovePlayer(id string) bool {
	idx := e.session.indexOf(id)
	if idx < 0 {
		return e.ignore("remove_player", "unknown player")
	}

	s := e.session.Clone()
	s.Players = append(s.Players[:idx], s.Players[idx+1:]...)
	return e.publish("remove_player", s)
}

func (e *Engine) UpdateSettings(patch SettingsPatch) bool {
	s := e.session.Clone()
	s.Settings = s.Settings.merge(patch)
	return e.publish("update_settings", s)
}

// StartGame deals roles and words and hands the device to the first player.
func (e *Engine) StartGame() bool {
	if e.session.Phase != PhaseSetup {
		return e.ignore("start_game", "requires phase setup")
	}
	if len(e.session.Players) < MinPlayers {
		return e.ignore("start_game", fmt.Sprintf("requires at least %d players", MinPlayers))
	}

	s := e.session.Clone()
	pair := pickPair(e.rnd, e.catalog, s.Settings.Category)
	assignRoles(e.rnd, s.Players, s.Settings, pair)

	s.WordPair = pair
	s.Phase = PhaseReveal
	s.RevealIndex = 0
	s.Winner = RoleUnset
	s.MrWhiteGuessing = false
	s.LastEliminatedID = ""
	s.StartingPlayerID = s.Players[e.rnd.Intn(len(s.Players))].ID
	s.Direction = DirectionClockwise
	if e.rnd.Intn(2) == 1 {
		s.Direction = DirectionCounterClockwise
	}

	return e.publish("start_game", s)
}

// NextReveal passes the device to the next player, or opens the discussion
// once everybody has seen their word.
func (e *Engine) NextReveal() bool {
	if e.session.Phase != PhaseReveal {
		return e.ignore("next_reveal", "requires phase reveal")
	}

	s := e.session.Clone()
	if s.RevealIndex+1 < len(s.Players) {
		s.RevealIndex++
	} else {
		s.Phase = PhaseDiscuss
	}
	return e.publish("next_reveal", s)
}

// EliminatePlayer applies the table's vote. Mr. White is not killed right
// away, they get a chance to guess the civilian word first.
func (e *Engine) EliminatePlayer(id string) bool {
	if e.session.Phase != PhaseVote {
		return e.ignore("eliminate_player", "requires phase vote")
	}

	idx := e.session.indexOf(id)
	if idx < 0 {
		return e.ignore("eliminate_player", "unknown player")
	}

	s := e.session.Clone()
	if s.Players[idx].Role == RoleMrWhite {
		s.MrWhiteGuessing = true
		s.Phase = PhaseResult
		return e.publish("eliminate_player", s)
	}

	s.Players[idx].Alive = false
	s.LastEliminatedID = id
	s.Phase, s.Winner = EvaluateWin(s.Players)
	return e.publish("eliminate_player", s)
}

// MakeMrWhiteGuess resolves a pending guess. The table judges the guess,
// the engine only learns whether it was right.
func (e *Engine) MakeMrWhiteGuess(correct bool) bool {
	if !e.session.MrWhiteGuessing {
		return e.ignore("mr_white_guess", "no guess pending")
	}

	s := e.session.Clone()
	s.MrWhiteGuessing = false
	if correct {
		s.Winner = RoleMrWhite
		s.Phase = PhaseResult
		return e.publish("mr_white_guess", s)
	}

	for i := range s.Players {
		if s.Players[i].Role == RoleMrWhite && s.Players[i].Alive {
			s.Players[i].Alive = false
			s.LastEliminatedID = s.Players[i].ID
		}
	}
	s.Phase, s.Winner = EvaluateWin(s.Players)
	return e.publish("mr_white_guess", s)
}

// CheckWinCondition re-runs the win evaluation on the current population.
func (e *Engine) CheckWinCondition() bool {
	switch {
	case !e.session.IsRoundActive():
		return e.ignore("check_win", "no active round")
	case e.session.MrWhiteGuessing:
		return e.ignore("check_win", "guess pending")
	case e.session.Winner == RoleMrWhite:
		return e.ignore("check_win", "round already won by mr white")
	}

	phase, winner := EvaluateWin(e.session.Players)
	if phase != e.session.Phase && !e.session.Phase.CanTransitionTo(phase) {
		return e.ignore("check_win", fmt.Sprintf("no edge %s -> %s", e.session.Phase, phase))
	}

	s := e.session.Clone()
	s.Phase, s.Winner = phase, winner
	return e.publish("check_win", s)
}

// ResetGame returns to setup keeping the roster and the settings.
// It is accepted from every phase.
func (e *Engine) ResetGame() bool {
	s := e.session.Clone()
	for i := range s.Players {
		s.Players[i].strip()
	}

	s.Phase = PhaseSetup
	s.WordPair = WordPair{}
	s.RevealIndex = 0
	s.Winner = RoleUnset
	s.MrWhiteGuessing = false
	s.StartingPlayerID = ""
	s.Direction = DirectionUnset
	s.LastEliminatedID = ""
	return e.publish("reset_game", s)
}
