package undercover

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	rosterDb "github.com/bloops-games/undercover/internal/database/roster/database"
	rosterModel "github.com/bloops-games/undercover/internal/database/roster/model"
	"github.com/bloops-games/undercover/internal/logging"
	"github.com/bloops-games/undercover/internal/undercover/match"
	"github.com/bloops-games/undercover/internal/undercover/resource"
)

const (
	CmdSetup      = "setup"
	CmdHome       = "home"
	CmdAdd        = "add"
	CmdRemove     = "rm"
	CmdUndercover = "undercover"
	CmdMrWhite    = "mrwhite"
	CmdCategory   = "category"
	CmdCategories = "categories"
	CmdStart      = "start"
	CmdShow       = "show"
	CmdNext       = "next"
	CmdVote       = "vote"
	CmdEliminate  = "eliminate"
	CmdGuess      = "guess"
	CmdContinue   = "continue"
	CmdReset      = "reset"
	CmdRoster     = "roster"
	CmdStatus     = "status"
	CmdHelp       = "help"
	CmdQuit       = "quit"
)

var ErrBadArgument = fmt.Errorf("bad argument")

// handle parses one input line into an intent. Typing mistakes are reported
// on the console, only infrastructure failures come back as errors.
func (m *Manager) handle(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd := strings.ToLower(fields[0])
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch cmd {
	case CmdSetup:
		m.apply(func(e *match.Engine) bool { return e.EnterSetup() })
	case CmdHome:
		m.apply(func(e *match.Engine) bool { return e.GoHome() })
	case CmdAdd:
		m.apply(func(e *match.Engine) bool { return e.AddPlayer(arg) })
	case CmdRemove:
		p, err := m.playerByNumber(arg)
		if err != nil {
			m.usage(err)
			return nil
		}
		m.apply(func(e *match.Engine) bool { return e.RemovePlayer(p.ID) })
	case CmdUndercover:
		n, err := strconv.Atoi(arg)
		if err != nil {
			m.usage(fmt.Errorf("%w: %q is not a number", ErrBadArgument, arg))
			return nil
		}
		if n < 1 {
			n = 1
		}
		m.apply(func(e *match.Engine) bool { return e.UpdateSettings(match.SettingsPatch{UndercoverCount: &n}) })
	case CmdMrWhite:
		on, err := parseSwitch(arg, "on", "off")
		if err != nil {
			m.usage(err)
			return nil
		}
		m.apply(func(e *match.Engine) bool { return e.UpdateSettings(match.SettingsPatch{IncludeMrWhite: &on}) })
	case CmdCategory:
		name, ok := m.category(arg)
		if !ok {
			m.usage(fmt.Errorf("%w: unknown category %q", ErrBadArgument, arg))
			return nil
		}
		m.apply(func(e *match.Engine) bool { return e.UpdateSettings(match.SettingsPatch{Category: &name}) })
	case CmdCategories:
		m.print(strings.Join(append([]string{match.CategoryAll}, m.catalog.Categories()...), ", ") + "\n")
	case CmdStart:
		s := m.Snapshot()
		if len(s.Players) < match.MinPlayers {
			m.print(resource.TextNeedPlayers + "\n")
			return nil
		}
		if s.Phase == match.PhaseSetup {
			if n := clampUndercover(s.Settings.UndercoverCount, len(s.Players)); n != s.Settings.UndercoverCount {
				m.print(fmt.Sprintf(resource.TextUndercoverClamped, n, len(s.Players)) + "\n")
				m.apply(func(e *match.Engine) bool { return e.UpdateSettings(match.SettingsPatch{UndercoverCount: &n}) })
			}
		}
		m.apply(func(e *match.Engine) bool { return e.StartGame() })
	case CmdShow:
		if m.Snapshot().Phase != match.PhaseReveal {
			m.print(resource.TextIgnored + "\n")
			return nil
		}
		m.revealed = true
		m.render()
	case CmdNext:
		if m.Snapshot().Phase == match.PhaseReveal && !m.revealed {
			m.print(resource.TextIgnored + "\n")
			return nil
		}
		m.apply(func(e *match.Engine) bool { return e.NextReveal() })
	case CmdVote:
		m.apply(func(e *match.Engine) bool { return e.StartDiscussion() })
	case CmdEliminate:
		p, err := m.playerByNumber(arg)
		if err != nil {
			m.usage(err)
			return nil
		}
		if !p.Alive {
			m.usage(fmt.Errorf("%w: %s is already out", ErrBadArgument, p.Name))
			return nil
		}
		m.apply(func(e *match.Engine) bool { return e.EliminatePlayer(p.ID) })
	case CmdGuess:
		correct, err := parseSwitch(arg, "yes", "no")
		if err != nil {
			m.usage(err)
			return nil
		}
		m.apply(func(e *match.Engine) bool { return e.MakeMrWhiteGuess(correct) })
	case CmdContinue:
		m.apply(func(e *match.Engine) bool { return e.StartNextRound() })
	case CmdReset:
		m.apply(func(e *match.Engine) bool { return e.ResetGame() })
	case CmdRoster:
		return m.handleRoster(ctx, arg)
	case CmdStatus:
		m.render()
	case CmdHelp:
		m.print(resource.TextHelp + "\n")
	case CmdQuit:
		return errQuit
	default:
		m.print(resource.TextUnknownCmd + "\n")
	}

	return nil
}

func (m *Manager) handleRoster(ctx context.Context, arg string) error {
	if m.rosters == nil {
		m.print(resource.TextIgnored + "\n")
		return nil
	}

	fields := strings.Fields(arg)
	if len(fields) == 0 {
		m.usage(fmt.Errorf("%w: roster save|load|delete|list", ErrBadArgument))
		return nil
	}

	name := strings.TrimSpace(strings.TrimPrefix(arg, fields[0]))
	switch strings.ToLower(fields[0]) {
	case "list":
		list, err := m.rosters.List()
		if err != nil {
			return fmt.Errorf("list rosters: %w", err)
		}
		for _, r := range list {
			m.print(fmt.Sprintf("%s: %s\n", r.Name, strings.Join(r.Players, ", ")))
		}
	case "save":
		if rosterModel.Key(name) == "" {
			m.usage(fmt.Errorf("%w: roster needs a name", ErrBadArgument))
			return nil
		}
		s := m.Snapshot()
		r := rosterModel.Roster{Name: name, SavedAt: time.Now()}
		for _, p := range s.Players {
			r.Players = append(r.Players, p.Name)
		}
		if err := m.rosters.Store(r); err != nil {
			return fmt.Errorf("store roster: %w", err)
		}
		logging.FromContext(ctx).Infof("roster %q saved with %d players", name, len(r.Players))
		m.print(fmt.Sprintf(resource.TextRosterSaved, name) + "\n")
	case "load":
		if m.Snapshot().Phase != match.PhaseSetup {
			m.print(resource.TextIgnored + "\n")
			return nil
		}
		r, err := m.rosters.Fetch(name)
		if err != nil {
			if errors.Is(err, rosterDb.ErrNotFound) {
				m.print(fmt.Sprintf(resource.TextRosterMissing, name) + "\n")
				return nil
			}
			return fmt.Errorf("fetch roster: %w", err)
		}

		// Fresh ids and avatars, the engine treats them as new seats.
		var added int
		m.mtx.Lock()
		for _, player := range r.Players {
			if m.engine.AddPlayer(player) {
				added++
			}
		}
		m.mtx.Unlock()

		m.print(fmt.Sprintf(resource.TextRosterLoaded, r.Name, added) + "\n")
		m.render()
	case "delete":
		if err := m.rosters.Delete(name); err != nil {
			if errors.Is(err, rosterDb.ErrNotFound) {
				m.print(fmt.Sprintf(resource.TextRosterMissing, name) + "\n")
				return nil
			}
			return fmt.Errorf("delete roster: %w", err)
		}
		logging.FromContext(ctx).Infof("roster %q deleted", name)
		m.print(fmt.Sprintf(resource.TextRosterDeleted, name) + "\n")
	default:
		m.usage(fmt.Errorf("%w: roster save|load|delete|list", ErrBadArgument))
	}

	return nil
}

// playerByNumber resolves the 1-based seat number shown on screen.
func (m *Manager) playerByNumber(arg string) (match.Player, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return match.Player{}, fmt.Errorf("%w: %q is not a number", ErrBadArgument, arg)
	}

	players := m.Snapshot().Players
	if n < 1 || n > len(players) {
		return match.Player{}, fmt.Errorf("%w: no player %d", ErrBadArgument, n)
	}
	return players[n-1], nil
}

func (m *Manager) category(arg string) (string, bool) {
	if strings.EqualFold(arg, match.CategoryAll) {
		return match.CategoryAll, true
	}
	return m.catalog.Lookup(arg)
}

func (m *Manager) usage(err error) {
	m.print(fmt.Sprintf("%s\n", err))
}

func clampUndercover(n, players int) int {
	if n < 1 {
		return 1
	}
	if limit := match.MaxUndercoverCount(players); n > limit {
		return limit
	}
	return n
}

func parseSwitch(arg, on, off string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case on:
		return true, nil
	case off:
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected %s or %s", ErrBadArgument, on, off)
	}
}
