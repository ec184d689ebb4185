package undercover

import (
	"fmt"
	"strings"
	"time"

	"github.com/bloops-games/undercover/internal/strpool"
	"github.com/bloops-games/undercover/internal/undercover/match"
	"github.com/bloops-games/undercover/internal/undercover/resource"
	"github.com/bloops-games/undercover/internal/util"
)

func (m *Manager) render() {
	m.print(m.screen(m.Snapshot()))
}

// screen renders the snapshot as the console screen of its phase. It only
// reads the snapshot, the view never changes the session.
func (m *Manager) screen(s match.Session) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	buf.WriteString("\n")
	switch s.Phase {
	case match.PhaseHome:
		buf.WriteString(resource.TextHome + "\n")
	case match.PhaseSetup:
		writeSetup(buf, s)
	case match.PhaseReveal:
		m.writeReveal(buf, s)
	case match.PhaseDiscuss:
		m.writeDiscuss(buf, s)
	case match.PhaseVote:
		buf.WriteString(resource.TextVoteHeader + "\n")
		writePlayers(buf, s.Players, false)
	case match.PhaseRoundSummary:
		writeSummary(buf, s)
	case match.PhaseResult:
		writeResult(buf, s)
	}

	return buf.String()
}

func writeSetup(buf *strings.Builder, s match.Session) {
	buf.WriteString(resource.TextSetupHeader + "\n")
	writePlayers(buf, s.Players, false)

	mrWhite := "off"
	if s.Settings.IncludeMrWhite {
		mrWhite = "on"
	}
	buf.WriteString(fmt.Sprintf(
		"%d %s | undercover: %d (max %d) | mr white: %s | category: %s\n",
		len(s.Players),
		util.Noun(len(s.Players), "player", "players"),
		s.Settings.UndercoverCount,
		match.MaxUndercoverCount(len(s.Players)),
		mrWhite,
		s.Settings.Category,
	))

	if len(s.Players) < match.MinPlayers {
		buf.WriteString(resource.TextNeedPlayers + "\n")
	}
}

func (m *Manager) writeReveal(buf *strings.Builder, s match.Session) {
	p, ok := s.CurrentRevealer()
	if !ok {
		return
	}

	buf.WriteString(fmt.Sprintf("[%d/%d] ", s.RevealIndex+1, len(s.Players)))
	if !m.revealed {
		buf.WriteString(fmt.Sprintf(resource.TextRevealPass, p.Avatar, p.Name) + "\n")
		return
	}

	if p.Role == match.RoleMrWhite {
		buf.WriteString(resource.TextRevealNoWord + "\n")
	} else {
		buf.WriteString(fmt.Sprintf(resource.TextRevealWord, p.Word) + "\n")
	}
	buf.WriteString(resource.TextRevealNext + "\n")
}

func (m *Manager) writeDiscuss(buf *strings.Builder, s match.Session) {
	starter, _ := s.StartingPlayer()

	left := "no limit"
	if m.timer != nil {
		left = util.FormatDuration(time.Until(m.deadline))
	}

	direction := "clockwise"
	if s.Direction == match.DirectionCounterClockwise {
		direction = "counter clockwise"
	}

	buf.WriteString(fmt.Sprintf(resource.TextDiscussHeader, starter.Avatar, starter.Name, direction, left) + "\n")
	writePlayers(buf, s.Players, false)
	buf.WriteString(resource.TextDiscussVote + "\n")
}

func writeSummary(buf *strings.Builder, s match.Session) {
	if p, ok := s.LastEliminated(); ok {
		buf.WriteString(fmt.Sprintf(resource.TextSummaryHeader, p.Avatar, p.Name, roleTitle(p.Role)) + "\n")
	}

	alive := len(s.AlivePlayers())
	buf.WriteString(fmt.Sprintf(resource.TextSummaryLeft, alive, util.Noun(alive, "player", "players"), s.Counts().Bad()) + "\n")
	buf.WriteString(resource.TextSummaryNext + "\n")
}

func writeResult(buf *strings.Builder, s match.Session) {
	if s.MrWhiteGuessing {
		for _, p := range s.Players {
			if p.Role == match.RoleMrWhite && p.Alive {
				buf.WriteString(fmt.Sprintf(resource.TextGuessHeader, p.Avatar, p.Name) + "\n")
				break
			}
		}
		buf.WriteString(resource.TextGuessPrompt + "\n")
		return
	}

	buf.WriteString(fmt.Sprintf(resource.TextResultHeader, winnerBanner(s.Winner)) + "\n")
	buf.WriteString(fmt.Sprintf(resource.TextResultWords, s.WordPair.Civilian, s.WordPair.Undercover) + "\n")
	writePlayers(buf, s.Players, true)
	buf.WriteString(resource.TextResultAgain + "\n")
}

// writePlayers numbers the players in roster order, the numbers are the ones
// the rm and eliminate commands expect.
func writePlayers(buf *strings.Builder, players []match.Player, identities bool) {
	for i, p := range players {
		buf.WriteString(fmt.Sprintf("%2d. %s %s", i+1, p.Avatar, p.Name))
		if !p.Alive {
			buf.WriteString(" (out)")
		}
		if identities && p.HasRole() {
			buf.WriteString(" - " + roleTitle(p.Role))
		}
		buf.WriteString("\n")
	}
}

func roleTitle(r match.Role) string {
	switch r {
	case match.RoleCivilian:
		return resource.RoleCivilian
	case match.RoleUndercover:
		return resource.RoleUndercover
	case match.RoleMrWhite:
		return resource.RoleMrWhite
	default:
		return r.String()
	}
}

func winnerBanner(r match.Role) string {
	switch r {
	case match.RoleCivilian:
		return resource.WinCivilian
	case match.RoleUndercover:
		return resource.WinUndercover
	case match.RoleMrWhite:
		return resource.WinMrWhite
	default:
		return ""
	}
}
