package match

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactionSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                          string
		total                         int
		settings                      Settings
		civilian, undercover, mrWhite int
	}{
		{name: "defaults", total: 4, settings: DefaultSettings(), civilian: 3, undercover: 1},
		{name: "with mr white", total: 6, settings: Settings{UndercoverCount: 2, IncludeMrWhite: true}, civilian: 3, undercover: 2, mrWhite: 1},
		{name: "no civilian left", total: 3, settings: Settings{UndercoverCount: 3}, civilian: 2, undercover: 1},
		{name: "mr white fills the table", total: 3, settings: Settings{UndercoverCount: 2, IncludeMrWhite: true}, civilian: 2, undercover: 1},
		{name: "negative count", total: 5, settings: Settings{UndercoverCount: -2}, civilian: 4, undercover: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			civ, uc, mw := FactionSizes(tc.total, tc.settings)
			assert.Equal(t, tc.civilian, civ)
			assert.Equal(t, tc.undercover, uc)
			assert.Equal(t, tc.mrWhite, mw)
			assert.Equal(t, tc.total, civ+uc+mw)
		})
	}
}

func TestShuffleRoles_IsPermutation(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		roles := shuffleRoles(rnd, RoleSequence(5, 2, 1))
		require.Len(t, roles, 8)
		c := map[Role]int{}
		for _, r := range roles {
			c[r]++
		}
		assert.Equal(t, map[Role]int{RoleCivilian: 5, RoleUndercover: 2, RoleMrWhite: 1}, c)
	}
}

func TestShuffleRoles_EveryPositionReachable(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(7))
	hits := make([]int, 4)
	for i := 0; i < 400; i++ {
		roles := shuffleRoles(rnd, RoleSequence(3, 1, 0))
		for pos, r := range roles {
			if r == RoleUndercover {
				hits[pos]++
			}
		}
	}
	for pos, n := range hits {
		assert.NotZero(t, n, "undercover never dealt to seat %d", pos)
	}
}

func TestEvaluateWin(t *testing.T) {
	t.Parallel()

	p := func(role Role, alive bool) Player {
		return Player{Role: role, Alive: alive}
	}

	tests := []struct {
		name    string
		players []Player
		phase   Phase
		winner  Role
	}{
		{
			name:    "round continues",
			players: []Player{p(RoleCivilian, true), p(RoleCivilian, true), p(RoleCivilian, true), p(RoleUndercover, true)},
			phase:   PhaseRoundSummary,
		},
		{
			name:    "parity",
			players: []Player{p(RoleCivilian, true), p(RoleCivilian, false), p(RoleUndercover, true)},
			phase:   PhaseResult,
			winner:  RoleUndercover,
		},
		{
			name:    "mr white counts as bad",
			players: []Player{p(RoleCivilian, true), p(RoleCivilian, true), p(RoleUndercover, true), p(RoleMrWhite, true)},
			phase:   PhaseResult,
			winner:  RoleUndercover,
		},
		{
			name:    "all bad players out",
			players: []Player{p(RoleCivilian, true), p(RoleUndercover, false), p(RoleMrWhite, false)},
			phase:   PhaseResult,
			winner:  RoleCivilian,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			phase, winner := EvaluateWin(tc.players)
			assert.Equal(t, tc.phase, phase)
			assert.Equal(t, tc.winner, winner)

			again, againWinner := EvaluateWin(tc.players)
			assert.Equal(t, phase, again)
			assert.Equal(t, winner, againWinner)
		})
	}
}

func TestMaxUndercoverCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, MaxUndercoverCount(0))
	assert.Equal(t, 1, MaxUndercoverCount(3))
	assert.Equal(t, 1, MaxUndercoverCount(4))
	assert.Equal(t, 2, MaxUndercoverCount(5))
	assert.Equal(t, 9, MaxUndercoverCount(20))
}

func TestPhase_CanTransitionTo(t *testing.T) {
	t.Parallel()

	assert.True(t, PhaseHome.CanTransitionTo(PhaseSetup))
	assert.True(t, PhaseReveal.CanTransitionTo(PhaseReveal))
	assert.True(t, PhaseVote.CanTransitionTo(PhaseResult))
	assert.True(t, PhaseResult.CanTransitionTo(PhaseSetup))
	assert.False(t, PhaseHome.CanTransitionTo(PhaseReveal))
	assert.False(t, PhaseDiscuss.CanTransitionTo(PhaseRoundSummary))
	assert.Equal(t, "round_summary", PhaseRoundSummary.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestPickAvatar(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(1))
	assert.Equal(t, "", pickAvatar(rnd, nil, nil))
	assert.Equal(t, "b", pickAvatar(rnd, []string{"a", "b"}, []Player{{Avatar: "a"}}))
}
