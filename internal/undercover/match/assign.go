package match

const (
	MinPlayers = 3
	MaxPlayers = 20

	// PlaceholderWord is dealt to Mr. White instead of a secret word.
	PlaceholderWord = "^^"
)

// FallbackPair is used when the catalog has nothing to offer.
var FallbackPair = WordPair{Civilian: "Coffee", Undercover: "Tea"}

// Catalog supplies the word pairs grouped by category.
type Catalog interface {
	Categories() []string
	Pairs(category string) ([]WordPair, bool)
}

// FactionSizes splits total players into civilians, undercovers and Mr. White.
// A configuration that leaves no civilian falls back to one undercover.
func FactionSizes(total int, settings Settings) (civilian, undercover, mrWhite int) {
	undercover = settings.UndercoverCount
	if settings.IncludeMrWhite {
		mrWhite = 1
	}
	if undercover < 0 || undercover+mrWhite >= total {
		undercover, mrWhite = 1, 0
	}
	return total - undercover - mrWhite, undercover, mrWhite
}

// RoleSequence lays the role multiset out as civilians, undercovers, Mr. White.
func RoleSequence(civilian, undercover, mrWhite int) []Role {
	roles := make([]Role, 0, civilian+undercover+mrWhite)
	for i := 0; i < civilian; i++ {
		roles = append(roles, RoleCivilian)
	}
	for i := 0; i < undercover; i++ {
		roles = append(roles, RoleUndercover)
	}
	for i := 0; i < mrWhite; i++ {
		roles = append(roles, RoleMrWhite)
	}
	return roles
}

// shuffleRoles is a Fisher-Yates shuffle in place.
func shuffleRoles(rnd Rand, roles []Role) []Role {
	for i := len(roles) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		roles[i], roles[j] = roles[j], roles[i]
	}
	return roles
}

// assignRoles deals a shuffled role multiset to the roster in roster order.
func assignRoles(rnd Rand, players []Player, settings Settings, pair WordPair) {
	roles := shuffleRoles(rnd, RoleSequence(FactionSizes(len(players), settings)))
	for i := range players {
		players[i].assign(roles[i], pair)
	}
}

func pickPair(rnd Rand, catalog Catalog, category string) WordPair {
	if catalog == nil {
		return FallbackPair
	}

	if category != CategoryAll {
		if pairs, ok := catalog.Pairs(category); ok && len(pairs) > 0 {
			return pairs[rnd.Intn(len(pairs))]
		}
	}

	names := catalog.Categories()
	if len(names) == 0 {
		return FallbackPair
	}

	if pairs, ok := catalog.Pairs(names[rnd.Intn(len(names))]); ok && len(pairs) > 0 {
		return pairs[rnd.Intn(len(pairs))]
	}

	var pool []WordPair
	for _, name := range names {
		pairs, _ := catalog.Pairs(name)
		pool = append(pool, pairs...)
	}
	if len(pool) == 0 {
		return FallbackPair
	}
	return pool[rnd.Intn(len(pool))]
}

func pickAvatar(rnd Rand, avatars []string, players []Player) string {
	if len(avatars) == 0 {
		return ""
	}

	used := make(map[string]struct{}, len(players))
	for _, p := range players {
		used[p.Avatar] = struct{}{}
	}

	free := make([]string, 0, len(avatars))
	for _, a := range avatars {
		if _, ok := used[a]; !ok {
			free = append(free, a)
		}
	}
	if len(free) == 0 {
		return avatars[0]
	}
	return free[rnd.Intn(len(free))]
}

// EvaluateWin decides the outcome of the current population.
// It never changes the players and gives the same answer for the same input.
func EvaluateWin(players []Player) (Phase, Role) {
	c := CountPlayers(players)
	switch {
	case c.Bad() >= c.AliveCivilian:
		return PhaseResult, RoleUndercover
	case c.Bad() == 0:
		return PhaseResult, RoleCivilian
	default:
		return PhaseRoundSummary, RoleUnset
	}
}
