package match

// CategoryAll draws the round's pair from any category.
const CategoryAll = "ALL"

type Settings struct {
	UndercoverCount int    `json:"undercoverCount"`
	IncludeMrWhite  bool   `json:"includeMrWhite"`
	Category        string `json:"category"`
}

func DefaultSettings() Settings {
	return Settings{
		UndercoverCount: 1,
		IncludeMrWhite:  false,
		Category:        CategoryAll,
	}
}

// SettingsPatch is a partial update, nil fields are left untouched.
type SettingsPatch struct {
	UndercoverCount *int
	IncludeMrWhite  *bool
	Category        *string
}

func (s Settings) merge(patch SettingsPatch) Settings {
	if patch.UndercoverCount != nil {
		s.UndercoverCount = *patch.UndercoverCount
	}
	if patch.IncludeMrWhite != nil {
		s.IncludeMrWhite = *patch.IncludeMrWhite
	}
	if patch.Category != nil {
		s.Category = *patch.Category
	}
	return s
}

// MaxUndercoverCount is the largest undercover count the setup screen offers
// for the given roster size.
func MaxUndercoverCount(players int) int {
	n := (players - 1) / 2
	if n < 1 {
		return 1
	}
	return n
}
