package match

// Player is one seat at the table. Role and Word are empty outside a round.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   Role   `json:"role"`
	Word   string `json:"word"`
	Alive  bool   `json:"alive"`
	Votes  int    `json:"votes"`
}

func newPlayer(id, name, avatar string) Player {
	return Player{ID: id, Name: name, Avatar: avatar, Alive: true}
}

func (p Player) HasRole() bool {
	return p.Role != RoleUnset
}

func (p *Player) assign(role Role, pair WordPair) {
	p.Role = role
	p.Alive = true
	p.Votes = 0
	switch role {
	case RoleCivilian:
		p.Word = pair.Civilian
	case RoleUndercover:
		p.Word = pair.Undercover
	default:
		p.Word = PlaceholderWord
	}
}

func (p *Player) strip() {
	p.Role = RoleUnset
	p.Word = ""
	p.Alive = true
	p.Votes = 0
}

// WordPair holds the two related secret words of a round.
type WordPair struct {
	Civilian   string `json:"civilian"`
	Undercover string `json:"undercover"`
}

func (w WordPair) IsZero() bool {
	return w.Civilian == "" && w.Undercover == ""
}
