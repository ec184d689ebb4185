package match

// Role is the secret identity a player holds for the duration of a round.
type Role uint8

const (
	RoleUnset Role = iota
	RoleCivilian
	RoleUndercover
	RoleMrWhite
)

func (r Role) String() string {
	switch r {
	case RoleCivilian:
		return "civilian"
	case RoleUndercover:
		return "undercover"
	case RoleMrWhite:
		return "mr_white"
	default:
		return "unset"
	}
}
