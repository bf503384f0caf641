package encstate

// Side identifies which half of the encounter a combatant belongs to.
type Side string

const (
	SideParty      Side = "party"
	SideOpposition Side = "opposition"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideParty {
		return SideOpposition
	}
	return SideParty
}
