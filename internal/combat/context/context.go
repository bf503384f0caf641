package context

import (
	"github.com/osrapps/osr-combat/internal/combat/encstate"
	"github.com/osrapps/osr-combat/internal/combat/intent"
)

// ForcedIntent is a single-use override queued against a combatant; it is
// consumed (and removed) the next time that combatant reaches TurnStart,
// regardless of whether it passes validation.
type ForcedIntent struct {
	Intent intent.Intent
	Reason string
}

// Context is the mutable state a single encounter owns for its lifetime.
// Nothing outside the engine package holds a pointer to this type; callers
// only ever see the immutable view built from it.
type Context struct {
	EncounterID string

	Combatants map[string]*CombatantRef
	PartyIDs   []string
	OppositionIDs []string

	RoundNumber int
	TurnQueue   []string
	CurrentIndex int

	// SpellSlots maps combatantID -> level -> slots remaining.
	SpellSlots map[string]map[int]int

	// Conditions maps combatantID -> set of active condition IDs. A
	// condition's optional duration (rounds remaining) is tracked
	// alongside it; 0 means indefinite.
	Conditions map[string]map[string]int

	ForcedIntents map[string]ForcedIntent

	AnnouncedDeaths map[string]bool

	// Surprised records which side, if any, was caught flat-footed by the
	// pre-combat surprise check. It is consulted only when building round
	// 1's turn queue.
	Surprised map[encstate.Side]bool

	State   encstate.State
	Outcome encstate.Outcome
}

// New builds a fresh Context for an encounter between party and
// opposition. Combatants are assigned their canonical side and zero
// initial bookkeeping state.
func New(encounterID string, party, opposition []Combatant) *Context {
	c := &Context{
		EncounterID:     encounterID,
		Combatants:      make(map[string]*CombatantRef),
		SpellSlots:      make(map[string]map[int]int),
		Conditions:      make(map[string]map[string]int),
		ForcedIntents:   make(map[string]ForcedIntent),
		AnnouncedDeaths: make(map[string]bool),
		Surprised:       make(map[encstate.Side]bool),
		State:           encstate.StateInit,
	}

	for _, p := range party {
		c.Combatants[p.ID()] = &CombatantRef{ID: p.ID(), Side: encstate.SideParty, Entity: p}
		c.PartyIDs = append(c.PartyIDs, p.ID())
		c.initSlots(p)
	}
	for _, m := range opposition {
		c.Combatants[m.ID()] = &CombatantRef{ID: m.ID(), Side: encstate.SideOpposition, Entity: m}
		c.OppositionIDs = append(c.OppositionIDs, m.ID())
		c.initSlots(m)
	}

	return c
}

func (c *Context) initSlots(comb Combatant) {
	caster, ok := comb.(SpellcasterCombatant)
	if !ok {
		return
	}
	slots := make(map[int]int)
	for level := 1; level <= 9; level++ {
		if max := caster.SpellSlotMax(level); max > 0 {
			slots[level] = max
		}
	}
	if len(slots) > 0 {
		c.SpellSlots[comb.ID()] = slots
	}
}

// Living returns the IDs of still-living, not-fled combatants on a side,
// in roster order.
func (c *Context) Living(side encstate.Side) []string {
	var ids []string
	src := c.PartyIDs
	if side == encstate.SideOpposition {
		src = c.OppositionIDs
	}
	for _, id := range src {
		if ref := c.Combatants[id]; ref != nil && ref.IsAlive() {
			ids = append(ids, id)
		}
	}
	return ids
}

// CurrentCombatantID returns the ID at the turn queue cursor, or "" if the
// queue is empty or exhausted.
func (c *Context) CurrentCombatantID() string {
	if c.CurrentIndex < 0 || c.CurrentIndex >= len(c.TurnQueue) {
		return ""
	}
	return c.TurnQueue[c.CurrentIndex]
}
