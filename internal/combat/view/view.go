// Package view builds immutable snapshots of the encounter context for
// external readers (tactical providers, callers inspecting state between
// steps). A view is a structural copy: mutating it can never reach engine
// state.
package view

import (
	"sort"

	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/encstate"
)

// CombatantView is a read-only snapshot of one combatant's public state.
type CombatantView struct {
	ID         string
	Name       string
	Side       encstate.Side
	HP         int
	MaxHP      int
	ArmorClass int
	IsAlive    bool
	Initiative int
}

// CombatView is a read-only snapshot of the whole encounter.
type CombatView struct {
	EncounterID     string
	State           encstate.State
	Outcome         encstate.Outcome
	RoundNumber     int
	CurrentCombatantID string
	Combatants      map[string]CombatantView
	TurnQueue       []string
	AnnouncedDeaths []string
}

// Build copies ctx into an immutable CombatView. initiative maps
// combatantID to the side's rolled initiative for the current round (both
// combatants on a side share one roll, per the group-initiative rule).
func Build(ctx *context.Context, initiative map[string]int) CombatView {
	v := CombatView{
		EncounterID:         ctx.EncounterID,
		State:               ctx.State,
		Outcome:             ctx.Outcome,
		RoundNumber:         ctx.RoundNumber,
		CurrentCombatantID:  ctx.CurrentCombatantID(),
		Combatants:          make(map[string]CombatantView, len(ctx.Combatants)),
		TurnQueue:           append([]string(nil), ctx.TurnQueue...),
	}

	for id, ref := range ctx.Combatants {
		v.Combatants[id] = CombatantView{
			ID:         ref.ID,
			Name:       ref.Entity.Name(),
			Side:       ref.Side,
			HP:         ref.Entity.HP(),
			MaxHP:      ref.Entity.MaxHP(),
			ArmorClass: ref.Entity.ArmorClass(),
			IsAlive:    ref.IsAlive(),
			Initiative: initiative[id],
		}
	}

	for id := range ctx.AnnouncedDeaths {
		v.AnnouncedDeaths = append(v.AnnouncedDeaths, id)
	}
	sort.Strings(v.AnnouncedDeaths)

	return v
}

// LivingOpponents returns the IDs of living combatants on the opposite
// side from actorID, sorted by ID, for tactical providers choosing a
// target. It reads the whole roster, not the turn queue, so opponents left
// out of the current round's queue are included.
func (v CombatView) LivingOpponents(actorID string) []string {
	actor, ok := v.Combatants[actorID]
	if !ok {
		return nil
	}
	var ids []string
	for id, cv := range v.Combatants {
		if cv.Side != actor.Side && cv.IsAlive {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
