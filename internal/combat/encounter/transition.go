package encounter

import (
	"fmt"

	"github.com/osrapps/osr-combat/internal/combat/action"
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/effect"
	"github.com/osrapps/osr-combat/internal/combat/encstate"
	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/intent"
)

// transition performs exactly one state handler and returns the events it
// produced, plus whether the engine is now waiting on a caller-supplied
// intent.
func (e *Engine) transition(in intent.Intent) ([]event.Event, bool) {
	switch e.ctx.State {
	case encstate.StateInit:
		return e.handleInit(), false
	case encstate.StateRoundStart:
		return e.handleRoundStart(), false
	case encstate.StateTurnStart:
		return e.handleTurnStart(), false
	case encstate.StateAwaitIntent:
		return e.handleAwaitIntent(in)
	case encstate.StateValidateIntent:
		return e.handleValidateIntent(), false
	case encstate.StateExecuteAction:
		return e.handleExecuteAction(), false
	case encstate.StateApplyEffects:
		return e.handleApplyEffects(), false
	case encstate.StateCheckDeaths:
		return e.handleCheckDeaths(), false
	case encstate.StateCheckMorale:
		return e.handleCheckMorale(), false
	case encstate.StateCheckVictory:
		return e.handleCheckVictory(), false
	case encstate.StateEnded:
		// Terminal: further steps emit nothing and change nothing.
		return nil, false
	default:
		panic(fmt.Errorf("encounter engine: no handler for state %s", e.ctx.State))
	}
}

func (e *Engine) handleInit() []event.Event {
	events := []event.Event{
		event.EncounterStarted{
			EncounterID:   e.ctx.EncounterID,
			PartyIDs:      append([]string(nil), e.ctx.PartyIDs...),
			OppositionIDs: append([]string(nil), e.ctx.OppositionIDs...),
		},
	}

	partyRoll := dice.Must(e.dice, "1d6")
	oppoRoll := dice.Must(e.dice, "1d6")
	partySurprised := oppoRoll > partyRoll
	oppositionSurprised := partyRoll > oppoRoll
	events = append(events, event.SurpriseRolled{
		PartyRoll:           partyRoll,
		OppositionRoll:      oppoRoll,
		PartySurprised:      partySurprised,
		OppositionSurprised: oppositionSurprised,
	})
	e.ctx.Surprised[encstate.SideParty] = partySurprised
	e.ctx.Surprised[encstate.SideOpposition] = oppositionSurprised

	e.ctx.State = encstate.StateRoundStart
	return events
}

func (e *Engine) handleRoundStart() []event.Event {
	e.ctx.RoundNumber++
	e.moraleRolled = make(map[encstate.Side]bool)

	partyRoll := dice.Must(e.dice, "1d6")
	oppoRoll := dice.Must(e.dice, "1d6")
	winner := encstate.SideParty
	if oppoRoll > partyRoll {
		winner = encstate.SideOpposition
	}

	for _, id := range e.ctx.PartyIDs {
		e.initiative[id] = partyRoll
	}
	for _, id := range e.ctx.OppositionIDs {
		e.initiative[id] = oppoRoll
	}

	queue := buildTurnQueue(e.ctx, winner)
	e.ctx.TurnQueue = queue
	e.ctx.CurrentIndex = 0
	e.ctx.State = encstate.StateTurnStart

	return []event.Event{
		event.RoundStarted{RoundNumber: e.ctx.RoundNumber},
		event.InitiativeRolled{RoundNumber: e.ctx.RoundNumber, PartyRoll: partyRoll, OppositionRoll: oppoRoll, Winner: winner},
		event.TurnQueueBuilt{RoundNumber: e.ctx.RoundNumber, CombatantIDs: append([]string(nil), queue...)},
	}
}

// buildTurnQueue orders combatants: the winning side first, then the
// other, each side in roster-registration order — the spec's initiative
// tie-break policy (side then registration order) applied uniformly since
// ties within a side never occur (one roll covers the whole side). A side
// that was surprised before the first round loses its first round
// entirely: its IDs are omitted from round 1's queue.
func buildTurnQueue(ctx *context.Context, winner encstate.Side) []string {
	firstSide, secondSide := winner, winner.Opponent()
	first, second := ctx.PartyIDs, ctx.OppositionIDs
	if winner == encstate.SideOpposition {
		first, second = second, first
	}

	if ctx.RoundNumber == 1 && ctx.Surprised[firstSide] {
		first = nil
	}
	if ctx.RoundNumber == 1 && ctx.Surprised[secondSide] {
		second = nil
	}

	queue := make([]string, 0, len(first)+len(second))
	queue = append(queue, first...)
	queue = append(queue, second...)
	return queue
}

func (e *Engine) handleTurnStart() []event.Event {
	id := e.ctx.CurrentCombatantID()
	ref := e.ctx.Combatants[id]

	if ref == nil || !ref.IsAlive() {
		e.advanceOrAnnounce()
		return []event.Event{event.TurnSkipped{RoundNumber: e.ctx.RoundNumber, CombatantID: id, Reason: "dead or fled"}}
	}

	events := []event.Event{event.TurnStarted{RoundNumber: e.ctx.RoundNumber, CombatantID: id}}

	if forced, ok := e.ctx.ForcedIntents[id]; ok {
		delete(e.ctx.ForcedIntents, id)
		e.pendingIntent = forced.Intent
		e.pendingIsForced = true
		e.ctx.State = encstate.StateValidateIntent
		events = append(events, event.ForcedIntentApplied{CombatantID: id, Intent: forced.Intent, Reason: forced.Reason})
		return events
	}

	e.ctx.State = encstate.StateAwaitIntent
	return events
}

// advanceOrAnnounce sets the state back to TurnStart for the next queue
// slot, or on to CheckVictory if the round's turn queue is exhausted.
func (e *Engine) advanceOrAnnounce() {
	e.ctx.CurrentIndex++
	if e.ctx.CurrentIndex >= len(e.ctx.TurnQueue) {
		e.ctx.State = encstate.StateCheckVictory
		return
	}
	e.ctx.State = encstate.StateTurnStart
}

func (e *Engine) handleAwaitIntent(in intent.Intent) ([]event.Event, bool) {
	id := e.ctx.CurrentCombatantID()
	ref := e.ctx.Combatants[id]

	provider := e.oppo
	if ref.Side == encstate.SideParty {
		provider = e.party
	}

	if provider != nil {
		chosen := provider.ChooseIntent(e.GetView(), id)
		e.pendingIntent = chosen
		e.pendingIsForced = false
		e.ctx.State = encstate.StateValidateIntent
		return nil, false
	}

	if in == nil {
		return []event.Event{event.NeedAction{
			RoundNumber: e.ctx.RoundNumber,
			CombatantID: id,
			Choices:     buildChoices(e.ctx, id),
		}}, true
	}

	e.pendingIntent = in
	e.pendingIsForced = false
	e.ctx.State = encstate.StateValidateIntent
	return nil, false
}

func (e *Engine) handleValidateIntent() []event.Event {
	pending := e.pendingIntent
	act := toAction(pending)
	rejections := act.Validate(e.ctx)

	if len(rejections) > 0 {
		id := e.ctx.CurrentCombatantID()
		e.pendingIntent = nil
		e.pendingIsForced = false
		// Whether the rejected intent came from a forced override or a
		// normal decision, the fallback is the same: return to
		// AwaitIntent so a fresh decision can be made. A forced intent is
		// single-use regardless of outcome, so it is never retried.
		e.ctx.State = encstate.StateAwaitIntent
		return []event.Event{event.ActionRejected{CombatantID: id, Intent: pending, Reasons: rejections}}
	}

	e.ctx.State = encstate.StateExecuteAction
	return nil
}

func (e *Engine) handleExecuteAction() []event.Event {
	act := toAction(e.pendingIntent)
	res := act.Execute(e.ctx, e.dice)
	e.pendingEffects = res.Effects
	e.ctx.State = encstate.StateApplyEffects
	return res.Events
}

// handleApplyEffects applies the pending action's effects in emission
// order. An effect that fails (currently, only ConsumeSlot against an
// exhausted slot table) emits an ActionRejected and stops: no subsequent
// effect in the same action is applied, so a spell can never land partial
// damage after its slot check fails.
func (e *Engine) handleApplyEffects() []event.Event {
	var events []event.Event
	for _, eff := range e.pendingEffects {
		result, ok := e.applyEffect(eff)
		events = append(events, result...)
		if !ok {
			break
		}
	}
	e.pendingEffects = nil
	e.ctx.State = encstate.StateCheckDeaths
	return events
}

func (e *Engine) applyEffect(eff effect.Effect) ([]event.Event, bool) {
	switch v := eff.(type) {
	case effect.Damage:
		target := e.ctx.Combatants[v.TargetID].Entity
		target.ApplyDamage(v.Amount)
		return []event.Event{event.DamageApplied{SourceID: v.SourceID, TargetID: v.TargetID, Amount: v.Amount, RemainingHP: target.HP()}}, true
	case effect.ConsumeSlot:
		slots := e.ctx.SpellSlots[v.CasterID]
		if slots == nil || slots[v.Level] <= 0 {
			rejection := event.Rejection{Code: event.RejectionNoSpellSlot, Reason: fmt.Sprintf("no level %d slots remaining", v.Level)}
			return []event.Event{event.ActionRejected{CombatantID: v.CasterID, Intent: e.pendingIntent, Reasons: []event.Rejection{rejection}}}, false
		}
		slots[v.Level]--
		return []event.Event{event.SpellSlotConsumed{CasterID: v.CasterID, Level: v.Level, Remaining: slots[v.Level]}}, true
	case effect.ApplyCondition:
		if e.ctx.Conditions[v.TargetID] == nil {
			e.ctx.Conditions[v.TargetID] = make(map[string]int)
		}
		e.ctx.Conditions[v.TargetID][v.Condition] = v.Duration
		return []event.Event{event.ConditionApplied{SourceID: v.SourceID, TargetID: v.TargetID, Condition: v.Condition, Duration: v.Duration}}, true
	default:
		panic(fmt.Errorf("encounter engine: unknown effect kind %s", eff.Kind()))
	}
}

func (e *Engine) handleCheckDeaths() []event.Event {
	var events []event.Event
	allIDs := append(append([]string(nil), e.ctx.PartyIDs...), e.ctx.OppositionIDs...)
	for _, id := range allIDs {
		ref := e.ctx.Combatants[id]
		if ref.Entity.IsAlive() || e.ctx.AnnouncedDeaths[id] {
			continue
		}
		e.ctx.AnnouncedDeaths[id] = true
		events = append(events, event.EntityDied{CombatantID: id, RoundNumber: e.ctx.RoundNumber})
	}
	e.ctx.State = encstate.StateCheckMorale
	return events
}

// handleCheckMorale is a pass-through hook: if a side is at half strength
// or below and hasn't already rolled this round, it rolls a single 1d6
// morale check and emits the result, so a side that stays at or below half
// rolls again in each later round. Nothing acts on the roll —
// reacting to morale (fleeing, surrendering) is a later-phase mechanic
// this engine does not implement.
func (e *Engine) handleCheckMorale() []event.Event {
	var events []event.Event
	for _, side := range []encstate.Side{encstate.SideParty, encstate.SideOpposition} {
		if e.moraleRolled[side] {
			continue
		}
		total, living := sideCounts(e.ctx, side)
		if total == 0 || living == 0 || living*2 > total {
			continue
		}
		e.moraleRolled[side] = true
		roll := dice.Must(e.dice, "1d6")
		events = append(events, event.MoraleCheckRolled{Side: side, Roll: roll, RoundNumber: e.ctx.RoundNumber})
	}
	e.ctx.State = encstate.StateCheckVictory
	return events
}

func sideCounts(ctx *context.Context, side encstate.Side) (total, living int) {
	ids := ctx.PartyIDs
	if side == encstate.SideOpposition {
		ids = ctx.OppositionIDs
	}
	for _, id := range ids {
		total++
		if ctx.Combatants[id].Entity.IsAlive() {
			living++
		}
	}
	return total, living
}

func (e *Engine) handleCheckVictory() []event.Event {
	if len(e.ctx.Living(encstate.SideParty)) == 0 {
		return e.endEncounter(encstate.OutcomeOppositionVictory)
	}
	if len(e.ctx.Living(encstate.SideOpposition)) == 0 {
		return e.endEncounter(encstate.OutcomePartyVictory)
	}

	e.ctx.CurrentIndex++
	if e.ctx.CurrentIndex >= len(e.ctx.TurnQueue) {
		e.ctx.State = encstate.StateRoundStart
	} else {
		e.ctx.State = encstate.StateTurnStart
	}
	return nil
}

func (e *Engine) endEncounter(outcome encstate.Outcome) []event.Event {
	e.ctx.Outcome = outcome
	e.ctx.State = encstate.StateEnded
	return []event.Event{event.VictoryDetermined{Outcome: outcome, RoundNumber: e.ctx.RoundNumber}}
}

func toAction(in intent.Intent) action.Action {
	switch v := in.(type) {
	case intent.MeleeAttack:
		return action.MeleeAttack{In: v}
	case intent.RangedAttack:
		return action.RangedAttack{In: v}
	case intent.CastSpell:
		return action.CastSpell{In: v}
	case intent.Flee:
		return action.Flee{In: v}
	default:
		panic(fmt.Errorf("encounter engine: unknown intent kind %T", in))
	}
}
