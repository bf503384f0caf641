// Package event defines the totally-ordered catalog of facts the encounter
// engine emits on every step. Events are immutable once constructed; the
// engine never mutates an event after appending it to a step's batch.
package event

import (
	"github.com/osrapps/osr-combat/internal/combat/encstate"
	"github.com/osrapps/osr-combat/internal/combat/intent"
)

// Event is a tagged union; Kind is the stable discriminator used by the
// serializer, formatter, and tests.
type Event interface {
	Kind() string
}

// EncounterStarted is the first event of every encounter.
type EncounterStarted struct {
	EncounterID   string
	PartyIDs      []string
	OppositionIDs []string
}

func (EncounterStarted) Kind() string { return "encounter_started" }

// SurpriseRolled records the single pre-combat surprise check.
type SurpriseRolled struct {
	PartyRoll          int
	OppositionRoll     int
	PartySurprised     bool
	OppositionSurprised bool
}

func (SurpriseRolled) Kind() string { return "surprise_rolled" }

// RoundStarted marks the beginning of a new round.
type RoundStarted struct {
	RoundNumber int
}

func (RoundStarted) Kind() string { return "round_started" }

// InitiativeRolled records the single 1d6 roll per side for the round.
type InitiativeRolled struct {
	RoundNumber    int
	PartyRoll      int
	OppositionRoll int
	Winner         encstate.Side
}

func (InitiativeRolled) Kind() string { return "initiative_rolled" }

// TurnQueueBuilt records the resolved turn order for the round.
type TurnQueueBuilt struct {
	RoundNumber int
	CombatantIDs []string
}

func (TurnQueueBuilt) Kind() string { return "turn_queue_built" }

// TurnStarted marks a combatant becoming the current actor.
type TurnStarted struct {
	RoundNumber int
	CombatantID string
}

func (TurnStarted) Kind() string { return "turn_started" }

// TurnSkipped records a combatant's turn being skipped (the combatant is
// dead or has fled) without reaching AwaitIntent.
type TurnSkipped struct {
	RoundNumber int
	CombatantID string
	Reason      string
}

func (TurnSkipped) Kind() string { return "turn_skipped" }

// NeedAction is emitted when the engine is waiting on an intent for the
// current combatant.
type NeedAction struct {
	RoundNumber int
	CombatantID string
	Choices     []ActionChoice
}

func (NeedAction) Kind() string { return "need_action" }

// AttackRolled records a single to-hit roll (one per attack, so a monster
// with multiple attacks per round emits one of these per attack). Total is
// the raw roll plus the actor's ability modifier — what was actually
// compared against Needed.
type AttackRolled struct {
	ActorID    string
	TargetID   string
	Roll       int
	Total      int
	Needed     int
	IsCritical bool
	IsHit      bool
}

func (AttackRolled) Kind() string { return "attack_rolled" }

// SpellCast records a successful spell-cast resolution.
type SpellCast struct {
	ActorID   string
	SpellID   string
	SpellName string
	TargetIDs []string
}

func (SpellCast) Kind() string { return "spell_cast" }

// DamageApplied records hit points actually removed from a target.
type DamageApplied struct {
	SourceID string
	TargetID string
	Amount   int
	RemainingHP int
}

func (DamageApplied) Kind() string { return "damage_applied" }

// SpellSlotConsumed records a caster's slot table decrementing.
type SpellSlotConsumed struct {
	CasterID string
	Level    int
	Remaining int
}

func (SpellSlotConsumed) Kind() string { return "spell_slot_consumed" }

// ConditionApplied records a condition being added to a target.
type ConditionApplied struct {
	SourceID  string
	TargetID  string
	Condition string
	Duration  int
}

func (ConditionApplied) Kind() string { return "condition_applied" }

// EntityDied records a combatant reaching 0 HP.
type EntityDied struct {
	CombatantID string
	RoundNumber int
}

func (EntityDied) Kind() string { return "entity_died" }

// MoraleCheckRolled is the pass-through morale hook: the spec's core does
// not implement full morale mechanics, but the engine still emits the roll
// so a later layer can react to it.
type MoraleCheckRolled struct {
	Side        encstate.Side
	Roll        int
	RoundNumber int
}

func (MoraleCheckRolled) Kind() string { return "morale_check_rolled" }

// ForcedIntentQueued records a caller queuing a single-use forced intent
// for a combatant's next turn.
type ForcedIntentQueued struct {
	CombatantID string
	Reason      string
}

func (ForcedIntentQueued) Kind() string { return "forced_intent_queued" }

// ForcedIntentApplied records a queued forced intent being consumed at
// TurnStart instead of reaching AwaitIntent.
type ForcedIntentApplied struct {
	CombatantID string
	Intent      intent.Intent
	Reason      string
}

func (ForcedIntentApplied) Kind() string { return "forced_intent_applied" }

// VictoryDetermined ends the encounter with a definite outcome.
type VictoryDetermined struct {
	Outcome     encstate.Outcome
	RoundNumber int
}

func (VictoryDetermined) Kind() string { return "victory_determined" }

// ActionRejected records every applicable rejection reason for an intent
// that failed validation; Reasons is never empty.
type ActionRejected struct {
	CombatantID string
	Intent      intent.Intent
	Reasons     []Rejection
}

func (ActionRejected) Kind() string { return "action_rejected" }

// EncounterFaulted is emitted exactly once, as the last event of an
// encounter, when an unexpected condition forces the engine to stop
// mutating state.
type EncounterFaulted struct {
	State  encstate.State
	Reason string
}

func (EncounterFaulted) Kind() string { return "encounter_faulted" }
