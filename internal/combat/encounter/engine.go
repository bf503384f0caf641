// Package encounter implements the state machine described by the rest of
// the combat packages: it owns a single encounter's mutable context and
// drives it, one state transition per call, through Init, RoundStart,
// TurnStart, AwaitIntent, ValidateIntent, ExecuteAction, ApplyEffects,
// CheckDeaths, CheckMorale, CheckVictory, and Ended.
package encounter

import (
	"log/slog"

	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/effect"
	"github.com/osrapps/osr-combat/internal/combat/encstate"
	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/intent"
	"github.com/osrapps/osr-combat/internal/combat/tactical"
	"github.com/osrapps/osr-combat/internal/combat/view"
	"github.com/osrapps/osr-combat/internal/errors"
	"github.com/osrapps/osr-combat/internal/pkg/idgen"
)

// Config holds the dependencies needed to construct an Engine.
type Config struct {
	EncounterID string
	Party       []context.Combatant
	Opposition  []context.Combatant
	Dice        dice.Service

	// OppositionProvider decides intents for opposition combatants.
	// Defaults to tactical.RandomProvider when nil.
	OppositionProvider tactical.Provider
	// PartyProvider, if non-nil, decides intents for party combatants
	// automatically (auto-resolve). If nil, party turns wait at
	// AwaitIntent for a caller-supplied intent.
	PartyProvider tactical.Provider

	IDGenerator idgen.Generator
}

// Validate checks that the config can build a usable Engine.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	if len(c.Party) == 0 {
		vb.RequiredField("Party")
	}
	if len(c.Opposition) == 0 {
		vb.RequiredField("Opposition")
	}
	return vb.Build()
}

// Engine drives one encounter's state machine.
type Engine struct {
	ctx   *context.Context
	dice  dice.Service
	party tactical.Provider
	oppo  tactical.Provider

	pendingIntent   intent.Intent
	pendingIsForced bool
	pendingEffects  []effect.Effect

	initiative   map[string]int
	moraleRolled map[encstate.Side]bool
}

// New constructs an Engine ready to Step from StateInit.
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid encounter config")
	}

	encounterID := cfg.EncounterID
	if encounterID == "" {
		gen := cfg.IDGenerator
		if gen == nil {
			gen = idgen.NewPrefixed("enc")
		}
		encounterID = gen.Generate()
	}

	oppo := cfg.OppositionProvider
	if oppo == nil {
		oppo = tactical.NewRandomProvider(cfg.Dice)
	}

	return &Engine{
		ctx:          context.New(encounterID, cfg.Party, cfg.Opposition),
		dice:         cfg.Dice,
		party:        cfg.PartyProvider,
		oppo:         oppo,
		initiative:   make(map[string]int),
		moraleRolled: make(map[encstate.Side]bool),
	}, nil
}

// StepResult is returned by every Step/StepUntilDecision transition.
type StepResult struct {
	Events         []event.Event
	State          encstate.State
	AwaitingIntent bool
	Done           bool
}

// GetView returns an immutable snapshot of the current encounter state.
func (e *Engine) GetView() view.CombatView {
	return view.Build(e.ctx, e.initiative)
}

// QueueForcedIntent queues a single-use intent override for combatantID's
// next TurnStart. It is an out-of-band control operation, not a state
// transition, so it is synchronous and does not go through Step.
func (e *Engine) QueueForcedIntent(combatantID string, in intent.Intent, reason string) ([]event.Event, error) {
	if e.ctx.State == encstate.StateEnded {
		return nil, errors.FailedPrecondition("cannot queue a forced intent after the encounter has ended")
	}
	if _, ok := e.ctx.Combatants[combatantID]; !ok {
		return nil, errors.InvalidArgumentf("combatant %s is not in this encounter", combatantID)
	}

	e.ctx.ForcedIntents[combatantID] = context.ForcedIntent{Intent: in, Reason: reason}
	return []event.Event{event.ForcedIntentQueued{CombatantID: combatantID, Reason: reason}}, nil
}

// Step advances the encounter by exactly one state transition. in is only
// consumed when the engine is currently at StateAwaitIntent and a human
// decision (rather than a provider) is being supplied; it is ignored
// otherwise.
func (e *Engine) Step(in intent.Intent) (result StepResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("encounter engine faulted", "encounter_id", e.ctx.EncounterID, "state", e.ctx.State, "recovered", r)
			reason := "internal error"
			if err, ok := r.(error); ok {
				reason = err.Error()
			}
			fault := event.EncounterFaulted{State: e.ctx.State, Reason: reason}
			e.ctx.State = encstate.StateEnded
			e.ctx.Outcome = encstate.OutcomeFaulted
			result = StepResult{Events: []event.Event{fault}, State: e.ctx.State, Done: true}
		}
	}()

	events, awaiting := e.transition(in)
	return StepResult{
		Events:         events,
		State:          e.ctx.State,
		AwaitingIntent: awaiting,
		Done:           e.ctx.State == encstate.StateEnded,
	}
}

// StepUntilDecision repeatedly transitions the encounter — feeding in the
// first call only — until it either needs a fresh decision, ends, or
// exhausts maxSteps, which is itself treated as an engine fault per the
// error handling design: a state machine that cannot reach a decision or
// an end within its budget has a bug, not a legitimate long encounter.
func (e *Engine) StepUntilDecision(in intent.Intent, maxSteps int) []StepResult {
	var results []StepResult

	for i := 0; i < maxSteps; i++ {
		var step intent.Intent
		if i == 0 {
			step = in
		}
		r := e.Step(step)
		results = append(results, r)
		if r.AwaitingIntent || r.Done {
			return results
		}
	}

	fault := event.EncounterFaulted{State: e.ctx.State, Reason: "step_until_decision exceeded max_steps without reaching a decision or an end"}
	e.ctx.State = encstate.StateEnded
	e.ctx.Outcome = encstate.OutcomeFaulted
	results = append(results, StepResult{Events: []event.Event{fault}, State: e.ctx.State, Done: true})
	return results
}
