// Package action implements the four intents the encounter engine can
// execute: melee attack, ranged attack, cast spell, and flee. Each action
// separates Validate (read-only, returns every applicable rejection) from
// Execute (resolution only — it returns events and effects, it never
// mutates the context itself; ApplyEffects does that).
package action

import (
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/effect"
	"github.com/osrapps/osr-combat/internal/combat/event"
)

// Result is what Execute returns: the resolution events produced, and the
// mutation effects the engine should apply during ApplyEffects.
type Result struct {
	Events  []event.Event
	Effects []effect.Effect
}

// Action is the contract every intent-handling action implements.
type Action interface {
	// Validate returns every rejection that applies; an empty slice means
	// the intent may proceed to Execute.
	Validate(ctx *context.Context) []event.Rejection
	// Execute resolves the action against the dice service and returns
	// the events/effects it produced. It assumes Validate returned no
	// rejections.
	Execute(ctx *context.Context, dice dice.Service) Result
}

// validateActorAndTarget is the shared precondition every targeted action
// checks: the actor must exist and be the current, living combatant, and
// the target (if any) must exist, be alive, and be on the opposing side.
func validateActorAndTarget(ctx *context.Context, actorID, targetID string) []event.Rejection {
	var rejections []event.Rejection

	actor := ctx.Combatants[actorID]
	if actor == nil {
		rejections = append(rejections, event.Rejection{
			Code: event.RejectionInvalidActor, Reason: "actor " + actorID + " is not in this encounter",
		})
		return rejections
	}
	if !actor.IsAlive() {
		rejections = append(rejections, event.Rejection{
			Code: event.RejectionActorDead, Reason: "actor " + actorID + " is dead or has fled",
		})
	}
	if ctx.CurrentCombatantID() != actorID {
		rejections = append(rejections, event.Rejection{
			Code: event.RejectionActorNotCurrent, Reason: "it is not " + actorID + "'s turn",
		})
	}

	if targetID == "" {
		return rejections
	}

	target := ctx.Combatants[targetID]
	if target == nil {
		rejections = append(rejections, event.Rejection{
			Code: event.RejectionInvalidTarget, Reason: "target " + targetID + " is not in this encounter",
		})
		return rejections
	}
	if !target.IsAlive() {
		rejections = append(rejections, event.Rejection{
			Code: event.RejectionTargetDead, Reason: "target " + targetID + " is dead or has fled",
		})
	}
	if actor.Side == target.Side {
		rejections = append(rejections, event.Rejection{
			Code: event.RejectionTargetNotOpponent, Reason: "target " + targetID + " is not an opponent",
		})
	}

	return rejections
}

// toHitThreshold is the roll needed to hit: THAC0 minus the defender's AC,
// floored at 2 since a natural 1 always misses regardless of the
// arithmetic result.
func toHitThreshold(thac0, targetAC int) int {
	needed := thac0 - targetAC
	if needed < 2 {
		needed = 2
	}
	return needed
}

// scaleDamage applies the critical-hit multiplier (x1.5, rounded down) to
// a base damage roll; every hit, critical or not, is floored at 1 damage.
func scaleDamage(base int, isCritical bool) int {
	amount := base
	if isCritical {
		amount = (base * 3) / 2
	}
	if amount < 1 {
		amount = 1
	}
	return amount
}
