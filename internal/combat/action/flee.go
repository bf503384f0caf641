package action

import (
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/intent"
)

// Flee resolves intent.Flee. Validation only checks that the actor exists,
// is alive, and is the current combatant; Execute is a placeholder that
// produces no resolution events and no effects — withdrawal bookkeeping is
// a later-phase concern this spec's core does not implement.
type Flee struct {
	In intent.Flee
}

func (a Flee) Validate(ctx *context.Context) []event.Rejection {
	return validateActorAndTarget(ctx, a.In.ActorID, "")
}

func (a Flee) Execute(ctx *context.Context, d dice.Service) Result {
	return Result{}
}
