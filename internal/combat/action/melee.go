package action

import (
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/effect"
	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/intent"
)

// MeleeAttack resolves intent.MeleeAttack. A combatant with more than one
// attack per round rolls once per attack, each producing its own
// AttackRolled event and, on a hit, its own Damage effect.
type MeleeAttack struct {
	In intent.MeleeAttack
}

func (a MeleeAttack) Validate(ctx *context.Context) []event.Rejection {
	return validateActorAndTarget(ctx, a.In.ActorID, a.In.TargetID)
}

func (a MeleeAttack) Execute(ctx *context.Context, d dice.Service) Result {
	actor := ctx.Combatants[a.In.ActorID].Entity
	target := ctx.Combatants[a.In.TargetID].Entity

	var res Result
	needed := toHitThreshold(actor.THAC0(), target.ArmorClass())
	attacks := actor.AttackCount()
	if attacks < 1 {
		attacks = 1
	}

	for i := 0; i < attacks; i++ {
		raw := d.D20()
		modifier := actor.StrengthModifier()
		total := raw + modifier
		isCritical := raw == 20
		isHit := isCritical || (raw > 1 && total >= needed)

		res.Events = append(res.Events, event.AttackRolled{
			ActorID:    a.In.ActorID,
			TargetID:   a.In.TargetID,
			Roll:       raw,
			Total:      total,
			Needed:     needed,
			IsCritical: isCritical,
			IsHit:      isHit,
		})

		if !isHit {
			continue
		}

		base := dice.Must(d, actor.MeleeDamageDie())
		amount := scaleDamage(base+modifier, isCritical)

		res.Effects = append(res.Effects, effect.Damage{
			SourceID: a.In.ActorID,
			TargetID: a.In.TargetID,
			Amount:   amount,
		})
	}

	return res
}
