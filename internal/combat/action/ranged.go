package action

import (
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/effect"
	"github.com/osrapps/osr-combat/internal/combat/encstate"
	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/intent"
)

// RangedAttack resolves intent.RangedAttack: dexterity governs the to-hit
// roll, and unlike melee, no ability modifier is added to damage.
// Opposition combatants have no ranged option in this spec, so a monster
// attempting one is rejected outright.
type RangedAttack struct {
	In intent.RangedAttack
}

func (a RangedAttack) Validate(ctx *context.Context) []event.Rejection {
	rejections := validateActorAndTarget(ctx, a.In.ActorID, a.In.TargetID)

	actorRef := ctx.Combatants[a.In.ActorID]
	if actorRef == nil {
		return rejections
	}
	if actorRef.Side == encstate.SideOpposition {
		rejections = append(rejections, event.Rejection{
			Code: event.RejectionMonsterActionNotSupported, Reason: "opposition combatants cannot make ranged attacks",
		})
		return rejections
	}
	if _, ok := actorRef.Entity.RangedDamageDie(); !ok {
		rejections = append(rejections, event.Rejection{
			Code: event.RejectionNoRangedWeapon, Reason: "actor " + a.In.ActorID + " has no ranged weapon",
		})
	}
	return rejections
}

func (a RangedAttack) Execute(ctx *context.Context, d dice.Service) Result {
	actor := ctx.Combatants[a.In.ActorID].Entity
	target := ctx.Combatants[a.In.TargetID].Entity

	needed := toHitThreshold(actor.THAC0(), target.ArmorClass())
	raw := d.D20()
	modifier := actor.DexterityModifier()
	total := raw + modifier
	isCritical := raw == 20
	isHit := isCritical || (raw > 1 && total >= needed)

	res := Result{
		Events: []event.Event{event.AttackRolled{
			ActorID:    a.In.ActorID,
			TargetID:   a.In.TargetID,
			Roll:       raw,
			Total:      total,
			Needed:     needed,
			IsCritical: isCritical,
			IsHit:      isHit,
		}},
	}

	if !isHit {
		return res
	}

	die, _ := actor.RangedDamageDie()
	base := dice.Must(d, die)
	amount := scaleDamage(base, isCritical)

	res.Effects = append(res.Effects, effect.Damage{
		SourceID: a.In.ActorID,
		TargetID: a.In.TargetID,
		Amount:   amount,
	})

	return res
}
