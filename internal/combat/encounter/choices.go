package encounter

import (
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/intent"
	"github.com/osrapps/osr-combat/internal/combat/spell"
)

// buildChoices enumerates the intents actorID could reasonably attempt
// right now, for presentation to a human decision-maker. It is advisory:
// ValidateIntent is still the source of truth, so a stale or hand-built
// intent that isn't in this list can still be rejected or accepted on its
// own merits.
func buildChoices(ctx *context.Context, actorID string) []event.ActionChoice {
	actor := ctx.Combatants[actorID]
	if actor == nil {
		return nil
	}

	opponents := ctx.Living(actor.Side.Opponent())
	var choices []event.ActionChoice

	for _, targetID := range opponents {
		target := ctx.Combatants[targetID].Entity
		choices = append(choices, event.ActionChoice{
			UIKey:  "melee_attack",
			UIArgs: map[string]string{"target_id": targetID, "target_name": target.Name()},
			Intent: intent.MeleeAttack{ActorID: actorID, TargetID: targetID},
		})
	}

	if _, ok := actor.Entity.RangedDamageDie(); ok {
		for _, targetID := range opponents {
			target := ctx.Combatants[targetID].Entity
			choices = append(choices, event.ActionChoice{
				UIKey:  "ranged_attack",
				UIArgs: map[string]string{"target_id": targetID, "target_name": target.Name()},
				Intent: intent.RangedAttack{ActorID: actorID, TargetID: targetID},
			})
		}
	}

	if caster, ok := actor.Entity.(context.SpellcasterCombatant); ok {
		for level, remaining := range ctx.SpellSlots[actorID] {
			if remaining <= 0 {
				continue
			}
			for _, def := range spellsForLevelAndClass(level, caster.ClassID()) {
				targetIDs := firstN(opponents, def.NumTargets)
				if len(targetIDs) != def.NumTargets {
					continue
				}
				choices = append(choices, event.ActionChoice{
					UIKey:  "cast_spell",
					UIArgs: map[string]string{"spell_id": def.SpellID, "spell_name": def.Name},
					Intent: intent.NewCastSpell(actorID, def.SpellID, level, targetIDs),
				})
			}
		}
	}

	choices = append(choices, event.ActionChoice{
		UIKey:  "flee",
		UIArgs: map[string]string{},
		Intent: intent.Flee{ActorID: actorID},
	})

	return choices
}

func firstN(ids []string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	if len(ids) < n {
		return nil
	}
	return append([]string(nil), ids[:n]...)
}

// spellsForLevelAndClass is a small fixed lookup since the catalog is
// tiny; it avoids iterating a map keyed by ID to find matches by level
// and class in every other caller.
func spellsForLevelAndClass(level int, classID string) []spell.Definition {
	var out []spell.Definition
	for _, id := range []string{"magic_missile", "sleep", "hold_person", "cure_light_wounds", "shield"} {
		def, ok := spell.Get(id)
		if !ok || def.Level != level {
			continue
		}
		for _, usable := range def.UsableBy {
			if usable == classID {
				out = append(out, def)
				break
			}
		}
	}
	return out
}
