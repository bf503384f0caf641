// Package tactical defines how a non-human actor (an opposition monster,
// or a party member under auto-resolve) picks its intent. Providers see
// only the immutable view, never the engine's mutable context, so a
// provider implementation has no way to mutate encounter state outside
// the intent it returns.
package tactical

import (
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/intent"
	"github.com/osrapps/osr-combat/internal/combat/view"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=tacticalmock github.com/osrapps/osr-combat/internal/combat/tactical Provider

// Provider chooses the intent for actorID given the current view.
type Provider interface {
	ChooseIntent(v view.CombatView, actorID string) intent.Intent
}

// RandomProvider picks uniformly among the actor's living opponents and
// always attacks with melee. It is the default provider for opposition
// monsters and for auto-resolved party turns.
type RandomProvider struct {
	Dice dice.Service
}

// NewRandomProvider constructs a RandomProvider backed by the given dice
// service.
func NewRandomProvider(d dice.Service) *RandomProvider {
	return &RandomProvider{Dice: d}
}

func (p *RandomProvider) ChooseIntent(v view.CombatView, actorID string) intent.Intent {
	opponents := v.LivingOpponents(actorID)
	if len(opponents) == 0 {
		return intent.Flee{ActorID: actorID}
	}
	target := dice.Choose(p.Dice, opponents)
	return intent.MeleeAttack{ActorID: actorID, TargetID: target}
}
