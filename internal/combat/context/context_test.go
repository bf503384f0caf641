package context_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrapps/osr-combat/internal/combat/combattest"
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/encstate"
)

type ContextTestSuite struct {
	suite.Suite
}

func TestContextSuite(t *testing.T) {
	suite.Run(t, new(ContextTestSuite))
}

func (s *ContextTestSuite) TestNewAssignsCanonicalSides() {
	hero := combattest.NewBuilder("pc:Hero", "Hero", encstate.SideParty).Build()
	goblin := combattest.NewBuilder("monster:Goblin:0", "Goblin", encstate.SideOpposition).Build()
	ctx := context.New("enc-1", []context.Combatant{hero}, []context.Combatant{goblin})

	s.Equal(encstate.SideParty, ctx.Combatants[hero.ID()].Side)
	s.Equal(encstate.SideOpposition, ctx.Combatants[goblin.ID()].Side)
	s.Equal([]string{hero.ID()}, ctx.PartyIDs)
	s.Equal([]string{goblin.ID()}, ctx.OppositionIDs)
}

func (s *ContextTestSuite) TestNewInitializesSpellSlotsOnlyForCasters() {
	wiz := combattest.NewBuilder("pc:Wiz", "Wiz", encstate.SideParty).WithClass("magic_user").WithSpellSlots(1, 2).Build()
	fighter := combattest.NewBuilder("pc:Fighter", "Fighter", encstate.SideParty).Build()
	goblin := combattest.NewBuilder("monster:Goblin:0", "Goblin", encstate.SideOpposition).Build()
	ctx := context.New("enc-1", []context.Combatant{wiz, fighter}, []context.Combatant{goblin})

	s.Equal(2, ctx.SpellSlots[wiz.ID()][1])
	s.NotContains(ctx.SpellSlots, fighter.ID())
}

func (s *ContextTestSuite) TestLivingExcludesDeadAndFled() {
	a := combattest.NewBuilder("pc:A", "A", encstate.SideParty).WithHP(0).Build()
	b := combattest.NewBuilder("pc:B", "B", encstate.SideParty).WithHP(5).Build()
	goblin := combattest.NewBuilder("monster:Goblin:0", "Goblin", encstate.SideOpposition).Build()
	ctx := context.New("enc-1", []context.Combatant{a, b}, []context.Combatant{goblin})

	s.Equal([]string{b.ID()}, ctx.Living(encstate.SideParty))

	ctx.Combatants[b.ID()].HasFled = true
	s.Empty(ctx.Living(encstate.SideParty))
}

func (s *ContextTestSuite) TestCanonicalIDHelpers() {
	s.Equal("pc:Hero", context.NewPCID("Hero"))
	s.Equal("monster:Goblin:1", context.NewMonsterID("Goblin", 1))
}

func (s *ContextTestSuite) TestCurrentCombatantIDOutOfRange() {
	hero := combattest.NewBuilder("pc:Hero", "Hero", encstate.SideParty).Build()
	goblin := combattest.NewBuilder("monster:Goblin:0", "Goblin", encstate.SideOpposition).Build()
	ctx := context.New("enc-1", []context.Combatant{hero}, []context.Combatant{goblin})
	s.Empty(ctx.CurrentCombatantID())

	ctx.TurnQueue = []string{hero.ID()}
	ctx.CurrentIndex = 0
	s.Equal(hero.ID(), ctx.CurrentCombatantID())
}
