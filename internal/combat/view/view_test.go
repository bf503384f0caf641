package view_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrapps/osr-combat/internal/combat/combattest"
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/encstate"
	"github.com/osrapps/osr-combat/internal/combat/view"
)

type ViewTestSuite struct {
	suite.Suite
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(ViewTestSuite))
}

func (s *ViewTestSuite) TestBuildCopiesNonOverlappingState() {
	hero := combattest.NewBuilder("pc:Hero", "Hero", encstate.SideParty).WithHP(10).Build()
	goblin := combattest.NewBuilder("monster:Goblin:0", "Goblin", encstate.SideOpposition).WithHP(7).Build()
	ctx := context.New("enc-1", []context.Combatant{hero}, []context.Combatant{goblin})
	ctx.TurnQueue = []string{hero.ID(), goblin.ID()}

	v := view.Build(ctx, map[string]int{hero.ID(): 4, goblin.ID(): 2})
	s.Equal("enc-1", v.EncounterID)
	s.Equal(hero.ID(), v.CurrentCombatantID)
	s.Equal(4, v.Combatants[hero.ID()].Initiative)

	// Mutating the view must never reach the engine's context.
	cv := v.Combatants[hero.ID()]
	cv.HP = 0
	v.Combatants[hero.ID()] = cv
	s.Equal(10, ctx.Combatants[hero.ID()].Entity.HP())
}

func (s *ViewTestSuite) TestLivingOpponentsExcludesDeadAndSameSide() {
	hero := combattest.NewBuilder("pc:Hero", "Hero", encstate.SideParty).WithHP(10).Build()
	goblinA := combattest.NewBuilder("monster:Goblin:0", "Goblin", encstate.SideOpposition).WithHP(0).Build()
	goblinB := combattest.NewBuilder("monster:Goblin:1", "Goblin", encstate.SideOpposition).WithHP(5).Build()
	ctx := context.New("enc-1", []context.Combatant{hero}, []context.Combatant{goblinA, goblinB})
	ctx.TurnQueue = []string{hero.ID(), goblinA.ID(), goblinB.ID()}

	v := view.Build(ctx, nil)
	opponents := v.LivingOpponents(hero.ID())
	s.Equal([]string{goblinB.ID()}, opponents)
}
