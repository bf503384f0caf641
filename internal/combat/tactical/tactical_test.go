package tactical_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrapps/osr-combat/internal/combat/combattest"
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/encstate"
	"github.com/osrapps/osr-combat/internal/combat/intent"
	"github.com/osrapps/osr-combat/internal/combat/tactical"
	"github.com/osrapps/osr-combat/internal/combat/view"
)

type TacticalTestSuite struct {
	suite.Suite
}

func TestTacticalSuite(t *testing.T) {
	suite.Run(t, new(TacticalTestSuite))
}

func (s *TacticalTestSuite) TestRandomProviderChoosesLivingOpponent() {
	goblin := combattest.NewBuilder("monster:Goblin:0", "Goblin", encstate.SideOpposition).Build()
	heroA := combattest.NewBuilder("pc:A", "A", encstate.SideParty).WithHP(0).Build()
	heroB := combattest.NewBuilder("pc:B", "B", encstate.SideParty).WithHP(10).Build()
	ctx := context.New("enc-1", []context.Combatant{heroA, heroB}, []context.Combatant{goblin})
	ctx.TurnQueue = []string{goblin.ID(), heroA.ID(), heroB.ID()}
	v := view.Build(ctx, nil)

	svc := dice.NewFixedService(1)
	p := tactical.NewRandomProvider(svc)
	chosen := p.ChooseIntent(v, goblin.ID())

	melee, ok := chosen.(intent.MeleeAttack)
	s.Require().True(ok)
	s.Equal(heroB.ID(), melee.TargetID)
}

func (s *TacticalTestSuite) TestRandomProviderFleesWithNoOpponentsLeft() {
	goblin := combattest.NewBuilder("monster:Goblin:0", "Goblin", encstate.SideOpposition).Build()
	hero := combattest.NewBuilder("pc:A", "A", encstate.SideParty).WithHP(0).Build()
	ctx := context.New("enc-1", []context.Combatant{hero}, []context.Combatant{goblin})
	ctx.TurnQueue = []string{goblin.ID(), hero.ID()}
	v := view.Build(ctx, nil)

	p := tactical.NewRandomProvider(dice.NewFixedService())
	chosen := p.ChooseIntent(v, goblin.ID())

	_, ok := chosen.(intent.Flee)
	s.True(ok)
}
