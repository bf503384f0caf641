package effect_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrapps/osr-combat/internal/combat/effect"
)

type EffectTestSuite struct {
	suite.Suite
}

func TestEffectSuite(t *testing.T) {
	suite.Run(t, new(EffectTestSuite))
}

func (s *EffectTestSuite) TestKindDiscriminators() {
	s.Equal("damage", effect.Damage{}.Kind())
	s.Equal("consume_slot", effect.ConsumeSlot{}.Kind())
	s.Equal("apply_condition", effect.ApplyCondition{}.Kind())
}

func (s *EffectTestSuite) TestDamageCarriesSourceTargetAndAmount() {
	d := effect.Damage{SourceID: "pc:Hero", TargetID: "monster:Goblin:0", Amount: 4}
	var e effect.Effect = d
	s.Equal("damage", e.Kind())
	s.Equal(4, d.Amount)
}
