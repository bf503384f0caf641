package dice_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrapps/osr-combat/internal/combat/dice"
)

type DiceTestSuite struct {
	suite.Suite
}

func TestDiceSuite(t *testing.T) {
	suite.Run(t, new(DiceTestSuite))
}

func (s *DiceTestSuite) TestProductionServiceRollNotation() {
	svc := dice.NewProductionService()

	v, err := svc.Roll("1d6")
	s.Require().NoError(err)
	s.GreaterOrEqual(v, 1)
	s.LessOrEqual(v, 6)

	v, err = svc.Roll("2d4+1")
	s.Require().NoError(err)
	s.GreaterOrEqual(v, 3)
	s.LessOrEqual(v, 9)

	v, err = svc.Roll("5")
	s.Require().NoError(err)
	s.Equal(5, v)
}

func (s *DiceTestSuite) TestProductionServiceRejectsInvalidNotation() {
	svc := dice.NewProductionService()
	_, err := svc.Roll("d6x")
	s.Error(err)
}

func (s *DiceTestSuite) TestProductionServiceD20Range() {
	svc := dice.NewProductionService()
	for i := 0; i < 20; i++ {
		v := svc.D20()
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 20)
	}
}

func (s *DiceTestSuite) TestChoosePicksFromItems() {
	svc := dice.NewFixedService(3)
	items := []string{"a", "b", "c", "d"}
	got := dice.Choose(svc, items)
	s.Equal("c", got)
}

func (s *DiceTestSuite) TestMustPanicsOnError() {
	svc := dice.NewFixedService()
	s.Panics(func() {
		dice.Must(svc, "1d6")
	})
}

func (s *DiceTestSuite) TestMustReturnsValueOnSuccess() {
	svc := dice.NewFixedService(4)
	s.Equal(4, dice.Must(svc, "1d6"))
}
