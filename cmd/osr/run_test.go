package main

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrapps/osr-combat/internal/combat/dice"
)

type RunTestSuite struct {
	suite.Suite
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunTestSuite))
}

func (s *RunTestSuite) TearDownTest() {
	flagDiceSeq = ""
}

func (s *RunTestSuite) TestBuildDiceServiceDefaultsToProduction() {
	flagDiceSeq = ""
	svc, err := buildDiceService()
	s.Require().NoError(err)
	s.IsType(&dice.ProductionService{}, svc)
}

func (s *RunTestSuite) TestBuildDiceServiceParsesFixedSequence() {
	flagDiceSeq = "3, 5, 15"
	svc, err := buildDiceService()
	s.Require().NoError(err)
	fixed, ok := svc.(*dice.FixedService)
	s.Require().True(ok)
	s.Equal(3, fixed.Remaining())
	s.Equal(3, fixed.D20())
}

func (s *RunTestSuite) TestBuildDiceServiceRejectsInvalidValue() {
	flagDiceSeq = "3,bogus"
	_, err := buildDiceService()
	s.Error(err)
}

func (s *RunTestSuite) TestBuildRosterProducesThreePartyMembersAndTwoOpposition() {
	party, opposition := buildRoster()
	s.Len(party, 3)
	s.Len(opposition, 2)
	s.Equal("pc:Cedric", party[0].ID())
	s.Equal("monster:Goblin:0", opposition[0].ID())
}
