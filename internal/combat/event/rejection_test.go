package event_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrapps/osr-combat/internal/combat/event"
)

type RejectionTestSuite struct {
	suite.Suite
}

func TestRejectionSuite(t *testing.T) {
	suite.Run(t, new(RejectionTestSuite))
}

func (s *RejectionTestSuite) TestActionChoiceLabel() {
	cases := []struct {
		choice event.ActionChoice
		want   string
	}{
		{event.ActionChoice{UIKey: "melee_attack", UIArgs: map[string]string{"target_name": "Goblin"}}, "Attack Goblin (melee)"},
		{event.ActionChoice{UIKey: "ranged_attack", UIArgs: map[string]string{"target_name": "Goblin"}}, "Attack Goblin (ranged)"},
		{event.ActionChoice{UIKey: "cast_spell", UIArgs: map[string]string{"spell_name": "Magic Missile"}}, "Cast Magic Missile"},
		{event.ActionChoice{UIKey: "flee"}, "Flee the encounter"},
		{event.ActionChoice{UIKey: "mystery"}, "mystery"},
	}
	for _, tc := range cases {
		s.Equal(tc.want, tc.choice.Label())
	}
}
