package format_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrapps/osr-combat/internal/combat/encstate"
	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/format"
	"github.com/osrapps/osr-combat/internal/combat/intent"
)

type FormatTestSuite struct {
	suite.Suite
}

func TestFormatSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}

func (s *FormatTestSuite) TestSerializerAddsKindAndFlattensNestedIntent() {
	ser := format.NewSerializer()
	e := event.ActionRejected{
		CombatantID: "pc:Hero",
		Intent:      intent.MeleeAttack{ActorID: "pc:Hero", TargetID: "monster:Goblin:0"},
		Reasons:     []event.Rejection{{Code: event.RejectionTargetDead, Reason: "already dead"}},
	}
	m := ser.ToMap(e)
	s.Equal("action_rejected", m["kind"])

	nestedIntent, ok := m["Intent"].(map[string]any)
	s.Require().True(ok)
	s.Equal("monster:Goblin:0", nestedIntent["TargetID"])

	reasons, ok := m["Reasons"].([]any)
	s.Require().True(ok)
	s.Require().Len(reasons, 1)
}

func (s *FormatTestSuite) TestFormatterRendersDisplayNames() {
	f := format.NewFormatter()
	line := f.Format(event.AttackRolled{
		ActorID: "pc:Hero", TargetID: "monster:Goblin:1",
		Roll: 15, Total: 15, Needed: 13, IsHit: true,
	})
	s.Equal("Hero hits Goblin #2 (rolled 15, needed 13).", line)
}

func (s *FormatTestSuite) TestFormatBatchSuppressesNeedActionForForcedCombatant() {
	f := format.NewFormatter()
	events := []event.Event{
		event.ForcedIntentApplied{CombatantID: "pc:Hero", Intent: intent.Flee{ActorID: "pc:Hero"}, Reason: "scripted"},
		event.NeedAction{CombatantID: "pc:Hero"},
		event.NeedAction{CombatantID: "monster:Goblin:0"},
	}
	out := f.FormatBatch(events)

	s.Contains(out, "Hero is forced to flee")
	s.NotContains(out, "Waiting on an action from Hero")
	s.Contains(out, "Waiting on an action from Goblin #1")
}

func (s *FormatTestSuite) TestFormatterRendersMoraleAndSide() {
	f := format.NewFormatter()
	line := f.Format(event.MoraleCheckRolled{Side: encstate.SideOpposition, Roll: 3})
	s.Equal("opposition morale check: rolled 3.", line)
}
