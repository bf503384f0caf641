package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/intent"
)

// Formatter renders events as human-readable lines.
type Formatter struct{}

// NewFormatter constructs a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// displayName turns a canonical combatant ID into a baseline human string:
// pc:Hero becomes Hero, and monster:Goblin:0 becomes "Goblin #1".
func displayName(id string) string {
	parts := strings.Split(id, ":")
	switch {
	case len(parts) == 2 && parts[0] == "pc":
		return parts[1]
	case len(parts) == 3 && parts[0] == "monster":
		idx, err := strconv.Atoi(parts[2])
		if err != nil {
			return parts[1]
		}
		return fmt.Sprintf("%s #%d", parts[1], idx+1)
	default:
		return id
	}
}

// Format renders a single event.
func (f *Formatter) Format(e event.Event) string {
	switch ev := e.(type) {
	case event.EncounterStarted:
		return fmt.Sprintf("Encounter %s begins.", ev.EncounterID)
	case event.SurpriseRolled:
		return fmt.Sprintf("Surprise check: party rolled %d, opposition rolled %d.", ev.PartyRoll, ev.OppositionRoll)
	case event.RoundStarted:
		return fmt.Sprintf("-- Round %d --", ev.RoundNumber)
	case event.InitiativeRolled:
		return fmt.Sprintf("Initiative: party %d, opposition %d. %s wins.", ev.PartyRoll, ev.OppositionRoll, ev.Winner)
	case event.TurnQueueBuilt:
		names := make([]string, len(ev.CombatantIDs))
		for i, id := range ev.CombatantIDs {
			names[i] = displayName(id)
		}
		return "Turn order: " + strings.Join(names, ", ")
	case event.TurnStarted:
		return fmt.Sprintf("%s's turn.", displayName(ev.CombatantID))
	case event.TurnSkipped:
		return fmt.Sprintf("%s's turn is skipped (%s).", displayName(ev.CombatantID), ev.Reason)
	case event.NeedAction:
		return fmt.Sprintf("Waiting on an action from %s.", displayName(ev.CombatantID))
	case event.AttackRolled:
		if ev.IsCritical {
			return fmt.Sprintf("%s critically hits %s! (rolled %d)", displayName(ev.ActorID), displayName(ev.TargetID), ev.Roll)
		}
		if ev.IsHit {
			return fmt.Sprintf("%s hits %s (rolled %d, needed %d).", displayName(ev.ActorID), displayName(ev.TargetID), ev.Total, ev.Needed)
		}
		return fmt.Sprintf("%s misses %s (rolled %d, needed %d).", displayName(ev.ActorID), displayName(ev.TargetID), ev.Total, ev.Needed)
	case event.SpellCast:
		return fmt.Sprintf("%s casts %s.", displayName(ev.ActorID), ev.SpellName)
	case event.DamageApplied:
		return fmt.Sprintf("%s takes %d damage (%d HP remaining).", displayName(ev.TargetID), ev.Amount, ev.RemainingHP)
	case event.SpellSlotConsumed:
		return fmt.Sprintf("%s expends a level %d spell slot (%d remaining).", displayName(ev.CasterID), ev.Level, ev.Remaining)
	case event.ConditionApplied:
		return fmt.Sprintf("%s is now %s.", displayName(ev.TargetID), ev.Condition)
	case event.EntityDied:
		return fmt.Sprintf("%s dies.", displayName(ev.CombatantID))
	case event.MoraleCheckRolled:
		return fmt.Sprintf("%s morale check: rolled %d.", ev.Side, ev.Roll)
	case event.ForcedIntentQueued:
		return fmt.Sprintf("A forced action is queued for %s (%s).", displayName(ev.CombatantID), ev.Reason)
	case event.ForcedIntentApplied:
		return fmt.Sprintf("%s is forced to %s.", displayName(ev.CombatantID), describeIntent(ev.Intent))
	case event.VictoryDetermined:
		return fmt.Sprintf("The encounter ends: %s.", ev.Outcome)
	case event.ActionRejected:
		reasons := make([]string, len(ev.Reasons))
		for i, r := range ev.Reasons {
			reasons[i] = r.Reason
		}
		return fmt.Sprintf("%s's action was rejected: %s", displayName(ev.CombatantID), strings.Join(reasons, "; "))
	case event.EncounterFaulted:
		return fmt.Sprintf("The encounter faulted in state %s: %s", ev.State, ev.Reason)
	default:
		return fmt.Sprintf("%s", e.Kind())
	}
}

func describeIntent(in intent.Intent) string {
	switch v := in.(type) {
	case intent.MeleeAttack:
		return "attack " + displayName(v.TargetID)
	case intent.RangedAttack:
		return "attack " + displayName(v.TargetID) + " at range"
	case intent.CastSpell:
		return "cast " + v.SpellID
	case intent.Flee:
		return "flee"
	default:
		return in.Kind()
	}
}

// FormatBatch renders a batch of events, one per line, suppressing any
// NeedAction whose combatant has a ForcedIntentApplied anywhere in the same
// batch — the forced line already tells the reader what happened, so the
// still-waiting line would be misleading noise.
func (f *Formatter) FormatBatch(events []event.Event) string {
	forced := make(map[string]bool)
	for _, e := range events {
		if fi, ok := e.(event.ForcedIntentApplied); ok {
			forced[fi.CombatantID] = true
		}
	}

	var lines []string
	for _, e := range events {
		if na, ok := e.(event.NeedAction); ok && forced[na.CombatantID] {
			continue
		}
		lines = append(lines, f.Format(e))
	}
	return strings.Join(lines, "\n")
}
