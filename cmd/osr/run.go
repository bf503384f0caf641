package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osrapps/osr-combat/internal/combat/combattest"
	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/encounter"
	"github.com/osrapps/osr-combat/internal/combat/encstate"
	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/format"
	"github.com/osrapps/osr-combat/internal/combat/tactical"
)

var (
	flagDiceSeq  string
	flagAutoBoth bool
	flagMaxSteps int
	flagJSON     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted demo encounter: two fighters and a magic-user against a pair of goblins",
	RunE:  runEncounter,
}

func init() {
	runCmd.Flags().StringVar(&flagDiceSeq, "dice", "", "comma-separated fixed dice sequence for a reproducible run; omitted means true randomness")
	runCmd.Flags().BoolVar(&flagAutoBoth, "auto", false, "auto-resolve the party's turns too; without it the run stops at the first party decision")
	runCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 200, "transition budget passed to StepUntilDecision on each call")
	runCmd.Flags().BoolVar(&flagJSON, "json", false, "emit each event batch as JSON instead of formatted text")
}

func buildDiceService() (dice.Service, error) {
	if flagDiceSeq == "" {
		return dice.NewProductionService(), nil
	}
	parts := strings.Split(flagDiceSeq, ",")
	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid --dice value %q: %w", p, err)
		}
		values[i] = v
	}
	return dice.NewFixedService(values...), nil
}

func buildRoster() ([]context.Combatant, []context.Combatant) {
	fighter1 := combattest.NewBuilder("pc:Cedric", "Cedric", encstate.SideParty).
		WithHP(12).WithArmorClass(5).WithTHAC0(18).WithMeleeDamageDie("1d8").Build()
	fighter2 := combattest.NewBuilder("pc:Branwen", "Branwen", encstate.SideParty).
		WithHP(10).WithArmorClass(6).WithTHAC0(19).WithMeleeDamageDie("1d6").
		WithRangedDamageDie("1d6").Build()
	wizard := combattest.NewBuilder("pc:Oswin", "Oswin", encstate.SideParty).
		WithHP(4).WithArmorClass(9).WithTHAC0(20).WithMeleeDamageDie("1d4").
		WithClass("magic_user").WithSpellSlots(1, 1).Build()

	goblin1 := combattest.NewBuilder("monster:Goblin:0", "Goblin", encstate.SideOpposition).
		WithHP(5).WithArmorClass(6).WithTHAC0(19).WithMeleeDamageDie("1d6").Build()
	goblin2 := combattest.NewBuilder("monster:Goblin:1", "Goblin", encstate.SideOpposition).
		WithHP(5).WithArmorClass(6).WithTHAC0(19).WithMeleeDamageDie("1d6").Build()

	party := []context.Combatant{fighter1, fighter2, wizard}
	opposition := []context.Combatant{goblin1, goblin2}
	return party, opposition
}

func runEncounter(cmd *cobra.Command, _ []string) error {
	svc, err := buildDiceService()
	if err != nil {
		return err
	}
	party, opposition := buildRoster()

	cfg := &encounter.Config{
		Party:      party,
		Opposition: opposition,
		Dice:       svc,
	}
	if flagAutoBoth {
		cfg.PartyProvider = tactical.NewRandomProvider(svc)
	}

	eng, err := encounter.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to start encounter: %w", err)
	}

	formatter := format.NewFormatter()
	serializer := format.NewSerializer()

	results := eng.StepUntilDecision(nil, flagMaxSteps)
	for _, r := range results {
		printBatch(cmd, formatter, serializer, r.Events)
	}

	if last := results[len(results)-1]; last.AwaitingIntent {
		// No human driver is attached to stdin in this demo: a non-auto
		// party simply stops here and reports the state it is waiting in.
		fmt.Fprintln(cmd.OutOrStdout(), "Encounter is awaiting a party decision; rerun with --auto to auto-resolve it.")
	}

	return nil
}

func printBatch(cmd *cobra.Command, f *format.Formatter, s *format.Serializer, events []event.Event) {
	out := cmd.OutOrStdout()
	if flagJSON {
		for _, m := range s.ToMapBatch(events) {
			data, err := json.Marshal(m)
			if err != nil {
				fmt.Fprintf(out, "{\"error\": %q}\n", err.Error())
				continue
			}
			fmt.Fprintln(out, string(data))
		}
		return
	}
	if line := f.FormatBatch(events); line != "" {
		fmt.Fprintln(out, line)
	}
}
