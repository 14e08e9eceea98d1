package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/nstehr/ctz-core/agent"
	"github.com/nstehr/ctz-core/config"
	"github.com/nstehr/ctz-core/engine"
	"github.com/nstehr/ctz-core/model"
)

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <turns.json>",
		Short: "Plan recorded turns offline and print every decision",
		Long: `Reads a JSON file holding one turn state or an array of them, runs the
engine over each turn in order and prints the scores behind every decision.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			turns, err := readTurns(args[0])
			if err != nil {
				return err
			}
			return runPlan(turns)
		},
	}
}

func readTurns(path string) ([]model.TurnState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read turns: %w", err)
	}
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var turns []model.TurnState
		if err := json.Unmarshal(data, &turns); err != nil {
			return nil, fmt.Errorf("unmarshal turns: %w", err)
		}
		return turns, nil
	}
	var ts model.TurnState
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("unmarshal turn: %w", err)
	}
	return []model.TurnState{ts}, nil
}

func runPlan(turns []model.TurnState) error {
	opts, err := config.PlannerOptions()
	if err != nil {
		return err
	}
	planner := engine.NewPlanner(opts...)
	a := agent.New(nil, planner)

	titleColor := color.New(color.FgCyan, color.Bold)
	eventColor := color.New(color.FgYellow)

	for _, ts := range turns {
		if ts.Team != "" {
			a.Team = ts.Team
		}
		cmds, events, err := a.Step(ts)
		if err != nil {
			return err
		}

		titleColor.Printf("\nTurn %d (%s)\n", cmds.Turn, a.Team)
		if len(events) > 0 {
			eventColor.Print(agent.FormatEvents(events))
		}
		printDecisions(planner.Decisions())
	}
	return nil
}

func printDecisions(decisions []engine.Decision) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Unit", "Action", "Detail", "Move", "Shoot", "Shield", "Pickup"}),
	)
	for _, d := range decisions {
		detail := ""
		switch d.Action {
		case engine.ActionMove:
			detail = fmt.Sprintf("%s -> %s", d.Direction, d.Destination)
		case engine.ActionShoot:
			detail = "enemy " + strconv.Itoa(d.Target)
		}
		table.Append([]string{
			strconv.Itoa(d.Unit),
			string(d.Action),
			detail,
			formatScore(d.Scores, engine.ActionMove),
			formatScore(d.Scores, engine.ActionShoot),
			formatScore(d.Scores, engine.ActionShield),
			formatScore(d.Scores, engine.ActionPickup),
		})
	}
	table.Render()
}

func formatScore(s engine.Scores, kind engine.ActionKind) string {
	v, ok := s.Get(kind)
	if !ok || math.IsInf(v, 0) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
