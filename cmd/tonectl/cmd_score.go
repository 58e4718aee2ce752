package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/adaptive-tone/internal/scenario"
	"github.com/danielpatrickdp/adaptive-tone/internal/tone"
)

var (
	scoreScenario string
	scoreFixture  string
	scoreSteps    int
	scoreDB       string
	scoreJSON     bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a context scenario and advance the smoothed tone",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreScenario, "scenario", "high-stress",
		fmt.Sprintf("built-in scenario (%s)", strings.Join(scenario.BuiltinKeys(), ", ")))
	scoreCmd.Flags().StringVar(&scoreFixture, "fixture", "", "score scenarios from a YAML fixture instead")
	scoreCmd.Flags().IntVar(&scoreSteps, "steps", 1, "number of adaptation steps to run")
	scoreCmd.Flags().StringVar(&scoreDB, "db", "", "persist results to this SQLite database")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output as JSON")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(scoreDB, cfg, false)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}
	if scoreSteps < 1 {
		scoreSteps = 1
	}

	scenarios, err := resolveScenarios()
	if err != nil {
		return err
	}

	for key, sc := range scenarios {
		scorer := tone.NewScorer(cfg.Tone)
		for step := 0; step < scoreSteps; step++ {
			result := scorer.Score(sc.Input)
			if store != nil {
				if _, err := store.AppendTone(key, result); err != nil {
					return err
				}
			}
			if err := printScore(sc.Name, step, result); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveScenarios returns the scenarios to score, keyed for persistence.
func resolveScenarios() (map[string]scenario.Scenario, error) {
	if scoreFixture != "" {
		f, err := scenario.LoadFixture(scoreFixture)
		if err != nil {
			return nil, err
		}
		out := make(map[string]scenario.Scenario, len(f.Scenarios))
		for _, fs := range f.Scenarios {
			out[fs.Key] = fs.Scenario()
		}
		return out, nil
	}

	sc, err := scenario.Builtin(scoreScenario)
	if err != nil {
		return nil, err
	}
	return map[string]scenario.Scenario{scoreScenario: sc}, nil
}

func printScore(name string, step int, result tone.ScoreResult) error {
	if scoreJSON {
		return printJSON(struct {
			Scenario string            `json:"scenario"`
			Step     int               `json:"step"`
			Factors  tone.FactorScores `json:"factors"`
			Target   float64           `json:"target"`
			Current  float64           `json:"current"`
		}{name, step, result.Factors, result.Target, result.Current})
	}

	fmt.Printf("%s (step %d)\n", name, step)
	fmt.Printf("  heart=%.4f inflammation=%.4f social=%.4f recovery=%.4f\n",
		result.Factors.HeartRate, result.Factors.Inflammation,
		result.Factors.Social, result.Factors.Recovery)
	fmt.Printf("  target=%.4f current=%.4f\n", result.Target, result.Current)
	return nil
}
