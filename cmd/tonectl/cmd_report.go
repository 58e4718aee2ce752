package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/adaptive-tone/internal/history"
	"github.com/danielpatrickdp/adaptive-tone/internal/validation"
)

var (
	reportDB   string
	reportJSON bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize checklist results (fresh run, or persisted history with --db)",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDB, "db", "", "summarize persisted history from this SQLite database")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportDB != "" {
		return reportFromStore()
	}
	return reportFreshRun()
}

// reportFreshRun validates all seven levels in memory and summarizes.
func reportFreshRun() error {
	v := validation.NewValidator()
	if _, err := v.ValidateAll(nil); err != nil {
		return err
	}
	report, err := v.Summarize()
	if err != nil {
		return err
	}

	if reportJSON {
		return printJSON(report)
	}

	fmt.Printf("%s\n", report.Framework)
	fmt.Printf("levels: %d total, %d passed, %d need refinement\n",
		report.TotalLevels, report.Passed, report.NeedsRefinement)
	fmt.Printf("overall confidence: %.3f (achieved: %v)\n", report.OverallConfidence, report.Achieved)
	fmt.Println("principles:")
	for _, p := range report.Principles {
		fmt.Printf("  %.2f  %s: %s\n", p.Strength, p.Name, p.Statement)
	}
	return nil
}

// reportFromStore summarizes the persisted validation history.
func reportFromStore() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(reportDB, cfg, true)
	if err != nil {
		return err
	}
	defer store.Close()

	standings, err := store.LevelStandings()
	if err != nil {
		return err
	}
	agg, err := store.ValidationAggregate()
	if err != nil {
		return err
	}
	trend, hasTone, err := store.ToneTrend(20)
	if err != nil {
		return err
	}

	if reportJSON {
		return printJSON(struct {
			Standings []history.LevelStanding `json:"standings"`
			Aggregate history.Aggregate       `json:"aggregate"`
			ToneTrend *float64                `json:"tone_trend,omitempty"`
		}{standings, agg, optional(trend, hasTone)})
	}

	fmt.Println("latest standing per level:")
	for _, st := range standings {
		fmt.Printf("  level %d: %s [%s] confidence %.3f\n",
			st.LevelNumber, st.FocusArea, st.Status, st.MeanConfidence)
	}
	fmt.Printf("recorded validations: %d (%d passed, %d need refinement), mean confidence %.3f\n",
		agg.TotalEntries, agg.Passed, agg.NeedsRefinement, agg.MeanConfidence)
	if hasTone {
		fmt.Printf("tone trend (last 20 targets): %.4f\n", trend)
	}
	return nil
}

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
