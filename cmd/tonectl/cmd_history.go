package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/adaptive-tone/internal/history"
)

var (
	historyDB   string
	historyLast int
	historyJSON bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect persisted tone and validation history",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "", "path to the SQLite database (default from config)")
	historyCmd.Flags().IntVar(&historyLast, "last", 20, "show N most recent entries per log")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(historyDB, cfg, true)
	if err != nil {
		return err
	}
	defer store.Close()

	toneEntries, err := store.RecentTone(historyLast)
	if err != nil {
		return err
	}
	validations, err := store.RecentValidations(historyLast)
	if err != nil {
		return err
	}
	decisions, err := store.RecentDecisions(historyLast)
	if err != nil {
		return err
	}

	if historyJSON {
		return printJSON(struct {
			Tone        []history.ToneEntry       `json:"tone"`
			Validations []history.ValidationEntry `json:"validations"`
			Decisions   []history.DecisionEntry   `json:"decisions"`
		}{toneEntries, validations, decisions})
	}

	fmt.Printf("tone log (%d entries):\n", len(toneEntries))
	for _, entry := range toneEntries {
		label := entry.Scenario
		if label == "" {
			label = "-"
		}
		fmt.Printf("  %s  %-16s target=%.4f current=%.4f\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"), label, entry.Target, entry.Current)
	}

	fmt.Printf("validation log (%d entries):\n", len(validations))
	for _, entry := range validations {
		fmt.Printf("  %s  level %d %-28s [%s] confidence %.3f\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.LevelNumber,
			entry.FocusArea, entry.Status, entry.MeanConfidence)
	}

	fmt.Printf("decision log (%d entries):\n", len(decisions))
	for _, entry := range decisions {
		fmt.Printf("  %s  %-10s %-16s %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.Kind, entry.Subject, entry.Detail)
	}
	return nil
}
