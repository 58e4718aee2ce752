package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/adaptive-tone/internal/scenario"
)

var replayFixture string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a scenario fixture and check its declared expectations",
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayFixture, "fixture", "", "path to a YAML scenario fixture")
	replayCmd.MarkFlagRequired("fixture")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := scenario.LoadFixture(replayFixture)
	if err != nil {
		return err
	}
	if f.Description != "" {
		fmt.Println(f.Description)
	}

	failures := 0
	for _, rr := range scenario.RunFixture(f, cfg.Tone) {
		status := "ok"
		if !rr.Passed {
			status = "FAIL"
			failures++
		}
		fmt.Printf("  %-4s %-20s target=%.4f current=%.4f\n", status, rr.Key, rr.Result.Target, rr.Result.Current)
		if rr.Reason != "" {
			fmt.Printf("       %s\n", rr.Reason)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d scenarios failed expectations", failures, len(f.Scenarios))
	}
	return nil
}
