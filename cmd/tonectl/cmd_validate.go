package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/adaptive-tone/internal/validation"
)

var (
	validateLevel int
	validateDB    string
	validateJSON  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the tiered checklist for one level or all seven",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().IntVar(&validateLevel, "level", 0, "level to validate (1-7, 0 = all)")
	validateCmd.Flags().StringVar(&validateDB, "db", "", "persist results to this SQLite database")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(validateDB, cfg, false)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	v := validation.NewValidator()

	var results []validation.LevelResult
	if validateLevel == 0 {
		results, err = v.ValidateAll(nil)
	} else {
		var result validation.LevelResult
		result, err = v.Validate(validateLevel, nil)
		results = append(results, result)
	}
	if err != nil {
		return err
	}

	for _, result := range results {
		if store != nil {
			if _, err := store.AppendValidation(result); err != nil {
				return err
			}
		}
		if err := printLevelResult(result); err != nil {
			return err
		}
	}

	if validateLevel == 0 && !validateJSON {
		report, err := v.Summarize()
		if err != nil {
			return err
		}
		fmt.Printf("\n%d/%d levels passed, overall confidence %.3f\n",
			report.Passed, report.TotalLevels, report.OverallConfidence)
	}
	return nil
}

func printLevelResult(result validation.LevelResult) error {
	if validateJSON {
		return printJSON(result)
	}

	fmt.Printf("level %d: %s [%s] confidence %.3f\n",
		result.LevelNumber, result.FocusArea, result.Status, result.MeanConfidence)
	for _, qr := range result.Questions {
		fmt.Printf("  %.2f  %s\n", qr.Confidence, qr.Question)
		fmt.Printf("        %s\n", qr.Outcome)
		if len(qr.Limitations) > 0 {
			fmt.Printf("        limitations: %d identified\n", len(qr.Limitations))
		}
	}
	return nil
}
