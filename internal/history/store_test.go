package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielpatrickdp/adaptive-tone/internal/tone"
	"github.com/danielpatrickdp/adaptive-tone/internal/validation"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndRecentTone(t *testing.T) {
	s := tempStore(t)

	scorer := tone.NewScorer(tone.DefaultConfig())
	first := scorer.Score(tone.ContextInput{})
	second := scorer.Score(tone.ContextInput{
		Environmental: tone.Observations{"acute_stress": 0.9},
	})

	if _, err := s.AppendTone("baseline", first); err != nil {
		t.Fatalf("AppendTone: %v", err)
	}
	entry, err := s.AppendTone("high-stress", second)
	if err != nil {
		t.Fatalf("AppendTone: %v", err)
	}
	if entry.EntryID == "" {
		t.Fatal("expected non-empty entry ID")
	}

	entries, err := s.RecentTone(10)
	if err != nil {
		t.Fatalf("RecentTone: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entry count: got %d, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Scenario != "high-stress" {
		t.Errorf("order: got %q first, want high-stress", entries[0].Scenario)
	}
	if diff := cmp.Diff(second.Factors, entries[0].Factors); diff != "" {
		t.Errorf("factors round-trip (-want +got):\n%s", diff)
	}
	if entries[0].Target != second.Target || entries[0].Current != second.Current {
		t.Errorf("target/current round-trip: got %f/%f, want %f/%f",
			entries[0].Target, entries[0].Current, second.Target, second.Current)
	}
}

func TestAppendAndRecentValidations(t *testing.T) {
	s := tempStore(t)

	v := validation.NewValidator()
	result, err := v.Validate(1, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if _, err := s.AppendValidation(result); err != nil {
		t.Fatalf("AppendValidation: %v", err)
	}

	entries, err := s.RecentValidations(10)
	if err != nil {
		t.Fatalf("RecentValidations: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entry count: got %d, want 1", len(entries))
	}

	got := entries[0]
	if got.LevelNumber != 1 || got.FocusArea != "Scientific Foundation" {
		t.Errorf("level metadata: got %d/%q", got.LevelNumber, got.FocusArea)
	}
	if got.Status != validation.StatusPassed {
		t.Errorf("status: got %q", got.Status)
	}
	if diff := cmp.Diff(result.Questions, got.Questions); diff != "" {
		t.Errorf("questions round-trip (-want +got):\n%s", diff)
	}
}

func TestLevelStandingsKeepLatest(t *testing.T) {
	s := tempStore(t)
	v := validation.NewValidator()

	// Record level 2 twice; standings must keep only the latest row.
	for i := 0; i < 2; i++ {
		result, err := v.Validate(2, nil)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if _, err := s.AppendValidation(result); err != nil {
			t.Fatalf("AppendValidation: %v", err)
		}
		time.Sleep(2 * time.Millisecond) // distinct created_at
	}
	result, err := v.Validate(5, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, err := s.AppendValidation(result); err != nil {
		t.Fatalf("AppendValidation: %v", err)
	}

	standings, err := s.LevelStandings()
	if err != nil {
		t.Fatalf("LevelStandings: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("standings count: got %d, want 2", len(standings))
	}
	if standings[0].LevelNumber != 2 || standings[1].LevelNumber != 5 {
		t.Errorf("standings order: got levels %d, %d", standings[0].LevelNumber, standings[1].LevelNumber)
	}
}

func TestValidationAggregate(t *testing.T) {
	s := tempStore(t)
	v := validation.NewValidator()

	results, err := v.ValidateAll(nil)
	if err != nil {
		t.Fatalf("ValidateAll: %v", err)
	}
	for _, result := range results {
		if _, err := s.AppendValidation(result); err != nil {
			t.Fatalf("AppendValidation: %v", err)
		}
	}

	agg, err := s.ValidationAggregate()
	if err != nil {
		t.Fatalf("ValidationAggregate: %v", err)
	}
	if agg.TotalEntries != 7 {
		t.Errorf("total: got %d, want 7", agg.TotalEntries)
	}
	if agg.Passed+agg.NeedsRefinement != agg.TotalEntries {
		t.Errorf("passed %d + refinement %d != total %d", agg.Passed, agg.NeedsRefinement, agg.TotalEntries)
	}
	if agg.MeanConfidence < 0 || agg.MeanConfidence > 1 {
		t.Errorf("mean confidence out of range: %f", agg.MeanConfidence)
	}
}

func TestAggregatesOnEmptyStore(t *testing.T) {
	s := tempStore(t)

	agg, err := s.ValidationAggregate()
	if err != nil {
		t.Fatalf("ValidationAggregate: %v", err)
	}
	if agg.TotalEntries != 0 || agg.MeanConfidence != 0 {
		t.Errorf("empty aggregate: got %+v", agg)
	}

	if _, ok, err := s.ToneTrend(10); err != nil || ok {
		t.Errorf("empty trend: ok=%v err=%v", ok, err)
	}
}

func TestDecisionLogMirrorsAppends(t *testing.T) {
	s := tempStore(t)

	scorer := tone.NewScorer(tone.DefaultConfig())
	if _, err := s.AppendTone("baseline", scorer.Score(tone.ContextInput{})); err != nil {
		t.Fatalf("AppendTone: %v", err)
	}

	v := validation.NewValidator()
	result, err := v.Validate(1, nil)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if _, err := s.AppendValidation(result); err != nil {
		t.Fatalf("AppendValidation: %v", err)
	}

	decisions, err := s.RecentDecisions(10)
	if err != nil {
		t.Fatalf("RecentDecisions: %v", err)
	}
	if len(decisions) != 2 {
		t.Fatalf("decision count: got %d, want 2", len(decisions))
	}
	kinds := map[string]bool{}
	for _, d := range decisions {
		kinds[d.Kind] = true
		if d.Subject == "" || d.Detail == "" {
			t.Errorf("decision %q missing subject or detail: %+v", d.Kind, d)
		}
	}
	if !kinds["tone"] || !kinds["validation"] {
		t.Errorf("expected one tone and one validation decision, got %v", kinds)
	}
}

func TestToneTrend(t *testing.T) {
	s := tempStore(t)
	scorer := tone.NewScorer(tone.DefaultConfig())

	for i := 0; i < 5; i++ {
		if _, err := s.AppendTone("", scorer.Score(tone.ContextInput{})); err != nil {
			t.Fatalf("AppendTone: %v", err)
		}
	}

	trend, ok, err := s.ToneTrend(5)
	if err != nil {
		t.Fatalf("ToneTrend: %v", err)
	}
	if !ok {
		t.Fatal("expected trend for populated log")
	}
	if trend < 0 || trend > 1 {
		t.Errorf("trend out of range: %f", trend)
	}
}
