package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/adaptive-tone/internal/tone"
)

func TestBuiltinLookup(t *testing.T) {
	for _, key := range BuiltinKeys() {
		sc, err := Builtin(key)
		if err != nil {
			t.Errorf("Builtin(%q): %v", key, err)
		}
		if sc.Name == "" {
			t.Errorf("Builtin(%q): empty name", key)
		}
	}

	if _, err := Builtin("nope"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestBuiltinTargetsOrdered(t *testing.T) {
	// The bonding scenario must score a higher target than the high-stress one.
	score := func(key string) float64 {
		t.Helper()
		sc, err := Builtin(key)
		if err != nil {
			t.Fatalf("Builtin(%q): %v", key, err)
		}
		return tone.NewScorer(tone.DefaultConfig()).Score(sc.Input).Target
	}

	stress := score("high-stress")
	bonding := score("social-bonding")
	if bonding <= stress {
		t.Errorf("bonding target %.4f should exceed high-stress target %.4f", bonding, stress)
	}
}

const fixtureYAML = `description: regression bounds for the reference scenarios
scenarios:
  - key: stress
    name: High Stress
    physiological: {inflammation: 0.7}
    environmental: {acute_stress: 0.8, chronic_stress: 0.6}
    opportunities: {rest_recovery: 0.2}
    social: {safety: 0.3}
    expect:
      target_below: 0.5
  - key: calm
    social: {safety: 0.9, resonance: 0.8, trust: 0.9}
    opportunities: {rest_recovery: 0.8}
    expect:
      target_above: 0.6
  - key: unchecked
    environmental: {threat: 0.9}
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, fixtureYAML))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if len(f.Scenarios) != 3 {
		t.Fatalf("scenario count: got %d, want 3", len(f.Scenarios))
	}
	if f.Scenarios[0].Expect == nil || f.Scenarios[0].Expect.TargetBelow == nil {
		t.Fatal("first scenario expectation not parsed")
	}
	if *f.Scenarios[0].Expect.TargetBelow != 0.5 {
		t.Errorf("target_below: got %f", *f.Scenarios[0].Expect.TargetBelow)
	}
	if f.Scenarios[2].Expect != nil {
		t.Error("unchecked scenario should have nil expectation")
	}
}

func TestLoadFixtureRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", "description: nothing here\n"},
		{"missing-key", "scenarios:\n  - name: anonymous\n"},
		{"not-yaml", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFixture(writeFixture(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunFixture(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, fixtureYAML))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	results := RunFixture(f, tone.DefaultConfig())
	if len(results) != 3 {
		t.Fatalf("result count: got %d, want 3", len(results))
	}
	for _, rr := range results {
		if !rr.Passed {
			t.Errorf("scenario %q failed: %s", rr.Key, rr.Reason)
		}
	}
}

func TestRunFixtureReportsFailure(t *testing.T) {
	below := 0.1
	f := Fixture{
		Scenarios: []FixtureScenario{
			{Key: "impossible", Expect: &Expectation{TargetBelow: &below}},
		},
	}
	results := RunFixture(f, tone.DefaultConfig())
	if results[0].Passed {
		t.Error("expected expectation failure")
	}
	if results[0].Reason == "" {
		t.Error("expected failure reason")
	}
}
