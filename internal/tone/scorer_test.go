package tone

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssessDefaults(t *testing.T) {
	got := Assess(ContextInput{})
	want := ContextSnapshot{
		Physiological: PhysiologicalState{
			HRVCoherence:      0.5,
			InflammationLevel: 0.3,
			EnergyState:       0.7,
			RecoveryNeed:      0.4,
		},
		Social: SocialContext{
			Safety:     0.8,
			Resonance:  0.6,
			Trust:      0.7,
			Connection: 0.5,
		},
		Environmental: EnvironmentalStressors{
			AcuteStress:         0.2,
			ChronicStress:       0.3,
			RecoveryOpportunity: 0.6,
			ThreatLevel:         0.1,
		},
		Opportunities: BeneficialOpportunities{
			SocialBonding:   0.7,
			Learning:        0.8,
			RestRecovery:    0.6,
			GrowthPotential: 0.5,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestAssessExplicitZeroIsNotDefault(t *testing.T) {
	got := Assess(ContextInput{
		Physiological: Observations{"inflammation": 0},
	})
	if got.Physiological.InflammationLevel != 0 {
		t.Errorf("explicit zero overridden by default: got %f", got.Physiological.InflammationLevel)
	}
}

func TestFactorScores(t *testing.T) {
	tests := []struct {
		name  string
		input ContextInput
		check func(t *testing.T, f FactorScores)
	}{
		{
			"all-defaults",
			ContextInput{},
			func(t *testing.T, f FactorScores) {
				// heart: 0.5 + (0.6-0.2)*0.3 + 0.8*0.2 = 0.78
				if !approx(f.HeartRate, 0.78) {
					t.Errorf("heart rate: got %f, want 0.78", f.HeartRate)
				}
				// inflammation: 1 - 0.3*0.7 - 0.3*0.2 + 0.6*0.3 = 0.91
				if !approx(f.Inflammation, 0.91) {
					t.Errorf("inflammation: got %f, want 0.91", f.Inflammation)
				}
				// social: (0.8+0.6+0.7)/3 = 0.7
				if !approx(f.Social, 0.7) {
					t.Errorf("social: got %f, want 0.7", f.Social)
				}
				// recovery: (0.4+0.3+0.6)/3 = 0.4333
				if !approx(f.Recovery, 1.3/3.0) {
					t.Errorf("recovery: got %f, want %f", f.Recovery, 1.3/3.0)
				}
			},
		},
		{
			"clamped-at-floor",
			ContextInput{
				Environmental: Observations{"acute_stress": 1.0, "chronic_stress": 1.0},
				Opportunities: Observations{"rest_recovery": 0.0},
				Social:        Observations{"safety": 0.0},
				Physiological: Observations{"inflammation": 1.0},
			},
			func(t *testing.T, f FactorScores) {
				// heart: 0.5 - 0.3 + 0 = 0.2; inflammation: 1 - 0.7 - 0.2 + 0 = 0.1
				if !approx(f.HeartRate, 0.2) {
					t.Errorf("heart rate: got %f, want 0.2", f.HeartRate)
				}
				if !approx(f.Inflammation, 0.1) {
					t.Errorf("inflammation: got %f, want 0.1", f.Inflammation)
				}
			},
		},
		{
			"clamped-at-ceiling",
			ContextInput{
				Physiological: Observations{"inflammation": 0.0},
				Environmental: Observations{"chronic_stress": 0.0},
				Opportunities: Observations{"rest_recovery": 1.0},
			},
			func(t *testing.T, f FactorScores) {
				// raw inflammation score is 1.3, must clamp to 1.0
				if f.Inflammation != 1.0 {
					t.Errorf("inflammation not clamped: got %f", f.Inflammation)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewScorer(DefaultConfig()).Score(tt.input)
			tt.check(t, result.Factors)
		})
	}
}

func TestScoreRangeInvariant(t *testing.T) {
	// Adversarial out-of-range observations: every produced value must land in [0,1].
	inputs := []ContextInput{
		{},
		{Physiological: Observations{"inflammation": 5.0, "energy": -3.0}},
		{Environmental: Observations{"acute_stress": 99, "chronic_stress": 99}},
		{Opportunities: Observations{"rest_recovery": -10}, Social: Observations{"safety": 12}},
	}

	s := NewScorer(DefaultConfig())
	for _, input := range inputs {
		result := s.Score(input)
		for name, v := range map[string]float64{
			"heart":        result.Factors.HeartRate,
			"inflammation": result.Factors.Inflammation,
			"social":       result.Factors.Social,
			"recovery":     result.Factors.Recovery,
			"target":       result.Target,
			"current":      result.Current,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s out of range: %f (input %+v)", name, v, input)
			}
		}
	}
}

func TestScoreIdempotentFactors(t *testing.T) {
	input := ContextInput{
		Physiological: Observations{"inflammation": 0.7},
		Environmental: Observations{"acute_stress": 0.8, "chronic_stress": 0.6},
		Opportunities: Observations{"rest_recovery": 0.2},
		Social:        Observations{"safety": 0.3},
	}

	s := NewScorer(DefaultConfig())
	first := s.Score(input)
	second := s.Score(input)

	if diff := cmp.Diff(first.Factors, second.Factors); diff != "" {
		t.Errorf("factor scores drifted between identical calls (-first +second):\n%s", diff)
	}
	if first.Target != second.Target {
		t.Errorf("target drifted: %f then %f", first.Target, second.Target)
	}
}

func TestScoreHighStressTargetBelowHalf(t *testing.T) {
	s := NewScorer(DefaultConfig())
	result := s.Score(ContextInput{
		Physiological: Observations{"inflammation": 0.7},
		Environmental: Observations{"acute_stress": 0.8, "chronic_stress": 0.6},
		Opportunities: Observations{"rest_recovery": 0.2},
		Social:        Observations{"safety": 0.3},
	})
	if result.Target >= 0.5 {
		t.Errorf("high-stress target should be below 0.5, got %f", result.Target)
	}
}

func TestToneConvergence(t *testing.T) {
	rates := []float64{0.05, 0.1, 0.5, 1.0}
	input := ContextInput{
		Environmental: Observations{"acute_stress": 0.9},
		Opportunities: Observations{"rest_recovery": 0.1},
	}

	for _, rate := range rates {
		config := DefaultConfig()
		config.AdaptationRate = rate
		s := NewScorer(config)

		prev := s.State().Current
		var target float64
		for i := 0; i < 200; i++ {
			result := s.Score(input)
			target = result.Target

			// Monotone approach without overshoot.
			if prev >= target {
				if result.Current < target || result.Current > prev {
					t.Fatalf("rate %.2f: tone overshot: prev=%f target=%f current=%f", rate, prev, target, result.Current)
				}
			} else {
				if result.Current > target || result.Current < prev {
					t.Fatalf("rate %.2f: tone overshot: prev=%f target=%f current=%f", rate, prev, target, result.Current)
				}
			}
			prev = result.Current
		}

		if math.Abs(prev-target) > 1e-3 {
			t.Errorf("rate %.2f: tone did not converge: current=%f target=%f", rate, prev, target)
		}
	}
}

func TestStateOnlyCurrentMutates(t *testing.T) {
	s := NewScorer(DefaultConfig())
	before := s.State()
	s.Score(ContextInput{Environmental: Observations{"acute_stress": 1.0}})
	after := s.State()

	if after.Baseline != before.Baseline {
		t.Errorf("baseline mutated: %f -> %f", before.Baseline, after.Baseline)
	}
	if after.AdaptationRate != before.AdaptationRate {
		t.Errorf("adaptation rate mutated: %f -> %f", before.AdaptationRate, after.AdaptationRate)
	}
	if after.Sensitivity != before.Sensitivity {
		t.Errorf("sensitivity mutated: %f -> %f", before.Sensitivity, after.Sensitivity)
	}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}
