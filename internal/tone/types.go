package tone

// #region observations

// Observations is a permissive bag of named readings in [0,1].
// Missing keys fall back to documented defaults; unknown keys are ignored.
type Observations map[string]float64

// ContextInput groups raw observations by channel. Any group may be nil.
type ContextInput struct {
	Physiological Observations
	Social        Observations
	Environmental Observations
	Opportunities Observations
}

// #endregion observations

// #region snapshot

// PhysiologicalState holds the assessed physiological readings.
type PhysiologicalState struct {
	HRVCoherence      float64
	InflammationLevel float64
	EnergyState       float64
	RecoveryNeed      float64
}

// SocialContext holds the assessed social readings.
type SocialContext struct {
	Safety     float64
	Resonance  float64
	Trust      float64
	Connection float64
}

// EnvironmentalStressors holds the assessed stressor readings.
type EnvironmentalStressors struct {
	AcuteStress         float64
	ChronicStress       float64
	RecoveryOpportunity float64
	ThreatLevel         float64
}

// BeneficialOpportunities holds the assessed opportunity readings.
type BeneficialOpportunities struct {
	SocialBonding   float64
	Learning        float64
	RestRecovery    float64
	GrowthPotential float64
}

// ContextSnapshot is the fully-defaulted view of one scoring call's inputs.
// Immutable once built; the scorer does not retain it.
type ContextSnapshot struct {
	Physiological PhysiologicalState
	Social        SocialContext
	Environmental EnvironmentalStressors
	Opportunities BeneficialOpportunities
}

// #endregion snapshot

// #region tone-state

// ToneState tracks the smoothed output tone across scoring calls.
// Current is the only field mutated after construction.
type ToneState struct {
	Baseline       float64
	Current        float64
	AdaptationRate float64 // in (0, 1]
	Sensitivity    float64
}

// #endregion tone-state

// #region factor-scores

// FactorScores holds the four per-factor modulation scores, each in [0,1].
type FactorScores struct {
	HeartRate    float64
	Inflammation float64
	Social       float64
	Recovery     float64
}

// #endregion factor-scores

// #region score-result

// ScoreResult bundles everything produced by one scoring call.
type ScoreResult struct {
	Snapshot ContextSnapshot
	Factors  FactorScores
	Target   float64 // combined weighted target, clamped to [0,1]
	Current  float64 // smoothed tone after this call's adaptation step
}

// #endregion score-result

// #region config

// Weights are the fixed combination weights for the four factors. They sum to 1.
type Weights struct {
	HeartRate    float64
	Inflammation float64
	Social       float64
	Recovery     float64
}

// Config holds scorer parameters.
type Config struct {
	Baseline       float64
	AdaptationRate float64
	Sensitivity    float64
	Weights        Weights
}

// DefaultConfig returns the standard scorer parameters.
func DefaultConfig() Config {
	return Config{
		Baseline:       0.6,
		AdaptationRate: 0.1,
		Sensitivity:    0.8,
		Weights: Weights{
			HeartRate:    0.30,
			Inflammation: 0.25,
			Social:       0.25,
			Recovery:     0.20,
		},
	}
}

// #endregion config
