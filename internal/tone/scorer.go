package tone

// #region scorer

// Scorer maps context observations to factor scores and maintains the
// smoothed tone across calls. Not safe for concurrent use; each caller
// owns its own Scorer.
type Scorer struct {
	config Config
	state  ToneState
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(config Config) *Scorer {
	return &Scorer{
		config: config,
		state: ToneState{
			Baseline:       config.Baseline,
			Current:        config.Baseline,
			AdaptationRate: config.AdaptationRate,
			Sensitivity:    config.Sensitivity,
		},
	}
}

// State returns a copy of the current tone state.
func (s *Scorer) State() ToneState {
	return s.state
}

// #endregion scorer

// #region score

// Score assesses the input, computes the four factor scores and their
// weighted target, then advances the smoothed tone one adaptation step
// toward the target. The adaptation step is the only persisted mutation.
func (s *Scorer) Score(input ContextInput) ScoreResult {
	snap := Assess(input)

	factors := FactorScores{
		HeartRate:    heartRateModulation(snap),
		Inflammation: inflammationModulation(snap),
		Social:       socialEngagement(snap),
		Recovery:     recoveryPriority(snap),
	}

	target := s.combine(factors)
	s.state.Current = clamp(s.state.Current + (target-s.state.Current)*s.state.AdaptationRate)

	return ScoreResult{
		Snapshot: snap,
		Factors:  factors,
		Target:   target,
		Current:  s.state.Current,
	}
}

// #endregion score

// #region factors

// heartRateModulation balances recovery availability against acute stress,
// with social safety as a secondary stabilizer.
func heartRateModulation(snap ContextSnapshot) float64 {
	rest := snap.Opportunities.RestRecovery
	stress := snap.Environmental.AcuteStress
	safety := snap.Social.Safety
	return clamp(0.5 + (rest-stress)*0.3 + safety*0.2)
}

// inflammationModulation is the anti-inflammatory response score.
func inflammationModulation(snap ContextSnapshot) float64 {
	inflammation := snap.Physiological.InflammationLevel
	stress := snap.Environmental.ChronicStress
	rest := snap.Opportunities.RestRecovery
	return clamp(1.0 - inflammation*0.7 - stress*0.2 + rest*0.3)
}

// socialEngagement averages the three social channels.
func socialEngagement(snap ContextSnapshot) float64 {
	social := snap.Social
	return clamp((social.Safety + social.Resonance + social.Trust) / 3.0)
}

// recoveryPriority weighs recovery need, energy deficit, and rest availability.
func recoveryPriority(snap ContextSnapshot) float64 {
	need := snap.Physiological.RecoveryNeed
	energy := snap.Physiological.EnergyState
	rest := snap.Opportunities.RestRecovery
	return clamp((need + (1.0 - energy) + rest) / 3.0)
}

// #endregion factors

// #region combine

// combine produces the weighted target from the four factor scores.
func (s *Scorer) combine(factors FactorScores) float64 {
	w := s.config.Weights
	target := factors.HeartRate*w.HeartRate +
		factors.Inflammation*w.Inflammation +
		factors.Social*w.Social +
		factors.Recovery*w.Recovery
	return clamp(target)
}

// #endregion combine

// #region clamp

// clamp restricts v to [0, 1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion clamp
