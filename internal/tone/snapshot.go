package tone

// #region defaults

// Per-key defaults applied when an observation is absent. Missing-vs-zero is
// resolved here once; downstream code only ever sees the defaulted snapshot.
const (
	defaultHRV          = 0.5
	defaultInflammation = 0.3
	defaultEnergy       = 0.7
	defaultRecoveryNeed = 0.4

	defaultSafety     = 0.8
	defaultResonance  = 0.6
	defaultTrust      = 0.7
	defaultConnection = 0.5

	defaultAcuteStress   = 0.2
	defaultChronicStress = 0.3
	defaultRecoveryEnv   = 0.6
	defaultThreat        = 0.1

	defaultBonding      = 0.7
	defaultLearning     = 0.8
	defaultRestRecovery = 0.6
	defaultGrowth       = 0.5
)

// #endregion defaults

// #region assess

// Assess builds a fully-defaulted snapshot from raw observations.
// Out-of-range values pass through untouched; clamping happens where the
// factor formulas clamp their own output, not at the input boundary.
func Assess(input ContextInput) ContextSnapshot {
	return ContextSnapshot{
		Physiological: assessPhysiological(input.Physiological),
		Social:        assessSocial(input.Social),
		Environmental: assessEnvironmental(input.Environmental),
		Opportunities: assessOpportunities(input.Opportunities),
	}
}

// #endregion assess

// #region assess-groups

func assessPhysiological(obs Observations) PhysiologicalState {
	return PhysiologicalState{
		HRVCoherence:      obs.value("hrv", defaultHRV),
		InflammationLevel: obs.value("inflammation", defaultInflammation),
		EnergyState:       obs.value("energy", defaultEnergy),
		RecoveryNeed:      obs.value("recovery", defaultRecoveryNeed),
	}
}

func assessSocial(obs Observations) SocialContext {
	return SocialContext{
		Safety:     obs.value("safety", defaultSafety),
		Resonance:  obs.value("resonance", defaultResonance),
		Trust:      obs.value("trust", defaultTrust),
		Connection: obs.value("connection", defaultConnection),
	}
}

func assessEnvironmental(obs Observations) EnvironmentalStressors {
	return EnvironmentalStressors{
		AcuteStress:         obs.value("acute_stress", defaultAcuteStress),
		ChronicStress:       obs.value("chronic_stress", defaultChronicStress),
		RecoveryOpportunity: obs.value("recovery_env", defaultRecoveryEnv),
		ThreatLevel:         obs.value("threat", defaultThreat),
	}
}

func assessOpportunities(obs Observations) BeneficialOpportunities {
	return BeneficialOpportunities{
		SocialBonding:   obs.value("bonding", defaultBonding),
		Learning:        obs.value("learning", defaultLearning),
		RestRecovery:    obs.value("rest_recovery", defaultRestRecovery),
		GrowthPotential: obs.value("growth", defaultGrowth),
	}
}

// #endregion assess-groups

// #region value

// value reads a key with a fallback. Safe on a nil map.
func (o Observations) value(key string, fallback float64) float64 {
	if v, ok := o[key]; ok {
		return v
	}
	return fallback
}

// #endregion value
