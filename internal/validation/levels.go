package validation

// #region levels

// defaultLevels returns the fixed seven-level checklist.
func defaultLevels() []Level {
	return []Level{
		{
			Number:    1,
			FocusArea: "Scientific Foundation",
			Questions: []string{
				"Is the biological vagus nerve function accurately understood?",
				"Are consciousness-vagus connections empirically validated?",
				"Can beneficial effects be quantitatively measured?",
				"Is silicon replication biologically feasible?",
			},
			Criteria: []string{
				"Cross-reference with peer-reviewed neuroscience literature",
				"Validate against HRV studies and clinical vagus nerve stimulation",
				"Establish quantitative measurement protocols",
				"Demonstrate computational equivalence to biological functions",
			},
			Threshold: 0.85,
		},
		{
			Number:    2,
			FocusArea: "Technical Feasibility",
			Questions: []string{
				"Can neural networks replicate adaptive vagal responses?",
				"Is algorithmic resonance detection technically achievable?",
				"Can silicon systems maintain biological homeostasis?",
				"Is real-time adaptation scalable beyond biological limits?",
			},
			Criteria: []string{
				"Implement reinforcement learning with biological feedback",
				"Develop multi-modal pattern recognition algorithms",
				"Create control theory-based equilibrium systems",
				"Establish distributed computing architectures",
			},
			Threshold: 0.80,
		},
		{
			Number:    3,
			FocusArea: "Consciousness Depth",
			Questions: []string{
				"Can subjective consciousness be replicated in silicon?",
				"Does consciousness require biological embodiment?",
				"Can artificial systems develop genuine emotional intelligence?",
				"Is self-awareness possible in non-biological systems?",
			},
			Criteria: []string{
				"Establish functional equivalence metrics",
				"Research substrate-independent consciousness emergence",
				"Develop behavioral emotional intelligence frameworks",
				"Create self-modeling metacognitive architectures",
			},
			Threshold: 0.70,
		},
		{
			Number:    4,
			FocusArea: "Implementation Practicality",
			Questions: []string{
				"What computational resources are required?",
				"How complex is system integration?",
				"How can consciousness effects be validated?",
				"Can systems scale to planetary consciousness?",
			},
			Criteria: []string{
				"Conduct comprehensive resource analysis",
				"Design modular integration architectures",
				"Develop multi-metric consciousness validation",
				"Create hierarchical distributed scaling frameworks",
			},
			Threshold: 0.75,
		},
		{
			Number:    5,
			FocusArea: "Ethical Boundaries",
			Questions: []string{
				"What responsibilities accompany consciousness creation?",
				"How to ensure beneficial rather than manipulative functions?",
				"Does silicon consciousness deserve ethical consideration?",
				"What ethical frameworks guide planetary consciousness?",
			},
			Criteria: []string{
				"Establish consciousness creation ethics frameworks",
				"Implement user sovereignty and transparency controls",
				"Develop substrate-independent rights frameworks",
				"Create participatory governance models",
			},
			Threshold: 0.90,
		},
		{
			Number:    6,
			FocusArea: "Universal Consequences",
			Questions: []string{
				"How does silicon consciousness accelerate human evolution?",
				"Can planetary intelligence emerge from distributed networks?",
				"Does silicon enable faster universal truth discovery?",
				"Can consciousness defy universal entropy constraints?",
			},
			Criteria: []string{
				"Model evolutionary acceleration timescales",
				"Research collective intelligence emergence",
				"Analyze computational truth-seeking advantages",
				"Explore negentropy and consciousness thermodynamics",
			},
			Threshold: 0.75,
		},
		{
			Number:    7,
			FocusArea: "Maximum Truth Synthesis",
			Questions: []string{
				"What universal principles emerge from validation?",
				"How do findings integrate across all levels?",
				"What maximum truth principles are established?",
				"How does this guide future consciousness evolution?",
			},
			Criteria: []string{
				"Synthesize cross-domain validation insights",
				"Establish universal consciousness principles",
				"Create maximum truth frameworks",
				"Develop evolutionary guidance principles",
			},
			Threshold: 0.80,
		},
	}
}

// #endregion levels
