package scenario

// #region imports
import (
	"fmt"
	"sort"

	"github.com/danielpatrickdp/adaptive-tone/internal/tone"
)

// #endregion

// #region scenario

// Scenario is a named bundle of context observations.
type Scenario struct {
	Name  string
	Input tone.ContextInput
}

// #endregion scenario

// #region builtins

// builtins are the three reference scenarios shipped with the regulator.
var builtins = map[string]Scenario{
	"high-stress": {
		Name: "High Stress Environment",
		Input: tone.ContextInput{
			Physiological: tone.Observations{"hrv": 0.3, "inflammation": 0.7, "energy": 0.4, "recovery": 0.8},
			Social:        tone.Observations{"safety": 0.3, "resonance": 0.4, "trust": 0.5, "connection": 0.2},
			Environmental: tone.Observations{"acute_stress": 0.8, "chronic_stress": 0.6, "recovery_env": 0.2, "threat": 0.7},
			Opportunities: tone.Observations{"rest_recovery": 0.2},
		},
	},
	"social-bonding": {
		Name: "Social Bonding Opportunity",
		Input: tone.ContextInput{
			Physiological: tone.Observations{"hrv": 0.7, "inflammation": 0.3, "energy": 0.8, "recovery": 0.2},
			Social:        tone.Observations{"safety": 0.9, "resonance": 0.8, "trust": 0.9, "connection": 0.9},
			Environmental: tone.Observations{"acute_stress": 0.1, "chronic_stress": 0.2, "recovery_env": 0.8, "threat": 0.1},
			Opportunities: tone.Observations{"rest_recovery": 0.8},
		},
	},
	"recovery": {
		Name: "Recovery and Healing Context",
		Input: tone.ContextInput{
			Physiological: tone.Observations{"hrv": 0.5, "inflammation": 0.6, "energy": 0.3, "recovery": 0.9},
			Social:        tone.Observations{"safety": 0.7, "resonance": 0.6, "trust": 0.8, "connection": 0.5},
			Environmental: tone.Observations{"acute_stress": 0.2, "chronic_stress": 0.4, "recovery_env": 0.9, "threat": 0.1},
			Opportunities: tone.Observations{"rest_recovery": 0.9},
		},
	},
}

// Builtin looks up a shipped scenario by key.
func Builtin(key string) (Scenario, error) {
	sc, ok := builtins[key]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q (have: %v)", key, BuiltinKeys())
	}
	return sc, nil
}

// BuiltinKeys lists the shipped scenario keys, sorted.
func BuiltinKeys() []string {
	keys := make([]string, 0, len(builtins))
	for k := range builtins {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// #endregion builtins
