package scenario

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/adaptive-tone/internal/tone"
)

// #endregion

// #region fixture-types

// Fixture is the top-level YAML structure for a scenario fixture file.
type Fixture struct {
	Description string            `yaml:"description"`
	Scenarios   []FixtureScenario `yaml:"scenarios"`
}

// FixtureScenario is one scenario plus its optional expectation bounds.
type FixtureScenario struct {
	Key           string             `yaml:"key"`
	Name          string             `yaml:"name"`
	Physiological map[string]float64 `yaml:"physiological"`
	Social        map[string]float64 `yaml:"social"`
	Environmental map[string]float64 `yaml:"environmental"`
	Opportunities map[string]float64 `yaml:"opportunities"`
	Expect        *Expectation       `yaml:"expect"`
}

// Expectation bounds the combined target for a regression run. Nil bounds
// are not checked.
type Expectation struct {
	TargetBelow *float64 `yaml:"target_below"`
	TargetAbove *float64 `yaml:"target_above"`
}

// #endregion fixture-types

// #region load

// LoadFixture reads and validates a YAML fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return Fixture{}, fmt.Errorf("fixture %s: no scenarios", path)
	}
	for i, sc := range f.Scenarios {
		if sc.Key == "" {
			return Fixture{}, fmt.Errorf("fixture %s: scenario %d has no key", path, i)
		}
	}
	return f, nil
}

// #endregion load

// #region convert

// Scenario converts a fixture entry into a runnable scenario.
func (fs FixtureScenario) Scenario() Scenario {
	name := fs.Name
	if name == "" {
		name = fs.Key
	}
	return Scenario{
		Name: name,
		Input: tone.ContextInput{
			Physiological: tone.Observations(fs.Physiological),
			Social:        tone.Observations(fs.Social),
			Environmental: tone.Observations(fs.Environmental),
			Opportunities: tone.Observations(fs.Opportunities),
		},
	}
}

// #endregion convert
