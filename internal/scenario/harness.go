package scenario

// #region imports
import (
	"fmt"

	"github.com/danielpatrickdp/adaptive-tone/internal/tone"
)

// #endregion

// #region run-result

// RunResult is the outcome of running one fixture scenario.
type RunResult struct {
	Key    string
	Name   string
	Result tone.ScoreResult
	Passed bool
	Reason string // set when an expectation failed
}

// #endregion run-result

// #region run-fixture

// RunFixture scores every fixture scenario on a fresh scorer and checks the
// declared expectations. A scenario with no expectations always passes.
func RunFixture(f Fixture, config tone.Config) []RunResult {
	results := make([]RunResult, 0, len(f.Scenarios))
	for _, fs := range f.Scenarios {
		sc := fs.Scenario()
		scorer := tone.NewScorer(config)
		scored := scorer.Score(sc.Input)

		rr := RunResult{
			Key:    fs.Key,
			Name:   sc.Name,
			Result: scored,
			Passed: true,
		}
		if fs.Expect != nil {
			if fs.Expect.TargetBelow != nil && scored.Target >= *fs.Expect.TargetBelow {
				rr.Passed = false
				rr.Reason = fmt.Sprintf("target %.4f not below %.4f", scored.Target, *fs.Expect.TargetBelow)
			}
			if rr.Passed && fs.Expect.TargetAbove != nil && scored.Target <= *fs.Expect.TargetAbove {
				rr.Passed = false
				rr.Reason = fmt.Sprintf("target %.4f not above %.4f", scored.Target, *fs.Expect.TargetAbove)
			}
		}
		results = append(results, rr)
	}
	return results
}

// #endregion run-fixture
