package validation

// #region imports
import (
	"errors"
	"time"
)

// #endregion

// #region errors

var (
	// ErrLevelOutOfRange reports a level number outside [1, 7].
	ErrLevelOutOfRange = errors.New("level number out of range")

	// ErrEmptyHistory reports a summary request before any level was validated.
	ErrEmptyHistory = errors.New("no validation history")
)

// #endregion errors

// #region level-status

// LevelStatus is the pass/fail outcome of one level validation.
type LevelStatus string

const (
	StatusPassed          LevelStatus = "passed"
	StatusNeedsRefinement LevelStatus = "needs_refinement"
)

// #endregion level-status

// #region level

// Level is one tier of the fixed seven-tier checklist. Levels are defined at
// construction time and never mutated.
type Level struct {
	Number    int
	FocusArea string
	Questions []string
	// Criteria may be shorter than Questions; the last criterion is
	// reused for overflow questions.
	Criteria  []string
	Threshold float64 // in [0, 1]
}

// #endregion level

// #region question-result

// QuestionResult is the canned outcome resolved for a single question.
// It derives purely from the question's literal text.
type QuestionResult struct {
	Question        string
	Criterion       string
	Outcome         string
	Confidence      float64 // in [0, 1]
	Limitations     []string
	Recommendations []string
}

// #endregion question-result

// #region level-result

// LevelResult is the outcome of validating one level.
type LevelResult struct {
	LevelNumber    int
	FocusArea      string
	Questions      []QuestionResult
	MeanConfidence float64
	Status         LevelStatus
	CreatedAt      time.Time
}

// #endregion level-result

// #region principle

// Principle is a static synthesis record attached to every report.
type Principle struct {
	Name        string
	Statement   string
	Strength    float64
	Implication string
}

// #endregion principle

// #region report

// Report aggregates all recorded level results.
type Report struct {
	Framework         string
	TotalLevels       int
	Passed            int
	NeedsRefinement   int
	OverallConfidence float64
	Achieved          bool // overall confidence >= achievementThreshold
	Principles        []Principle
	History           []LevelResult
	GeneratedAt       time.Time
}

// #endregion report
