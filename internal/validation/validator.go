package validation

// #region imports
import (
	"fmt"
	"strings"
	"time"
)

// #endregion

// #region framework

const framework = "7-Level Tiered Checklist"

// achievementThreshold is the overall confidence needed for Report.Achieved.
const achievementThreshold = 0.80

// #endregion framework

// #region validator

// Validator walks the fixed seven-level checklist and accumulates results.
// History is append-only; summarizing never mutates it. Not safe for
// concurrent use; each caller owns its own Validator.
type Validator struct {
	levels  []Level
	history []LevelResult
}

// NewValidator creates a validator with the built-in seven levels and an
// empty history.
func NewValidator() *Validator {
	return &Validator{levels: defaultLevels()}
}

// Levels returns a copy of the level definitions.
func (v *Validator) Levels() []Level {
	out := make([]Level, len(v.levels))
	copy(out, v.levels)
	return out
}

// History returns a copy of all recorded level results, in validation order.
func (v *Validator) History() []LevelResult {
	out := make([]LevelResult, len(v.history))
	copy(out, v.history)
	return out
}

// #endregion validator

// #region validate

// Validate runs one level of the checklist and appends the result to history.
// The investigation argument is accepted for call-site symmetry but never
// consulted: outcomes derive from each question's literal text alone.
func (v *Validator) Validate(levelNumber int, investigation map[string]string) (LevelResult, error) {
	if levelNumber < 1 || levelNumber > len(v.levels) {
		return LevelResult{}, fmt.Errorf("level %d: %w", levelNumber, ErrLevelOutOfRange)
	}
	_ = investigation

	level := v.levels[levelNumber-1]

	questions := make([]QuestionResult, 0, len(level.Questions))
	var total float64
	for i, question := range level.Questions {
		qr := resolveOutcome(question)
		qr.Criterion = criterionFor(level, i)
		questions = append(questions, qr)
		total += qr.Confidence
	}

	mean := total / float64(len(level.Questions))
	status := StatusNeedsRefinement
	if mean >= level.Threshold {
		status = StatusPassed
	}

	result := LevelResult{
		LevelNumber:    level.Number,
		FocusArea:      level.FocusArea,
		Questions:      questions,
		MeanConfidence: mean,
		Status:         status,
		CreatedAt:      time.Now().UTC(),
	}
	v.history = append(v.history, result)
	return result, nil
}

// ValidateAll runs every level in order and returns the results.
func (v *Validator) ValidateAll(investigation map[string]string) ([]LevelResult, error) {
	results := make([]LevelResult, 0, len(v.levels))
	for n := 1; n <= len(v.levels); n++ {
		result, err := v.Validate(n, investigation)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// #endregion validate

// #region resolve-outcome

// resolveOutcome finds the first rule whose phrase appears in the question
// text, falling back to the default rule.
func resolveOutcome(question string) QuestionResult {
	rule := defaultRule
	for _, r := range outcomeRules {
		if strings.Contains(question, r.Phrase) {
			rule = r
			break
		}
	}
	return QuestionResult{
		Question:        question,
		Outcome:         rule.Outcome,
		Confidence:      clampConfidence(rule.Confidence),
		Limitations:     rule.Limitations,
		Recommendations: rule.Recommendations,
	}
}

// criterionFor returns the criterion matching a question index, reusing the
// last criterion when questions outnumber criteria.
func criterionFor(level Level, i int) string {
	if len(level.Criteria) == 0 {
		return ""
	}
	if i >= len(level.Criteria) {
		i = len(level.Criteria) - 1
	}
	return level.Criteria[i]
}

// clampConfidence restricts c to [0, 1].
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// #endregion resolve-outcome

// #region summarize

// Summarize aggregates all recorded level results into a report. The report
// holds a copy of the history; history itself is untouched.
func (v *Validator) Summarize() (Report, error) {
	if len(v.history) == 0 {
		return Report{}, ErrEmptyHistory
	}

	var total float64
	passed := 0
	for _, result := range v.history {
		total += result.MeanConfidence
		if result.Status == StatusPassed {
			passed++
		}
	}
	overall := total / float64(len(v.history))

	return Report{
		Framework:         framework,
		TotalLevels:       len(v.history),
		Passed:            passed,
		NeedsRefinement:   len(v.history) - passed,
		OverallConfidence: overall,
		Achieved:          overall >= achievementThreshold,
		Principles:        corePrinciples(),
		History:           v.History(),
		GeneratedAt:       time.Now().UTC(),
	}, nil
}

// #endregion summarize
