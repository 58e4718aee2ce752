package history

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/adaptive-tone/internal/tone"
	"github.com/danielpatrickdp/adaptive-tone/internal/validation"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS tone_log (
	entry_id       TEXT PRIMARY KEY,
	scenario       TEXT,
	heart_rate     REAL NOT NULL,
	inflammation   REAL NOT NULL,
	social         REAL NOT NULL,
	recovery       REAL NOT NULL,
	target         REAL NOT NULL,
	current        REAL NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS validation_log (
	entry_id        TEXT PRIMARY KEY,
	level_number    INTEGER NOT NULL,
	focus_area      TEXT NOT NULL,
	mean_confidence REAL NOT NULL,
	status          TEXT NOT NULL,
	questions_json  TEXT NOT NULL,
	created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_validation_log_level
ON validation_log(level_number, created_at);

CREATE TABLE IF NOT EXISTS decision_log (
	entry_id   TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	subject    TEXT NOT NULL,
	detail     TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`
// #endregion schema

// #region records

// ToneEntry is one persisted scoring call.
type ToneEntry struct {
	EntryID   string
	Scenario  string
	Factors   tone.FactorScores
	Target    float64
	Current   float64
	CreatedAt time.Time
}

// ValidationEntry is one persisted level validation.
type ValidationEntry struct {
	EntryID        string
	LevelNumber    int
	FocusArea      string
	MeanConfidence float64
	Status         validation.LevelStatus
	Questions      []validation.QuestionResult
	CreatedAt      time.Time
}

// LevelStanding is the latest recorded status for one level.
type LevelStanding struct {
	LevelNumber    int
	FocusArea      string
	MeanConfidence float64
	Status         validation.LevelStatus
}

// Aggregate summarizes the persisted validation history.
type Aggregate struct {
	TotalEntries    int
	Passed          int
	NeedsRefinement int
	MeanConfidence  float64
}

// DecisionEntry is one row of the decision log: what was recorded and why.
type DecisionEntry struct {
	EntryID   string
	Kind      string // "tone" or "validation"
	Subject   string
	Detail    string
	CreatedAt time.Time
}

// #endregion records

// #region store

// Store persists tone and validation history in SQLite. Both tables are
// append-only; queries never mutate recorded rows.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region append-tone

// AppendTone records one scoring result and returns the stored entry.
func (s *Store) AppendTone(scenario string, result tone.ScoreResult) (ToneEntry, error) {
	entry := ToneEntry{
		EntryID:   uuid.New().String(),
		Scenario:  scenario,
		Factors:   result.Factors,
		Target:    result.Target,
		Current:   result.Current,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO tone_log (entry_id, scenario, heart_rate, inflammation, social, recovery, target, current, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.EntryID, nullIfEmpty(entry.Scenario),
		entry.Factors.HeartRate, entry.Factors.Inflammation,
		entry.Factors.Social, entry.Factors.Recovery,
		entry.Target, entry.Current,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return ToneEntry{}, fmt.Errorf("insert tone entry: %w", err)
	}

	subject := entry.Scenario
	if subject == "" {
		subject = "ad-hoc"
	}
	detail := fmt.Sprintf("target %.4f, tone %.4f", entry.Target, entry.Current)
	if err := s.appendDecision("tone", subject, detail, entry.CreatedAt); err != nil {
		return ToneEntry{}, err
	}
	return entry, nil
}

// #endregion append-tone

// #region append-validation

// AppendValidation records one level result and returns the stored entry.
func (s *Store) AppendValidation(result validation.LevelResult) (ValidationEntry, error) {
	questionsJSON, err := json.Marshal(result.Questions)
	if err != nil {
		return ValidationEntry{}, fmt.Errorf("marshal questions: %w", err)
	}

	entry := ValidationEntry{
		EntryID:        uuid.New().String(),
		LevelNumber:    result.LevelNumber,
		FocusArea:      result.FocusArea,
		MeanConfidence: result.MeanConfidence,
		Status:         result.Status,
		Questions:      result.Questions,
		CreatedAt:      time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO validation_log (entry_id, level_number, focus_area, mean_confidence, status, questions_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.EntryID, entry.LevelNumber, entry.FocusArea,
		entry.MeanConfidence, string(entry.Status), string(questionsJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return ValidationEntry{}, fmt.Errorf("insert validation entry: %w", err)
	}

	subject := fmt.Sprintf("level %d", entry.LevelNumber)
	detail := fmt.Sprintf("%s, mean confidence %.4f", entry.Status, entry.MeanConfidence)
	if err := s.appendDecision("validation", subject, detail, entry.CreatedAt); err != nil {
		return ValidationEntry{}, err
	}
	return entry, nil
}

// #endregion append-validation

// #region decision-log

func (s *Store) appendDecision(kind, subject, detail string, at time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO decision_log (entry_id, kind, subject, detail, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), kind, subject, detail, at.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert decision entry: %w", err)
	}
	return nil
}

// RecentDecisions returns the most recent decision entries, newest first.
func (s *Store) RecentDecisions(limit int) ([]DecisionEntry, error) {
	rows, err := s.db.Query(
		`SELECT entry_id, kind, subject, detail, created_at
		 FROM decision_log ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decision entries: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var entry DecisionEntry
		var createdStr string
		if err := rows.Scan(&entry.EntryID, &entry.Kind, &entry.Subject, &entry.Detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision row: %w", err)
		}
		entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// #endregion decision-log

// #region recent-tone

// RecentTone returns the most recent tone entries, newest first.
func (s *Store) RecentTone(limit int) ([]ToneEntry, error) {
	rows, err := s.db.Query(
		`SELECT entry_id, scenario, heart_rate, inflammation, social, recovery, target, current, created_at
		 FROM tone_log ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list tone entries: %w", err)
	}
	defer rows.Close()

	var entries []ToneEntry
	for rows.Next() {
		var entry ToneEntry
		var scenario sql.NullString
		var createdStr string
		if err := rows.Scan(
			&entry.EntryID, &scenario,
			&entry.Factors.HeartRate, &entry.Factors.Inflammation,
			&entry.Factors.Social, &entry.Factors.Recovery,
			&entry.Target, &entry.Current, &createdStr,
		); err != nil {
			return nil, fmt.Errorf("scan tone row: %w", err)
		}
		if scenario.Valid {
			entry.Scenario = scenario.String
		}
		entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// #endregion recent-tone

// #region recent-validation

// RecentValidations returns the most recent validation entries, newest first.
func (s *Store) RecentValidations(limit int) ([]ValidationEntry, error) {
	rows, err := s.db.Query(
		`SELECT entry_id, level_number, focus_area, mean_confidence, status, questions_json, created_at
		 FROM validation_log ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list validation entries: %w", err)
	}
	defer rows.Close()

	var entries []ValidationEntry
	for rows.Next() {
		entry, err := scanValidation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanValidation(rows *sql.Rows) (ValidationEntry, error) {
	var entry ValidationEntry
	var status string
	var questionsJSON string
	var createdStr string
	if err := rows.Scan(
		&entry.EntryID, &entry.LevelNumber, &entry.FocusArea,
		&entry.MeanConfidence, &status, &questionsJSON, &createdStr,
	); err != nil {
		return ValidationEntry{}, fmt.Errorf("scan validation row: %w", err)
	}
	entry.Status = validation.LevelStatus(status)
	if err := json.Unmarshal([]byte(questionsJSON), &entry.Questions); err != nil {
		return ValidationEntry{}, fmt.Errorf("unmarshal questions: %w", err)
	}
	entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return entry, nil
}

// #endregion recent-validation

// #region standings

// LevelStandings returns the latest recorded result per level, ordered by
// level number.
func (s *Store) LevelStandings() ([]LevelStanding, error) {
	rows, err := s.db.Query(`
		SELECT v.level_number, v.focus_area, v.mean_confidence, v.status
		FROM validation_log v
		JOIN (
			SELECT level_number, MAX(created_at) AS latest
			FROM validation_log GROUP BY level_number
		) m ON v.level_number = m.level_number AND v.created_at = m.latest
		ORDER BY v.level_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("level standings: %w", err)
	}
	defer rows.Close()

	var standings []LevelStanding
	for rows.Next() {
		var st LevelStanding
		var status string
		if err := rows.Scan(&st.LevelNumber, &st.FocusArea, &st.MeanConfidence, &status); err != nil {
			return nil, fmt.Errorf("scan standing: %w", err)
		}
		st.Status = validation.LevelStatus(status)
		standings = append(standings, st)
	}
	return standings, rows.Err()
}

// #endregion standings

// #region aggregate

// ValidationAggregate summarizes every persisted validation entry.
func (s *Store) ValidationAggregate() (Aggregate, error) {
	var agg Aggregate
	var mean sql.NullFloat64
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		       AVG(mean_confidence)
		FROM validation_log`, string(validation.StatusPassed),
	).Scan(&agg.TotalEntries, &agg.Passed, &mean)
	if err != nil {
		return Aggregate{}, fmt.Errorf("validation aggregate: %w", err)
	}
	agg.NeedsRefinement = agg.TotalEntries - agg.Passed
	if mean.Valid {
		agg.MeanConfidence = mean.Float64
	}
	return agg, nil
}

// ToneTrend returns the mean target over the most recent tone entries.
// Returns 0 with ok=false when the log is empty.
func (s *Store) ToneTrend(lastN int) (float64, bool, error) {
	var mean sql.NullFloat64
	err := s.db.QueryRow(`
		SELECT AVG(target) FROM (
			SELECT target FROM tone_log ORDER BY created_at DESC LIMIT ?
		)`, lastN,
	).Scan(&mean)
	if err != nil {
		return 0, false, fmt.Errorf("tone trend: %w", err)
	}
	if !mean.Valid {
		return 0, false, nil
	}
	return mean.Float64, true, nil
}

// #endregion aggregate

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
