package storage

import (
	"fmt"
	"time"
)

// Run outcomes.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// RunRecord is one finished attempt at a level.
type RunRecord struct {
	ID        int64
	GameID    string
	LevelID   string
	Player    string
	Outcome   string
	Elapsed   time.Duration
	Fish      int
	FishTotal int
	Attempt   int
	CreatedAt time.Time
}

// LevelSummary aggregates every attempt at one level.
type LevelSummary struct {
	LevelID  string
	Attempts int
	Wins     int
	Deaths   int
	BestTime time.Duration // Zero when the level was never won
}

// SaveRun records a finished level attempt.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: invalid run outcome %q", r.Outcome)
	}
	if r.Attempt <= 0 {
		r.Attempt = 1
	}

	res, err := s.db.Exec(
		`INSERT INTO runs (game_id, level_id, player, outcome, elapsed_ms, fish, fish_total, attempt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.LevelID, r.Player, r.Outcome, r.Elapsed.Milliseconds(), r.Fish, r.FishTotal, r.Attempt,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestRuns returns the fastest winning runs for a level.
func (s *Store) BestRuns(gameID, levelID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, player, outcome, elapsed_ms, fish, fish_total, attempt, created_at
		 FROM runs
		 WHERE game_id = ? AND level_id = ? AND outcome = ?
		 ORDER BY elapsed_ms ASC, id ASC
		 LIMIT ?`,
		gameID, levelID, OutcomeWon, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var elapsedMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.LevelID, &r.Player, &r.Outcome,
			&elapsedMS, &r.Fish, &r.FishTotal, &r.Attempt, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// LevelSummaries aggregates runs per level, ordered by level ID.
func (s *Store) LevelSummaries(gameID string) ([]LevelSummary, error) {
	rows, err := s.db.Query(
		`SELECT level_id,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'won' THEN elapsed_ms END), 0)
		 FROM runs
		 WHERE game_id = ?
		 GROUP BY level_id
		 ORDER BY level_id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}
	defer rows.Close()

	var out []LevelSummary
	for rows.Next() {
		var ls LevelSummary
		var bestMS int64
		if err := rows.Scan(&ls.LevelID, &ls.Attempts, &ls.Wins, &ls.Deaths, &bestMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		ls.BestTime = time.Duration(bestMS) * time.Millisecond
		out = append(out, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
