package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	"WeeklyPulse/internal/calculator"
	"WeeklyPulse/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while
	// the bot writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			symbol             TEXT NOT NULL,
			current_price      REAL,
			weeks_ahead        INTEGER,
			target_date        TEXT,
			expected_price     REAL,
			optimistic_price   REAL,
			pessimistic_price  REAL,
			expected_change    REAL,
			optimistic_change  REAL,
			pessimistic_change REAL,
			weeks_analyzed     INTEGER,
			positive_weeks     INTEGER,
			win_rate           REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS timeframe_stats (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        INTEGER NOT NULL,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT NOT NULL,
			period        TEXT NOT NULL,
			average       REAL,
			minimum       REAL,
			maximum       REAL,
			std_dev       REAL,
			count         INTEGER,
			data_start    TEXT,
			data_end      TEXT,
			years_of_data REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tf_run ON timeframe_stats(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis stores one run plus one row per produced timeframe.
// Projection columns stay NULL when the run carried no projection.
func (r *SQLiteRecorder) RecordAnalysis(a *model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := a.GeneratedAt.Unix()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var (
		weeksAhead                                                 sql.NullInt64
		targetDate                                                 sql.NullString
		expected, optimistic, pessimistic, expChg, optChg, pessChg sql.NullFloat64
	)
	if p := a.Projection; p != nil {
		weeksAhead = sql.NullInt64{Int64: int64(p.WeeksAhead), Valid: true}
		targetDate = sql.NullString{String: p.TargetDate.Format("2006-01-02"), Valid: true}
		expected = sql.NullFloat64{Float64: p.ExpectedPrice, Valid: true}
		optimistic = sql.NullFloat64{Float64: p.OptimisticPrice, Valid: true}
		pessimistic = sql.NullFloat64{Float64: p.PessimisticPrice, Valid: true}
		expChg = sql.NullFloat64{Float64: p.ExpectedChange, Valid: true}
		optChg = sql.NullFloat64{Float64: p.OptimisticChange, Valid: true}
		pessChg = sql.NullFloat64{Float64: p.PessimisticChange, Valid: true}
	}

	positive, winRate := calculator.WinRate(a.WeeklyReturns)

	res, err := tx.Exec(`INSERT INTO analysis_runs
		(timestamp, symbol, current_price, weeks_ahead, target_date,
		 expected_price, optimistic_price, pessimistic_price,
		 expected_change, optimistic_change, pessimistic_change,
		 weeks_analyzed, positive_weeks, win_rate)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		ts, a.Symbol, a.CurrentPrice, weeksAhead, targetDate,
		expected, optimistic, pessimistic,
		expChg, optChg, pessChg,
		len(a.WeeklyReturns), positive, winRate,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, w := range calculator.TimeframeWindows {
		rec, ok := a.Timeframes[w.Label]
		if !ok {
			continue
		}
		if _, err := tx.Exec(`INSERT INTO timeframe_stats
			(run_id, timestamp, symbol, period, average, minimum, maximum,
			 std_dev, count, data_start, data_end, years_of_data)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			runID, ts, a.Symbol, w.Label,
			rec.Average, rec.Minimum, rec.Maximum, rec.StdDev, rec.Count,
			rec.DataStart.Format("2006-01-02"), rec.DataEnd.Format("2006-01-02"),
			rec.YearsOfData,
		); err != nil {
			return fmt.Errorf("insert timeframe %s: %w", w.Label, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
