// Package store handles SQLite persistence of user progress.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/lidtrain/lidtrain/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for progress data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS progress (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			xp INTEGER NOT NULL,
			streak INTEGER NOT NULL,
			max_streak INTEGER NOT NULL,
			answered INTEGER NOT NULL,
			correct INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS question_state (
			question_id TEXT PRIMARY KEY,
			completed INTEGER NOT NULL DEFAULT 0,
			incorrect INTEGER NOT NULL DEFAULT 0,
			flagged INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS badges (
			badge_id TEXT PRIMARY KEY
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the stored progress. A fresh database yields empty
// progress, not an error.
func (s *Store) Load(ctx context.Context) (*model.UserProgress, error) {
	p := model.NewUserProgress()

	row := s.db.QueryRowContext(ctx,
		`SELECT xp, streak, max_streak, answered, correct FROM progress WHERE id = 1`)
	err := row.Scan(&p.XP, &p.Streak, &p.MaxStreak, &p.Answered, &p.Correct)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, completed, incorrect, flagged FROM question_state`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for rows.Next() {
		var id string
		var completed, incorrect, flagged bool
		if err := rows.Scan(&id, &completed, &incorrect, &flagged); err != nil {
			return nil, err
		}
		if completed {
			p.Completed[id] = struct{}{}
		}
		if incorrect {
			p.Incorrect[id] = struct{}{}
		}
		if flagged {
			p.Flagged[id] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	badgeRows, err := s.db.QueryContext(ctx, `SELECT badge_id FROM badges`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := badgeRows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for badgeRows.Next() {
		var id string
		if err := badgeRows.Scan(&id); err != nil {
			return nil, err
		}
		p.Badges[id] = struct{}{}
	}
	if err := badgeRows.Err(); err != nil {
		return nil, err
	}

	return p, nil
}

// Save writes the progress wholesale inside one transaction.
func (s *Store) Save(ctx context.Context, p *model.UserProgress) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO progress (id, xp, streak, max_streak, answered, correct)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			xp = excluded.xp,
			streak = excluded.streak,
			max_streak = excluded.max_streak,
			answered = excluded.answered,
			correct = excluded.correct`,
		p.XP, p.Streak, p.MaxStreak, p.Answered, p.Correct); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM question_state`); err != nil {
		return err
	}
	ids := map[string]struct{}{}
	for id := range p.Completed {
		ids[id] = struct{}{}
	}
	for id := range p.Incorrect {
		ids[id] = struct{}{}
	}
	for id := range p.Flagged {
		ids[id] = struct{}{}
	}
	if len(ids) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO question_state (question_id, completed, incorrect, flagged)
			 VALUES (?, ?, ?, ?)`)
		if perr != nil {
			err = perr
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for id := range ids {
			if _, err = stmt.ExecContext(ctx, id,
				p.IsCompleted(id), p.IsIncorrect(id), p.IsFlagged(id)); err != nil {
				return err
			}
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM badges`); err != nil {
		return err
	}
	for id := range p.Badges {
		if _, err = tx.ExecContext(ctx, `INSERT INTO badges (badge_id) VALUES (?)`, id); err != nil {
			return err
		}
	}

	err = tx.Commit()
	return err
}

// Reset wipes all stored progress and returns a fresh empty state.
func (s *Store) Reset(ctx context.Context) (*model.UserProgress, error) {
	for _, stmt := range []string{
		`DELETE FROM progress`,
		`DELETE FROM question_state`,
		`DELETE FROM badges`,
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return nil, err
		}
	}
	return model.NewUserProgress(), nil
}
