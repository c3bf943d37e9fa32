package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/datefocus/internal/database"
)

// CommitRepo stores committed calendar values.
type CommitRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewCommitRepo(db *sql.DB) *CommitRepo {
	return &CommitRepo{db: db, now: database.Now}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Insert records value and returns the stored row.
func (r *CommitRepo) Insert(ctx context.Context, value, locale string) (Commit, error) {
	return r.insert(ctx, r.db, value, locale)
}

// Record inserts value and trims history to the newest keep rows in one
// transaction. A keep of zero or less disables trimming.
func (r *CommitRepo) Record(ctx context.Context, value, locale string, keep int) (Commit, error) {
	var c Commit
	err := database.WithTx(r.db, func(tx *sql.Tx) error {
		var err error
		if c, err = r.insert(ctx, tx, value, locale); err != nil {
			return err
		}
		if keep <= 0 {
			return nil
		}
		_, err = prune(ctx, tx, keep)
		return err
	})
	if err != nil {
		return Commit{}, err
	}
	return c, nil
}

func (r *CommitRepo) insert(ctx context.Context, ex execer, value, locale string) (Commit, error) {
	c := Commit{
		ID:          uuid.NewString(),
		Value:       value,
		Locale:      locale,
		CommittedAt: r.now(),
	}
	_, err := ex.ExecContext(ctx, `
	INSERT INTO commits(id, value, locale, committed_at) VALUES (?, ?, ?, ?);
	`, c.ID, c.Value, c.Locale, c.CommittedAt)
	if err != nil {
		return Commit{}, fmt.Errorf("insert commit: %w", err)
	}
	return c, nil
}

// Latest returns the most recent commit, or nil when there is none.
func (r *CommitRepo) Latest(ctx context.Context) (*Commit, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, value, locale, committed_at FROM commits
	ORDER BY committed_at DESC, rowid DESC LIMIT 1`)
	var c Commit
	if err := row.Scan(&c.ID, &c.Value, &c.Locale, &c.CommittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// List returns up to limit commits, newest first.
func (r *CommitRepo) List(ctx context.Context, limit int) ([]Commit, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, value, locale, committed_at FROM commits
	ORDER BY committed_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Commit
	for rows.Next() {
		var c Commit
		if err := rows.Scan(&c.ID, &c.Value, &c.Locale, &c.CommittedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Prune keeps only the newest keep commits.
func (r *CommitRepo) Prune(ctx context.Context, keep int) (int64, error) {
	return prune(ctx, r.db, keep)
}

func prune(ctx context.Context, ex execer, keep int) (int64, error) {
	res, err := ex.ExecContext(ctx, `
	DELETE FROM commits WHERE id NOT IN (
		SELECT id FROM commits ORDER BY committed_at DESC, rowid DESC LIMIT ?
	)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune commits: %w", err)
	}
	return res.RowsAffected()
}
