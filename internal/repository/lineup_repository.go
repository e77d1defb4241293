package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// LineupRepo manages lineup templates and their ordered entries.
type LineupRepo struct {
    db *sql.DB
}

// NewLineupRepo constructs a LineupRepo with the given DB handle.
func NewLineupRepo(db *sql.DB) *LineupRepo {
    return &LineupRepo{db: db}
}

// DB exposes the underlying sql.DB for caller-managed transactions.
func (r *LineupRepo) DB() *sql.DB {
    return r.db
}

// Create inserts a lineup header row and assigns the generated ID.
func (r *LineupRepo) Create(ctx context.Context, l *model.Lineup) error {
    const q = `INSERT INTO lineups (team_id, name, with_dh) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, l.TeamID, l.Name, l.WithDH)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    l.ID = uint64(id)
    const sel = `SELECT id, team_id, name, with_dh, created_at, updated_at FROM lineups WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, l.ID).Scan(&l.ID, &l.TeamID, &l.Name, &l.WithDH, &l.CreatedAt, &l.UpdatedAt)
}

// GetByID retrieves a lineup header, returning ErrLineupNotFound
// when no row matches.
func (r *LineupRepo) GetByID(ctx context.Context, id uint64) (*model.Lineup, error) {
    const q = `SELECT id, team_id, name, with_dh, created_at, updated_at FROM lineups WHERE id = ?`
    var l model.Lineup
    err := r.db.QueryRowContext(ctx, q, id).Scan(&l.ID, &l.TeamID, &l.Name, &l.WithDH, &l.CreatedAt, &l.UpdatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrLineupNotFound
    }
    if err != nil {
        return nil, err
    }
    return &l, nil
}

// ListByTeam returns a team's lineup templates, newest first.
func (r *LineupRepo) ListByTeam(ctx context.Context, teamID uint64) ([]model.Lineup, error) {
    const q = `SELECT id, team_id, name, with_dh, created_at, updated_at FROM lineups WHERE team_id = ? ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, teamID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Lineup
    for rows.Next() {
        var l model.Lineup
        if err := rows.Scan(&l.ID, &l.TeamID, &l.Name, &l.WithDH, &l.CreatedAt, &l.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, l)
    }
    return out, rows.Err()
}

// ReplaceEntries swaps a lineup's entry set in one transaction: the
// old entries are removed and the new ones bulk-inserted.  Callers
// validate the entry set (scorebook.ValidateLineup) before calling;
// no partial write survives a failure.
func (r *LineupRepo) ReplaceEntries(ctx context.Context, lineupID uint64, entries []model.LineupEntry) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    if _, err := tx.ExecContext(ctx, `DELETE FROM lineup_entries WHERE lineup_id = ?`, lineupID); err != nil {
        return err
    }
    if len(entries) > 0 {
        query := `INSERT INTO lineup_entries (lineup_id, player_id, batting_order, position) VALUES `
        args := make([]interface{}, 0, len(entries)*4)
        for i, e := range entries {
            if i > 0 {
                query += ","
            }
            query += "(?, ?, ?, ?)"
            args = append(args, lineupID, e.PlayerID, e.BattingOrder, e.Position)
        }
        if _, err := tx.ExecContext(ctx, query, args...); err != nil {
            return err
        }
    }
    if _, err := tx.ExecContext(ctx, `UPDATE lineups SET updated_at = NOW() WHERE id = ?`, lineupID); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// ListEntries returns a lineup's entries ordered by batting order.
func (r *LineupRepo) ListEntries(ctx context.Context, lineupID uint64) ([]model.LineupEntry, error) {
    const q = `SELECT id, lineup_id, player_id, batting_order, position, created_at
               FROM lineup_entries WHERE lineup_id = ? ORDER BY batting_order`
    rows, err := r.db.QueryContext(ctx, q, lineupID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.LineupEntry
    for rows.Next() {
        var e model.LineupEntry
        if err := rows.Scan(&e.ID, &e.LineupID, &e.PlayerID, &e.BattingOrder, &e.Position, &e.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, e)
    }
    return out, rows.Err()
}
