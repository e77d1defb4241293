package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// PlayerRepo manages persistence for roster players.
type PlayerRepo struct {
    db *sql.DB
}

// NewPlayerRepo constructs a PlayerRepo with the given DB handle.
func NewPlayerRepo(db *sql.DB) *PlayerRepo {
    return &PlayerRepo{db: db}
}

const playerCols = `id, team_id, name, number, photo_url, is_active, created_at, updated_at`

func scanPlayerRow(scan func(dest ...any) error) (model.Player, error) {
    var p model.Player
    var number sql.NullInt64
    var photo sql.NullString
    err := scan(&p.ID, &p.TeamID, &p.Name, &number, &photo, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
    if err != nil {
        return p, err
    }
    if number.Valid {
        n := uint32(number.Int64)
        p.Number = &n
    }
    if photo.Valid {
        p.PhotoURL = &photo.String
    }
    return p, nil
}

// Create inserts a new player and assigns the generated ID back.
func (r *PlayerRepo) Create(ctx context.Context, p *model.Player) error {
    const q = `INSERT INTO players (team_id, name, number, photo_url, is_active) VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, p.TeamID, p.Name, p.Number, p.PhotoURL, p.IsActive)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    p.ID = uint64(id)
    const sel = `SELECT ` + playerCols + ` FROM players WHERE id = ?`
    got, err := scanPlayerRow(r.db.QueryRowContext(ctx, sel, p.ID).Scan)
    if err != nil {
        return err
    }
    *p = got
    return nil
}

// GetByID retrieves a player, returning ErrPlayerNotFound when no
// row matches.
func (r *PlayerRepo) GetByID(ctx context.Context, id uint64) (*model.Player, error) {
    const q = `SELECT ` + playerCols + ` FROM players WHERE id = ?`
    p, err := scanPlayerRow(r.db.QueryRowContext(ctx, q, id).Scan)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrPlayerNotFound
    }
    if err != nil {
        return nil, err
    }
    return &p, nil
}

// ListByTeam returns a team's roster ordered by jersey number, then
// name.
func (r *PlayerRepo) ListByTeam(ctx context.Context, teamID uint64) ([]model.Player, error) {
    const q = `SELECT ` + playerCols + ` FROM players WHERE team_id = ? ORDER BY number IS NULL, number, name`
    rows, err := r.db.QueryContext(ctx, q, teamID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Player
    for rows.Next() {
        p, err := scanPlayerRow(rows.Scan)
        if err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    return out, rows.Err()
}

// Update overwrites a player's editable fields.
func (r *PlayerRepo) Update(ctx context.Context, p *model.Player) error {
    const q = `UPDATE players SET name = ?, number = ?, photo_url = ?, is_active = ?, updated_at = NOW() WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, p.Name, p.Number, p.PhotoURL, p.IsActive, p.ID)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        // Either missing or identical values; disambiguate for the caller.
        if _, err := r.GetByID(ctx, p.ID); err != nil {
            return err
        }
    }
    return nil
}

// Delete removes a player.  Players referenced by at-bats or lineup
// entries are protected by ErrConflict so historical scorebooks stay
// resolvable.
func (r *PlayerRepo) Delete(ctx context.Context, id uint64) error {
    var refs int
    const q = `SELECT (SELECT COUNT(*) FROM at_bats WHERE player_id = ?) + (SELECT COUNT(*) FROM lineup_entries WHERE player_id = ?)`
    if err := r.db.QueryRowContext(ctx, q, id, id).Scan(&refs); err != nil {
        return err
    }
    if refs > 0 {
        return ErrConflict
    }
    res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        return ErrPlayerNotFound
    }
    return nil
}
