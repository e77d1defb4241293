package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// TeamRepo manages persistence for teams.  Every mutating method
// verifies ownership and returns ErrForbidden when the team belongs
// to a different coach.
type TeamRepo struct {
    db *sql.DB
}

// NewTeamRepo constructs a TeamRepo with the given DB handle.
func NewTeamRepo(db *sql.DB) *TeamRepo {
    return &TeamRepo{db: db}
}

// DB exposes the underlying sql.DB so callers can begin transactions
// spanning multiple repositories.
func (r *TeamRepo) DB() *sql.DB {
    return r.db
}

const teamCols = `id, owner_id, name, season, created_at, updated_at`

func scanTeam(row *sql.Row) (*model.Team, error) {
    var t model.Team
    var season sql.NullString
    err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &season, &t.CreatedAt, &t.UpdatedAt)
    if err != nil {
        return nil, err
    }
    if season.Valid {
        t.Season = &season.String
    }
    return &t, nil
}

// Create inserts a new team and assigns the generated ID back to the
// struct.
func (r *TeamRepo) Create(ctx context.Context, t *model.Team) error {
    const q = `INSERT INTO teams (owner_id, name, season) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, t.OwnerID, t.Name, t.Season)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    t.ID = uint64(id)
    const sel = `SELECT ` + teamCols + ` FROM teams WHERE id = ?`
    got, err := scanTeam(r.db.QueryRowContext(ctx, sel, t.ID))
    if err != nil {
        return err
    }
    *t = *got
    return nil
}

// GetByID retrieves a team, returning ErrTeamNotFound when no row
// matches.
func (r *TeamRepo) GetByID(ctx context.Context, id uint64) (*model.Team, error) {
    const q = `SELECT ` + teamCols + ` FROM teams WHERE id = ?`
    t, err := scanTeam(r.db.QueryRowContext(ctx, q, id))
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrTeamNotFound
    }
    return t, err
}

// GetOwned retrieves a team and enforces that it belongs to ownerID.
func (r *TeamRepo) GetOwned(ctx context.Context, id, ownerID uint64) (*model.Team, error) {
    t, err := r.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    if t.OwnerID != ownerID {
        return nil, ErrForbidden
    }
    return t, nil
}

// ListByOwner returns all teams managed by a coach, newest first.
func (r *TeamRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Team, error) {
    const q = `SELECT ` + teamCols + ` FROM teams WHERE owner_id = ? ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, ownerID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Team
    for rows.Next() {
        var t model.Team
        var season sql.NullString
        if err := rows.Scan(&t.ID, &t.OwnerID, &t.Name, &season, &t.CreatedAt, &t.UpdatedAt); err != nil {
            return nil, err
        }
        if season.Valid {
            t.Season = &season.String
        }
        out = append(out, t)
    }
    return out, rows.Err()
}

// Update renames a team and/or changes its season label.
func (r *TeamRepo) Update(ctx context.Context, id, ownerID uint64, name string, season *string) error {
    if _, err := r.GetOwned(ctx, id, ownerID); err != nil {
        return err
    }
    const q = `UPDATE teams SET name = ?, season = ?, updated_at = NOW() WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, name, season, id)
    return err
}

// Delete removes a team.  Teams with recorded games are protected by
// ErrConflict; the caller must delete or reset the games first.
func (r *TeamRepo) Delete(ctx context.Context, id, ownerID uint64) error {
    if _, err := r.GetOwned(ctx, id, ownerID); err != nil {
        return err
    }
    var games int
    if err := r.db.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM games WHERE team_id = ?`, id).Scan(&games); err != nil {
        return err
    }
    if games > 0 {
        return ErrConflict
    }
    _, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
    return err
}
