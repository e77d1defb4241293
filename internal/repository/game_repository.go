package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// GameRepo manages persistence for games.  Status transitions are
// one-way (scheduled -> in_progress -> completed); any other
// transition is refused with ErrConflict.
type GameRepo struct {
    db *sql.DB
}

// NewGameRepo constructs a GameRepo with the given DB handle.
func NewGameRepo(db *sql.DB) *GameRepo {
    return &GameRepo{db: db}
}

// DB exposes the underlying sql.DB for caller-managed transactions.
func (r *GameRepo) DB() *sql.DB {
    return r.db
}

const gameCols = `id, team_id, opponent, scheduled_at, our_score, opponent_score, innings, status,
    home_lineup_id, opponent_lineup_id, opponent_bats_first, created_at, updated_at`

func scanGameRow(scan func(dest ...any) error) (model.Game, error) {
    var g model.Game
    var homeLineup, oppLineup sql.NullInt64
    err := scan(&g.ID, &g.TeamID, &g.Opponent, &g.ScheduledAt, &g.OurScore, &g.OpponentScore,
        &g.Innings, &g.Status, &homeLineup, &oppLineup, &g.OpponentBatsFirst, &g.CreatedAt, &g.UpdatedAt)
    if err != nil {
        return g, err
    }
    if homeLineup.Valid {
        id := uint64(homeLineup.Int64)
        g.HomeLineupID = &id
    }
    if oppLineup.Valid {
        id := uint64(oppLineup.Int64)
        g.OpponentLineupID = &id
    }
    return g, nil
}

// Create inserts a new game in status scheduled and assigns the
// generated ID back.
func (r *GameRepo) Create(ctx context.Context, g *model.Game) error {
    const q = `INSERT INTO games (team_id, opponent, scheduled_at, opponent_bats_first) VALUES (?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, g.TeamID, g.Opponent, g.ScheduledAt, g.OpponentBatsFirst)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    g.ID = uint64(id)
    const sel = `SELECT ` + gameCols + ` FROM games WHERE id = ?`
    got, err := scanGameRow(r.db.QueryRowContext(ctx, sel, g.ID).Scan)
    if err != nil {
        return err
    }
    *g = got
    return nil
}

// GetByID retrieves a game, returning ErrGameNotFound when no row
// matches.
func (r *GameRepo) GetByID(ctx context.Context, id uint64) (*model.Game, error) {
    const q = `SELECT ` + gameCols + ` FROM games WHERE id = ?`
    g, err := scanGameRow(r.db.QueryRowContext(ctx, q, id).Scan)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrGameNotFound
    }
    if err != nil {
        return nil, err
    }
    return &g, nil
}

// GetGame adapts GetByID to the scorebook.Store interface.
func (r *GameRepo) GetGame(ctx context.Context, id uint64) (*model.Game, error) {
    return r.GetByID(ctx, id)
}

// ListByTeam returns a team's games ordered by schedule, newest
// first.
func (r *GameRepo) ListByTeam(ctx context.Context, teamID uint64) ([]model.Game, error) {
    const q = `SELECT ` + gameCols + ` FROM games WHERE team_id = ? ORDER BY scheduled_at DESC`
    rows, err := r.db.QueryContext(ctx, q, teamID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Game
    for rows.Next() {
        g, err := scanGameRow(rows.Scan)
        if err != nil {
            return nil, err
        }
        out = append(out, g)
    }
    return out, rows.Err()
}

// validTransition holds the single allowed next status per status.
var validTransition = map[string]string{
    model.GameScheduled:  model.GameInProgress,
    model.GameInProgress: model.GameCompleted,
}

// UpdateStatus advances a game's status.  Only the forward transition
// is allowed; anything else returns ErrConflict.
func (r *GameRepo) UpdateStatus(ctx context.Context, id uint64, next string) (*model.Game, error) {
    g, err := r.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    if validTransition[g.Status] != next {
        return nil, ErrConflict
    }
    const q = `UPDATE games SET status = ?, updated_at = NOW() WHERE id = ?`
    if _, err := r.db.ExecContext(ctx, q, next, id); err != nil {
        return nil, err
    }
    g.Status = next
    return g, nil
}

// SetLineups attaches the two lineup references to a game.  Either
// side may be nil to leave it unchanged.
func (r *GameRepo) SetLineups(ctx context.Context, id uint64, homeLineupID, opponentLineupID *uint64) error {
    g, err := r.GetByID(ctx, id)
    if err != nil {
        return err
    }
    if g.Status == model.GameCompleted {
        return ErrConflict
    }
    if homeLineupID == nil {
        homeLineupID = g.HomeLineupID
    }
    if opponentLineupID == nil {
        opponentLineupID = g.OpponentLineupID
    }
    const q = `UPDATE games SET home_lineup_id = ?, opponent_lineup_id = ?, updated_at = NOW() WHERE id = ?`
    _, err = r.db.ExecContext(ctx, q, homeLineupID, opponentLineupID, id)
    return err
}

// UpdateGameScore overwrites the stored our_score.  Called by the
// score reconciler after every ledger mutation; never incremental.
func (r *GameRepo) UpdateGameScore(ctx context.Context, id uint64, score int) error {
    const q = `UPDATE games SET our_score = ?, updated_at = NOW() WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, score, id)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        if _, err := r.GetByID(ctx, id); err != nil {
            return err
        }
    }
    return nil
}

// UpdateManualFields sets the fields scoring does not derive: the
// opponent's score and the innings-played count.
func (r *GameRepo) UpdateManualFields(ctx context.Context, id uint64, opponentScore, innings int) error {
    g, err := r.GetByID(ctx, id)
    if err != nil {
        return err
    }
    if g.Status == model.GameCompleted {
        return ErrConflict
    }
    const q = `UPDATE games SET opponent_score = ?, innings = ?, updated_at = NOW() WHERE id = ?`
    _, err = r.db.ExecContext(ctx, q, opponentScore, innings, id)
    return err
}

// ResetGame returns the game row to its initial state: scores zeroed,
// innings cleared, status back to scheduled, lineup references
// removed.  The at-bat ledger must already be empty; ClearGame in the
// scorebook package sequences the two steps.
func (r *GameRepo) ResetGame(ctx context.Context, id uint64) error {
    const q = `UPDATE games SET our_score = 0, opponent_score = 0, innings = 0, status = ?,
        home_lineup_id = NULL, opponent_lineup_id = NULL, updated_at = NOW() WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, model.GameScheduled, id)
    if err != nil {
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        if _, err := r.GetByID(ctx, id); err != nil {
            return err
        }
    }
    return nil
}
