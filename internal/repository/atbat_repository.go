package repository

import (
    "context"
    "database/sql"
    "encoding/json"
    "errors"
    "fmt"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// AtBatRepo persists the at-bat event ledger.  Runner snapshots and
// out-type annotations are stored as JSON documents so the column
// names match the historical schema (base_runners, base_runner_outs,
// result, rbi, runs_scored, team_side).  team_side is normalized on
// scan: rows written before the column existed carry '' and come
// back as home.
type AtBatRepo struct {
    db *sql.DB
}

// NewAtBatRepo constructs an AtBatRepo with the given DB handle.
func NewAtBatRepo(db *sql.DB) *AtBatRepo {
    return &AtBatRepo{db: db}
}

const atBatCols = `id, game_id, player_id, inning, team_side, occurrence, notation, result,
    runs_scored, rbi, base_runners, base_runner_outs, out_types,
    field_area, field_zone, field_distance, field_angle, created_at, updated_at`

func marshalBases(b model.Bases) (string, error) {
    raw, err := json.Marshal(b)
    if err != nil {
        return "", fmt.Errorf("marshal bases: %w", err)
    }
    return string(raw), nil
}

func scanAtBatRow(scan func(dest ...any) error) (model.AtBat, error) {
    var (
        ab                    model.AtBat
        side                  string
        runners, outs, otypes []byte
        area, zone            sql.NullString
        distance, angle       sql.NullFloat64
    )
    err := scan(&ab.ID, &ab.GameID, &ab.PlayerID, &ab.Inning, &side, &ab.Occurrence,
        &ab.Notation, &ab.Result, &ab.RunsScored, &ab.RBI, &runners, &outs, &otypes,
        &area, &zone, &distance, &angle, &ab.CreatedAt, &ab.UpdatedAt)
    if err != nil {
        return ab, err
    }
    ab.TeamSide = model.TeamSide(side).Normalize()
    if len(runners) > 0 {
        if err := json.Unmarshal(runners, &ab.BaseRunners); err != nil {
            return ab, fmt.Errorf("unmarshal base_runners: %w", err)
        }
    }
    if len(outs) > 0 {
        if err := json.Unmarshal(outs, &ab.BaseRunnerOuts); err != nil {
            return ab, fmt.Errorf("unmarshal base_runner_outs: %w", err)
        }
    }
    if len(otypes) > 0 {
        if err := json.Unmarshal(otypes, &ab.OutTypes); err != nil {
            return ab, fmt.Errorf("unmarshal out_types: %w", err)
        }
    }
    if area.Valid {
        ab.Location.Area = area.String
    }
    if zone.Valid {
        ab.Location.Zone = zone.String
    }
    if distance.Valid {
        ab.Location.Distance = distance.Float64
    }
    if angle.Valid {
        ab.Location.Angle = angle.Float64
    }
    return ab, nil
}

// ListAtBats returns the complete ledger for a game in insertion
// order.
func (r *AtBatRepo) ListAtBats(ctx context.Context, gameID uint64) ([]model.AtBat, error) {
    const q = `SELECT ` + atBatCols + ` FROM at_bats WHERE game_id = ? ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q, gameID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.AtBat
    for rows.Next() {
        ab, err := scanAtBatRow(rows.Scan)
        if err != nil {
            return nil, err
        }
        out = append(out, ab)
    }
    return out, rows.Err()
}

// FindAtBat returns the highest-occurrence row for the logical cell
// (game, player, inning, team side), or nil when the cell is empty.
// The legacy '' side matches home so old rows stay addressable.
func (r *AtBatRepo) FindAtBat(ctx context.Context, gameID, playerID uint64, inning int, side model.TeamSide) (*model.AtBat, error) {
    side = side.Normalize()
    q := `SELECT ` + atBatCols + ` FROM at_bats
          WHERE game_id = ? AND player_id = ? AND inning = ? AND team_side = ?
          ORDER BY occurrence DESC LIMIT 1`
    args := []interface{}{gameID, playerID, inning, string(side)}
    if side == model.TeamSideHome {
        q = `SELECT ` + atBatCols + ` FROM at_bats
             WHERE game_id = ? AND player_id = ? AND inning = ? AND team_side IN (?, '')
             ORDER BY occurrence DESC LIMIT 1`
    }
    ab, err := scanAtBatRow(r.db.QueryRowContext(ctx, q, args...).Scan)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &ab, nil
}

// InsertAtBat appends a new ledger row and fills in the generated ID
// and timestamps.
func (r *AtBatRepo) InsertAtBat(ctx context.Context, ab *model.AtBat) error {
    runners, err := marshalBases(ab.BaseRunners)
    if err != nil {
        return err
    }
    outs, err := marshalBases(ab.BaseRunnerOuts)
    if err != nil {
        return err
    }
    otypes, err := json.Marshal(ab.OutTypes)
    if err != nil {
        return fmt.Errorf("marshal out_types: %w", err)
    }
    const q = `INSERT INTO at_bats (game_id, player_id, inning, team_side, occurrence, notation, result,
        runs_scored, rbi, base_runners, base_runner_outs, out_types, field_area, field_zone, field_distance, field_angle)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, ab.GameID, ab.PlayerID, ab.Inning, string(ab.TeamSide),
        ab.Occurrence, ab.Notation, string(ab.Result), ab.RunsScored, ab.RBI,
        runners, outs, string(otypes), ab.Location.Area, ab.Location.Zone, ab.Location.Distance, ab.Location.Angle)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    ab.ID = uint64(id)
    const sel = `SELECT ` + atBatCols + ` FROM at_bats WHERE id = ?`
    got, err := scanAtBatRow(r.db.QueryRowContext(ctx, sel, ab.ID).Scan)
    if err != nil {
        return err
    }
    *ab = got
    return nil
}

// UpdateAtBat overwrites an existing ledger row in place.  Used by
// the upsert path when the logical cell already has an event; the
// row keeps its identity and occurrence.
func (r *AtBatRepo) UpdateAtBat(ctx context.Context, ab *model.AtBat) error {
    runners, err := marshalBases(ab.BaseRunners)
    if err != nil {
        return err
    }
    outs, err := marshalBases(ab.BaseRunnerOuts)
    if err != nil {
        return err
    }
    otypes, err := json.Marshal(ab.OutTypes)
    if err != nil {
        return fmt.Errorf("marshal out_types: %w", err)
    }
    const q = `UPDATE at_bats SET team_side = ?, notation = ?, result = ?, runs_scored = ?, rbi = ?,
        base_runners = ?, base_runner_outs = ?, out_types = ?,
        field_area = ?, field_zone = ?, field_distance = ?, field_angle = ?, updated_at = NOW()
        WHERE id = ?`
    _, err = r.db.ExecContext(ctx, q, string(ab.TeamSide), ab.Notation, string(ab.Result),
        ab.RunsScored, ab.RBI, runners, outs, string(otypes),
        ab.Location.Area, ab.Location.Zone, ab.Location.Distance, ab.Location.Angle, ab.ID)
    return err
}

// DeleteAtBats bulk-clears a game's ledger and reports how many rows
// went away.  Individual at-bats are never deleted; this is the only
// removal path.
func (r *AtBatRepo) DeleteAtBats(ctx context.Context, gameID uint64) (int64, error) {
    res, err := r.db.ExecContext(ctx, `DELETE FROM at_bats WHERE game_id = ?`, gameID)
    if err != nil {
        return 0, err
    }
    return res.RowsAffected()
}
