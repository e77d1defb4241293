package scorebook

import (
    "context"
    "fmt"
    "log"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// Service is the at-bat ledger entry point.  It owns the save
// sequence: interpret the notation, derive the run flag, upsert the
// ledger row keyed on (player, inning, team side), then recompute
// and overwrite the game score from the full ledger.
//
// The ledger write and the score write are two sequential operations,
// not one transaction.  A concurrent save from a second session can
// leave a transiently stale score; it self-corrects on the next save.
// Single logical writer per game is assumed.
type Service struct {
    store Store
}

// NewService constructs a Service over the given store.
func NewService(store Store) *Service {
    if store == nil {
        panic("nil store passed to scorebook.NewService")
    }
    return &Service{store: store}
}

// SaveInput carries one scoring UI save.  BaseRunners arrives already
// transformed: a "run scored" action is {Home: true} with the other
// bases cleared.  NewOccurrence forces a fresh row for a batter
// appearing a second time in the same inning instead of updating the
// previous one.
type SaveInput struct {
    GameID         uint64
    PlayerID       uint64
    Inning         int
    TeamSide       model.TeamSide
    Notation       string
    BaseRunners    model.Bases
    BaseRunnerOuts model.Bases
    OutTypes       model.OutTypes
    RBI            int
    Location       model.FieldLocation
    NewOccurrence  bool
}

// SaveAtBat records or corrects one plate appearance.
//
// Preconditions, checked before anything is written: the game exists,
// is not completed, and has both lineups set.  Saving the same
// logical (player, inning, team side) cell twice updates the existing
// row, so a double-tapped submit is safe.
//
// The returned at-bat reflects the persisted row.  When the ledger
// write succeeds but the score overwrite fails, the at-bat is
// returned together with an error wrapping ErrScoreWrite; the caller
// surfaces the stale score without retrying or rolling back.
func (s *Service) SaveAtBat(ctx context.Context, in SaveInput) (*model.AtBat, error) {
    if in.Inning < 1 {
        return nil, ErrInvalidInning
    }
    if in.RBI < 0 {
        return nil, ErrInvalidRBI
    }
    side := in.TeamSide.Normalize()

    game, err := s.store.GetGame(ctx, in.GameID)
    if err != nil {
        return nil, fmt.Errorf("load game: %w", err)
    }
    if game.Status == model.GameCompleted {
        return nil, ErrGameCompleted
    }
    if !game.LineupsSet() {
        return nil, ErrLineupNotSet
    }

    result := Interpret(in.Notation)
    runs := RunsFromBases(in.BaseRunners)

    existing, err := s.store.FindAtBat(ctx, in.GameID, in.PlayerID, in.Inning, side)
    if err != nil {
        return nil, fmt.Errorf("find at-bat: %w", err)
    }

    var saved *model.AtBat
    switch {
    case existing != nil && !in.NewOccurrence:
        existing.TeamSide = side
        existing.Notation = in.Notation
        existing.Result = result
        existing.RunsScored = runs
        existing.RBI = in.RBI
        existing.BaseRunners = in.BaseRunners
        existing.BaseRunnerOuts = in.BaseRunnerOuts
        existing.OutTypes = in.OutTypes
        existing.Location = in.Location
        if err := s.store.UpdateAtBat(ctx, existing); err != nil {
            return nil, fmt.Errorf("update at-bat: %w", err)
        }
        saved = existing
    default:
        occurrence := 1
        if existing != nil {
            occurrence = existing.Occurrence + 1
        }
        ab := &model.AtBat{
            GameID:         in.GameID,
            PlayerID:       in.PlayerID,
            Inning:         in.Inning,
            TeamSide:       side,
            Occurrence:     occurrence,
            Notation:       in.Notation,
            Result:         result,
            RunsScored:     runs,
            RBI:            in.RBI,
            BaseRunners:    in.BaseRunners,
            BaseRunnerOuts: in.BaseRunnerOuts,
            OutTypes:       in.OutTypes,
            Location:       in.Location,
        }
        if err := s.store.InsertAtBat(ctx, ab); err != nil {
            return nil, fmt.Errorf("insert at-bat: %w", err)
        }
        saved = ab
    }

    // Phase two: full recompute over the complete ledger, then an
    // unconditional overwrite of the stored score.
    ledger, err := s.store.ListAtBats(ctx, in.GameID)
    if err != nil {
        log.Printf("scorebook: list ledger for score recompute failed (game=%d): %v", in.GameID, err)
        return saved, fmt.Errorf("%w: %v", ErrScoreWrite, err)
    }
    score := RecomputeScore(ledger)
    if err := s.store.UpdateGameScore(ctx, in.GameID, score); err != nil {
        log.Printf("scorebook: score overwrite failed (game=%d score=%d): %v", in.GameID, score, err)
        return saved, fmt.Errorf("%w: %v", ErrScoreWrite, err)
    }
    return saved, nil
}

// BatterUp resolves the batter due up for a team side by loading the
// side's lineup and the game ledger.
func (s *Service) BatterUp(ctx context.Context, gameID uint64, side model.TeamSide) (Batter, error) {
    side = side.Normalize()
    game, err := s.store.GetGame(ctx, gameID)
    if err != nil {
        return Batter{}, fmt.Errorf("load game: %w", err)
    }
    if !game.LineupsSet() {
        return Batter{}, ErrLineupNotSet
    }
    lineupID := *game.HomeLineupID
    if side == model.TeamSideOpponent {
        lineupID = *game.OpponentLineupID
    }
    lineup, err := s.store.ListLineup(ctx, lineupID)
    if err != nil {
        return Batter{}, fmt.Errorf("load lineup: %w", err)
    }
    atBats, err := s.store.ListAtBats(ctx, gameID)
    if err != nil {
        return Batter{}, fmt.Errorf("load ledger: %w", err)
    }
    return CurrentBatter(lineup, atBats, side)
}

// Outs derives the out count for one half-inning from the ledger.
func (s *Service) Outs(ctx context.Context, gameID uint64, inning int, side model.TeamSide) (int, error) {
    if inning < 1 {
        return 0, ErrInvalidInning
    }
    atBats, err := s.store.ListAtBats(ctx, gameID)
    if err != nil {
        return 0, fmt.Errorf("load ledger: %w", err)
    }
    return OutsInHalfInning(atBats, inning, side), nil
}

// ClearGame wipes a game's scoring data: every at-bat is deleted
// first, then the game row is reset to its initial state.  The
// ordering matters because the score reconciler assumes the ledger
// and the stored score stay consistent; the ledger must be empty
// before the score drops to zero.
func (s *Service) ClearGame(ctx context.Context, gameID uint64) (int64, error) {
    if _, err := s.store.GetGame(ctx, gameID); err != nil {
        return 0, fmt.Errorf("load game: %w", err)
    }
    removed, err := s.store.DeleteAtBats(ctx, gameID)
    if err != nil {
        return 0, fmt.Errorf("delete at-bats: %w", err)
    }
    if err := s.store.ResetGame(ctx, gameID); err != nil {
        return removed, fmt.Errorf("reset game: %w", err)
    }
    return removed, nil
}
