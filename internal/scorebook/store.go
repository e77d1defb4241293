package scorebook

import (
    "context"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// Store is the persistence collaborator the scoring core runs
// against.  The SQL repositories implement it for production; tests
// substitute an in-memory fake.  Implementations must normalize the
// legacy empty team_side to home when scanning, so the core never
// sees an empty side.
type Store interface {
    // GetGame loads a game or returns the repository's not-found error.
    GetGame(ctx context.Context, gameID uint64) (*model.Game, error)

    // UpdateGameScore overwrites the stored our_score and bumps the
    // game's updated_at.
    UpdateGameScore(ctx context.Context, gameID uint64, score int) error

    // ListAtBats returns every ledger row for the game.
    ListAtBats(ctx context.Context, gameID uint64) ([]model.AtBat, error)

    // FindAtBat returns the row with the highest occurrence matching
    // (game, player, inning, team side), or nil when no row matches.
    FindAtBat(ctx context.Context, gameID, playerID uint64, inning int, side model.TeamSide) (*model.AtBat, error)

    // InsertAtBat appends a new ledger row and fills in its ID.
    InsertAtBat(ctx context.Context, ab *model.AtBat) error

    // UpdateAtBat overwrites an existing ledger row in place.
    UpdateAtBat(ctx context.Context, ab *model.AtBat) error

    // DeleteAtBats removes every ledger row for the game and returns
    // the number of rows removed.
    DeleteAtBats(ctx context.Context, gameID uint64) (int64, error)

    // ResetGame returns the game row to its initial state: score
    // zeroed, status scheduled, lineup references cleared.
    ResetGame(ctx context.Context, gameID uint64) error

    // ListLineup returns a lineup's entries ordered by batting order.
    ListLineup(ctx context.Context, lineupID uint64) ([]model.LineupEntry, error)
}
