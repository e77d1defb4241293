package repository

import (
    "context"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// ScorebookStore stitches the game, at-bat and lineup repositories
// into the persistence collaborator the scoring core expects
// (scorebook.Store).  Each call is one network round trip; the core
// sequences them, accepting the documented weak-consistency window
// between the ledger write and the score overwrite.
type ScorebookStore struct {
    Games   *GameRepo
    AtBats  *AtBatRepo
    Lineups *LineupRepo
}

// NewScorebookStore wires the three repositories together.
func NewScorebookStore(games *GameRepo, atBats *AtBatRepo, lineups *LineupRepo) *ScorebookStore {
    if games == nil || atBats == nil || lineups == nil {
        panic("nil repository passed to NewScorebookStore")
    }
    return &ScorebookStore{Games: games, AtBats: atBats, Lineups: lineups}
}

func (s *ScorebookStore) GetGame(ctx context.Context, gameID uint64) (*model.Game, error) {
    return s.Games.GetGame(ctx, gameID)
}

func (s *ScorebookStore) UpdateGameScore(ctx context.Context, gameID uint64, score int) error {
    return s.Games.UpdateGameScore(ctx, gameID, score)
}

func (s *ScorebookStore) ListAtBats(ctx context.Context, gameID uint64) ([]model.AtBat, error) {
    return s.AtBats.ListAtBats(ctx, gameID)
}

func (s *ScorebookStore) FindAtBat(ctx context.Context, gameID, playerID uint64, inning int, side model.TeamSide) (*model.AtBat, error) {
    return s.AtBats.FindAtBat(ctx, gameID, playerID, inning, side)
}

func (s *ScorebookStore) InsertAtBat(ctx context.Context, ab *model.AtBat) error {
    return s.AtBats.InsertAtBat(ctx, ab)
}

func (s *ScorebookStore) UpdateAtBat(ctx context.Context, ab *model.AtBat) error {
    return s.AtBats.UpdateAtBat(ctx, ab)
}

func (s *ScorebookStore) DeleteAtBats(ctx context.Context, gameID uint64) (int64, error) {
    return s.AtBats.DeleteAtBats(ctx, gameID)
}

func (s *ScorebookStore) ResetGame(ctx context.Context, gameID uint64) error {
    return s.Games.ResetGame(ctx, gameID)
}

func (s *ScorebookStore) ListLineup(ctx context.Context, lineupID uint64) ([]model.LineupEntry, error) {
    return s.Lineups.ListEntries(ctx, lineupID)
}
