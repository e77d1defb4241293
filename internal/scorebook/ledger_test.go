package scorebook

import (
    "context"
    "errors"
    "testing"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// fakeStore is an in-memory Store for exercising the save sequence
// without a database.  Failure toggles let tests break individual
// phases.
type fakeStore struct {
    game    *model.Game
    atBats  []model.AtBat
    lineups map[uint64][]model.LineupEntry
    nextID  uint64

    failListAtBats    bool
    failUpdateScore   bool
    scoreWrites       []int
    deletedBeforeRest bool
    resetCalled       bool
}

var errFakeStore = errors.New("store failure")

func newFakeStore(game *model.Game) *fakeStore {
    return &fakeStore{game: game, lineups: map[uint64][]model.LineupEntry{}, nextID: 1}
}

func (f *fakeStore) GetGame(_ context.Context, gameID uint64) (*model.Game, error) {
    if f.game == nil || f.game.ID != gameID {
        return nil, errors.New("game not found")
    }
    g := *f.game
    return &g, nil
}

func (f *fakeStore) UpdateGameScore(_ context.Context, _ uint64, score int) error {
    if f.failUpdateScore {
        return errFakeStore
    }
    f.game.OurScore = score
    f.scoreWrites = append(f.scoreWrites, score)
    return nil
}

func (f *fakeStore) ListAtBats(_ context.Context, _ uint64) ([]model.AtBat, error) {
    if f.failListAtBats {
        return nil, errFakeStore
    }
    out := make([]model.AtBat, len(f.atBats))
    copy(out, f.atBats)
    return out, nil
}

func (f *fakeStore) FindAtBat(_ context.Context, gameID, playerID uint64, inning int, side model.TeamSide) (*model.AtBat, error) {
    var found *model.AtBat
    for i := range f.atBats {
        ab := &f.atBats[i]
        if ab.GameID != gameID || ab.PlayerID != playerID || ab.Inning != inning {
            continue
        }
        if ab.TeamSide.Normalize() != side.Normalize() {
            continue
        }
        if found == nil || ab.Occurrence > found.Occurrence {
            found = ab
        }
    }
    if found == nil {
        return nil, nil
    }
    cp := *found
    return &cp, nil
}

func (f *fakeStore) InsertAtBat(_ context.Context, ab *model.AtBat) error {
    ab.ID = f.nextID
    f.nextID++
    f.atBats = append(f.atBats, *ab)
    return nil
}

func (f *fakeStore) UpdateAtBat(_ context.Context, ab *model.AtBat) error {
    for i := range f.atBats {
        if f.atBats[i].ID == ab.ID {
            f.atBats[i] = *ab
            return nil
        }
    }
    return errors.New("at-bat not found")
}

func (f *fakeStore) DeleteAtBats(_ context.Context, _ uint64) (int64, error) {
    n := int64(len(f.atBats))
    f.atBats = nil
    f.deletedBeforeRest = !f.resetCalled
    return n, nil
}

func (f *fakeStore) ResetGame(_ context.Context, _ uint64) error {
    f.resetCalled = true
    f.game.OurScore = 0
    f.game.OpponentScore = 0
    f.game.Innings = 0
    f.game.Status = model.GameScheduled
    f.game.HomeLineupID = nil
    f.game.OpponentLineupID = nil
    return nil
}

func (f *fakeStore) ListLineup(_ context.Context, lineupID uint64) ([]model.LineupEntry, error) {
    return f.lineups[lineupID], nil
}

func lineupID(v uint64) *uint64 { return &v }

func readyGame() *model.Game {
    return &model.Game{
        ID:               1,
        TeamID:           1,
        Status:           model.GameInProgress,
        HomeLineupID:     lineupID(10),
        OpponentLineupID: lineupID(11),
    }
}

func TestSaveAtBatValidation(t *testing.T) {
    svc := NewService(newFakeStore(readyGame()))
    ctx := context.Background()

    if _, err := svc.SaveAtBat(ctx, SaveInput{GameID: 1, PlayerID: 101, Inning: 0}); !errors.Is(err, ErrInvalidInning) {
        t.Errorf("inning 0: got %v, want ErrInvalidInning", err)
    }
    if _, err := svc.SaveAtBat(ctx, SaveInput{GameID: 1, PlayerID: 101, Inning: 1, RBI: -1}); !errors.Is(err, ErrInvalidRBI) {
        t.Errorf("negative rbi: got %v, want ErrInvalidRBI", err)
    }
}

func TestSaveAtBatCompletedGameUntouched(t *testing.T) {
    g := readyGame()
    g.Status = model.GameCompleted
    g.OurScore = 5
    store := newFakeStore(g)
    svc := NewService(store)

    _, err := svc.SaveAtBat(context.Background(), SaveInput{
        GameID: 1, PlayerID: 101, Inning: 1, Notation: "HR",
        BaseRunners: model.Bases{Home: true},
    })
    if !errors.Is(err, ErrGameCompleted) {
        t.Fatalf("got %v, want ErrGameCompleted", err)
    }
    if len(store.atBats) != 0 {
        t.Error("completed game must not accept ledger writes")
    }
    if g.OurScore != 5 {
        t.Errorf("completed game score changed to %d", g.OurScore)
    }
}

func TestSaveAtBatLineupsRequired(t *testing.T) {
    g := readyGame()
    g.OpponentLineupID = nil
    svc := NewService(newFakeStore(g))

    _, err := svc.SaveAtBat(context.Background(), SaveInput{GameID: 1, PlayerID: 101, Inning: 1})
    if !errors.Is(err, ErrLineupNotSet) {
        t.Fatalf("got %v, want ErrLineupNotSet", err)
    }
}

func TestSaveAtBatInsertThenUpdate(t *testing.T) {
    store := newFakeStore(readyGame())
    svc := NewService(store)
    ctx := context.Background()

    first, err := svc.SaveAtBat(ctx, SaveInput{
        GameID: 1, PlayerID: 101, Inning: 2, TeamSide: model.TeamSideHome,
        Notation: "1B", BaseRunners: model.Bases{First: true},
    })
    if err != nil {
        t.Fatalf("first save: %v", err)
    }
    if first.Result != model.ResultSingle || first.Occurrence != 1 {
        t.Errorf("first save: result=%q occurrence=%d", first.Result, first.Occurrence)
    }

    // Same logical cell again: a correction, not a new row.
    second, err := svc.SaveAtBat(ctx, SaveInput{
        GameID: 1, PlayerID: 101, Inning: 2, TeamSide: model.TeamSideHome,
        Notation: "HR", BaseRunners: model.Bases{Home: true},
    })
    if err != nil {
        t.Fatalf("second save: %v", err)
    }
    if len(store.atBats) != 1 {
        t.Fatalf("expected 1 ledger row after correction, got %d", len(store.atBats))
    }
    if second.ID != first.ID {
        t.Errorf("correction must keep the row ID (%d != %d)", second.ID, first.ID)
    }
    if second.Result != model.ResultHomeRun || second.RunsScored != 1 {
        t.Errorf("correction not applied: result=%q runs=%d", second.Result, second.RunsScored)
    }
    if store.game.OurScore != 1 {
        t.Errorf("score after correction = %d, want 1", store.game.OurScore)
    }
}

func TestSaveAtBatNewOccurrence(t *testing.T) {
    store := newFakeStore(readyGame())
    svc := NewService(store)
    ctx := context.Background()

    if _, err := svc.SaveAtBat(ctx, SaveInput{
        GameID: 1, PlayerID: 101, Inning: 5, TeamSide: model.TeamSideHome, Notation: "K",
    }); err != nil {
        t.Fatalf("first save: %v", err)
    }
    second, err := svc.SaveAtBat(ctx, SaveInput{
        GameID: 1, PlayerID: 101, Inning: 5, TeamSide: model.TeamSideHome,
        Notation: "1B", NewOccurrence: true,
    })
    if err != nil {
        t.Fatalf("second save: %v", err)
    }
    if len(store.atBats) != 2 {
        t.Fatalf("expected 2 ledger rows, got %d", len(store.atBats))
    }
    if second.Occurrence != 2 {
        t.Errorf("second appearance occurrence = %d, want 2", second.Occurrence)
    }

    // A later plain save targets the newest occurrence.
    third, err := svc.SaveAtBat(ctx, SaveInput{
        GameID: 1, PlayerID: 101, Inning: 5, TeamSide: model.TeamSideHome, Notation: "2B",
    })
    if err != nil {
        t.Fatalf("third save: %v", err)
    }
    if len(store.atBats) != 2 {
        t.Fatalf("plain save must update, got %d rows", len(store.atBats))
    }
    if third.Occurrence != 2 || third.Result != model.ResultDouble {
        t.Errorf("update hit occurrence %d with result %q, want occurrence 2 double", third.Occurrence, third.Result)
    }
}

func TestSaveAtBatScoreInvariant(t *testing.T) {
    store := newFakeStore(readyGame())
    svc := NewService(store)
    ctx := context.Background()

    saves := []SaveInput{
        {GameID: 1, PlayerID: 101, Inning: 1, Notation: "1B", BaseRunners: model.Bases{First: true}},
        {GameID: 1, PlayerID: 102, Inning: 1, Notation: "HR", BaseRunners: model.Bases{Home: true}},
        {GameID: 1, PlayerID: 103, Inning: 2, Notation: "HR", BaseRunners: model.Bases{Home: true}},
    }
    for i, in := range saves {
        if _, err := svc.SaveAtBat(ctx, in); err != nil {
            t.Fatalf("save %d: %v", i, err)
        }
        // After every save the stored score equals the ledger sum.
        if store.game.OurScore != RecomputeScore(store.atBats) {
            t.Fatalf("after save %d: stored score %d != ledger sum %d",
                i, store.game.OurScore, RecomputeScore(store.atBats))
        }
    }
    if store.game.OurScore != 2 {
        t.Errorf("final score = %d, want 2", store.game.OurScore)
    }
    // Downgrade a run: score must drop, not stick.
    if _, err := svc.SaveAtBat(ctx, SaveInput{
        GameID: 1, PlayerID: 102, Inning: 1, Notation: "2B", BaseRunners: model.Bases{Second: true},
    }); err != nil {
        t.Fatalf("downgrade save: %v", err)
    }
    if store.game.OurScore != 1 {
        t.Errorf("score after downgrade = %d, want 1", store.game.OurScore)
    }
}

func TestSaveAtBatScoreWriteFailure(t *testing.T) {
    store := newFakeStore(readyGame())
    store.failUpdateScore = true
    svc := NewService(store)

    saved, err := svc.SaveAtBat(context.Background(), SaveInput{
        GameID: 1, PlayerID: 101, Inning: 1, Notation: "HR",
        BaseRunners: model.Bases{Home: true},
    })
    if !errors.Is(err, ErrScoreWrite) {
        t.Fatalf("got %v, want ErrScoreWrite", err)
    }
    if saved == nil {
        t.Fatal("the committed at-bat must still be returned")
    }
    if len(store.atBats) != 1 {
        t.Error("ledger write must not be rolled back on score failure")
    }

    // Next successful save reconciles the score from the full ledger.
    store.failUpdateScore = false
    if _, err := svc.SaveAtBat(context.Background(), SaveInput{
        GameID: 1, PlayerID: 102, Inning: 1, Notation: "K",
    }); err != nil {
        t.Fatalf("recovery save: %v", err)
    }
    if store.game.OurScore != 1 {
        t.Errorf("score after recovery = %d, want 1", store.game.OurScore)
    }
}

func TestBatterUp(t *testing.T) {
    store := newFakeStore(readyGame())
    store.lineups[10] = nineLineup()
    store.lineups[11] = []model.LineupEntry{
        {PlayerID: 201, BattingOrder: 1, Position: "P"},
        {PlayerID: 202, BattingOrder: 2, Position: "C"},
    }
    svc := NewService(store)
    ctx := context.Background()

    if _, err := svc.SaveAtBat(ctx, SaveInput{
        GameID: 1, PlayerID: 101, Inning: 1, TeamSide: model.TeamSideHome, Notation: "1B",
    }); err != nil {
        t.Fatalf("seed save: %v", err)
    }

    home, err := svc.BatterUp(ctx, 1, model.TeamSideHome)
    if err != nil {
        t.Fatalf("home BatterUp: %v", err)
    }
    if home.PlayerID != 102 || home.Inning != 1 {
        t.Errorf("home batter = player %d inning %d, want player 102 inning 1", home.PlayerID, home.Inning)
    }

    // The opponent order is independent of ours.
    opp, err := svc.BatterUp(ctx, 1, model.TeamSideOpponent)
    if err != nil {
        t.Fatalf("opponent BatterUp: %v", err)
    }
    if opp.PlayerID != 201 || opp.Inning != 1 {
        t.Errorf("opponent batter = player %d inning %d, want player 201 inning 1", opp.PlayerID, opp.Inning)
    }
}

func TestBatterUpRequiresLineups(t *testing.T) {
    g := readyGame()
    g.HomeLineupID = nil
    svc := NewService(newFakeStore(g))

    if _, err := svc.BatterUp(context.Background(), 1, model.TeamSideHome); !errors.Is(err, ErrLineupNotSet) {
        t.Fatalf("got %v, want ErrLineupNotSet", err)
    }
}

func TestOutsService(t *testing.T) {
    store := newFakeStore(readyGame())
    svc := NewService(store)
    ctx := context.Background()

    for _, pid := range []uint64{101, 102} {
        if _, err := svc.SaveAtBat(ctx, SaveInput{
            GameID: 1, PlayerID: pid, Inning: 1, TeamSide: model.TeamSideHome, Notation: "K",
        }); err != nil {
            t.Fatalf("seed save: %v", err)
        }
    }
    outs, err := svc.Outs(ctx, 1, 1, model.TeamSideHome)
    if err != nil {
        t.Fatalf("Outs: %v", err)
    }
    if outs != 2 {
        t.Errorf("outs = %d, want 2", outs)
    }
    if _, err := svc.Outs(ctx, 1, 0, model.TeamSideHome); !errors.Is(err, ErrInvalidInning) {
        t.Errorf("inning 0: got %v, want ErrInvalidInning", err)
    }
}

func TestClearGame(t *testing.T) {
    store := newFakeStore(readyGame())
    svc := NewService(store)
    ctx := context.Background()

    for _, pid := range []uint64{101, 102, 103} {
        if _, err := svc.SaveAtBat(ctx, SaveInput{
            GameID: 1, PlayerID: pid, Inning: 1, Notation: "HR",
            BaseRunners: model.Bases{Home: true},
        }); err != nil {
            t.Fatalf("seed save: %v", err)
        }
    }

    removed, err := svc.ClearGame(ctx, 1)
    if err != nil {
        t.Fatalf("ClearGame: %v", err)
    }
    if removed != 3 {
        t.Errorf("removed = %d, want 3", removed)
    }
    if !store.deletedBeforeRest {
        t.Error("at-bats must be deleted before the game row is reset")
    }
    if store.game.OurScore != 0 || store.game.Status != model.GameScheduled {
        t.Errorf("game not reset: score=%d status=%q", store.game.OurScore, store.game.Status)
    }
    if store.game.HomeLineupID != nil || store.game.OpponentLineupID != nil {
        t.Error("reset must clear the lineup references")
    }
}
