package model

import "time"

// Game status values.  Transitions are one-way:
// scheduled -> in_progress -> completed.  A completed game is
// terminal and makes its at-bat ledger read-only.
const (
    GameScheduled  = "scheduled"
    GameInProgress = "in_progress"
    GameCompleted  = "completed"
)

// Game identifies a single contest against an opponent.  The running
// score is derived: it is recomputed from the at-bat ledger after
// every ledger mutation and overwritten here, never incremented in
// place.  The scoring UI must refuse to operate until both lineup
// references are set.
//
// Fields:
//  ID                – primary key identifier.
//  TeamID            – our team playing the game.
//  Opponent          – display name of the opposing team.
//  ScheduledAt       – when the game is scheduled to start.
//  OurScore          – derived total of runs_scored over the ledger.
//  OpponentScore     – opponent total, entered manually (not ledger-derived).
//  Innings           – number of innings played so far.
//  Status            – scheduled, in_progress or completed.
//  HomeLineupID      – lineup used by our team (nil until chosen).
//  OpponentLineupID  – lineup used to track the opponent (nil until chosen).
//  OpponentBatsFirst – true when the opponent is the away-style first batter.
//  CreatedAt         – creation timestamp.
//  UpdatedAt         – last update timestamp; also bumped by score recompute.
type Game struct {
    ID                uint64    // games.id
    TeamID            uint64    // games.team_id
    Opponent          string    // games.opponent
    ScheduledAt       time.Time // games.scheduled_at
    OurScore          int       // games.our_score
    OpponentScore     int       // games.opponent_score
    Innings           int       // games.innings
    Status            string    // games.status
    HomeLineupID      *uint64   // games.home_lineup_id (nullable)
    OpponentLineupID  *uint64   // games.opponent_lineup_id (nullable)
    OpponentBatsFirst bool      // games.opponent_bats_first
    CreatedAt         time.Time // games.created_at
    UpdatedAt         time.Time // games.updated_at
}

// LineupsSet reports whether both lineup references are present, the
// precondition for any scoring operation on the game.
func (g *Game) LineupsSet() bool {
    return g.HomeLineupID != nil && g.OpponentLineupID != nil
}
