package model

import "time"

// TeamSide tells which of the two teams an at-bat belongs to.  Our
// team is always "home" in this model regardless of venue.  Rows
// written before the column existed carry an empty string and are
// normalized to TeamSideHome when scanned.
type TeamSide string

const (
    TeamSideHome     TeamSide = "home"
    TeamSideOpponent TeamSide = "opponent"
)

// Normalize maps the legacy empty value to TeamSideHome.  Call it at
// the scan boundary so the rest of the code never sees an empty side.
func (s TeamSide) Normalize() TeamSide {
    if s == "" {
        return TeamSideHome
    }
    return s
}

// Result is the canonical outcome category of a plate appearance,
// derived from the raw scorekeeping notation.
type Result string

const (
    ResultSingle        Result = "single"
    ResultDouble        Result = "double"
    ResultTriple        Result = "triple"
    ResultHomeRun       Result = "home_run"
    ResultWalk          Result = "walk"
    ResultStrikeout     Result = "strikeout"
    ResultGroundOut     Result = "ground_out"
    ResultFlyOut        Result = "fly_out"
    ResultLineOut       Result = "line_out"
    ResultPopOut        Result = "pop_out"
    ResultError         Result = "error"
    ResultHitByPitch    Result = "hit_by_pitch"
    ResultSacrificeFly  Result = "sacrifice_fly"
    ResultSacrificeBunt Result = "sacrifice_bunt"
)

// Bases is a per-base flag set used both for runner occupancy and for
// out marks.  For occupancy, Home=true means the batter came around
// to score; the UI then shows the run instead of the notation.
// JSON tags double as the storage encoding: the snapshots persist as
// JSON documents in the base_runners / base_runner_outs columns.
type Bases struct {
    First  bool `json:"first"`
    Second bool `json:"second"`
    Third  bool `json:"third"`
    Home   bool `json:"home"`
}

// Any reports whether at least one flag is set.
func (b Bases) Any() bool {
    return b.First || b.Second || b.Third || b.Home
}

// OutTypes records how a runner was retired at each base, as free
// text (e.g. TAGGED_OUT, FORCE_OUT, CAUGHT_STEALING).  One slot per
// base: two out-events on the same base within one at-bat cannot be
// told apart.  Known model limitation.
type OutTypes struct {
    First  string `json:"first,omitempty"`
    Second string `json:"second,omitempty"`
    Third  string `json:"third,omitempty"`
    Home   string `json:"home,omitempty"`
}

// FieldLocation is descriptive hit-location metadata from the diamond
// drawing.  It never participates in scoring logic.
type FieldLocation struct {
    Area     string  // at_bats.field_area
    Zone     string  // at_bats.field_zone
    Distance float64 // at_bats.field_distance
    Angle    float64 // at_bats.field_angle
}

// AtBat is one recorded plate appearance in the game's event ledger.
// Its logical identity is (game, player, inning, team side,
// occurrence); saving the same cell twice updates the existing row
// rather than appending.  Rows are never deleted individually, only
// bulk-cleared when the game's data is reset.
//
// Fields:
//  ID             – primary key identifier.
//  GameID         – game the at-bat belongs to.
//  PlayerID       – batter.
//  Inning         – inning number, starting at 1.
//  TeamSide       – home (our team) or opponent.
//  Occurrence     – 1-based index for a batter appearing more than
//                   once in the same inning.
//  Notation       – raw scorekeeping shorthand as entered ("6-3", "K").
//  Result         – canonical category derived from Notation.
//  RunsScored     – 0 or 1; set from BaseRunners.Home at save time.
//  RBI            – runs batted in, edited independently.
//  BaseRunners    – runner occupancy snapshot.
//  BaseRunnerOuts – per-base out marks overlaying the occupancy.
//  OutTypes       – free-text out kind per marked base.
//  Location       – descriptive hit-location metadata.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type AtBat struct {
    ID             uint64        // at_bats.id
    GameID         uint64        // at_bats.game_id
    PlayerID       uint64        // at_bats.player_id
    Inning         int           // at_bats.inning
    TeamSide       TeamSide      // at_bats.team_side
    Occurrence     int           // at_bats.occurrence
    Notation       string        // at_bats.notation
    Result         Result        // at_bats.result
    RunsScored     int           // at_bats.runs_scored
    RBI            int           // at_bats.rbi
    BaseRunners    Bases         // at_bats.base_runners (JSON)
    BaseRunnerOuts Bases         // at_bats.base_runner_outs (JSON)
    OutTypes       OutTypes      // at_bats.out_types (JSON)
    Location       FieldLocation // at_bats.field_* columns
    CreatedAt      time.Time     // at_bats.created_at
    UpdatedAt      time.Time     // at_bats.updated_at
}
