package model

import "time"

// Lineup is an ordered batting/fielding assignment template that a
// game references.  A lineup belongs to a team and can be reused
// across games.  A lineup must hold exactly 9 entries (10 with a
// designated hitter) before it may be activated for scoring.
//
// Fields:
//  ID        – primary key identifier.
//  TeamID    – team the lineup belongs to.
//  Name      – label shown in the lineup picker.
//  WithDH    – true when the lineup uses a designated hitter (10 slots).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Lineup struct {
    ID        uint64    // lineups.id
    TeamID    uint64    // lineups.team_id
    Name      string    // lineups.name
    WithDH    bool      // lineups.with_dh
    CreatedAt time.Time // lineups.created_at
    UpdatedAt time.Time // lineups.updated_at
}

// LineupEntry assigns one player to a batting-order slot and a
// fielding position within a lineup.  Batting orders and positions
// are unique within a lineup.
//
// Fields:
//  ID           – primary key identifier.
//  LineupID     – lineup this entry belongs to.
//  PlayerID     – player filling the slot.
//  BattingOrder – 1..9, or 1..10 when the lineup uses a DH.
//  Position     – fielding position code (P, C, 1B, ... DH).
//  CreatedAt    – creation timestamp.
type LineupEntry struct {
    ID           uint64    // lineup_entries.id
    LineupID     uint64    // lineup_entries.lineup_id
    PlayerID     uint64    // lineup_entries.player_id
    BattingOrder int       // lineup_entries.batting_order
    Position     string    // lineup_entries.position
    CreatedAt    time.Time // lineup_entries.created_at
}
