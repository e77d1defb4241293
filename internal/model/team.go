package model

import "time"

// Team represents a baseball club managed by a coach.  A team owns its
// players and lineup templates and is the anchor for every game it
// plays.  This struct corresponds to a row in the `teams` table.
//
// Fields:
//  ID        – primary key identifier.
//  OwnerID   – user ID of the coach who manages the team.
//  Name      – unique team name per owner.
//  Season    – optional free-text season label (e.g. "2026 Spring").
//  CreatedAt – timestamp when the team was created.
//  UpdatedAt – timestamp of last update.
type Team struct {
    ID        uint64    // teams.id
    OwnerID   uint64    // teams.owner_id
    Name      string    // teams.name
    Season    *string   // teams.season (nullable)
    CreatedAt time.Time // teams.created_at
    UpdatedAt time.Time // teams.updated_at
}
