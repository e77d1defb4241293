package model

import "time"

// Player is a roster member of a team.  Players are referenced by
// lineup entries and by at-bat records.  Deleting a player is refused
// while at-bats reference them (see repository.ErrConflict).
//
// Fields:
//  ID        – primary key identifier.
//  TeamID    – team the player belongs to.
//  Name      – display name of the player.
//  Number    – jersey number (nil when not assigned).
//  PhotoURL  – optional link to an externally stored photo.
//  IsActive  – whether the player is on the active roster.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Player struct {
    ID        uint64    // players.id
    TeamID    uint64    // players.team_id
    Name      string    // players.name
    Number    *uint32   // players.number (nullable)
    PhotoURL  *string   // players.photo_url (nullable)
    IsActive  bool      // players.is_active
    CreatedAt time.Time // players.created_at
    UpdatedAt time.Time // players.updated_at
}
