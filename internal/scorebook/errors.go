// Error sentinels for the scoring core.  Handlers translate these
// into HTTP responses: validation failures become 400, state
// conflicts become 409.
package scorebook

import "errors"

// ErrGameCompleted is returned when a write is attempted against a
// completed game.  Completed is terminal; the ledger is read-only.
var ErrGameCompleted = errors.New("game is completed")

// ErrLineupNotSet is returned when scoring is attempted before both
// lineup references are set on the game.
var ErrLineupNotSet = errors.New("game lineups not set")

// ErrEmptyLineup is returned by CurrentBatter when the lineup has no
// entries.
var ErrEmptyLineup = errors.New("lineup is empty")

// ErrInvalidInning is returned for inning numbers below 1.
var ErrInvalidInning = errors.New("inning must be positive")

// ErrInvalidRBI is returned for negative RBI values.
var ErrInvalidRBI = errors.New("rbi must not be negative")

// ErrScoreWrite wraps a failure in the score-recompute phase of a
// save.  The at-bat write that triggered the recompute has already
// committed and is not rolled back; the stored score catches up on
// the next successful save.
var ErrScoreWrite = errors.New("score recompute write failed")

// Lineup validation sentinels, checked before a lineup may be
// activated for a game.
var (
    ErrLineupSize        = errors.New("lineup must have exactly 9 entries, or 10 with a designated hitter")
    ErrDuplicateOrder    = errors.New("duplicate batting order in lineup")
    ErrDuplicatePosition = errors.New("duplicate position in lineup")
    ErrBadBattingOrder   = errors.New("batting order out of range")
)
