// Package repository contains the SQL data-access layer.  This file
// defines sentinel errors shared across repositories so that handlers
// can map failure scenarios to HTTP responses with errors.Is instead
// of string matching.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by someone else.  Handlers translate this into 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an operation cannot proceed because of
// dependent state, such as deleting a player who already has at-bats
// recorded.  Handlers translate this into 409.
var ErrConflict = errors.New("conflict")

// Not-found sentinels, one per aggregate.
var (
    ErrTeamNotFound   = errors.New("team not found")
    ErrPlayerNotFound = errors.New("player not found")
    ErrLineupNotFound = errors.New("lineup not found")
    ErrGameNotFound   = errors.New("game not found")
)
