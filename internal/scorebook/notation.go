// Package scorebook holds the live scoring core: notation
// interpretation, out accounting, batting-order advancement, score
// reconciliation and the at-bat ledger entry point.  Everything
// derived (outs, current batter, score) is recomputed from the ledger
// on demand so that correcting a past at-bat changes downstream state
// consistently.  Nothing in this package touches HTTP.
package scorebook

import (
    "strings"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// notationTable maps upper-cased scorekeeping shorthand to a
// canonical result category.  The table is an exact-match lookup;
// see Interpret for the fallback policy.
var notationTable = map[string]model.Result{
    // hits
    "H1": model.ResultSingle, "1B": model.ResultSingle, "S": model.ResultSingle,
    "H2": model.ResultDouble, "2B": model.ResultDouble, "D": model.ResultDouble,
    "H3": model.ResultTriple, "3B": model.ResultTriple, "T": model.ResultTriple,
    "H4": model.ResultHomeRun, "HR": model.ResultHomeRun, "HOMERUN": model.ResultHomeRun,

    // walks and free passes; wild pitch, passed ball, balk and
    // catcher's interference have no category of their own and ride
    // along as walks
    "BB": model.ResultWalk, "W": model.ResultWalk, "IBB": model.ResultWalk,
    "WP": model.ResultWalk, "PB": model.ResultWalk, "BK": model.ResultWalk,
    "CI": model.ResultWalk,
    "HBP": model.ResultHitByPitch, "HP": model.ResultHitByPitch,

    // strikeouts
    "K": model.ResultStrikeout, "SO": model.ResultStrikeout,
    "KC": model.ResultStrikeout, "KS": model.ResultStrikeout,

    // sacrifices
    "SF": model.ResultSacrificeFly,
    "SAC": model.ResultSacrificeBunt, "SH": model.ResultSacrificeBunt,
    "BUNT": model.ResultSacrificeBunt,

    // errors
    "E": model.ResultError,
    "E-1": model.ResultError, "E-2": model.ResultError, "E-3": model.ResultError,
    "E-4": model.ResultError, "E-5": model.ResultError, "E-6": model.ResultError,
    "E-7": model.ResultError, "E-8": model.ResultError, "E-9": model.ResultError,

    // fly outs
    "F-1": model.ResultFlyOut, "F-2": model.ResultFlyOut, "F-3": model.ResultFlyOut,
    "F-4": model.ResultFlyOut, "F-5": model.ResultFlyOut, "F-6": model.ResultFlyOut,
    "F-7": model.ResultFlyOut, "F-8": model.ResultFlyOut, "F-9": model.ResultFlyOut,
    "F7": model.ResultFlyOut, "F8": model.ResultFlyOut, "F9": model.ResultFlyOut,

    // line outs
    "L-1": model.ResultLineOut, "L-3": model.ResultLineOut, "L-4": model.ResultLineOut,
    "L-5": model.ResultLineOut, "L-6": model.ResultLineOut, "L-7": model.ResultLineOut,
    "L-8": model.ResultLineOut, "L-9": model.ResultLineOut,
    "LD": model.ResultLineOut,

    // pop outs
    "P-1": model.ResultPopOut, "P-2": model.ResultPopOut, "P-3": model.ResultPopOut,
    "P-4": model.ResultPopOut, "P-5": model.ResultPopOut, "P-6": model.ResultPopOut,
    "IF": model.ResultPopOut,

    // fielder-assisted ground outs
    "1-3": model.ResultGroundOut, "3-1": model.ResultGroundOut,
    "4-3": model.ResultGroundOut, "5-3": model.ResultGroundOut,
    "6-3": model.ResultGroundOut, "2-3": model.ResultGroundOut,
    "3U": model.ResultGroundOut, "U3": model.ResultGroundOut,
    "1-6-3": model.ResultGroundOut, "4-6-3": model.ResultGroundOut,
    "5-4-3": model.ResultGroundOut, "6-4-3": model.ResultGroundOut,
    "G-3": model.ResultGroundOut, "G-4": model.ResultGroundOut,
    "G-5": model.ResultGroundOut, "G-6": model.ResultGroundOut,
    "DP": model.ResultGroundOut, "FC": model.ResultGroundOut,
}

// Interpret maps free-form scoring notation to its canonical result
// category.  Input is trimmed and upper-cased before the exact table
// lookup.
//
// Fallback policy ("unknown notation defaults to ground_out"): any
// notation not found in the table resolves to ResultGroundOut rather
// than an error.  The scoring UI supplies notations from a fixed set
// of buttons, so in practice the fallback only fires on free-hand
// text.  Interpret is pure and total; it never fails.
func Interpret(raw string) model.Result {
    key := strings.ToUpper(strings.TrimSpace(raw))
    if res, ok := notationTable[key]; ok {
        return res
    }
    return model.ResultGroundOut
}

// RunsFromBases derives the runs_scored value for an at-bat from its
// runner snapshot.  The model credits at most one run per at-bat
// record, tied to the batter reaching home.
func RunsFromBases(b model.Bases) int {
    if b.Home {
        return 1
    }
    return 0
}

// RunScored is the terminal runner snapshot written when the "run
// scored" action is taken: all bases cleared, home set.  It is a
// transformation applied at save time, not a base selection.
func RunScored() model.Bases {
    return model.Bases{Home: true}
}
