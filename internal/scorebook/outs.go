package scorebook

import "github.com/Skullkid2995/baseball-app-sub000/internal/model"

// outsNeeded is the number of outs that closes a half-inning.
const outsNeeded = 3

// outResults are the canonical categories that count as an out on
// their own, without any runner-out mark.
var outResults = map[model.Result]bool{
    model.ResultStrikeout: true,
    model.ResultGroundOut: true,
    model.ResultFlyOut:    true,
    model.ResultLineOut:   true,
    model.ResultPopOut:    true,
}

// IsOutResult reports whether the category by itself retires the batter.
func IsOutResult(r model.Result) bool {
    return outResults[r]
}

// countsAsOut reports whether the at-bat contributes an out to its
// half-inning: either a runner-out mark on any base, or an out-type
// result.  Both can be true on the same row; the row still counts
// once.
func countsAsOut(ab model.AtBat) bool {
    return ab.BaseRunnerOuts.Any() || outResults[ab.Result]
}

// OutsInHalfInning derives the number of outs a team has accrued in
// one half-inning by filtering the ledger to the inning and team
// side and counting qualifying rows.  Outs are never stored as a
// running counter: editing a past at-bat changes the count here
// without any cache to invalidate.
func OutsInHalfInning(atBats []model.AtBat, inning int, side model.TeamSide) int {
    side = side.Normalize()
    outs := 0
    for _, ab := range atBats {
        if ab.Inning != inning || ab.TeamSide.Normalize() != side {
            continue
        }
        if countsAsOut(ab) {
            outs++
        }
    }
    return outs
}

// IsHalfInningOver reports whether the half-inning has reached three
// outs.  Counts beyond three keep the half-inning closed.
func IsHalfInningOver(atBats []model.AtBat, inning int, side model.TeamSide) bool {
    return OutsInHalfInning(atBats, inning, side) >= outsNeeded
}
