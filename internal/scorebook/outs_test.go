package scorebook

import (
    "testing"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

func ab(inning int, side model.TeamSide, result model.Result, runnerOuts model.Bases) model.AtBat {
    return model.AtBat{Inning: inning, TeamSide: side, Result: result, BaseRunnerOuts: runnerOuts}
}

func TestOutsInHalfInning(t *testing.T) {
    tests := []struct {
        name   string
        atBats []model.AtBat
        inning int
        side   model.TeamSide
        want   int
    }{
        {
            name:   "empty ledger",
            atBats: nil,
            inning: 1, side: model.TeamSideHome,
            want: 0,
        },
        {
            name: "result outs only",
            atBats: []model.AtBat{
                ab(1, model.TeamSideHome, model.ResultStrikeout, model.Bases{}),
                ab(1, model.TeamSideHome, model.ResultFlyOut, model.Bases{}),
                ab(1, model.TeamSideHome, model.ResultSingle, model.Bases{}),
            },
            inning: 1, side: model.TeamSideHome,
            want: 2,
        },
        {
            name: "runner out on a non-out result",
            atBats: []model.AtBat{
                ab(1, model.TeamSideHome, model.ResultSingle, model.Bases{Second: true}),
            },
            inning: 1, side: model.TeamSideHome,
            want: 1,
        },
        {
            name: "out result plus runner out counts once",
            atBats: []model.AtBat{
                ab(1, model.TeamSideHome, model.ResultGroundOut, model.Bases{First: true}),
            },
            inning: 1, side: model.TeamSideHome,
            want: 1,
        },
        {
            name: "other inning excluded",
            atBats: []model.AtBat{
                ab(1, model.TeamSideHome, model.ResultStrikeout, model.Bases{}),
                ab(2, model.TeamSideHome, model.ResultStrikeout, model.Bases{}),
            },
            inning: 2, side: model.TeamSideHome,
            want: 1,
        },
        {
            name: "other side excluded",
            atBats: []model.AtBat{
                ab(3, model.TeamSideHome, model.ResultStrikeout, model.Bases{}),
                ab(3, model.TeamSideOpponent, model.ResultStrikeout, model.Bases{}),
                ab(3, model.TeamSideOpponent, model.ResultGroundOut, model.Bases{}),
            },
            inning: 3, side: model.TeamSideOpponent,
            want: 2,
        },
        {
            name: "legacy empty side counts as home",
            atBats: []model.AtBat{
                ab(1, "", model.ResultStrikeout, model.Bases{}),
                ab(1, model.TeamSideHome, model.ResultPopOut, model.Bases{}),
            },
            inning: 1, side: model.TeamSideHome,
            want: 2,
        },
        {
            name: "non-out results contribute nothing",
            atBats: []model.AtBat{
                ab(1, model.TeamSideHome, model.ResultSingle, model.Bases{}),
                ab(1, model.TeamSideHome, model.ResultWalk, model.Bases{}),
                ab(1, model.TeamSideHome, model.ResultError, model.Bases{}),
                ab(1, model.TeamSideHome, model.ResultHitByPitch, model.Bases{}),
            },
            inning: 1, side: model.TeamSideHome,
            want: 0,
        },
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            if got := OutsInHalfInning(tc.atBats, tc.inning, tc.side); got != tc.want {
                t.Errorf("OutsInHalfInning = %d, want %d", got, tc.want)
            }
        })
    }
}

func TestIsHalfInningOver(t *testing.T) {
    two := []model.AtBat{
        ab(1, model.TeamSideHome, model.ResultStrikeout, model.Bases{}),
        ab(1, model.TeamSideHome, model.ResultFlyOut, model.Bases{}),
    }
    if IsHalfInningOver(two, 1, model.TeamSideHome) {
        t.Error("two outs should not close the half-inning")
    }
    three := append(two, ab(1, model.TeamSideHome, model.ResultGroundOut, model.Bases{}))
    if !IsHalfInningOver(three, 1, model.TeamSideHome) {
        t.Error("three outs should close the half-inning")
    }
    // Counts past three stay closed.
    four := append(three, ab(1, model.TeamSideHome, model.ResultLineOut, model.Bases{}))
    if !IsHalfInningOver(four, 1, model.TeamSideHome) {
        t.Error("four outs should keep the half-inning closed")
    }
}

func TestIsOutResult(t *testing.T) {
    outs := []model.Result{
        model.ResultStrikeout, model.ResultGroundOut, model.ResultFlyOut,
        model.ResultLineOut, model.ResultPopOut,
    }
    for _, r := range outs {
        if !IsOutResult(r) {
            t.Errorf("IsOutResult(%q) = false, want true", r)
        }
    }
    notOuts := []model.Result{
        model.ResultSingle, model.ResultDouble, model.ResultTriple,
        model.ResultHomeRun, model.ResultWalk, model.ResultError,
        model.ResultHitByPitch, model.ResultSacrificeFly, model.ResultSacrificeBunt,
    }
    for _, r := range notOuts {
        if IsOutResult(r) {
            t.Errorf("IsOutResult(%q) = true, want false", r)
        }
    }
}
