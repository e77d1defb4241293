package scorebook

import (
    "testing"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

func TestRecomputeScore(t *testing.T) {
    tests := []struct {
        name   string
        atBats []model.AtBat
        want   int
    }{
        {"empty ledger", nil, 0},
        {
            "sums every row regardless of inning or side",
            []model.AtBat{
                {Inning: 1, TeamSide: model.TeamSideHome, RunsScored: 1},
                {Inning: 1, TeamSide: model.TeamSideHome, RunsScored: 0},
                {Inning: 3, TeamSide: model.TeamSideHome, RunsScored: 1},
                {Inning: 3, TeamSide: model.TeamSideOpponent, RunsScored: 1},
                {Inning: 7, TeamSide: "", RunsScored: 1},
            },
            4,
        },
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            if got := RecomputeScore(tc.atBats); got != tc.want {
                t.Errorf("RecomputeScore = %d, want %d", got, tc.want)
            }
        })
    }
}
