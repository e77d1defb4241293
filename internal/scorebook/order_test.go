package scorebook

import (
    "errors"
    "testing"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// nineLineup builds a 9-slot lineup with player IDs 101..109 in
// batting order 1..9.
func nineLineup() []model.LineupEntry {
    entries := make([]model.LineupEntry, 0, 9)
    for i := 1; i <= 9; i++ {
        entries = append(entries, model.LineupEntry{
            PlayerID:     uint64(100 + i),
            BattingOrder: i,
            Position:     positionFor(i),
        })
    }
    return entries
}

func positionFor(order int) string {
    positions := []string{"P", "C", "1B", "2B", "3B", "SS", "LF", "CF", "RF", "DH"}
    return positions[order-1]
}

func plateAppearance(playerID uint64, inning int, side model.TeamSide, result model.Result) model.AtBat {
    return model.AtBat{PlayerID: playerID, Inning: inning, TeamSide: side, Result: result}
}

func TestCurrentBatterEmptyLineup(t *testing.T) {
    _, err := CurrentBatter(nil, nil, model.TeamSideHome)
    if !errors.Is(err, ErrEmptyLineup) {
        t.Fatalf("got %v, want ErrEmptyLineup", err)
    }
}

func TestCurrentBatter(t *testing.T) {
    lineup := nineLineup()

    tests := []struct {
        name       string
        atBats     []model.AtBat
        side       model.TeamSide
        wantPlayer uint64
        wantOrder  int
        wantInning int
    }{
        {
            name:       "fresh game leads off with slot one",
            atBats:     nil,
            side:       model.TeamSideHome,
            wantPlayer: 101, wantOrder: 1, wantInning: 1,
        },
        {
            name: "advances to next slot mid-inning",
            atBats: []model.AtBat{
                plateAppearance(101, 1, model.TeamSideHome, model.ResultSingle),
                plateAppearance(102, 1, model.TeamSideHome, model.ResultWalk),
            },
            side:       model.TeamSideHome,
            wantPlayer: 103, wantOrder: 3, wantInning: 1,
        },
        {
            name: "wraps from slot nine back to slot one",
            atBats: []model.AtBat{
                plateAppearance(109, 2, model.TeamSideHome, model.ResultSingle),
            },
            side:       model.TeamSideHome,
            wantPlayer: 101, wantOrder: 1, wantInning: 2,
        },
        {
            name: "three outs advance the target inning",
            atBats: []model.AtBat{
                plateAppearance(101, 1, model.TeamSideHome, model.ResultStrikeout),
                plateAppearance(102, 1, model.TeamSideHome, model.ResultGroundOut),
                plateAppearance(103, 1, model.TeamSideHome, model.ResultFlyOut),
            },
            side:       model.TeamSideHome,
            wantPlayer: 104, wantOrder: 4, wantInning: 2,
        },
        {
            name: "opponent at-bats never move our inning",
            atBats: []model.AtBat{
                plateAppearance(101, 1, model.TeamSideHome, model.ResultSingle),
                plateAppearance(201, 4, model.TeamSideOpponent, model.ResultSingle),
            },
            side:       model.TeamSideHome,
            wantPlayer: 102, wantOrder: 2, wantInning: 1,
        },
        {
            name: "legacy empty side rows count as home",
            atBats: []model.AtBat{
                plateAppearance(101, 1, "", model.ResultSingle),
            },
            side:       model.TeamSideHome,
            wantPlayer: 102, wantOrder: 2, wantInning: 1,
        },
        {
            name: "skipped batter resumes from the highest slot used",
            atBats: []model.AtBat{
                plateAppearance(105, 3, model.TeamSideHome, model.ResultDouble),
                plateAppearance(102, 3, model.TeamSideHome, model.ResultSingle),
            },
            side:       model.TeamSideHome,
            wantPlayer: 106, wantOrder: 6, wantInning: 3,
        },
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            got, err := CurrentBatter(lineup, tc.atBats, tc.side)
            if err != nil {
                t.Fatalf("CurrentBatter returned error: %v", err)
            }
            if got.PlayerID != tc.wantPlayer || got.BattingOrder != tc.wantOrder || got.Inning != tc.wantInning {
                t.Errorf("got player=%d order=%d inning=%d, want player=%d order=%d inning=%d",
                    got.PlayerID, got.BattingOrder, got.Inning,
                    tc.wantPlayer, tc.wantOrder, tc.wantInning)
            }
        })
    }
}

func TestCurrentBatterUnsortedLineup(t *testing.T) {
    // Entry order in storage must not matter, only BattingOrder.
    lineup := []model.LineupEntry{
        {PlayerID: 303, BattingOrder: 3, Position: "1B"},
        {PlayerID: 301, BattingOrder: 1, Position: "P"},
        {PlayerID: 302, BattingOrder: 2, Position: "C"},
    }
    got, err := CurrentBatter(lineup, nil, model.TeamSideHome)
    if err != nil {
        t.Fatalf("CurrentBatter returned error: %v", err)
    }
    if got.PlayerID != 301 || got.BattingOrder != 1 {
        t.Errorf("got player=%d order=%d, want player=301 order=1", got.PlayerID, got.BattingOrder)
    }
}

func TestCurrentBatterDHLineup(t *testing.T) {
    lineup := nineLineup()
    lineup = append(lineup, model.LineupEntry{PlayerID: 110, BattingOrder: 10, Position: "DH"})
    atBats := []model.AtBat{
        plateAppearance(109, 5, model.TeamSideHome, model.ResultSingle),
    }
    got, err := CurrentBatter(lineup, atBats, model.TeamSideHome)
    if err != nil {
        t.Fatalf("CurrentBatter returned error: %v", err)
    }
    if got.PlayerID != 110 || got.BattingOrder != 10 || got.Inning != 5 {
        t.Errorf("got player=%d order=%d inning=%d, want player=110 order=10 inning=5",
            got.PlayerID, got.BattingOrder, got.Inning)
    }
}
