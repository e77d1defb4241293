package scorebook

import (
    "testing"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

func TestInterpret(t *testing.T) {
    tests := []struct {
        name     string
        notation string
        want     model.Result
    }{
        {"single H1", "H1", model.ResultSingle},
        {"single 1B", "1B", model.ResultSingle},
        {"single S", "S", model.ResultSingle},
        {"double", "H2", model.ResultDouble},
        {"double 2B", "2B", model.ResultDouble},
        {"triple", "3B", model.ResultTriple},
        {"home run HR", "HR", model.ResultHomeRun},
        {"home run H4", "H4", model.ResultHomeRun},
        {"walk", "BB", model.ResultWalk},
        {"intentional walk", "IBB", model.ResultWalk},
        {"wild pitch rides as walk", "WP", model.ResultWalk},
        {"passed ball rides as walk", "PB", model.ResultWalk},
        {"balk rides as walk", "BK", model.ResultWalk},
        {"catcher interference rides as walk", "CI", model.ResultWalk},
        {"hit by pitch", "HBP", model.ResultHitByPitch},
        {"strikeout swinging", "K", model.ResultStrikeout},
        {"strikeout looking", "KC", model.ResultStrikeout},
        {"sacrifice fly", "SF", model.ResultSacrificeFly},
        {"sacrifice bunt", "SAC", model.ResultSacrificeBunt},
        {"error", "E", model.ResultError},
        {"error on shortstop", "E-6", model.ResultError},
        {"fly out to center", "F-8", model.ResultFlyOut},
        {"fly out compact form", "F8", model.ResultFlyOut},
        {"line out", "L-6", model.ResultLineOut},
        {"pop out", "P-4", model.ResultPopOut},
        {"infield fly", "IF", model.ResultPopOut},
        {"ground out 6-3", "6-3", model.ResultGroundOut},
        {"ground out unassisted", "3U", model.ResultGroundOut},
        {"double play", "6-4-3", model.ResultGroundOut},
        {"DP shorthand", "DP", model.ResultGroundOut},
        {"fielder's choice", "FC", model.ResultGroundOut},
        {"lower case input", "hr", model.ResultHomeRun},
        {"surrounding whitespace", "  k  ", model.ResultStrikeout},
        {"unknown falls back to ground out", "XYZ", model.ResultGroundOut},
        {"empty falls back to ground out", "", model.ResultGroundOut},
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            if got := Interpret(tc.notation); got != tc.want {
                t.Errorf("Interpret(%q) = %q, want %q", tc.notation, got, tc.want)
            }
        })
    }
}

func TestRunsFromBases(t *testing.T) {
    if got := RunsFromBases(model.Bases{Home: true}); got != 1 {
        t.Errorf("home reached: got %d runs, want 1", got)
    }
    if got := RunsFromBases(model.Bases{First: true, Second: true, Third: true}); got != 0 {
        t.Errorf("bases loaded without home: got %d runs, want 0", got)
    }
    if got := RunsFromBases(model.Bases{}); got != 0 {
        t.Errorf("empty bases: got %d runs, want 0", got)
    }
}

func TestRunScored(t *testing.T) {
    b := RunScored()
    if !b.Home {
        t.Error("RunScored must set Home")
    }
    if b.First || b.Second || b.Third {
        t.Errorf("RunScored must clear the other bases, got %+v", b)
    }
}
