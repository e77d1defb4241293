package scorebook

import (
    "errors"
    "testing"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

func TestValidateLineup(t *testing.T) {
    valid := nineLineup()

    tenValid := append(nineLineup(), model.LineupEntry{PlayerID: 110, BattingOrder: 10, Position: "DH"})

    short := nineLineup()[:8]

    dupOrder := nineLineup()
    dupOrder[8].BattingOrder = 1

    dupPosition := nineLineup()
    dupPosition[8].Position = "P"

    outOfRange := nineLineup()
    outOfRange[0].BattingOrder = 12

    tests := []struct {
        name    string
        entries []model.LineupEntry
        withDH  bool
        wantErr error
    }{
        {"valid nine", valid, false, nil},
        {"valid ten with DH", tenValid, true, nil},
        {"eight entries", short, false, ErrLineupSize},
        {"nine entries with DH flag", valid, true, ErrLineupSize},
        {"ten entries without DH flag", tenValid, false, ErrLineupSize},
        {"duplicate batting order", dupOrder, false, ErrDuplicateOrder},
        {"duplicate position", dupPosition, false, ErrDuplicatePosition},
        {"batting order out of range", outOfRange, false, ErrBadBattingOrder},
        {"empty lineup", nil, false, ErrLineupSize},
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            err := ValidateLineup(tc.entries, tc.withDH)
            if tc.wantErr == nil {
                if err != nil {
                    t.Errorf("ValidateLineup returned %v, want nil", err)
                }
                return
            }
            if !errors.Is(err, tc.wantErr) {
                t.Errorf("ValidateLineup returned %v, want %v", err, tc.wantErr)
            }
        })
    }
}
