package scorebook

import "github.com/Skullkid2995/baseball-app-sub000/internal/model"

// ValidateLineup checks that a lineup is ready for activation:
// exactly 9 entries (10 when a designated hitter is used), batting
// orders 1..N with no duplicates, and no duplicated fielding
// position.  The first violation found is returned; a valid lineup
// returns nil.
func ValidateLineup(entries []model.LineupEntry, withDH bool) error {
    size := 9
    if withDH {
        size = 10
    }
    if len(entries) != size {
        return ErrLineupSize
    }
    orders := make(map[int]bool, size)
    positions := make(map[string]bool, size)
    for _, e := range entries {
        if e.BattingOrder < 1 || e.BattingOrder > size {
            return ErrBadBattingOrder
        }
        if orders[e.BattingOrder] {
            return ErrDuplicateOrder
        }
        orders[e.BattingOrder] = true
        if positions[e.Position] {
            return ErrDuplicatePosition
        }
        positions[e.Position] = true
    }
    return nil
}
