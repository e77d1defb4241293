package scorebook

import (
    "sort"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
)

// Batter is the answer to "who is up, and in which inning".  No
// current-batter pointer is persisted anywhere; this is always
// recomputed from the lineup and the at-bat history.
type Batter struct {
    PlayerID     uint64
    BattingOrder int
    Inning       int
}

// CurrentBatter determines the batter due up for a team side given
// its lineup and the game's at-bat ledger.
//
// The active inning is the highest inning with any at-bat for this
// team side; at-bats of the other side never move it.  If that
// half-inning has three outs the target advances to the next inning.
// Within the target inning the next batter follows the highest
// batting-order slot that has already appeared, wrapping to the top
// of the order after the last slot.
//
// Given a non-empty lineup it always returns a valid pair; the only
// error is ErrEmptyLineup.
func CurrentBatter(lineup []model.LineupEntry, atBats []model.AtBat, side model.TeamSide) (Batter, error) {
    if len(lineup) == 0 {
        return Batter{}, ErrEmptyLineup
    }
    side = side.Normalize()

    order := make([]model.LineupEntry, len(lineup))
    copy(order, lineup)
    sort.Slice(order, func(i, j int) bool { return order[i].BattingOrder < order[j].BattingOrder })

    orderIdx := make(map[uint64]int, len(order)) // player -> index into order
    for i, e := range order {
        orderIdx[e.PlayerID] = i
    }

    maxInning := 0
    for _, ab := range atBats {
        if ab.TeamSide.Normalize() != side {
            continue
        }
        if ab.Inning > maxInning {
            maxInning = ab.Inning
        }
    }
    if maxInning == 0 {
        // No at-bats yet for this side: leadoff hitter, first inning.
        return Batter{PlayerID: order[0].PlayerID, BattingOrder: order[0].BattingOrder, Inning: 1}, nil
    }

    target := maxInning
    if IsHalfInningOver(atBats, maxInning, side) {
        target = maxInning + 1
    }

    // Highest batting-order slot already used in the target inning.
    last := -1
    for _, ab := range atBats {
        if ab.Inning != target || ab.TeamSide.Normalize() != side {
            continue
        }
        if i, ok := orderIdx[ab.PlayerID]; ok && i > last {
            last = i
        }
    }
    if last < 0 {
        // Fresh half-inning: top of the order.
        return Batter{PlayerID: order[0].PlayerID, BattingOrder: order[0].BattingOrder, Inning: target}, nil
    }
    next := order[(last+1)%len(order)]
    return Batter{PlayerID: next.PlayerID, BattingOrder: next.BattingOrder, Inning: target}, nil
}
