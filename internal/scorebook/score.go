package scorebook

import "github.com/Skullkid2995/baseball-app-sub000/internal/model"

// RecomputeScore returns our team's total runs as the sum of
// runs_scored over every ledger row for the game.  Only our runs
// travel through the ledger; the opponent score is entered manually
// and is not derived here.
//
// Every at-bat create or update is followed by a full recomputation
// and an unconditional overwrite of the stored score.  Deliberately
// not an incremental "+=": editing a prior at-bat's run flag would
// otherwise double-count.
func RecomputeScore(atBats []model.AtBat) int {
    total := 0
    for _, ab := range atBats {
        total += ab.RunsScored
    }
    return total
}
