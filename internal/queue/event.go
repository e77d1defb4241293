// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names.  Both queues are durable; payloads are JSON.
const (
    AtBatQueueName        = "atbat.recorded"
    GameCompleteQueueName = "game.completed"
)

// AtBatRecordedEvent is published after every successful at-bat save.
// It carries enough for downstream consumers to log or feed stats
// aggregation without querying the primary database.
type AtBatRecordedEvent struct {
    EventID    string `json:"event_id"`
    GameID     uint64 `json:"game_id"`
    PlayerID   uint64 `json:"player_id"`
    Inning     int    `json:"inning"`
    TeamSide   string `json:"team_side"`
    Result     string `json:"result"`
    RunsScored int    `json:"runs_scored"`
    RecordedAt string `json:"recorded_at"`
}

// GameCompletedEvent is published when a game transitions to
// completed, freezing its ledger.
type GameCompletedEvent struct {
    EventID       string `json:"event_id"`
    GameID        uint64 `json:"game_id"`
    Opponent      string `json:"opponent"`
    OurScore      int    `json:"our_score"`
    OpponentScore int    `json:"opponent_score"`
    Innings       int    `json:"innings"`
    CompletedAt   string `json:"completed_at"`
}
