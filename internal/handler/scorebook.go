package handler

import (
    "errors"
    "log"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
    "github.com/Skullkid2995/baseball-app-sub000/internal/queue"
    "github.com/Skullkid2995/baseball-app-sub000/internal/repository"
    "github.com/Skullkid2995/baseball-app-sub000/internal/scorebook"
    publisher "github.com/Skullkid2995/baseball-app-sub000/internal/service"
)

// ScorebookHandler exposes the live scoring surface: saving at-bats,
// reading the ledger, and the derived current-batter / out-count
// views.  All derivation happens in the scorebook package; this
// handler only translates HTTP.
type ScorebookHandler struct {
    Teams  *repository.TeamRepo
    Games  *repository.GameRepo
    AtBats *repository.AtBatRepo
    Book   *scorebook.Service
}

func NewScorebookHandler(teams *repository.TeamRepo, games *repository.GameRepo, atBats *repository.AtBatRepo, book *scorebook.Service) *ScorebookHandler {
    if teams == nil || games == nil || atBats == nil || book == nil {
        panic("nil dependency passed to NewScorebookHandler")
    }
    return &ScorebookHandler{Teams: teams, Games: games, AtBats: atBats, Book: book}
}

type saveAtBatReq struct {
    PlayerID       uint64              `json:"player_id"`
    Inning         int                 `json:"inning"`
    TeamSide       string              `json:"team_side"`
    Notation       string              `json:"notation"`
    RunScored      bool                `json:"run_scored"`
    BaseRunners    model.Bases         `json:"base_runners"`
    BaseRunnerOuts model.Bases         `json:"base_runner_outs"`
    OutTypes       model.OutTypes      `json:"out_types"`
    RBI            int                 `json:"rbi"`
    Location       model.FieldLocation `json:"location"`
    NewOccurrence  bool                `json:"new_occurrence"`
}

type atBatResp struct {
    ID             uint64              `json:"id"`
    GameID         uint64              `json:"game_id"`
    PlayerID       uint64              `json:"player_id"`
    Inning         int                 `json:"inning"`
    TeamSide       string              `json:"team_side"`
    Occurrence     int                 `json:"occurrence"`
    Notation       string              `json:"notation"`
    Result         string              `json:"result"`
    RunsScored     int                 `json:"runs_scored"`
    RBI            int                 `json:"rbi"`
    BaseRunners    model.Bases         `json:"base_runners"`
    BaseRunnerOuts model.Bases         `json:"base_runner_outs"`
    OutTypes       model.OutTypes      `json:"out_types"`
    Location       model.FieldLocation `json:"location"`
}

func toAtBatResp(ab *model.AtBat) atBatResp {
    return atBatResp{
        ID: ab.ID, GameID: ab.GameID, PlayerID: ab.PlayerID, Inning: ab.Inning,
        TeamSide: string(ab.TeamSide), Occurrence: ab.Occurrence, Notation: ab.Notation,
        Result: string(ab.Result), RunsScored: ab.RunsScored, RBI: ab.RBI,
        BaseRunners: ab.BaseRunners, BaseRunnerOuts: ab.BaseRunnerOuts,
        OutTypes: ab.OutTypes, Location: ab.Location,
    }
}

// parseSide accepts "home", "opponent" or empty (legacy, meaning
// home) and rejects anything else.
func parseSide(raw string) (model.TeamSide, bool) {
    switch strings.ToLower(strings.TrimSpace(raw)) {
    case "", "home":
        return model.TeamSideHome, true
    case "opponent":
        return model.TeamSideOpponent, true
    }
    return "", false
}

// Save handles POST /v1/games/:id/at-bats.  Saving the same logical
// cell twice updates rather than duplicates; a completed game is
// rejected before anything is written.
func (h *ScorebookHandler) Save(c echo.Context) error {
    g, ok := h.ownGameForScoring(c)
    if !ok {
        return nil
    }
    var req saveAtBatReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.PlayerID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "player_id is required"})
    }
    side, ok := parseSide(req.TeamSide)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team_side"})
    }
    runners := req.BaseRunners
    if req.RunScored {
        // The run-scored action is terminal: it overwrites the whole
        // snapshot, it is not a base selection.
        runners = scorebook.RunScored()
    }
    in := scorebook.SaveInput{
        GameID:         g.ID,
        PlayerID:       req.PlayerID,
        Inning:         req.Inning,
        TeamSide:       side,
        Notation:       req.Notation,
        BaseRunners:    runners,
        BaseRunnerOuts: req.BaseRunnerOuts,
        OutTypes:       req.OutTypes,
        RBI:            req.RBI,
        Location:       req.Location,
        NewOccurrence:  req.NewOccurrence,
    }
    saved, err := h.Book.SaveAtBat(c.Request().Context(), in)
    scoreStale := false
    if err != nil {
        switch {
        case errors.Is(err, scorebook.ErrGameCompleted):
            return c.JSON(http.StatusConflict, echo.Map{"error": "game is completed"})
        case errors.Is(err, scorebook.ErrLineupNotSet):
            return c.JSON(http.StatusConflict, echo.Map{"error": "both lineups must be set before scoring"})
        case errors.Is(err, scorebook.ErrInvalidInning), errors.Is(err, scorebook.ErrInvalidRBI):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
        case errors.Is(err, scorebook.ErrScoreWrite):
            // The at-bat committed; only the score overwrite failed.
            // Surface the save with a staleness warning.
            scoreStale = true
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save at-bat"})
        }
    }
    ev := queue.AtBatRecordedEvent{
        EventID:    uuid.NewString(),
        GameID:     g.ID,
        PlayerID:   saved.PlayerID,
        Inning:     saved.Inning,
        TeamSide:   string(saved.TeamSide),
        Result:     string(saved.Result),
        RunsScored: saved.RunsScored,
        RecordedAt: time.Now().UTC().Format(time.RFC3339),
    }
    if err := publisher.PublishAtBatRecorded(c.Request().Context(), ev); err != nil {
        log.Printf("scorebook handler: publish atbat.recorded failed: %v", err)
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "item":        toAtBatResp(saved),
        "score_stale": scoreStale,
    })
}

// ListAtBats handles GET /v1/games/:id/at-bats.
func (h *ScorebookHandler) ListAtBats(c echo.Context) error {
    g, ok := h.ownGame(c)
    if !ok {
        return nil
    }
    atBats, err := h.AtBats.ListAtBats(c.Request().Context(), g.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load at-bats"})
    }
    items := make([]atBatResp, 0, len(atBats))
    for i := range atBats {
        items = append(items, toAtBatResp(&atBats[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CurrentBatter handles GET /v1/games/:id/current-batter?side=.
func (h *ScorebookHandler) CurrentBatter(c echo.Context) error {
    g, ok := h.ownGame(c)
    if !ok {
        return nil
    }
    side, ok := parseSide(c.QueryParam("side"))
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid side"})
    }
    batter, err := h.Book.BatterUp(c.Request().Context(), g.ID, side)
    if err != nil {
        switch {
        case errors.Is(err, scorebook.ErrLineupNotSet):
            return c.JSON(http.StatusConflict, echo.Map{"error": "both lineups must be set before scoring"})
        case errors.Is(err, scorebook.ErrEmptyLineup):
            return c.JSON(http.StatusConflict, echo.Map{"error": "lineup has no entries"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve batter"})
        }
    }
    return c.JSON(http.StatusOK, echo.Map{
        "player_id":     batter.PlayerID,
        "batting_order": batter.BattingOrder,
        "inning":        batter.Inning,
    })
}

// Outs handles GET /v1/games/:id/outs?inning=&side=.
func (h *ScorebookHandler) Outs(c echo.Context) error {
    g, ok := h.ownGame(c)
    if !ok {
        return nil
    }
    inning, err2 := strconv.Atoi(c.QueryParam("inning"))
    if err2 != nil || inning < 1 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid inning"})
    }
    side, ok := parseSide(c.QueryParam("side"))
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid side"})
    }
    outs, err := h.Book.Outs(c.Request().Context(), g.ID, inning, side)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to count outs"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "inning":    inning,
        "side":      string(side),
        "outs":      outs,
        "half_over": outs >= 3,
    })
}

// PublicScorebook handles GET /v1/games/:id/scorebook, the
// unauthenticated read-only grid: the ledger plus the derived score.
// Sits behind the redis response cache.
func (h *ScorebookHandler) PublicScorebook(c echo.Context) error {
    gameID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
    }
    ctx := c.Request().Context()
    g, err := h.Games.GetByID(ctx, gameID)
    if err != nil {
        return gameError(c, err)
    }
    atBats, err := h.AtBats.ListAtBats(ctx, gameID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load at-bats"})
    }
    items := make([]atBatResp, 0, len(atBats))
    for i := range atBats {
        items = append(items, toAtBatResp(&atBats[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{
        "game":     toGameResp(g),
        "at_bats":  items,
        "score":    scorebook.RecomputeScore(atBats),
        "status":   g.Status,
        "opponent": g.Opponent,
    })
}

// ownGame checks team ownership for read endpoints.  On failure the
// error response is already written and ok is false.
func (h *ScorebookHandler) ownGame(c echo.Context) (*model.Game, bool) {
    userID, err := getUserID(c)
    if err != nil {
        _ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
        return nil, false
    }
    gameID, ok := pathID(c, "id")
    if !ok {
        _ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game id"})
        return nil, false
    }
    g, err := h.Games.GetByID(c.Request().Context(), gameID)
    if err != nil {
        _ = gameError(c, err)
        return nil, false
    }
    if _, err := h.Teams.GetOwned(c.Request().Context(), g.TeamID, userID); err != nil {
        _ = teamError(c, err)
        return nil, false
    }
    return g, true
}

// ownGameForScoring additionally rejects games whose lineups are not
// both set, mirroring the scoring UI's refusal to open.
func (h *ScorebookHandler) ownGameForScoring(c echo.Context) (*model.Game, bool) {
    g, ok := h.ownGame(c)
    if !ok {
        return nil, false
    }
    if !g.LineupsSet() {
        _ = c.JSON(http.StatusConflict, echo.Map{"error": "both lineups must be set before scoring"})
        return nil, false
    }
    return g, true
}
