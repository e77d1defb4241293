package handler

import (
    "errors"
    "log"
    "net/http"
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

// GameHandler manages the game lifecycle: creation, status
// transitions, lineup attachment and the bulk reset of scoring data.
type GameHandler struct {
    Teams   *repository.TeamRepo
    Games   *repository.GameRepo
    Lineups *repository.LineupRepo
    Book    *scorebook.Service
}

func NewGameHandler(teams *repository.TeamRepo, games *repository.GameRepo, lineups *repository.LineupRepo, book *scorebook.Service) *GameHandler {
    if teams == nil || games == nil || lineups == nil || book == nil {
        panic("nil dependency passed to NewGameHandler")
    }
    return &GameHandler{Teams: teams, Games: games, Lineups: lineups, Book: book}
}

type gameReq struct {
    Opponent          string    `json:"opponent"`
    ScheduledAt       time.Time `json:"scheduled_at"`
    OpponentBatsFirst bool      `json:"opponent_bats_first"`
}

type gameResp struct {
    ID                uint64    `json:"id"`
    TeamID            uint64    `json:"team_id"`
    Opponent          string    `json:"opponent"`
    ScheduledAt       time.Time `json:"scheduled_at"`
    OurScore          int       `json:"our_score"`
    OpponentScore     int       `json:"opponent_score"`
    Innings           int       `json:"innings"`
    Status            string    `json:"status"`
    HomeLineupID      *uint64   `json:"home_lineup_id,omitempty"`
    OpponentLineupID  *uint64   `json:"opponent_lineup_id,omitempty"`
    OpponentBatsFirst bool      `json:"opponent_bats_first"`
}

func toGameResp(g *model.Game) gameResp {
    return gameResp{
        ID: g.ID, TeamID: g.TeamID, Opponent: g.Opponent, ScheduledAt: g.ScheduledAt,
        OurScore: g.OurScore, OpponentScore: g.OpponentScore, Innings: g.Innings,
        Status: g.Status, HomeLineupID: g.HomeLineupID, OpponentLineupID: g.OpponentLineupID,
        OpponentBatsFirst: g.OpponentBatsFirst,
    }
}

// ownGame loads the game from :id and verifies the caller owns the
// team it belongs to.  On failure the error response is already
// written and ok is false.
func (h *GameHandler) ownGame(c echo.Context) (*model.Game, bool) {
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

// Create handles POST /v1/teams/:id/games.
func (h *GameHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    teamID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team id"})
    }
    if _, err := h.Teams.GetOwned(c.Request().Context(), teamID, userID); err != nil {
        return teamError(c, err)
    }
    var req gameReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Opponent = strings.TrimSpace(req.Opponent)
    if req.Opponent == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "opponent is required"})
    }
    if req.ScheduledAt.IsZero() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "scheduled_at is required"})
    }
    g := &model.Game{
        TeamID:            teamID,
        Opponent:          req.Opponent,
        ScheduledAt:       req.ScheduledAt.UTC(),
        OpponentBatsFirst: req.OpponentBatsFirst,
    }
    if err := h.Games.Create(c.Request().Context(), g); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create game"})
    }
    return c.JSON(http.StatusCreated, toGameResp(g))
}

// List handles GET /v1/teams/:id/games.
func (h *GameHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    teamID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team id"})
    }
    if _, err := h.Teams.GetOwned(c.Request().Context(), teamID, userID); err != nil {
        return teamError(c, err)
    }
    games, err := h.Games.ListByTeam(c.Request().Context(), teamID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load games"})
    }
    items := make([]gameResp, 0, len(games))
    for i := range games {
        items = append(items, toGameResp(&games[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/games/:id.
func (h *GameHandler) Get(c echo.Context) error {
    g, ok := h.ownGame(c)
    if !ok {
        return nil
    }
    return c.JSON(http.StatusOK, echo.Map{"item": toGameResp(g)})
}

// UpdateStatus handles PATCH /v1/games/:id/status.  Only the forward
// transition is accepted.  Completing a game publishes a
// game.completed event; publish failures are logged, never surfaced.
func (h *GameHandler) UpdateStatus(c echo.Context) error {
    g, ok := h.ownGame(c)
    if !ok {
        return nil
    }
    var body struct {
        Status string `json:"status"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    next := strings.ToLower(strings.TrimSpace(body.Status))
    if next != model.GameInProgress && next != model.GameCompleted {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
    }
    updated, err := h.Games.UpdateStatus(c.Request().Context(), g.ID, next)
    if err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "invalid status transition"})
        }
        return gameError(c, err)
    }
    if next == model.GameCompleted {
        ev := queue.GameCompletedEvent{
            EventID:       uuid.NewString(),
            GameID:        updated.ID,
            Opponent:      updated.Opponent,
            OurScore:      updated.OurScore,
            OpponentScore: updated.OpponentScore,
            Innings:       updated.Innings,
            CompletedAt:   time.Now().UTC().Format(time.RFC3339),
        }
        if err := publisher.PublishGameCompleted(c.Request().Context(), ev); err != nil {
            log.Printf("game handler: publish game.completed failed: %v", err)
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"item": toGameResp(updated)})
}

// SetLineups handles PATCH /v1/games/:id/lineups.  A lineup must
// pass activation validation (full 9 or 10, unique orders and
// positions) before it can be attached.
func (h *GameHandler) SetLineups(c echo.Context) error {
    g, ok := h.ownGame(c)
    if !ok {
        return nil
    }
    var body struct {
        HomeLineupID     *uint64 `json:"home_lineup_id"`
        OpponentLineupID *uint64 `json:"opponent_lineup_id"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.HomeLineupID == nil && body.OpponentLineupID == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "no lineup provided"})
    }
    ctx := c.Request().Context()
    for _, id := range []*uint64{body.HomeLineupID, body.OpponentLineupID} {
        if id == nil {
            continue
        }
        l, err := h.Lineups.GetByID(ctx, *id)
        if err != nil {
            return lineupError(c, err)
        }
        entries, err := h.Lineups.ListEntries(ctx, *id)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load entries"})
        }
        if err := scorebook.ValidateLineup(entries, l.WithDH); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
        }
    }
    if err := h.Games.SetLineups(ctx, g.ID, body.HomeLineupID, body.OpponentLineupID); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "game is completed"})
        }
        return gameError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// UpdateManualFields handles PATCH /v1/games/:id, covering the two
// values scoring does not derive: opponent score and innings played.
func (h *GameHandler) UpdateManualFields(c echo.Context) error {
    g, ok := h.ownGame(c)
    if !ok {
        return nil
    }
    var body struct {
        OpponentScore *int `json:"opponent_score"`
        Innings       *int `json:"innings"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    opp := g.OpponentScore
    innings := g.Innings
    if body.OpponentScore != nil {
        opp = *body.OpponentScore
    }
    if body.Innings != nil {
        innings = *body.Innings
    }
    if opp < 0 || innings < 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "values must not be negative"})
    }
    if err := h.Games.UpdateManualFields(c.Request().Context(), g.ID, opp, innings); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "game is completed"})
        }
        return gameError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// Reset handles POST /v1/games/:id/reset.  All at-bats are removed
// first, then the game row returns to its initial state.
func (h *GameHandler) Reset(c echo.Context) error {
    g, ok := h.ownGame(c)
    if !ok {
        return nil
    }
    removed, err := h.Book.ClearGame(c.Request().Context(), g.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reset game"})
    }
    return c.JSON(http.StatusOK, echo.Map{"removed_at_bats": removed})
}

func gameError(c echo.Context, err error) error {
    if errors.Is(err, repository.ErrGameNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "game not found"})
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
