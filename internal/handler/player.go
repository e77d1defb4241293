package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
    "github.com/Skullkid2995/baseball-app-sub000/internal/repository"
)

// PlayerHandler implements roster management under a team.  The team
// ownership check runs first on every route so a coach can only
// touch their own roster.
type PlayerHandler struct {
    Teams   *repository.TeamRepo
    Players *repository.PlayerRepo
}

func NewPlayerHandler(teams *repository.TeamRepo, players *repository.PlayerRepo) *PlayerHandler {
    if teams == nil || players == nil {
        panic("nil repository passed to NewPlayerHandler")
    }
    return &PlayerHandler{Teams: teams, Players: players}
}

type playerReq struct {
    Name     string  `json:"name"`
    Number   *uint32 `json:"number"`
    PhotoURL *string `json:"photo_url"`
    IsActive *bool   `json:"is_active"`
}

type playerResp struct {
    ID       uint64  `json:"id"`
    TeamID   uint64  `json:"team_id"`
    Name     string  `json:"name"`
    Number   *uint32 `json:"number,omitempty"`
    PhotoURL *string `json:"photo_url,omitempty"`
    IsActive bool    `json:"is_active"`
}

func toPlayerResp(p *model.Player) playerResp {
    return playerResp{ID: p.ID, TeamID: p.TeamID, Name: p.Name, Number: p.Number, PhotoURL: p.PhotoURL, IsActive: p.IsActive}
}

// ownTeam loads the team from :id and verifies the caller owns it.
// On failure the error response is already written and ok is false.
func (h *PlayerHandler) ownTeam(c echo.Context) (uint64, bool) {
    userID, err := getUserID(c)
    if err != nil {
        _ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
        return 0, false
    }
    teamID, ok := pathID(c, "id")
    if !ok {
        _ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team id"})
        return 0, false
    }
    if _, err := h.Teams.GetOwned(c.Request().Context(), teamID, userID); err != nil {
        _ = teamError(c, err)
        return 0, false
    }
    return teamID, true
}

// Create handles POST /v1/teams/:id/players.
func (h *PlayerHandler) Create(c echo.Context) error {
    teamID, ok := h.ownTeam(c)
    if !ok {
        return nil
    }
    var req playerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    active := true
    if req.IsActive != nil {
        active = *req.IsActive
    }
    p := &model.Player{TeamID: teamID, Name: req.Name, Number: req.Number, PhotoURL: req.PhotoURL, IsActive: active}
    if err := h.Players.Create(c.Request().Context(), p); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create player"})
    }
    return c.JSON(http.StatusCreated, toPlayerResp(p))
}

// List handles GET /v1/teams/:id/players.
func (h *PlayerHandler) List(c echo.Context) error {
    teamID, ok := h.ownTeam(c)
    if !ok {
        return nil
    }
    players, err := h.Players.ListByTeam(c.Request().Context(), teamID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load players"})
    }
    items := make([]playerResp, 0, len(players))
    for i := range players {
        items = append(items, toPlayerResp(&players[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Update handles PATCH /v1/teams/:id/players/:playerID.
func (h *PlayerHandler) Update(c echo.Context) error {
    teamID, ok := h.ownTeam(c)
    if !ok {
        return nil
    }
    playerID, ok := pathID(c, "playerID")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid player id"})
    }
    p, err := h.Players.GetByID(c.Request().Context(), playerID)
    if err != nil {
        return playerError(c, err)
    }
    if p.TeamID != teamID {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "player not found"})
    }
    var req playerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if name := strings.TrimSpace(req.Name); name != "" {
        p.Name = name
    }
    if req.Number != nil {
        p.Number = req.Number
    }
    if req.PhotoURL != nil {
        p.PhotoURL = req.PhotoURL
    }
    if req.IsActive != nil {
        p.IsActive = *req.IsActive
    }
    if err := h.Players.Update(c.Request().Context(), p); err != nil {
        return playerError(c, err)
    }
    return c.JSON(http.StatusOK, toPlayerResp(p))
}

// Delete handles DELETE /v1/teams/:id/players/:playerID.  Players
// already referenced by at-bats or lineups return 409.
func (h *PlayerHandler) Delete(c echo.Context) error {
    teamID, ok := h.ownTeam(c)
    if !ok {
        return nil
    }
    playerID, ok := pathID(c, "playerID")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid player id"})
    }
    p, err := h.Players.GetByID(c.Request().Context(), playerID)
    if err != nil {
        return playerError(c, err)
    }
    if p.TeamID != teamID {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "player not found"})
    }
    if err := h.Players.Delete(c.Request().Context(), playerID); err != nil {
        return playerError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

func playerError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, repository.ErrPlayerNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "player not found"})
    case errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, echo.Map{"error": "player has recorded history"})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
}
