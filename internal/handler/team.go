package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
    "github.com/Skullkid2995/baseball-app-sub000/internal/repository"
)

// TeamHandler implements team CRUD for coaches.  Every method
// assumes JWT and role middleware already ran; ownership is enforced
// in the repository layer and surfaced as 403.
type TeamHandler struct {
    Teams *repository.TeamRepo
}

// NewTeamHandler constructs a TeamHandler.  The repository must be
// non-nil.
func NewTeamHandler(teams *repository.TeamRepo) *TeamHandler {
    if teams == nil {
        panic("nil repository passed to NewTeamHandler")
    }
    return &TeamHandler{Teams: teams}
}

type teamReq struct {
    Name   string  `json:"name"`
    Season *string `json:"season"`
}

type teamResp struct {
    ID     uint64  `json:"id"`
    Name   string  `json:"name"`
    Season *string `json:"season,omitempty"`
}

func toTeamResp(t *model.Team) teamResp {
    return teamResp{ID: t.ID, Name: t.Name, Season: t.Season}
}

// Create handles POST /v1/teams.
func (h *TeamHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req teamReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    team := &model.Team{OwnerID: userID, Name: req.Name, Season: req.Season}
    if err := h.Teams.Create(c.Request().Context(), team); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create team"})
    }
    return c.JSON(http.StatusCreated, toTeamResp(team))
}

// List handles GET /v1/teams, returning the caller's teams.
func (h *TeamHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    teams, err := h.Teams.ListByOwner(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load teams"})
    }
    items := make([]teamResp, 0, len(teams))
    for i := range teams {
        items = append(items, toTeamResp(&teams[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/teams/:id.
func (h *TeamHandler) Get(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    teamID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team id"})
    }
    team, err := h.Teams.GetOwned(c.Request().Context(), teamID, userID)
    if err != nil {
        return teamError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"item": toTeamResp(team)})
}

// Update handles PATCH /v1/teams/:id.
func (h *TeamHandler) Update(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    teamID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team id"})
    }
    var req teamReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    if err := h.Teams.Update(c.Request().Context(), teamID, userID, req.Name, req.Season); err != nil {
        return teamError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/teams/:id.  Teams with games return 409.
func (h *TeamHandler) Delete(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    teamID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid team id"})
    }
    if err := h.Teams.Delete(c.Request().Context(), teamID, userID); err != nil {
        return teamError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// teamError maps repository sentinels to HTTP responses.
func teamError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, repository.ErrTeamNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "team not found"})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    case errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, echo.Map{"error": "team has recorded games"})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
}
