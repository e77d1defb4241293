package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/Skullkid2995/baseball-app-sub000/internal/model"
    "github.com/Skullkid2995/baseball-app-sub000/internal/repository"
    "github.com/Skullkid2995/baseball-app-sub000/internal/scorebook"
)

// LineupHandler manages lineup templates and their entries.  Entry
// replacement validates the batting order before anything is written
// so a rejected lineup leaves no partial state.
type LineupHandler struct {
    Teams   *repository.TeamRepo
    Lineups *repository.LineupRepo
    Players *repository.PlayerRepo
}

func NewLineupHandler(teams *repository.TeamRepo, lineups *repository.LineupRepo, players *repository.PlayerRepo) *LineupHandler {
    if teams == nil || lineups == nil || players == nil {
        panic("nil repository passed to NewLineupHandler")
    }
    return &LineupHandler{Teams: teams, Lineups: lineups, Players: players}
}

type lineupReq struct {
    Name   string `json:"name"`
    WithDH bool   `json:"with_dh"`
}

type lineupEntryReq struct {
    PlayerID     uint64 `json:"player_id"`
    BattingOrder int    `json:"batting_order"`
    Position     string `json:"position"`
}

type lineupEntryResp struct {
    PlayerID     uint64 `json:"player_id"`
    BattingOrder int    `json:"batting_order"`
    Position     string `json:"position"`
}

type lineupResp struct {
    ID      uint64            `json:"id"`
    TeamID  uint64            `json:"team_id"`
    Name    string            `json:"name"`
    WithDH  bool              `json:"with_dh"`
    Entries []lineupEntryResp `json:"entries,omitempty"`
}

// Create handles POST /v1/teams/:id/lineups.
func (h *LineupHandler) Create(c echo.Context) error {
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
    var req lineupReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    l := &model.Lineup{TeamID: teamID, Name: req.Name, WithDH: req.WithDH}
    if err := h.Lineups.Create(c.Request().Context(), l); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create lineup"})
    }
    return c.JSON(http.StatusCreated, lineupResp{ID: l.ID, TeamID: l.TeamID, Name: l.Name, WithDH: l.WithDH})
}

// List handles GET /v1/teams/:id/lineups.
func (h *LineupHandler) List(c echo.Context) error {
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
    lineups, err := h.Lineups.ListByTeam(c.Request().Context(), teamID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load lineups"})
    }
    items := make([]lineupResp, 0, len(lineups))
    for _, l := range lineups {
        items = append(items, lineupResp{ID: l.ID, TeamID: l.TeamID, Name: l.Name, WithDH: l.WithDH})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/lineups/:id, returning the header plus ordered
// entries.
func (h *LineupHandler) Get(c echo.Context) error {
    lineupID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lineup id"})
    }
    ctx := c.Request().Context()
    l, err := h.Lineups.GetByID(ctx, lineupID)
    if err != nil {
        return lineupError(c, err)
    }
    entries, err := h.Lineups.ListEntries(ctx, lineupID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load entries"})
    }
    resp := lineupResp{ID: l.ID, TeamID: l.TeamID, Name: l.Name, WithDH: l.WithDH}
    for _, e := range entries {
        resp.Entries = append(resp.Entries, lineupEntryResp{PlayerID: e.PlayerID, BattingOrder: e.BattingOrder, Position: e.Position})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": resp})
}

// ReplaceEntries handles PUT /v1/lineups/:id/entries.  The complete
// entry set is validated (size, unique orders, unique positions) and
// then swapped in one transaction.
func (h *LineupHandler) ReplaceEntries(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    lineupID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lineup id"})
    }
    ctx := c.Request().Context()
    l, err := h.Lineups.GetByID(ctx, lineupID)
    if err != nil {
        return lineupError(c, err)
    }
    if _, err := h.Teams.GetOwned(ctx, l.TeamID, userID); err != nil {
        return teamError(c, err)
    }
    var body struct {
        Entries []lineupEntryReq `json:"entries"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    entries := make([]model.LineupEntry, 0, len(body.Entries))
    for _, e := range body.Entries {
        entries = append(entries, model.LineupEntry{
            LineupID:     lineupID,
            PlayerID:     e.PlayerID,
            BattingOrder: e.BattingOrder,
            Position:     strings.ToUpper(strings.TrimSpace(e.Position)),
        })
    }
    if err := scorebook.ValidateLineup(entries, l.WithDH); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    // Every entry must reference a player on this lineup's team.
    roster, err := h.Players.ListByTeam(ctx, l.TeamID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load roster"})
    }
    onTeam := make(map[uint64]bool, len(roster))
    for _, p := range roster {
        onTeam[p.ID] = true
    }
    for _, e := range entries {
        if !onTeam[e.PlayerID] {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "player not on team"})
        }
    }
    if err := h.Lineups.ReplaceEntries(ctx, lineupID, entries); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save entries"})
    }
    return c.NoContent(http.StatusNoContent)
}

func lineupError(c echo.Context, err error) error {
    if errors.Is(err, repository.ErrLineupNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "lineup not found"})
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
