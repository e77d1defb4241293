package router // router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/Skullkid2995/baseball-app-sub000/internal/handler"
    "github.com/Skullkid2995/baseball-app-sub000/internal/middleware"
)

// RegisterScoring registers the team-management and live-scoring
// endpoints under /v1.  All routes require a valid JWT with the COACH
// or SCOREKEEPER role; extra middlewares (rate limiting) are applied
// to the whole group when provided.
func RegisterScoring(
    e *echo.Echo,
    teams *handler.TeamHandler,
    players *handler.PlayerHandler,
    lineups *handler.LineupHandler,
    games *handler.GameHandler,
    book *handler.ScorebookHandler,
    jwtSecret string,
    extra ...echo.MiddlewareFunc,
) {
    mws := []echo.MiddlewareFunc{
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("COACH", "SCOREKEEPER"),
    }
    mws = append(mws, extra...)
    g := e.Group("/v1", mws...)

    // ---- Teams ----
    g.POST("/teams", teams.Create)
    g.GET("/teams", teams.List)
    g.GET("/teams/:id", teams.Get)
    g.PUT("/teams/:id", teams.Update)
    g.PATCH("/teams/:id", teams.Update) // partial updates share the handler
    g.DELETE("/teams/:id", teams.Delete)

    // ---- Roster ----
    g.POST("/teams/:id/players", players.Create)
    g.GET("/teams/:id/players", players.List)
    g.PUT("/teams/:id/players/:playerID", players.Update)
    g.PATCH("/teams/:id/players/:playerID", players.Update)
    g.DELETE("/teams/:id/players/:playerID", players.Delete)

    // ---- Lineups ----
    g.POST("/teams/:id/lineups", lineups.Create)
    g.GET("/teams/:id/lineups", lineups.List)
    g.GET("/lineups/:id", lineups.Get)
    // Entries are replaced wholesale: the batting order is a single
    // document, not a list you patch row by row.
    g.PUT("/lineups/:id/entries", lineups.ReplaceEntries)

    // ---- Games ----
    g.POST("/teams/:id/games", games.Create)
    g.GET("/teams/:id/games", games.List)
    g.GET("/games/:id", games.Get)
    g.PATCH("/games/:id", games.UpdateManualFields)
    g.PATCH("/games/:id/status", games.UpdateStatus)
    g.PATCH("/games/:id/lineups", games.SetLineups)
    g.POST("/games/:id/reset", games.Reset)

    // ---- Scorebook ----
    g.POST("/games/:id/at-bats", book.Save)
    g.GET("/games/:id/at-bats", book.ListAtBats)
    g.GET("/games/:id/current-batter", book.CurrentBatter)
    g.GET("/games/:id/outs", book.Outs)
}
