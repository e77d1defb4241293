package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/Skullkid2995/baseball-app-sub000/internal/handler"
    "github.com/Skullkid2995/baseball-app-sub000/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Load balancers and monitoring probes hit this to verify the
    // service is up.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    // Register, login and refresh operate without an existing session.
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Refresh rotates the refresh token: the old one is revoked and a
    // new pair is issued.
    g.POST("/refresh", a.Refresh)
    // Logout accepts a JSON body containing a `refresh_token` and
    // invalidates it.  No JWT is required so a client with an expired
    // access token can still terminate its session.
    g.POST("/logout", a.Logout)

    // /v1/me requires a valid access token regardless of role.
    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole("COACH", "SCOREKEEPER"))
    auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated scorebook view.  Guests
// (parents following along, the opposing team) can read a game's grid
// without an account.  The route sits behind the response cache so a
// popular game does not hammer the database.
func RegisterPublic(e *echo.Echo, s *handler.ScorebookHandler, cache echo.MiddlewareFunc) {
    if cache != nil {
        e.GET("/v1/games/:id/scorebook", s.PublicScorebook, cache)
        return
    }
    e.GET("/v1/games/:id/scorebook", s.PublicScorebook)
}
