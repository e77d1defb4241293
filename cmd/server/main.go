package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/Skullkid2995/baseball-app-sub000/internal/config"
    "github.com/Skullkid2995/baseball-app-sub000/internal/database"
    "github.com/Skullkid2995/baseball-app-sub000/internal/handler"
    "github.com/Skullkid2995/baseball-app-sub000/internal/middleware"
    "github.com/Skullkid2995/baseball-app-sub000/internal/queue"
    "github.com/Skullkid2995/baseball-app-sub000/internal/repository"
    "github.com/Skullkid2995/baseball-app-sub000/internal/router"
    "github.com/Skullkid2995/baseball-app-sub000/internal/scorebook"
)

func main() {
    // .env is optional; real deployments set the variables directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database connect failed: %v", err)
    }
    defer db.Close()

    // Redis is optional: a nil client disables rate limiting and the
    // response cache rather than blocking startup.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable; rate limiting and response cache disabled")
    }

    // Repositories
    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    teams := repository.NewTeamRepo(db)
    players := repository.NewPlayerRepo(db)
    lineups := repository.NewLineupRepo(db)
    games := repository.NewGameRepo(db)
    atBats := repository.NewAtBatRepo(db)

    // The scorebook service owns all scoring semantics; handlers only
    // translate HTTP.
    book := scorebook.NewService(repository.NewScorebookStore(games, atBats, lineups))

    // Handlers
    authH := handler.NewAuthHandler(cfg, users, tokens)
    teamH := handler.NewTeamHandler(teams)
    playerH := handler.NewPlayerHandler(teams, players)
    lineupH := handler.NewLineupHandler(teams, lineups, players)
    gameH := handler.NewGameHandler(teams, games, lineups, book)
    bookH := handler.NewScorebookHandler(teams, games, atBats, book)

    rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterPublic(e, bookH, cache)
    router.RegisterScoring(e, teamH, playerH, lineupH, gameH, bookH, cfg.JWTSecret, rateLimit)

    // Background consumer appends scorebook events to logs/scorebook.log.
    go func() {
        if err := queue.StartScorebookConsumer(); err != nil {
            log.Printf("scorebook consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
