package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/githubrishi321/Blog-Application/internal/config"
	"github.com/githubrishi321/Blog-Application/internal/database"
	"github.com/githubrishi321/Blog-Application/internal/handler"
	"github.com/githubrishi321/Blog-Application/internal/middleware"
	"github.com/githubrishi321/Blog-Application/internal/queue"
	"github.com/githubrishi321/Blog-Application/internal/repository"
	"github.com/githubrishi321/Blog-Application/internal/router"
	"github.com/githubrishi321/Blog-Application/internal/storage"
	"github.com/githubrishi321/Blog-Application/internal/view"
)

func main() {
	cfg := config.Load() // fatal when JWT_SECRET is missing

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	uploads, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	users := handler.NewUserHandler(cfg, repository.NewUserRepo(db))
	blogs := handler.NewBlogHandler(repository.NewBlogRepo(db), repository.NewCommentRepo(db), uploads)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Every request passes through the session middleware; invalid or
	// missing tokens leave the request anonymous rather than rejecting it.
	e.Use(middleware.Session(cfg.JWTSecret))

	// Anonymous page cache; disabled when Redis is unreachable.
	var pageCache echo.MiddlewareFunc
	if rdb := config.NewRedisClient(); rdb != nil {
		pageCache = middleware.PageCache(rdb, config.LoadCacheConfig())
	} else {
		log.Printf("redis unavailable; page cache disabled")
	}

	e.Static("/uploads", cfg.UploadDir)

	router.Register(e, users, blogs, pageCache)

	// Activity log consumer; reconnects on its own and never blocks startup.
	go queue.StartActivityConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
