package main

import (
	"log"
	"storyapp/internal/config"
	"storyapp/internal/db"
	"storyapp/internal/handlers"
	"storyapp/internal/middleware"
	"storyapp/internal/router"
	"storyapp/internal/store"
	"storyapp/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/postgres"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const sessionMaxAge = 7 * 24 * 60 * 60 // 7 days

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Sessions live server-side in Postgres; the cookie only carries the
	// opaque session id. Expiry is the store's job.
	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Fatal("database handle", zap.Error(err))
	}
	sessionStore, err := postgres.NewStore(sqlDB, []byte(cfg.SessionSecret))
	if err != nil {
		logger.Fatal("session store init", zap.Error(err))
	}
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.Production(),
	})

	listCache, err := utils.NewCache(500)
	if err != nil {
		logger.Fatal("cache init", zap.Error(err))
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(sessions.Sessions("storyapp_session", sessionStore))

	users := store.NewUserStore(gdb)
	stories := store.NewStoryStore(gdb)

	authHandler := handlers.NewAuthHandler(users, logger, cfg.BcryptCost)
	userHandler := handlers.NewUserHandler(users, logger, cfg.BcryptCost)
	storyHandler := handlers.NewStoryHandler(stories, listCache, logger)

	router.RegisterRoutes(r, authHandler, userHandler, storyHandler)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
