package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/novelhub/backend/internal/application/identity"
	"github.com/novelhub/backend/internal/application/reading"
	socialapp "github.com/novelhub/backend/internal/application/social"
	"github.com/novelhub/backend/internal/infrastructure/auth"
	"github.com/novelhub/backend/internal/infrastructure/config"
	"github.com/novelhub/backend/internal/infrastructure/logger"
	"github.com/novelhub/backend/internal/infrastructure/persistence"
	"github.com/novelhub/backend/internal/infrastructure/storage"
	"github.com/novelhub/backend/internal/interfaces/http/handler"
	"github.com/novelhub/backend/internal/interfaces/http/middleware"
	"github.com/novelhub/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting NovelHub backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	chapterRepo := persistence.NewGormChapterRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	commentRepo := persistence.NewGormCommentRepository(db.DB)
	chapterCommentRepo := persistence.NewGormChapterCommentRepository(db.DB)
	ratingRepo := persistence.NewGormRatingRepository(db.DB)
	followRepo := persistence.NewGormFollowRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Initialize chapter content store
	contentStore, err := newContentStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize content store", zap.Error(err))
	}
	log.Info("Content store initialized", zap.String("backend", cfg.Content.Backend))

	// Initialize token service
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	// Initialize application services
	browseService := reading.NewBrowseService(productRepo, categoryRepo)
	detailsService := reading.NewDetailsService(productRepo, commentRepo, ratingRepo, followRepo, userRepo, log)
	watchingService := reading.NewWatchingService(chapterRepo, chapterCommentRepo, userRepo, contentStore, log)
	commentService := socialapp.NewCommentService(commentRepo, chapterCommentRepo, productRepo, chapterRepo)
	ratingService := socialapp.NewRatingService(ratingRepo, productRepo)
	followService := socialapp.NewFollowService(followRepo, productRepo)
	userService := identityapp.NewUserService(userRepo, jwtService)

	// Initialize HTTP handlers
	requireAuth := middleware.RequireAuth(jwtService)
	novelHandler := handler.NewNovelHandler(browseService, detailsService)
	chapterHandler := handler.NewChapterHandler(watchingService)
	commentHandler := handler.NewCommentHandler(commentService, requireAuth)
	ratingHandler := handler.NewRatingHandler(ratingService, requireAuth)
	followHandler := handler.NewFollowHandler(followService, requireAuth)
	authHandler := handler.NewAuthHandler(userService, requireAuth)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// CORS, then optional caller resolution for the whole API.
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS())
	engine.Use(middleware.OptionalAuth(jwtService))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler).
		Register(authHandler).
		Register(novelHandler).
		Register(chapterHandler).
		Register(commentHandler).
		Register(ratingHandler).
		Register(followHandler)
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// newContentStore builds the configured chapter content store
func newContentStore(cfg *config.Config, log *zap.Logger) (reading.ChapterContentStore, error) {
	switch cfg.Content.Backend {
	case "s3":
		return storage.NewS3ContentStore(&cfg.Content.S3, storage.WithLogger(log))
	default:
		return storage.NewLocalContentStore(cfg.Content.LocalDir)
	}
}
