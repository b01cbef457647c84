package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sns-app/pkg/cache"
	"sns-app/pkg/config"
	"sns-app/pkg/jwt"
	"sns-app/pkg/logger"
	"sns-app/pkg/middleware"
	"sns-app/pkg/s3"
	timelineHTTP "sns-app/services/timeline/internal/controller/http"
	cacheRepo "sns-app/services/timeline/internal/repo/cache"
	"sns-app/services/timeline/internal/repo/storage"
	"sns-app/services/timeline/internal/repo/webapi"
	"sns-app/services/timeline/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sns-app/services/timeline/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		client, err := cache.NewRedisClient(cfg)
		if err != nil {
			// Redis is optional: without it there is no rate limiting and
			// animation flags stay in memory
			log.Error("Failed to connect to redis: %v (continuing without redis)", err)
		} else {
			redisClient = client
		}
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s3Client.EnsureBucket(ctx, cfg.StorageBucket); err != nil {
		log.Warn("Storage bucket %s unavailable: %v", cfg.StorageBucket, err)
	}

	var jwtService *jwt.Service
	if cfg.AuthJWTSecret != "" {
		jwtService = jwt.NewService(cfg.AuthJWTSecret)
	}

	return &App{
		cfg:         cfg,
		log:         log,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
	}, nil
}

func (a *App) animator() usecase.Animator {
	if a.cfg.LikeAnimationStore == "redis" {
		if a.redisClient != nil {
			return cacheRepo.NewRedisAnimator(a.redisClient, usecase.LikeAnimationWindow, a.log)
		}
		a.log.Warn("LIKE_ANIMATION_STORE=redis but redis is not connected, using memory")
	}
	return usecase.NewMemoryAnimator(usecase.LikeAnimationWindow)
}

func (a *App) Run() error {
	// Initialize repositories
	postsAPI := webapi.NewPostsAPI(a.cfg.APIBaseURL, a.cfg.HTTPTimeout)
	authAPI := webapi.NewAuthAPI(a.cfg.AuthURL, a.cfg.AuthAnonKey, a.jwtService, a.cfg.HTTPTimeout)
	imageStorage := storage.NewImageStorage(a.s3Client)

	// Initialize use cases
	timelineUseCase := usecase.NewTimelineUseCase(
		postsAPI,
		authAPI,
		imageStorage,
		a.animator(),
		a.cfg.StorageBucket,
		a.log,
	)
	authUseCase := usecase.NewAuthUseCase(authAPI, a.log)

	// Initialize HTTP handlers
	handlers := timelineHTTP.Handlers{
		Timeline: timelineHTTP.NewTimelineHandler(timelineUseCase, a.log),
		Auth:     timelineHTTP.NewAuthHandler(authUseCase, timelineUseCase, a.cfg.SessionCookieName, a.log),
	}

	tmpl, err := timelineHTTP.LoadTemplates()
	if err != nil {
		a.log.Error("Failed to parse templates: %v", err)
		return err
	}

	// Setup router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var mutation []gin.HandlerFunc
	if a.redisClient != nil {
		mutation = append(mutation, middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
	}
	timelineHTTP.RegisterRoutes(r, tmpl, timelineUseCase, handlers, a.cfg.SessionCookieName, mutation...)

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Timeline app starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down timeline app...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	defer a.log.Sync()

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Timeline app exited")
	return nil
}
