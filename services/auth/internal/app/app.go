package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsboard/pkg/cache"
	"newsboard/pkg/config"
	"newsboard/pkg/database"
	"newsboard/pkg/jwt"
	"newsboard/pkg/logger"
	"newsboard/pkg/password"
	"newsboard/pkg/validation"
	authHTTP "newsboard/services/auth/internal/controller/http"
	"newsboard/services/auth/internal/repo/persistent"
	"newsboard/services/auth/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "newsboard/services/auth/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	blacklist   jwt.Blacklist
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.Open(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	app := &App{
		cfg:        cfg,
		log:        log,
		db:         db,
		jwtService: jwt.NewService(cfg.JWTSecret).WithLifetimes(cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
	}

	// Redis is optional; revoked tokens fall back to the database.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, using database token blacklist: %v", err)
		blacklist := jwt.NewDBBlacklist(db)
		if purged, err := blacklist.Purge(context.Background()); err != nil {
			log.Warn("Failed to purge expired revoked tokens: %v", err)
		} else if purged > 0 {
			log.Info("Purged %d expired revoked tokens", purged)
		}
		app.blacklist = blacklist
	} else {
		app.redisClient = redisClient
		app.blacklist = jwt.NewRedisBlacklist(redisClient)
	}

	return app, nil
}

func (a *App) Router() *gin.Engine {
	userRepo := persistent.NewUserRepository(a.db)

	authUseCase := usecase.NewAuthUseCase(
		userRepo,
		a.jwtService,
		a.blacklist,
		password.NewValidator(),
		password.NewBcryptHasher(a.cfg.BcryptCost),
		validation.New(),
		a.log,
	)

	authHandler := authHTTP.NewAuthHandler(authUseCase, a.log)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler.RegisterRoutes(r.Group("/api/v1"))

	return r
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.AuthServerPort,
		Handler: a.Router(),
	}

	go func() {
		a.log.Info("Auth service starting on port %s", a.cfg.AuthServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down auth service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Auth service exited")
	return nil
}
