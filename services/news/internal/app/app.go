package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsboard/pkg/config"
	"newsboard/pkg/database"
	"newsboard/pkg/jwt"
	"newsboard/pkg/logger"
	"newsboard/pkg/password"
	"newsboard/pkg/validation"
	newsHTTP "newsboard/services/news/internal/controller/http"
	"newsboard/services/news/internal/repo/persistent"
	"newsboard/services/news/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "newsboard/services/news/docs" // Swagger docs
)

type App struct {
	cfg        *config.Config
	log        *logger.Logger
	db         *gorm.DB
	jwtService *jwt.Service
	httpServer *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.Open(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	return &App{
		cfg:        cfg,
		log:        log,
		db:         db,
		jwtService: jwt.NewService(cfg.JWTSecret).WithLifetimes(cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
	}, nil
}

// Router builds the engine with every news, comment, like and account route.
func (a *App) Router() *gin.Engine {
	newsRepo := persistent.NewNewsRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	userRepo := persistent.NewUserRepository(a.db)
	newsLikes := persistent.NewNewsLikeRepository(a.db)
	commentLikes := persistent.NewCommentLikeRepository(a.db)

	validator := validation.New()

	newsUseCase := usecase.NewNewsUseCase(newsRepo, commentRepo, newsLikes, commentLikes, validator, a.log)
	commentUseCase := usecase.NewCommentUseCase(newsRepo, commentRepo, commentLikes, validator, a.log)
	likeUseCase := usecase.NewLikeUseCase(newsRepo, commentRepo, newsLikes, commentLikes)
	userUseCase := usecase.NewUserUseCase(
		userRepo,
		newsRepo,
		commentRepo,
		newsLikes,
		commentLikes,
		password.NewValidator(),
		password.NewBcryptHasher(a.cfg.BcryptCost),
		validator,
		a.log,
	)

	handler := newsHTTP.NewHandler(newsUseCase, commentUseCase, likeUseCase, userUseCase, a.log)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.RegisterRoutes(r.Group("/api/v1"), a.jwtService)

	return r
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.NewsServerPort,
		Handler: a.Router(),
	}

	go func() {
		a.log.Info("News service starting on port %s", a.cfg.NewsServerPort)
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
	a.log.Info("Shutting down news service...")
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

	a.log.Info("News service exited")
	return nil
}
