package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/codeverse-africa/whingan-core/internal/config"
	"github.com/codeverse-africa/whingan-core/internal/database"
	"github.com/codeverse-africa/whingan-core/internal/middleware"
	pkgcron "github.com/codeverse-africa/whingan-core/internal/pkg/cron"
	jwtpkg "github.com/codeverse-africa/whingan-core/internal/pkg/jwt"
	"github.com/codeverse-africa/whingan-core/internal/pkg/mail"
	pkgredis "github.com/codeverse-africa/whingan-core/internal/pkg/redis"
	"github.com/codeverse-africa/whingan-core/internal/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
	cancel context.CancelFunc
}

// New initializes the application: config → DB → Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	jwtpkg.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	rdb, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	uploader, err := storage.NewUploader(cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	mailer := mail.New(mail.Config{
		APIKeyPublic:  cfg.Mail.APIKeyPublic,
		APIKeyPrivate: cfg.Mail.APIKeyPrivate,
		From:          cfg.Mail.From,
		FromName:      cfg.Mail.FromName,
		SMTPHost:      cfg.Mail.SMTPHost,
		SMTPPort:      cfg.Mail.SMTPPort,
		SMTPUser:      cfg.Mail.SMTPUser,
		SMTPPass:      cfg.Mail.SMTPPass,
	})

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return originAllowed(patterns, origin)
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	ctx, cancel := context.WithCancel(context.Background())
	sched := pkgcron.New()
	registerCronJobs(sched, db, logger)
	go sched.Start(ctx)

	app := &App{cfg: cfg, router: router, db: db, logger: logger, cancel: cancel}
	app.registerRoutes(rdb, mailer, uploader)

	return app, nil
}

// Shutdown stops background goroutines.
func (a *App) Shutdown() { a.cancel() }

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
