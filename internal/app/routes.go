package app

import (
	"net/http"

	"github.com/codeverse-africa/whingan-core/internal/middleware"
	"github.com/codeverse-africa/whingan-core/internal/modules/auth"
	"github.com/codeverse-africa/whingan-core/internal/modules/job"
	"github.com/codeverse-africa/whingan-core/internal/modules/journal"
	"github.com/codeverse-africa/whingan-core/internal/modules/news"
	"github.com/codeverse-africa/whingan-core/internal/modules/scholarship"
	"github.com/codeverse-africa/whingan-core/internal/modules/tribute"
	"github.com/codeverse-africa/whingan-core/internal/modules/upload"
	"github.com/codeverse-africa/whingan-core/internal/modules/user"
	"github.com/codeverse-africa/whingan-core/internal/pkg/mail"
	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/codeverse-africa/whingan-core/internal/pkg/storage"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

func (a *App) registerRoutes(rdb *goredis.Client, mailer *mail.Sender, uploader *storage.Uploader) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(rdb))
	api.Use(middleware.Idempotence(rdb))
	api.Use(middleware.HTTPCache(rdb))

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	userSvc := user.NewService(db)

	auth.NewHandler(auth.NewService(db, mailer, a.cfg.FrontendURL, a.logger)).RegisterRoutes(api)
	news.NewHandler(news.NewService(db)).RegisterRoutes(api, authMW)
	journal.NewHandler(journal.NewService(db)).RegisterRoutes(api, authMW)
	tribute.NewHandler(tribute.NewService(db)).RegisterRoutes(api, authMW)
	job.NewHandler(job.NewService(db)).RegisterRoutes(api, authMW)
	scholarship.NewHandler(scholarship.NewService(db, mailer, a.logger)).RegisterRoutes(api)
	user.NewHandler(userSvc).RegisterRoutes(api, authMW)
	upload.NewHandler(uploader, userSvc, a.logger).RegisterRoutes(api, authMW)
}
