package upload

import (
	"io"
	"net/http"

	"github.com/codeverse-africa/whingan-core/internal/middleware"
	"github.com/codeverse-africa/whingan-core/internal/modules/user"
	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/codeverse-africa/whingan-core/internal/pkg/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxUploadSize caps multipart payloads at 10 MiB.
const maxUploadSize = 10 << 20

// Handler accepts multipart uploads, pushes them to object storage and
// records avatar/cv locations on the caller's account.
type Handler struct {
	uploader *storage.Uploader
	users    *user.Service
	logger   *zap.Logger
}

func NewHandler(uploader *storage.Uploader, users *user.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{uploader: uploader, users: users, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload", authMW, h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	if h.uploader == nil {
		response.InternalError(c, "File uploads are not configured")
		return
	}

	kind := c.PostForm("type")
	if kind != "avatar" && kind != "cv" && kind != "media" {
		response.BadRequest(c, "Invalid type or URL")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.BadRequest(c, "File too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "Failed to read file")
		return
	}
	defer f.Close()

	payload, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		response.InternalError(c, "Failed to read file")
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), kind, fileHeader.Filename, payload, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("upload failed", zap.String("type", kind), zap.Error(err))
		response.InternalError(c, "Failed to upload file")
		return
	}

	// Avatar and CV locations live on the user row so the portal can find
	// them again; media uploads just return the URL.
	if kind == "avatar" || kind == "cv" {
		column := "avatar_url"
		if kind == "cv" {
			column = "cv_url"
		}
		if err := h.users.SetFileURL(middleware.CurrentUserID(c), column, url); err != nil {
			response.InternalError(c, "Failed to update file URL")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"url":  url,
		"name": fileHeader.Filename,
	})
}
