package scholarship

import (
	"errors"
	"net/http"

	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scholarship-application", h.apply)
}

func (h *Handler) apply(c *gin.Context) {
	var dto ApplicationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	app, err := h.svc.Apply(&dto)
	if err != nil {
		if errors.Is(err, errDuplicateApplication) {
			response.Conflict(c, "An application with this email already exists")
			return
		}
		response.InternalError(c, "Failed to submit application")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Application submitted successfully",
		"applicationId": app.ID,
	})
}
