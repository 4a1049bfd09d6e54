package user

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/codeverse-africa/whingan-core/internal/middleware"
	"github.com/codeverse-africa/whingan-core/internal/models"
	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/user", authMW, h.get)
	rg.PUT("/user", authMW, h.updateFileURLs)
	rg.GET("/user/cv", authMW, h.downloadCV)
	rg.POST("/profile", h.upsertProfile)
}

// profilePayload is the user record plus derived upload flags the portal
// frontend keys off.
type profilePayload struct {
	*models.UserModel
	HasAvatar bool `json:"hasAvatar"`
	HasCv     bool `json:"hasCv"`
}

func (h *Handler) get(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, "Failed to fetch user details")
		return
	}
	if u == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, profilePayload{
		UserModel: u,
		HasAvatar: u.AvatarURL != "",
		HasCv:     u.CvURL != "",
	})
}

func (h *Handler) updateFileURLs(c *gin.Context) {
	var dto UpdateFileURLsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	u, err := h.svc.UpdateFileURLs(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.InternalError(c, "Failed to update user")
		return
	}
	if u == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, u)
}

// downloadCV redirects to the stored CV location with an attachment header
// so browsers download instead of render.
func (h *Handler) downloadCV(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, "Failed to download CV")
		return
	}
	if u == nil || u.CvURL == "" {
		response.NotFound(c, "CV not found")
		return
	}

	parts := strings.Split(u.CvURL, "/")
	filename := parts[len(parts)-1]
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Redirect(http.StatusFound, u.CvURL)
}

func (h *Handler) upsertProfile(c *gin.Context) {
	var dto ProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	if _, err := h.svc.UpsertProfile(&dto); err != nil {
		response.InternalError(c, "Failed to update profile")
		return
	}
	response.Message(c, "Profile updated successfully")
}
