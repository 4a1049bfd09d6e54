package tribute

import (
	"errors"
	"net/http"

	"github.com/codeverse-africa/whingan-core/internal/pkg/pagination"
	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// visitorCookie identifies anonymous visitors so the like button can be
// pressed once per person rather than once per request.
const (
	visitorCookie       = "visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/tributes")

	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/:id/like", h.like)
	g.PATCH("/:id/pin", authMW, h.togglePin)

	// Dashboard management routes.
	admin := rg.Group("/admin/tributes", authMW)
	admin.GET("", h.list)
	admin.POST("", h.adminCreate)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
	admin.PATCH("/:id/pin", h.togglePin)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	items, pag, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, "Failed to fetch tributes")
		return
	}
	response.Paged(c, "tributes", items, pag)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateTributeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, "Failed to create tribute")
		return
	}
	response.Created(c, item)
}

func (h *Handler) adminCreate(c *gin.Context) {
	var dto AdminTributeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.svc.AdminCreate(&dto)
	if err != nil {
		response.InternalError(c, "Failed to create tribute")
		return
	}
	response.Created(c, item)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateTributeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, "Failed to update tribute")
		return
	}
	if item == nil {
		response.NotFound(c, "Tribute not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) delete(c *gin.Context) {
	found, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to delete tribute")
		return
	}
	if !found {
		response.NotFound(c, "Tribute not found")
		return
	}
	response.Message(c, "Tribute deleted successfully")
}

func (h *Handler) togglePin(c *gin.Context) {
	item, err := h.svc.TogglePin(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to update tribute")
		return
	}
	if item == nil {
		response.NotFound(c, "Tribute not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) like(c *gin.Context) {
	visitorID := h.visitorID(c)

	item, err := h.svc.Like(c.Param("id"), visitorID)
	if err != nil {
		if errors.Is(err, errAlreadyLiked) {
			response.BadRequest(c, "You have already liked this tribute")
			return
		}
		response.InternalError(c, "Failed to like tribute")
		return
	}
	if item == nil {
		response.NotFound(c, "Tribute not found")
		return
	}
	response.OK(c, item)
}

// visitorID reads the visitor cookie, minting and setting a fresh one the
// first time a browser shows up. Over HTTPS the cookie is SameSite=None so
// a frontend on another origin still sends it with like requests.
func (h *Handler) visitorID(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	cookie := &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   visitorCookieMaxAge,
		HttpOnly: true,
	}
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(c.Writer, cookie)
	return id
}
