package news

import (
	"github.com/codeverse-africa/whingan-core/internal/pkg/pagination"
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
	g := rg.Group("/news")

	g.GET("", h.list)
	g.GET("/:slug", h.get)
	g.POST("", authMW, h.create)
	g.PUT("/:slug", authMW, h.update)
	g.DELETE("/:slug", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	lq := ListQuery{
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
	}

	items, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.InternalError(c, "Failed to fetch news")
		return
	}
	response.Paged(c, "news", items, pag)
}

func (h *Handler) get(c *gin.Context) {
	item, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, "Failed to fetch news")
		return
	}
	if item == nil {
		response.NotFound(c, "News not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) create(c *gin.Context) {
	var dto NewsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, "Failed to create news")
		return
	}
	response.Created(c, item)
}

func (h *Handler) update(c *gin.Context) {
	var dto NewsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.svc.Update(c.Param("slug"), &dto)
	if err != nil {
		response.InternalError(c, "Failed to update news")
		return
	}
	if item == nil {
		response.NotFound(c, "News not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) delete(c *gin.Context) {
	found, err := h.svc.Delete(c.Param("slug"))
	if err != nil {
		response.InternalError(c, "Failed to delete news")
		return
	}
	if !found {
		response.NotFound(c, "News not found")
		return
	}
	response.Message(c, "News deleted successfully")
}
