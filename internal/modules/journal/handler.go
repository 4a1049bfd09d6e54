package journal

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
	g := rg.Group("/journals")

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", authMW, h.create)
	g.PUT("/:id", authMW, h.update)
	g.DELETE("/:id", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	lq := ListQuery{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	items, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.InternalError(c, "Failed to fetch journals")
		return
	}
	response.Paged(c, "journals", items, pag)
}

// get resolves the path parameter as an id first and falls back to the slug,
// so both the admin dashboard (ids) and public permalinks (slugs) work.
func (h *Handler) get(c *gin.Context) {
	key := c.Param("id")
	item, err := h.svc.GetByID(key)
	if err != nil {
		response.InternalError(c, "Failed to fetch journal")
		return
	}
	if item == nil {
		if item, err = h.svc.GetBySlug(key); err != nil {
			response.InternalError(c, "Failed to fetch journal")
			return
		}
	}
	if item == nil {
		response.NotFound(c, "Journal not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) create(c *gin.Context) {
	var dto JournalDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, "Failed to create journal")
		return
	}
	response.Created(c, item)
}

func (h *Handler) update(c *gin.Context) {
	var dto JournalDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, "Failed to update journal")
		return
	}
	if item == nil {
		response.NotFound(c, "Journal not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) delete(c *gin.Context) {
	found, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to delete journal")
		return
	}
	if !found {
		response.NotFound(c, "Journal not found")
		return
	}
	response.Message(c, "Journal deleted successfully")
}
