package job

import (
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
	g := rg.Group("/jobs")

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", authMW, h.create)
	g.PUT("/:id", authMW, h.update)
	g.DELETE("/:id", authMW, h.delete)
}

// list returns every posting with its requirements; the frontend renders
// the whole board at once, so there is no pagination here.
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch jobs")
		return
	}
	response.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	item, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to fetch job")
		return
	}
	if item == nil {
		response.NotFound(c, "Job not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) create(c *gin.Context) {
	var dto JobDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, "Failed to create job")
		return
	}
	response.Created(c, item)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateJobDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	item, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, "Failed to update job")
		return
	}
	if item == nil {
		response.NotFound(c, "Job not found")
		return
	}
	response.OK(c, item)
}

func (h *Handler) delete(c *gin.Context) {
	found, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to delete job")
		return
	}
	if !found {
		response.NotFound(c, "Job not found")
		return
	}
	response.Message(c, "Job deleted successfully")
}
