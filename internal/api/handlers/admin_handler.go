package handlers

import (
	"net/http"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service *service.DashboardService
}

func NewAdminHandler(service *service.DashboardService) *AdminHandler {
	return &AdminHandler{service: service}
}

type regenerateRequest struct {
	Seed *uint64 `json:"seed"`
}

func (h *AdminHandler) GetDataset(c *gin.Context) {
	info, err := h.service.DatasetInfo(c.Request.Context())
	if err != nil {
		fail(c, "failed to describe dataset", err)
		return
	}
	respond(c, info)
}

// Regenerate rebuilds the snapshot. Without a seed in the body a time-based one is used.
func (h *AdminHandler) Regenerate(c *gin.Context) {
	var req regenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body", "details": err.Error()})
			return
		}
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}

	info, err := h.service.RegenerateDataset(c.Request.Context(), seed)
	if err != nil {
		fail(c, "failed to regenerate dataset", err)
		return
	}
	respond(c, info)
}
