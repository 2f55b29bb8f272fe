package handlers

import (
	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/gin-gonic/gin"
)

type FieldOpsHandler struct {
	service *service.DashboardService
}

func NewFieldOpsHandler(service *service.DashboardService) *FieldOpsHandler {
	return &FieldOpsHandler{service: service}
}

func (h *FieldOpsHandler) GetAnalytics(c *gin.Context) {
	serve(c, "field operations", h.service.GetFieldOperations)
}

func (h *FieldOpsHandler) GetJourneys(c *gin.Context) {
	servePaged(c, "journeys", h.service.GetJourneys)
}

func (h *FieldOpsHandler) GetVisits(c *gin.Context) {
	servePaged(c, "visits", h.service.GetVisits)
}

func (h *FieldOpsHandler) GetTargets(c *gin.Context) {
	serve(c, "targets", h.service.GetTargets)
}
