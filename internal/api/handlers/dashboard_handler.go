package handlers

import (
	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/gin-gonic/gin"
)

const defaultTopLimit = 10

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetKPISummary(c *gin.Context) {
	serve(c, "kpi summary", h.service.GetKPISummary)
}

func (h *DashboardHandler) GetSalesTrend(c *gin.Context) {
	serve(c, "sales trend", h.service.GetSalesTrend)
}

func (h *DashboardHandler) GetTopCustomers(c *gin.Context) {
	limit := parsePositiveIntWithDefault(c.Query("limit"), defaultTopLimit)
	filter := parseFilter(c)

	customers, err := h.service.GetTopCustomers(c.Request.Context(), limit, filter)
	if err != nil {
		fail(c, "failed to fetch top customers", err)
		return
	}
	respond(c, customers)
}

func (h *DashboardHandler) GetTopProducts(c *gin.Context) {
	limit := parsePositiveIntWithDefault(c.Query("limit"), defaultTopLimit)
	filter := parseFilter(c)

	products, err := h.service.GetTopProducts(c.Request.Context(), limit, filter)
	if err != nil {
		fail(c, "failed to fetch top products", err)
		return
	}
	respond(c, products)
}

// GetSummary serves the composite landing page payload.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	serve(c, "dashboard", h.service.GetDashboard)
}
