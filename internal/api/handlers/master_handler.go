package handlers

import (
	"context"

	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/gin-gonic/gin"
)

type MasterHandler struct {
	service *service.DashboardService
}

func NewMasterHandler(service *service.DashboardService) *MasterHandler {
	return &MasterHandler{service: service}
}

// unfiltered adapts a catalog lookup to the filter-driven helpers.
func unfiltered[T any](fn func(context.Context) (T, error)) func(context.Context, domain.Filter) (T, error) {
	return func(ctx context.Context, _ domain.Filter) (T, error) { return fn(ctx) }
}

func (h *MasterHandler) GetProducts(c *gin.Context) {
	serve(c, "products", unfiltered(h.service.GetProducts))
}

func (h *MasterHandler) GetRoutes(c *gin.Context) {
	serve(c, "routes", unfiltered(h.service.GetRoutes))
}

func (h *MasterHandler) GetSalesmen(c *gin.Context) {
	serve(c, "salesmen", unfiltered(h.service.GetSalesmen))
}

func (h *MasterHandler) GetCustomers(c *gin.Context) {
	serve(c, "customers", h.service.GetCustomers)
}

func (h *MasterHandler) GetUsers(c *gin.Context) {
	serve(c, "users", unfiltered(h.service.GetUsers))
}

func (h *MasterHandler) GetHolidays(c *gin.Context) {
	serve(c, "holidays", unfiltered(h.service.GetHolidays))
}

func (h *MasterHandler) GetDateRanges(c *gin.Context) {
	serve(c, "date ranges", unfiltered(h.service.GetDateRanges))
}
