package handlers

import (
	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	service *service.DashboardService
}

func NewSalesHandler(service *service.DashboardService) *SalesHandler {
	return &SalesHandler{service: service}
}

func (h *SalesHandler) GetTransactions(c *gin.Context) {
	servePaged(c, "transactions", h.service.GetTransactions)
}

func (h *SalesHandler) GetDailySales(c *gin.Context) {
	serve(c, "daily sales", h.service.GetDailySales)
}

func (h *SalesHandler) GetPerformance(c *gin.Context) {
	serve(c, "sales performance", h.service.GetSalesPerformance)
}

func (h *SalesHandler) GetAnalysis(c *gin.Context) {
	serve(c, "sales analysis", h.service.GetSalesAnalysis)
}

func (h *SalesHandler) GetPayments(c *gin.Context) {
	serve(c, "payment analysis", h.service.GetPaymentAnalysis)
}

func (h *SalesHandler) GetVanSales(c *gin.Context) {
	serve(c, "van sales", h.service.GetVanSales)
}

func (h *SalesHandler) GetCollectionsFinance(c *gin.Context) {
	serve(c, "collections", h.service.GetCollectionsFinance)
}

func (h *SalesHandler) GetCustomerAnalytics(c *gin.Context) {
	servePaged(c, "customer analytics", h.service.GetCustomerAnalytics)
}

func (h *SalesHandler) GetProductAnalytics(c *gin.Context) {
	servePaged(c, "product analytics", h.service.GetProductAnalytics)
}

func (h *SalesHandler) GetCategoryPerformance(c *gin.Context) {
	serve(c, "category performance", h.service.GetCategoryPerformance)
}

func (h *SalesHandler) GetReturnsWastage(c *gin.Context) {
	serve(c, "returns and wastage", h.service.GetReturnsWastage)
}
