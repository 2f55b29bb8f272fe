package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/api/handlers"
	"github.com/andresuchdata/salesops-analytics/internal/api/middleware"
	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	DashboardService *service.DashboardService
	ExportService    *service.ExportService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services == nil {
		return router
	}

	if svc := services.DashboardService; svc != nil {
		dashboardHandler := handlers.NewDashboardHandler(svc)
		dashboardGroup := apiGroup.Group("/dashboard")
		{
			dashboardGroup.GET("/kpi", dashboardHandler.GetKPISummary)
			dashboardGroup.GET("/sales-trend", dashboardHandler.GetSalesTrend)
			dashboardGroup.GET("/top-customers", dashboardHandler.GetTopCustomers)
			dashboardGroup.GET("/top-products", dashboardHandler.GetTopProducts)
			dashboardGroup.GET("/summary", dashboardHandler.GetSummary)
		}

		salesHandler := handlers.NewSalesHandler(svc)
		salesGroup := apiGroup.Group("/sales")
		{
			salesGroup.GET("/transactions", salesHandler.GetTransactions)
			salesGroup.GET("/daily", salesHandler.GetDailySales)
			salesGroup.GET("/performance", salesHandler.GetPerformance)
			salesGroup.GET("/analysis", salesHandler.GetAnalysis)
			salesGroup.GET("/payments", salesHandler.GetPayments)
			salesGroup.GET("/van-sales", salesHandler.GetVanSales)
		}
		apiGroup.GET("/customers/analytics", salesHandler.GetCustomerAnalytics)
		apiGroup.GET("/products/analytics", salesHandler.GetProductAnalytics)
		apiGroup.GET("/products/categories", salesHandler.GetCategoryPerformance)
		apiGroup.GET("/returns-wastage", salesHandler.GetReturnsWastage)
		apiGroup.GET("/collections-finance", salesHandler.GetCollectionsFinance)

		fieldOpsHandler := handlers.NewFieldOpsHandler(svc)
		fieldOpsGroup := apiGroup.Group("/field-operations")
		{
			fieldOpsGroup.GET("/analytics", fieldOpsHandler.GetAnalytics)
			fieldOpsGroup.GET("/journeys", fieldOpsHandler.GetJourneys)
			fieldOpsGroup.GET("/visits", fieldOpsHandler.GetVisits)
		}
		apiGroup.GET("/targets", fieldOpsHandler.GetTargets)

		masterHandler := handlers.NewMasterHandler(svc)
		masterGroup := apiGroup.Group("/master")
		{
			masterGroup.GET("/products", masterHandler.GetProducts)
			masterGroup.GET("/routes", masterHandler.GetRoutes)
			masterGroup.GET("/salesmen", masterHandler.GetSalesmen)
			masterGroup.GET("/customers", masterHandler.GetCustomers)
			masterGroup.GET("/users", masterHandler.GetUsers)
			masterGroup.GET("/holidays", masterHandler.GetHolidays)
			masterGroup.GET("/date-ranges", masterHandler.GetDateRanges)
		}

		attendanceHandler := handlers.NewAttendanceHandler(svc)
		attendanceGroup := apiGroup.Group("/attendance")
		{
			attendanceGroup.GET("", attendanceHandler.GetAttendance)
			attendanceGroup.GET("/analytics", attendanceHandler.GetAnalytics)
			attendanceGroup.GET("/weekly", attendanceHandler.GetWeekly)
			attendanceGroup.GET("/monthly", attendanceHandler.GetMonthly)
			attendanceGroup.GET("/leave-balance", attendanceHandler.GetLeaveBalances)
			attendanceGroup.GET("/users/:userCode/summary", attendanceHandler.GetUserSummary)
		}

		adminHandler := handlers.NewAdminHandler(svc)
		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.GET("/dataset", adminHandler.GetDataset)
			adminGroup.POST("/dataset/regenerate", adminHandler.Regenerate)
		}
	}

	if svc := services.ExportService; svc != nil {
		exportHandler := handlers.NewExportHandler(svc)
		exportGroup := apiGroup.Group("/exports")
		{
			exportGroup.GET("", exportHandler.ListReports)
			exportGroup.GET("/published", exportHandler.ListPublished)
			exportGroup.GET("/:report", exportHandler.Export)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
