package handlers

import (
	"strings"

	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	service *service.DashboardService
}

func NewAttendanceHandler(service *service.DashboardService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	servePaged(c, "attendance", h.service.GetAttendance)
}

func (h *AttendanceHandler) GetAnalytics(c *gin.Context) {
	serve(c, "attendance analytics", h.service.GetAttendanceAnalytics)
}

func (h *AttendanceHandler) GetWeekly(c *gin.Context) {
	serve(c, "weekly attendance", h.service.GetWeeklyAttendance)
}

func (h *AttendanceHandler) GetMonthly(c *gin.Context) {
	serve(c, "monthly attendance", h.service.GetMonthlyAttendance)
}

func (h *AttendanceHandler) GetLeaveBalances(c *gin.Context) {
	serve(c, "leave balances", h.service.GetLeaveBalances)
}

func (h *AttendanceHandler) GetUserSummary(c *gin.Context) {
	userCode := strings.TrimSpace(c.Param("userCode"))
	summary, err := h.service.GetUserAttendanceSummary(c.Request.Context(), userCode, parseFilter(c))
	if err != nil {
		fail(c, "failed to fetch attendance summary", err)
		return
	}
	respond(c, summary)
}
