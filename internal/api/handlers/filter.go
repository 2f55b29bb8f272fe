package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/gin-gonic/gin"
)

// parseFilter reads the shared query parameters. Malformed values are ignored so
// the query falls back to its defaults instead of failing.
func parseFilter(c *gin.Context) domain.Filter {
	filter := domain.Filter{
		CustomerCode: strings.TrimSpace(c.Query("customer_code")),
		UserCode:     strings.TrimSpace(c.Query("user_code")),
		RouteCode:    strings.TrimSpace(c.Query("route_code")),
		RegionCode:   strings.TrimSpace(c.Query("region_code")),
		ChannelCode:  strings.TrimSpace(c.Query("channel_code")),
		JourneyCode:  strings.TrimSpace(c.Query("journey_code")),
		MovementType: strings.ToLower(strings.TrimSpace(c.Query("type"))),
		Role:         strings.TrimSpace(c.Query("role")),
		Department:   strings.TrimSpace(c.Query("department")),
		Status:       strings.TrimSpace(c.Query("status")),
		Limit:        parseNonNegativeInt(c.Query("limit")),
		Page:         parseNonNegativeInt(c.Query("page")),
		PageSize:     parseNonNegativeInt(c.Query("page_size")),
	}

	if token := strings.TrimSpace(c.Query("date_range")); token != "" {
		if canonical, ok := daterange.Normalize(token); ok {
			filter.DateRange = canonical
		} else {
			filter.DateRange = daterange.Default
		}
	}

	start := parseDate(c.Query("start_date"))
	end := parseDate(c.Query("end_date"))
	if start != nil && end != nil {
		filter.StartDate, filter.EndDate = start, end
	}

	return filter
}

func parseDate(value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := daterange.ParseISODate(value, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

func parseNonNegativeInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parsePositiveIntWithDefault(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
