package domain

import "time"

// Filter carries every optional query constraint. Zero values mean "no filter".
// StartDate and EndDate override DateRange when both are set.
type Filter struct {
	DateRange    string
	StartDate    *time.Time
	EndDate      *time.Time
	CustomerCode string
	UserCode     string
	RouteCode    string
	RegionCode   string
	ChannelCode  string
	JourneyCode  string
	MovementType string
	Role         string
	Department   string
	Status       string
	Limit        int
	Page         int
	PageSize     int
}

// HasExplicitRange reports whether caller-supplied dates take precedence over the token.
func (f Filter) HasExplicitRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// HasPeriod reports whether the filter names any period at all.
func (f Filter) HasPeriod() bool {
	return f.DateRange != "" || f.HasExplicitRange()
}

// WithDefaultRange returns a copy with token applied when no period was named.
func (f Filter) WithDefaultRange(token string) Filter {
	if !f.HasPeriod() {
		f.DateRange = token
	}
	return f
}

// MatchesTransaction applies the dimension filters (not the date range).
func (f Filter) MatchesTransaction(t Transaction) bool {
	if f.CustomerCode != "" && t.CustomerCode != f.CustomerCode {
		return false
	}
	if f.UserCode != "" && t.UserCode != f.UserCode {
		return false
	}
	if f.RouteCode != "" && t.RouteCode != f.RouteCode {
		return false
	}
	if f.RegionCode != "" && t.RegionCode != f.RegionCode {
		return false
	}
	if f.ChannelCode != "" && t.ChannelCode != f.ChannelCode {
		return false
	}
	return true
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
