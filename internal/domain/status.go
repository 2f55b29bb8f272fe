package domain

import "strings"

type TrxType string

const (
	TrxTypeSale   TrxType = "SALE"
	TrxTypeReturn TrxType = "RETURN"
)

type PaymentType string

const (
	PaymentCash   PaymentType = "CASH"
	PaymentCredit PaymentType = "CREDIT"
	PaymentCard   PaymentType = "CARD"
)

// PaymentTypes lists payment types in the order reports present them.
var PaymentTypes = []PaymentType{PaymentCash, PaymentCredit, PaymentCard}

// TrxStatusCompleted is the only status the generator emits.
const TrxStatusCompleted = 5

var trxStatusLabels = map[int]string{
	1: "Draft",
	2: "Pending",
	3: "Approved",
	4: "Dispatched",
	5: "Completed",
}

// TrxStatusLabel returns a human-readable label for a transaction status code.
func TrxStatusLabel(status int) string {
	if label, ok := trxStatusLabels[status]; ok {
		return label
	}

	return "Unknown"
}

const (
	VisitTypeProductive    = 1
	VisitTypeNonProductive = 2
)

const JourneyStatusCompleted = "COMPLETED"

const CustomerStatusActive = "Active"

const (
	MovementReturn  = "returns"
	MovementWastage = "wastage"
)

const (
	TargetAchieved = "Achieved"
	TargetOnTrack  = "On Track"
	TargetBehind   = "Behind"
	TargetCritical = "Critical"
)

// TargetStatusFor buckets an achievement percentage into a target status tier.
func TargetStatusFor(pct float64) string {
	switch {
	case pct >= 100:
		return TargetAchieved
	case pct >= 80:
		return TargetOnTrack
	case pct >= 60:
		return TargetBehind
	default:
		return TargetCritical
	}
}

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceWeekend = "Weekend"
	AttendanceHoliday = "Holiday"

	LeaveSick      = "Sick Leave"
	LeaveCasual    = "Casual Leave"
	LeaveAnnual    = "Annual Leave"
	LeaveEmergency = "Emergency Leave"
)

// LeaveTypes lists every leave status, with the yearly entitlement in days.
var LeaveTypes = []struct {
	Status      string
	Entitlement int
}{
	{LeaveSick, 15},
	{LeaveCasual, 10},
	{LeaveAnnual, 30},
	{LeaveEmergency, 5},
}

// IsLeaveStatus reports whether an attendance status is any kind of leave.
func IsLeaveStatus(status string) bool {
	return strings.Contains(status, "Leave")
}

// IsWorkingDayStatus reports whether the day counts toward working days.
func IsWorkingDayStatus(status string) bool {
	return status != AttendanceWeekend && status != AttendanceHoliday
}
