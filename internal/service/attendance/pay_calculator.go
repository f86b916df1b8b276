package attendance

import (
	"math"
	"time"

	"github.com/storelinehq/admin-gateway-go/internal/config"
)

const clockLayout = "15:04:05"

// PayCalculator derives working time and pay figures from clock strings and a
// monthly base salary, using the configured pay policy.
type PayCalculator struct {
	policy config.PayPolicy
}

func NewPayCalculator(policy config.PayPolicy) *PayCalculator {
	return &PayCalculator{policy: policy}
}

// PayRates are the per-day figures derived once per roster fetch from the
// monthly base salary.
type PayRates struct {
	DailySalary  int64
	HourlySalary int64
	OvertimeRate int64
}

// Rates derives daily, hourly and overtime pay from a monthly base salary.
// Each step rounds to the nearest whole currency unit.
func (c *PayCalculator) Rates(baseSalary float64) PayRates {
	daily := math.Round(baseSalary / float64(c.policy.WorkingDaysPerMonth))
	hourly := math.Round(daily / c.policy.StandardHoursPerDay)
	overtime := math.Round(hourly * c.policy.OvertimeMultiplier)

	return PayRates{
		DailySalary:  int64(daily),
		HourlySalary: int64(hourly),
		OvertimeRate: int64(overtime),
	}
}

// WorkingHours returns the decimal-hour difference between two "HH:MM:SS"
// clock strings, rounded to two places. Missing or malformed input yields 0;
// this function never fails.
func (c *PayCalculator) WorkingHours(checkIn, checkOut string) float64 {
	if checkIn == "" || checkOut == "" {
		return 0
	}

	in, err := time.Parse(clockLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(clockLayout, checkOut)
	if err != nil {
		return 0
	}

	hours := out.Sub(in).Hours()
	if hours < 0 {
		return 0
	}
	return round2(hours)
}

// OvertimeHours returns the hours worked beyond the standard day.
func (c *PayCalculator) OvertimeHours(workingHours float64) float64 {
	overtime := workingHours - c.policy.StandardHoursPerDay
	if overtime < 0 {
		return 0
	}
	return round2(overtime)
}

// DailyEarnings combines the regular share of the daily salary with the
// overtime payout, rounded to the nearest whole currency unit.
func (c *PayCalculator) DailyEarnings(workingHours, overtimeHours float64, dailySalary, overtimeRate int64) int64 {
	regular := (workingHours - overtimeHours) / c.policy.StandardHoursPerDay * float64(dailySalary)
	overtime := overtimeHours * float64(overtimeRate)
	return int64(math.Round(regular + overtime))
}

// IsLate reports whether a check-in clock string falls after the expected
// clock-in. Malformed input is never late.
func (c *PayCalculator) IsLate(checkIn string) bool {
	in, err := time.Parse(clockLayout, checkIn)
	if err != nil {
		return false
	}
	expected, err := time.Parse(clockLayout, c.policy.ExpectedClockIn)
	if err != nil {
		return false
	}
	return in.After(expected)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
