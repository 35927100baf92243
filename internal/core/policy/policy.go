// Package policy contains the pure work-hour policy computations: lateness
// at clock-in, worked hours at clock-out and overtime for reporting. All
// functions operate on an explicit settings Snapshot so a record's derived
// values can be recomputed from the configuration that was current when the
// record was written.
package policy

import (
	"strconv"
	"time"
)

// Settings keys as stored in the settings table.
const (
	KeyWorkStartTime  = "work_start_time"
	KeyDailyWorkHours = "daily_work_hours"
	KeyOvertimeRate   = "overtime_rate"
)

// Defaults applied when a key is missing or malformed.
const (
	DefaultWorkStartTime  = "09:00"
	DefaultDailyWorkHours = 8.0
	DefaultOvertimeRate   = 5.00
)

// GraceMinutes is the fixed tolerance window after work_start_time before a
// clock-in counts as late.
const GraceMinutes = 5

// Snapshot is a typed view of the settings map taken at decision time.
type Snapshot struct {
	WorkStartTime  string  // "HH:MM"
	DailyWorkHours float64 // threshold for overtime, in hours
	OvertimeRate   float64 // pay per overtime hour
}

// SnapshotFrom builds a Snapshot from a raw settings map, falling back to
// defaults for missing or unparsable values.
func SnapshotFrom(settings map[string]string) Snapshot {
	snap := Snapshot{
		WorkStartTime:  DefaultWorkStartTime,
		DailyWorkHours: DefaultDailyWorkHours,
		OvertimeRate:   DefaultOvertimeRate,
	}

	if v, ok := settings[KeyWorkStartTime]; ok && ValidWorkStartTime(v) {
		snap.WorkStartTime = v
	}
	if v, ok := settings[KeyDailyWorkHours]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			snap.DailyWorkHours = f
		}
	}
	if v, ok := settings[KeyOvertimeRate]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			snap.OvertimeRate = f
		}
	}

	return snap
}

// ValidWorkStartTime reports whether v is a wall-clock time in "HH:MM" form.
func ValidWorkStartTime(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}

// IsLate reports whether a clock-in at now is late: strictly after
// work_start_time plus the grace window, compared on now's calendar day.
func (s Snapshot) IsLate(now time.Time) bool {
	start, err := time.Parse("15:04", s.WorkStartTime)
	if err != nil {
		return false
	}

	limit := time.Date(now.Year(), now.Month(), now.Day(),
		start.Hour(), start.Minute(), 0, 0, now.Location())
	limit = limit.Add(GraceMinutes * time.Minute)

	return now.After(limit)
}

// WorkedHours is the span from clock-in to clock-out in hours. Lunch time is
// deliberately not subtracted; payroll treats the lunch stamps as
// informational.
func WorkedHours(clockIn, clockOut time.Time) float64 {
	return clockOut.Sub(clockIn).Hours()
}

// OvertimeHours is the portion of a single record's worked hours above the
// daily threshold. Each record is compared against the full threshold on its
// own, even when an employee worked several shifts the same day.
func (s Snapshot) OvertimeHours(hoursWorked float64) float64 {
	over := hoursWorked - s.DailyWorkHours
	if over < 0 {
		return 0
	}
	return over
}

// OvertimePay is the pay owed for a single record's overtime hours.
func (s Snapshot) OvertimePay(hoursWorked float64) float64 {
	return s.OvertimeHours(hoursWorked) * s.OvertimeRate
}
