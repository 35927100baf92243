package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee represents the employees table. Rows are never hard-deleted:
// "removing" an employee flips Active off so historical time records keep a
// valid reference, and re-registering the same id card reactivates the row.
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	IDCard    string    `gorm:"column:id_card;uniqueIndex;size:20;not null" json:"id_card"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// TimeRecord represents one shift attempt for one employee on one day.
// ClockOut == nil marks the record as open; at most one open record may
// exist per (employee, date) at any time.
type TimeRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	EmployeeID  uint       `gorm:"index;not null" json:"employee_id"`
	Date        string     `gorm:"type:date;index;not null" json:"date"`
	ClockIn     time.Time  `gorm:"index;not null" json:"clock_in"`
	ClockOut    *time.Time `json:"clock_out"`
	LunchStart  *time.Time `json:"lunch_start"`
	LunchEnd    *time.Time `json:"lunch_end"`
	HoursWorked *float64   `json:"hours_worked"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	IsLate      bool       `gorm:"default:false" json:"is_late"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (TimeRecord) TableName() string {
	return "time_records"
}

// AfterFind normalizes Date back to "YYYY-MM-DD". With parseTime enabled the
// MySQL driver returns DATE columns as time.Time, and database/sql renders
// that into a string destination as an RFC3339 timestamp.
func (r *TimeRecord) AfterFind(*gorm.DB) error {
	r.Date = NormalizeDate(r.Date)
	return nil
}

// NormalizeDate reduces a scanned date value to its "YYYY-MM-DD" form. Plain
// dates pass through unchanged.
func NormalizeDate(v string) string {
	if len(v) <= 10 {
		return v
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.Format("2006-01-02")
	}
	return v[:10]
}

// IsOpen reports whether the shift has not been clocked out yet.
func (r *TimeRecord) IsOpen() bool {
	return r.ClockOut == nil
}

// OnLunch reports whether a lunch break is in progress.
func (r *TimeRecord) OnLunch() bool {
	return r.IsOpen() && r.LunchStart != nil && r.LunchEnd == nil
}

// Setting represents the settings table: a flat key-value store with no
// history, last write wins per key.
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"column:key;uniqueIndex;size:50;not null" json:"key"`
	Value string `gorm:"column:value;size:100;not null" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

// RecordRow is a TimeRecord joined with the owning employee's name and id
// card, as returned by the filtered record listing and the CSV export.
type RecordRow struct {
	ID             uint       `json:"id"`
	EmployeeID     uint       `json:"employee_id"`
	EmployeeName   string     `json:"employee_name"`
	EmployeeIDCard string     `json:"employee_id_card"`
	Date           string     `json:"date"`
	ClockIn        time.Time  `json:"clock_in"`
	ClockOut       *time.Time `json:"clock_out"`
	LunchStart     *time.Time `json:"lunch_start"`
	LunchEnd       *time.Time `json:"lunch_end"`
	HoursWorked    *float64   `json:"hours_worked"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	IsLate         bool       `json:"is_late"`
}

// Statistics aggregates completed work over a date range.
type Statistics struct {
	TotalEmployees int64   `json:"total_employees"`
	TotalRecords   int64   `json:"total_records"`
	TotalHours     float64 `json:"total_hours"`
	AvgHours       float64 `json:"avg_hours"`
}

// AutoMigrate creates or updates the schema for all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Employee{},
		&TimeRecord{},
		&Setting{},
	)
}
