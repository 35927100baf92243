package repositories

import (
	"context"
	"time"

	"employee-tracker/internal/adapters/persistence/models"
)

// RecordFilters narrows the record listing. Zero values mean "no filter";
// dates are inclusive "YYYY-MM-DD" bounds.
type RecordFilters struct {
	EmployeeID uint
	StartDate  string
	EndDate    string
	Limit      int
}

// EmployeeRepository defines employee data access
type EmployeeRepository interface {
	// Register inserts a new employee or reactivates an inactive row with
	// the same id card. Fails with domain.ErrDuplicateIDCard when an active
	// employee already holds the card.
	Register(ctx context.Context, name, idCard string) (id uint, reactivated bool, err error)
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	// GetActiveByIDCard only matches active rows (terminal card login).
	GetActiveByIDCard(ctx context.Context, idCard string) (*models.Employee, error)
	ListActive(ctx context.Context) ([]models.Employee, error)
	Deactivate(ctx context.Context, id uint) error
}

// TimeRecordRepository defines time record data access. The mutating
// operations enforce the shift state machine's invariants inside a single
// transaction so concurrent calls for the same employee serialize.
type TimeRecordRepository interface {
	// CreateShift inserts a new open record after verifying no open record
	// exists for (employee, date). The check and the insert run under a row
	// lock on the employee.
	CreateShift(ctx context.Context, rec *models.TimeRecord) error
	// StartLunch stamps lunch_start on the open record without a lunch yet.
	StartLunch(ctx context.Context, employeeID uint, date string, at time.Time) (uint, error)
	// EndLunch stamps lunch_end on the open record with a lunch in progress.
	EndLunch(ctx context.Context, employeeID uint, date string, at time.Time) (uint, error)
	// CloseShift clocks out the most recent open record and stores the
	// worked hours, then returns the updated record.
	CloseShift(ctx context.Context, employeeID uint, date string, at time.Time) (*models.TimeRecord, error)
	// LatestForDay returns the most recent record for the day, nil when none.
	LatestForDay(ctx context.Context, employeeID uint, date string) (*models.TimeRecord, error)
	ListForDay(ctx context.Context, employeeID uint, date string) ([]models.TimeRecord, error)
	List(ctx context.Context, f RecordFilters) ([]models.RecordRow, error)
	Delete(ctx context.Context, id uint) error
	Statistics(ctx context.Context, startDate, endDate string) (*models.Statistics, error)
}

// SettingsRepository defines settings data access
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	// Upsert writes the supplied keys atomically and leaves others untouched.
	Upsert(ctx context.Context, values map[string]string) error
}
