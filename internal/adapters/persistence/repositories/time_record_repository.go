package repositories

import (
	"context"
	"errors"
	"time"

	"employee-tracker/internal/adapters/persistence/models"
	"employee-tracker/internal/core/domain"
	"employee-tracker/internal/core/policy"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// timeRecordRepository implements TimeRecordRepository interface
type timeRecordRepository struct {
	db *gorm.DB
}

// NewTimeRecordRepository creates a new time record repository
func NewTimeRecordRepository(db *gorm.DB) TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

// CreateShift inserts a new open record. The employee row is locked for the
// duration of the transaction so two concurrent clock-ins for the same
// employee cannot both pass the open-record check.
func (r *timeRecordRepository) CreateShift(ctx context.Context, rec *models.TimeRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", rec.EmployeeID).
			First(&emp).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEmployeeNotFound
			}
			return err
		}

		var count int64
		err = tx.Model(&models.TimeRecord{}).
			Where("employee_id = ? AND date = ? AND clock_out IS NULL", rec.EmployeeID, rec.Date).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyClockedIn
		}

		return tx.Create(rec).Error
	})
}

// StartLunch stamps lunch_start on the open record that has no lunch yet.
func (r *timeRecordRepository) StartLunch(ctx context.Context, employeeID uint, date string, at time.Time) (uint, error) {
	var recordID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.TimeRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("employee_id = ? AND date = ? AND clock_out IS NULL AND lunch_start IS NULL", employeeID, date).
			Order("clock_in DESC").
			First(&rec).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoActiveShift
			}
			return err
		}

		recordID = rec.ID
		return tx.Model(&rec).Update("lunch_start", at).Error
	})

	return recordID, err
}

// EndLunch stamps lunch_end on the open record with a lunch in progress.
func (r *timeRecordRepository) EndLunch(ctx context.Context, employeeID uint, date string, at time.Time) (uint, error) {
	var recordID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.TimeRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("employee_id = ? AND date = ? AND clock_out IS NULL AND lunch_start IS NOT NULL AND lunch_end IS NULL", employeeID, date).
			Order("clock_in DESC").
			First(&rec).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoLunchInProgress
			}
			return err
		}

		recordID = rec.ID
		return tx.Model(&rec).Update("lunch_end", at).Error
	})

	return recordID, err
}

// CloseShift clocks out the most recent open record and stores the worked
// hours, computed clock-in to clock-out with lunch time included.
func (r *timeRecordRepository) CloseShift(ctx context.Context, employeeID uint, date string, at time.Time) (*models.TimeRecord, error) {
	var closed *models.TimeRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.TimeRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("employee_id = ? AND date = ? AND clock_out IS NULL", employeeID, date).
			Order("clock_in DESC").
			First(&rec).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoOpenShift
			}
			return err
		}

		hours := policy.WorkedHours(rec.ClockIn, at)
		if err := tx.Model(&rec).Updates(map[string]interface{}{
			"clock_out":    at,
			"hours_worked": hours,
		}).Error; err != nil {
			return err
		}

		rec.ClockOut = &at
		rec.HoursWorked = &hours
		closed = &rec
		return nil
	})

	if err != nil {
		return nil, err
	}
	return closed, nil
}

// LatestForDay returns the most recent record for the day, nil when none
func (r *timeRecordRepository) LatestForDay(ctx context.Context, employeeID uint, date string) (*models.TimeRecord, error) {
	var rec models.TimeRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Order("clock_in DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// ListForDay lists all records for an employee on a day, newest first
func (r *timeRecordRepository) ListForDay(ctx context.Context, employeeID uint, date string) ([]models.TimeRecord, error) {
	var records []models.TimeRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Order("clock_in DESC").
		Find(&records).Error
	return records, err
}

// List returns records joined with employee name and id card, filtered and
// ordered by clock_in descending. The date is formatted in SQL because
// RecordRow is a plain scan target with no hooks; with parseTime enabled the
// driver would otherwise hand the DATE column over as a timestamp.
func (r *timeRecordRepository) List(ctx context.Context, f RecordFilters) ([]models.RecordRow, error) {
	query := r.db.WithContext(ctx).
		Table("time_records tr").
		Select(`tr.id, tr.employee_id, e.name AS employee_name, e.id_card AS employee_id_card,
			DATE_FORMAT(tr.date, '%Y-%m-%d') AS date,
			tr.clock_in, tr.clock_out, tr.lunch_start, tr.lunch_end,
			tr.hours_worked, tr.latitude, tr.longitude, tr.is_late`).
		Joins("JOIN employees e ON tr.employee_id = e.id")

	if f.EmployeeID != 0 {
		query = query.Where("tr.employee_id = ?", f.EmployeeID)
	}
	if f.StartDate != "" {
		query = query.Where("tr.date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		query = query.Where("tr.date <= ?", f.EndDate)
	}

	query = query.Order("tr.clock_in DESC")

	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	var rows []models.RecordRow
	err := query.Scan(&rows).Error
	return rows, err
}

// Delete hard-deletes a record
func (r *timeRecordRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.TimeRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Statistics aggregates records over an inclusive date range
func (r *timeRecordRepository) Statistics(ctx context.Context, startDate, endDate string) (*models.Statistics, error) {
	query := r.db.WithContext(ctx).
		Table("time_records").
		Select(`COUNT(DISTINCT employee_id) AS total_employees,
			COUNT(*) AS total_records,
			COALESCE(SUM(hours_worked), 0) AS total_hours,
			COALESCE(AVG(hours_worked), 0) AS avg_hours`)

	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}

	var stats models.Statistics
	if err := query.Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
