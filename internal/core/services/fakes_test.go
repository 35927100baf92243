package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"employee-tracker/internal/adapters/persistence/models"
	"employee-tracker/internal/adapters/persistence/repositories"
	"employee-tracker/internal/core/domain"
	"employee-tracker/internal/core/policy"
)

// In-memory repository fakes implementing the same contracts as the GORM
// implementations, used by the service tests.

type fakeEmployeeInfo struct {
	name   string
	idCard string
}

type fakeRecordRepo struct {
	employees map[uint]fakeEmployeeInfo
	records   []*models.TimeRecord
	nextID    uint
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{
		employees: make(map[uint]fakeEmployeeInfo),
	}
}

func (r *fakeRecordRepo) addEmployee(id uint, name, idCard string) {
	r.employees[id] = fakeEmployeeInfo{name: name, idCard: idCard}
}

func (r *fakeRecordRepo) openFor(employeeID uint, date string) []*models.TimeRecord {
	var open []*models.TimeRecord
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date == date && rec.ClockOut == nil {
			open = append(open, rec)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		return open[i].ClockIn.After(open[j].ClockIn)
	})
	return open
}

func (r *fakeRecordRepo) CreateShift(_ context.Context, rec *models.TimeRecord) error {
	if _, ok := r.employees[rec.EmployeeID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	if len(r.openFor(rec.EmployeeID, rec.Date)) > 0 {
		return domain.ErrAlreadyClockedIn
	}
	r.nextID++
	rec.ID = r.nextID
	stored := *rec
	r.records = append(r.records, &stored)
	return nil
}

func (r *fakeRecordRepo) StartLunch(_ context.Context, employeeID uint, date string, at time.Time) (uint, error) {
	for _, rec := range r.openFor(employeeID, date) {
		if rec.LunchStart == nil {
			t := at
			rec.LunchStart = &t
			return rec.ID, nil
		}
	}
	return 0, domain.ErrNoActiveShift
}

func (r *fakeRecordRepo) EndLunch(_ context.Context, employeeID uint, date string, at time.Time) (uint, error) {
	for _, rec := range r.openFor(employeeID, date) {
		if rec.LunchStart != nil && rec.LunchEnd == nil {
			t := at
			rec.LunchEnd = &t
			return rec.ID, nil
		}
	}
	return 0, domain.ErrNoLunchInProgress
}

func (r *fakeRecordRepo) CloseShift(_ context.Context, employeeID uint, date string, at time.Time) (*models.TimeRecord, error) {
	open := r.openFor(employeeID, date)
	if len(open) == 0 {
		return nil, domain.ErrNoOpenShift
	}
	rec := open[0]
	t := at
	hours := policy.WorkedHours(rec.ClockIn, at)
	rec.ClockOut = &t
	rec.HoursWorked = &hours
	copied := *rec
	return &copied, nil
}

func (r *fakeRecordRepo) LatestForDay(_ context.Context, employeeID uint, date string) (*models.TimeRecord, error) {
	var latest *models.TimeRecord
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID || rec.Date != date {
			continue
		}
		if latest == nil || rec.ClockIn.After(latest.ClockIn) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeRecordRepo) ListForDay(_ context.Context, employeeID uint, date string) ([]models.TimeRecord, error) {
	var out []models.TimeRecord
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date == date {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ClockIn.After(out[j].ClockIn)
	})
	return out, nil
}

func (r *fakeRecordRepo) List(_ context.Context, f repositories.RecordFilters) ([]models.RecordRow, error) {
	var rows []models.RecordRow
	for _, rec := range r.records {
		if f.EmployeeID != 0 && rec.EmployeeID != f.EmployeeID {
			continue
		}
		if f.StartDate != "" && rec.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && rec.Date > f.EndDate {
			continue
		}
		info := r.employees[rec.EmployeeID]
		rows = append(rows, models.RecordRow{
			ID:             rec.ID,
			EmployeeID:     rec.EmployeeID,
			EmployeeName:   info.name,
			EmployeeIDCard: info.idCard,
			Date:           rec.Date,
			ClockIn:        rec.ClockIn,
			ClockOut:       rec.ClockOut,
			LunchStart:     rec.LunchStart,
			LunchEnd:       rec.LunchEnd,
			HoursWorked:    rec.HoursWorked,
			Latitude:       rec.Latitude,
			Longitude:      rec.Longitude,
			IsLate:         rec.IsLate,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ClockIn.After(rows[j].ClockIn)
	})
	if f.Limit > 0 && len(rows) > f.Limit {
		rows = rows[:f.Limit]
	}
	return rows, nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id uint) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (r *fakeRecordRepo) Statistics(_ context.Context, startDate, endDate string) (*models.Statistics, error) {
	stats := &models.Statistics{}
	seen := make(map[uint]bool)
	var completed int64
	for _, rec := range r.records {
		if startDate != "" && rec.Date < startDate {
			continue
		}
		if endDate != "" && rec.Date > endDate {
			continue
		}
		stats.TotalRecords++
		seen[rec.EmployeeID] = true
		if rec.HoursWorked != nil {
			stats.TotalHours += *rec.HoursWorked
			completed++
		}
	}
	stats.TotalEmployees = int64(len(seen))
	if completed > 0 {
		stats.AvgHours = stats.TotalHours / float64(completed)
	}
	return stats, nil
}

type fakeSettingsRepo struct {
	values     map[string]string
	getErr     error
	upsertErr  error
	lastUpsert map[string]string
}

func newFakeSettingsRepo(values map[string]string) *fakeSettingsRepo {
	if values == nil {
		values = make(map[string]string)
	}
	return &fakeSettingsRepo{values: values}
}

func (r *fakeSettingsRepo) GetAll(_ context.Context) (map[string]string, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, values map[string]string) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.lastUpsert = values
	for k, v := range values {
		r.values[k] = v
	}
	return nil
}

type fakeEmployeeRepo struct {
	rows   map[uint]*models.Employee
	nextID uint
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{rows: make(map[uint]*models.Employee)}
}

func (r *fakeEmployeeRepo) byIDCard(idCard string) *models.Employee {
	for _, emp := range r.rows {
		if emp.IDCard == idCard {
			return emp
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) Register(_ context.Context, name, idCard string) (uint, bool, error) {
	if existing := r.byIDCard(idCard); existing != nil {
		if existing.Active {
			return 0, false, domain.ErrDuplicateIDCard
		}
		existing.Active = true
		existing.Name = name
		return existing.ID, true, nil
	}
	r.nextID++
	r.rows[r.nextID] = &models.Employee{
		ID:     r.nextID,
		Name:   name,
		IDCard: idCard,
		Active: true,
	}
	return r.nextID, false, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id uint) (*models.Employee, error) {
	emp, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	copied := *emp
	return &copied, nil
}

func (r *fakeEmployeeRepo) GetActiveByIDCard(_ context.Context, idCard string) (*models.Employee, error) {
	emp := r.byIDCard(idCard)
	if emp == nil || !emp.Active {
		return nil, domain.ErrEmployeeNotFound
	}
	copied := *emp
	return &copied, nil
}

func (r *fakeEmployeeRepo) ListActive(_ context.Context) ([]models.Employee, error) {
	var out []models.Employee
	for _, emp := range r.rows {
		if emp.Active {
			out = append(out, *emp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].Name, out[j].Name) < 0
	})
	return out, nil
}

func (r *fakeEmployeeRepo) Deactivate(_ context.Context, id uint) error {
	emp, ok := r.rows[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	emp.Active = false
	return nil
}
