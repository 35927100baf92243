package services

import (
	"context"
	"time"

	"employee-tracker/internal/adapters/persistence/models"
	"employee-tracker/internal/adapters/persistence/repositories"
	"employee-tracker/internal/core/policy"
)

// TimeClockService drives the shift state machine: clock-in, lunch breaks and
// clock-out for one employee per local calendar day. All "today" decisions
// use the injected clock and time zone, never the host's ambient zone.
type TimeClockService struct {
	recordRepo   repositories.TimeRecordRepository
	settingsRepo repositories.SettingsRepository
	loc          *time.Location
	clock        func() time.Time
}

// Option configures a TimeClockService
type Option func(*TimeClockService)

// WithClock overrides the time source, used by tests
func WithClock(clock func() time.Time) Option {
	return func(s *TimeClockService) {
		s.clock = clock
	}
}

// NewTimeClockService creates a new time clock service
func NewTimeClockService(
	recordRepo repositories.TimeRecordRepository,
	settingsRepo repositories.SettingsRepository,
	loc *time.Location,
	opts ...Option,
) *TimeClockService {
	s := &TimeClockService{
		recordRepo:   recordRepo,
		settingsRepo: settingsRepo,
		loc:          loc,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TimeClockService) now() time.Time {
	return s.clock().In(s.loc)
}

// Today returns the current calendar day in the configured zone
func (s *TimeClockService) Today() string {
	return s.now().Format("2006-01-02")
}

// ClockInInput represents a clock-in request
type ClockInInput struct {
	EmployeeID uint
	Latitude   *float64
	Longitude  *float64
}

// ClockInResult represents a successful clock-in
type ClockInResult struct {
	RecordID  uint      `json:"record_id"`
	Message   string    `json:"message"`
	IsLate    bool      `json:"is_late"`
	Timestamp time.Time `json:"timestamp"`
}

// ClockIn opens a new shift record. Fails with domain.ErrAlreadyClockedIn
// when an open record for today already exists. Lateness is decided here,
// once, against the work_start_time current at this moment, and never
// revised afterwards.
func (s *TimeClockService) ClockIn(ctx context.Context, input *ClockInInput) (*ClockInResult, error) {
	now := s.now()
	date := now.Format("2006-01-02")

	// A failed settings read must not block the terminal; the record is
	// simply not flagged late.
	isLate := false
	if settings, err := s.settingsRepo.GetAll(ctx); err == nil {
		isLate = policy.SnapshotFrom(settings).IsLate(now)
	}

	rec := &models.TimeRecord{
		EmployeeID: input.EmployeeID,
		Date:       date,
		ClockIn:    now,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		IsLate:     isLate,
	}

	if err := s.recordRepo.CreateShift(ctx, rec); err != nil {
		return nil, err
	}

	message := "Entrada registrada exitosamente"
	if isLate {
		message = "Entrada registrada (Llegada Tarde)"
	}

	return &ClockInResult{
		RecordID:  rec.ID,
		Message:   message,
		IsLate:    isLate,
		Timestamp: now,
	}, nil
}

// StartLunch stamps lunch start on today's open record. Fails with
// domain.ErrNoActiveShift when there is no open record or lunch was already
// taken on it.
func (s *TimeClockService) StartLunch(ctx context.Context, employeeID uint) (uint, error) {
	now := s.now()
	return s.recordRepo.StartLunch(ctx, employeeID, now.Format("2006-01-02"), now)
}

// EndLunch stamps lunch end on today's open record. Fails with
// domain.ErrNoLunchInProgress unless a lunch was started and not ended.
func (s *TimeClockService) EndLunch(ctx context.Context, employeeID uint) (uint, error) {
	now := s.now()
	return s.recordRepo.EndLunch(ctx, employeeID, now.Format("2006-01-02"), now)
}

// ClockOut closes today's most recent open record and fixes its worked
// hours. Fails with domain.ErrNoOpenShift when nothing is open.
func (s *TimeClockService) ClockOut(ctx context.Context, employeeID uint) (*models.TimeRecord, error) {
	now := s.now()
	return s.recordRepo.CloseShift(ctx, employeeID, now.Format("2006-01-02"), now)
}

// StatusResult represents the employee's current clock state
type StatusResult struct {
	IsClockedIn bool               `json:"isClockedIn"`
	IsOnLunch   bool               `json:"isOnLunch"`
	LastRecord  *models.TimeRecord `json:"lastRecord"`
}

// Status derives the current state from today's most recent record. Pure
// read, safe to poll.
func (s *TimeClockService) Status(ctx context.Context, employeeID uint) (*StatusResult, error) {
	rec, err := s.recordRepo.LatestForDay(ctx, employeeID, s.Today())
	if err != nil {
		return nil, err
	}

	status := &StatusResult{LastRecord: rec}
	if rec != nil {
		status.IsClockedIn = rec.IsOpen()
		status.IsOnLunch = rec.OnLunch()
	}
	return status, nil
}

// TodayRecords lists all of today's records for an employee, newest first
func (s *TimeClockService) TodayRecords(ctx context.Context, employeeID uint) ([]models.TimeRecord, error) {
	return s.recordRepo.ListForDay(ctx, employeeID, s.Today())
}

// Records lists records joined with employee info, filtered and ordered by
// clock-in descending
func (s *TimeClockService) Records(ctx context.Context, f repositories.RecordFilters) ([]models.RecordRow, error) {
	return s.recordRepo.List(ctx, f)
}

// DeleteRecord hard-deletes a single record. Fails with
// domain.ErrRecordNotFound when no row matched.
func (s *TimeClockService) DeleteRecord(ctx context.Context, id uint) error {
	return s.recordRepo.Delete(ctx, id)
}
