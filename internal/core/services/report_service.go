package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"employee-tracker/internal/adapters/persistence/models"
	"employee-tracker/internal/adapters/persistence/repositories"
	"employee-tracker/internal/core/policy"
)

// csvTimeLayout renders timestamps the way the admin spreadsheets expect
const csvTimeLayout = "02/01/2006 15:04:05"

// ReportService builds the admin-facing reports: aggregate statistics, the
// per-record overtime report and the CSV export.
type ReportService struct {
	recordRepo   repositories.TimeRecordRepository
	settingsRepo repositories.SettingsRepository
	loc          *time.Location
}

// NewReportService creates a new report service
func NewReportService(
	recordRepo repositories.TimeRecordRepository,
	settingsRepo repositories.SettingsRepository,
	loc *time.Location,
) *ReportService {
	return &ReportService{
		recordRepo:   recordRepo,
		settingsRepo: settingsRepo,
		loc:          loc,
	}
}

// Statistics aggregates records over an inclusive date range
func (s *ReportService) Statistics(ctx context.Context, startDate, endDate string) (*models.Statistics, error) {
	return s.recordRepo.Statistics(ctx, startDate, endDate)
}

// OvertimeRow is one completed record whose worked hours exceed the daily
// threshold
type OvertimeRow struct {
	Date          string  `json:"date"`
	EmployeeName  string  `json:"employee_name"`
	HoursWorked   float64 `json:"hours_worked"`
	DailyLimit    float64 `json:"daily_limit"`
	OvertimeHours float64 `json:"overtime_hours"`
	OvertimePay   float64 `json:"overtime_pay"`
}

// OvertimeReport lists completed records with overtime in the range, newest
// first. Each record is compared against the full daily threshold on its
// own, even when an employee worked two shifts the same day.
func (s *ReportService) OvertimeReport(ctx context.Context, startDate, endDate string) ([]OvertimeRow, error) {
	settings, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	snap := policy.SnapshotFrom(settings)

	rows, err := s.recordRepo.List(ctx, repositories.RecordFilters{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}

	report := make([]OvertimeRow, 0)
	for _, row := range rows {
		if row.HoursWorked == nil {
			continue
		}
		over := snap.OvertimeHours(*row.HoursWorked)
		if over <= 0 {
			continue
		}
		report = append(report, OvertimeRow{
			Date:          row.Date,
			EmployeeName:  row.EmployeeName,
			HoursWorked:   *row.HoursWorked,
			DailyLimit:    snap.DailyWorkHours,
			OvertimeHours: over,
			OvertimePay:   snap.OvertimePay(*row.HoursWorked),
		})
	}
	return report, nil
}

// ExportCSV renders the filtered records as a CSV document with a UTF-8 BOM
// prefix so spreadsheet tools pick up accented characters, and returns the
// suggested download filename.
func (s *ReportService) ExportCSV(ctx context.Context, f repositories.RecordFilters) ([]byte, string, error) {
	rows, err := s.recordRepo.List(ctx, f)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	header := []string{
		"ID", "Empleado", "Cédula", "Fecha",
		"Entrada", "Inicio Almuerzo", "Fin Almuerzo", "Salida",
		"Horas Trabajadas",
	}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.EmployeeName,
			orNA(row.EmployeeIDCard),
			row.Date,
			s.formatTime(&row.ClockIn, ""),
			s.formatTime(row.LunchStart, ""),
			s.formatTime(row.LunchEnd, ""),
			s.formatTime(row.ClockOut, "En curso"),
			formatHours(row.HoursWorked),
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFilename(f.StartDate, f.EndDate), nil
}

// DailySummary returns the statistics for a single calendar day, used by the
// nightly summary job.
func (s *ReportService) DailySummary(ctx context.Context, date string) (*models.Statistics, error) {
	return s.recordRepo.Statistics(ctx, date, date)
}

func (s *ReportService) formatTime(t *time.Time, empty string) string {
	if t == nil {
		return empty
	}
	return t.In(s.loc).Format(csvTimeLayout)
}

func formatHours(h *float64) string {
	if h == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*h, 'f', 2, 64)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func exportFilename(startDate, endDate string) string {
	if startDate == "" {
		startDate = "inicio"
	}
	if endDate == "" {
		endDate = "fin"
	}
	return fmt.Sprintf("registros_%s_%s.csv", startDate, endDate)
}
