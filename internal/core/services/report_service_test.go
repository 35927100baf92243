package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"employee-tracker/internal/adapters/persistence/models"
	"employee-tracker/internal/adapters/persistence/repositories"
)

func seedCompletedShift(repo *fakeRecordRepo, employeeID uint, date string, clockIn time.Time, hours float64) *models.TimeRecord {
	out := clockIn.Add(time.Duration(hours * float64(time.Hour)))
	repo.nextID++
	rec := &models.TimeRecord{
		ID:          repo.nextID,
		EmployeeID:  employeeID,
		Date:        date,
		ClockIn:     clockIn,
		ClockOut:    &out,
		HoursWorked: &hours,
	}
	repo.records = append(repo.records, rec)
	return rec
}

func TestOvertimeReport(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	recordRepo.addEmployee(1, "Juan Pérez", "001-0000001-1")
	recordRepo.addEmployee(2, "María García", "001-0000002-2")
	settingsRepo := newFakeSettingsRepo(map[string]string{
		"daily_work_hours": "8",
		"overtime_rate":    "5.00",
	})
	svc := NewReportService(recordRepo, settingsRepo, time.UTC)

	day := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	seedCompletedShift(recordRepo, 1, "2024-03-11", day, 9.5)
	seedCompletedShift(recordRepo, 2, "2024-03-11", day, 7.0)
	seedCompletedShift(recordRepo, 1, "2024-03-12", day.AddDate(0, 0, 1), 8.0)

	// An open record must not appear even with a long-running clock-in
	recordRepo.nextID++
	recordRepo.records = append(recordRepo.records, &models.TimeRecord{
		ID:         recordRepo.nextID,
		EmployeeID: 2,
		Date:       "2024-03-12",
		ClockIn:    day.AddDate(0, 0, 1),
	})

	report, err := svc.OvertimeReport(context.Background(), "2024-03-11", "2024-03-12")
	if err != nil {
		t.Fatalf("OvertimeReport: %v", err)
	}
	if len(report) != 1 {
		t.Fatalf("rows = %d, want 1", len(report))
	}

	row := report[0]
	if row.EmployeeName != "Juan Pérez" || row.Date != "2024-03-11" {
		t.Errorf("unexpected row %+v", row)
	}
	if row.OvertimeHours != 1.5 {
		t.Errorf("overtime hours = %v, want 1.5", row.OvertimeHours)
	}
	if row.OvertimePay != 7.5 {
		t.Errorf("overtime pay = %v, want 7.5", row.OvertimePay)
	}
	if row.DailyLimit != 8 {
		t.Errorf("daily limit = %v, want 8", row.DailyLimit)
	}
}

func TestOvertimeReportPerRecord(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	recordRepo.addEmployee(1, "Juan Pérez", "001-0000001-1")
	settingsRepo := newFakeSettingsRepo(map[string]string{
		"daily_work_hours": "8",
		"overtime_rate":    "5.00",
	})
	svc := NewReportService(recordRepo, settingsRepo, time.UTC)

	// Two 5-hour shifts the same day: each is under the threshold on its
	// own, so neither counts as overtime.
	day := time.Date(2024, 3, 11, 6, 0, 0, 0, time.UTC)
	seedCompletedShift(recordRepo, 1, "2024-03-11", day, 5.0)
	seedCompletedShift(recordRepo, 1, "2024-03-11", day.Add(6*time.Hour), 5.0)

	report, err := svc.OvertimeReport(context.Background(), "2024-03-11", "2024-03-11")
	if err != nil {
		t.Fatalf("OvertimeReport: %v", err)
	}
	if len(report) != 0 {
		t.Errorf("rows = %d, want 0", len(report))
	}
}

func TestExportCSV(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	recordRepo.addEmployee(1, "Juan Pérez", "001-0000001-1")
	settingsRepo := newFakeSettingsRepo(nil)
	svc := NewReportService(recordRepo, settingsRepo, time.UTC)

	in := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	seedCompletedShift(recordRepo, 1, "2024-03-11", in, 8.5)

	// Open shift, no lunch yet
	recordRepo.nextID++
	recordRepo.records = append(recordRepo.records, &models.TimeRecord{
		ID:         recordRepo.nextID,
		EmployeeID: 1,
		Date:       "2024-03-12",
		ClockIn:    in.AddDate(0, 0, 1),
	})

	data, filename, err := svc.ExportCSV(context.Background(), repositories.RecordFilters{
		StartDate: "2024-03-11",
		EndDate:   "2024-03-12",
	})
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if filename != "registros_2024-03-11_2024-03-12.csv" {
		t.Errorf("filename = %q", filename)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("missing UTF-8 BOM prefix")
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	if err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}

	header := strings.Join(rows[0], ",")
	want := "ID,Empleado,Cédula,Fecha,Entrada,Inicio Almuerzo,Fin Almuerzo,Salida,Horas Trabajadas"
	if header != want {
		t.Errorf("header = %q, want %q", header, want)
	}

	// Newest first: the open shift is the first data row
	open := rows[1]
	if open[3] != "2024-03-12" {
		t.Errorf("first data row date = %q, want 2024-03-12", open[3])
	}
	if open[7] != "En curso" {
		t.Errorf("open shift exit = %q, want En curso", open[7])
	}
	if open[8] != "N/A" {
		t.Errorf("open shift hours = %q, want N/A", open[8])
	}
	if open[5] != "" || open[6] != "" {
		t.Errorf("lunch columns = %q/%q, want empty", open[5], open[6])
	}

	closed := rows[2]
	if closed[1] != "Juan Pérez" || closed[2] != "001-0000001-1" {
		t.Errorf("employee columns = %q/%q", closed[1], closed[2])
	}
	if closed[4] != "11/03/2024 09:00:00" {
		t.Errorf("entry = %q", closed[4])
	}
	if closed[8] != "8.50" {
		t.Errorf("hours = %q, want 8.50", closed[8])
	}
}

func TestExportFilenameDefaults(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	settingsRepo := newFakeSettingsRepo(nil)
	svc := NewReportService(recordRepo, settingsRepo, time.UTC)

	_, filename, err := svc.ExportCSV(context.Background(), repositories.RecordFilters{})
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if filename != "registros_inicio_fin.csv" {
		t.Errorf("filename = %q", filename)
	}
}

func TestStatistics(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	recordRepo.addEmployee(1, "Juan Pérez", "001-0000001-1")
	recordRepo.addEmployee(2, "María García", "001-0000002-2")
	settingsRepo := newFakeSettingsRepo(nil)
	svc := NewReportService(recordRepo, settingsRepo, time.UTC)

	day := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	seedCompletedShift(recordRepo, 1, "2024-03-11", day, 8.0)
	seedCompletedShift(recordRepo, 2, "2024-03-11", day, 6.0)

	// Open record counts toward totals but not toward hour averages
	recordRepo.nextID++
	recordRepo.records = append(recordRepo.records, &models.TimeRecord{
		ID:         recordRepo.nextID,
		EmployeeID: 1,
		Date:       "2024-03-12",
		ClockIn:    day.AddDate(0, 0, 1),
	})

	stats, err := svc.Statistics(context.Background(), "2024-03-11", "2024-03-12")
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalEmployees != 2 {
		t.Errorf("employees = %d, want 2", stats.TotalEmployees)
	}
	if stats.TotalRecords != 3 {
		t.Errorf("records = %d, want 3", stats.TotalRecords)
	}
	if stats.TotalHours != 14.0 {
		t.Errorf("total hours = %v, want 14", stats.TotalHours)
	}
	if stats.AvgHours != 7.0 {
		t.Errorf("avg hours = %v, want 7", stats.AvgHours)
	}
}
