package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// dailySummarySchedule fires shortly after midnight so the whole previous
// day is covered.
const dailySummarySchedule = "5 0 * * *"

// CronService logs a nightly attendance summary for the previous day.
type CronService struct {
	reports *ReportService
	loc     *time.Location
	cron    *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(reports *ReportService, loc *time.Location) *CronService {
	return &CronService{
		reports: reports,
		loc:     loc,
		cron:    cron.New(cron.WithLocation(loc)),
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	if _, err := s.cron.AddFunc(dailySummarySchedule, s.logDailySummary); err != nil {
		log.Printf("⚠️ Failed to schedule daily summary: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🕐 Daily summary job scheduled (00:05)")
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *CronService) logDailySummary() {
	yesterday := time.Now().In(s.loc).AddDate(0, 0, -1).Format("2006-01-02")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := s.reports.DailySummary(ctx, yesterday)
	if err != nil {
		log.Printf("⚠️ Daily summary for %s failed: %v", yesterday, err)
		return
	}

	log.Printf("📊 Attendance %s: %d employees, %d records, %.2f hours total (%.2f avg)",
		yesterday, stats.TotalEmployees, stats.TotalRecords, stats.TotalHours, stats.AvgHours)
}
