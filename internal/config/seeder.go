package config

import (
	"log"

	"employee-tracker/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDefaultSettings(); err != nil {
		return err
	}
	if err := s.seedSampleEmployees(); err != nil {
		log.Printf("⚠️ Employee seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDefaultSettings inserts the default work-hour policy, keeping any
// values an admin already changed.
func (s *Seeder) seedDefaultSettings() error {
	defaults := []models.Setting{
		{Key: "work_start_time", Value: "09:00"},
		{Key: "daily_work_hours", Value: "8"},
		{Key: "overtime_rate", Value: "5.00"},
	}

	for _, setting := range defaults {
		err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&setting).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// seedSampleEmployees inserts a starter roster when the table is empty.
// Development convenience only.
func (s *Seeder) seedSampleEmployees() error {
	var count int64
	if err := s.db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []models.Employee{
		{Name: "Juan Pérez", IDCard: "1234567890", Active: true},
		{Name: "María García", IDCard: "0987654321", Active: true},
		{Name: "Carlos López", IDCard: "1122334455", Active: true},
		{Name: "Ana Martínez", IDCard: "5544332211", Active: true},
		{Name: "Luis Rodríguez", IDCard: "9988776655", Active: true},
	}

	if err := s.db.Create(&samples).Error; err != nil {
		return err
	}

	log.Printf("✓ Seeded %d sample employees", len(samples))
	return nil
}
