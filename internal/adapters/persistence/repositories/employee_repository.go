package repositories

import (
	"context"
	"errors"

	"employee-tracker/internal/adapters/persistence/models"
	"employee-tracker/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// employeeRepository implements EmployeeRepository interface
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Register inserts a new employee or reactivates an inactive one. The id_card
// column carries a full unique index (one row per card, ever), so the
// check-then-write runs under a row lock and a racing insert resolves to the
// duplicate error instead of a second row.
func (r *employeeRepository) Register(ctx context.Context, name, idCard string) (uint, bool, error) {
	var id uint
	var reactivated bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id_card = ?", idCard).
			First(&emp).Error

		switch {
		case err == nil:
			if emp.Active {
				return domain.ErrDuplicateIDCard
			}
			if err := tx.Model(&emp).Updates(map[string]interface{}{
				"active": true,
				"name":   name,
			}).Error; err != nil {
				return err
			}
			id = emp.ID
			reactivated = true
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			emp = models.Employee{Name: name, IDCard: idCard, Active: true}
			if err := tx.Create(&emp).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return domain.ErrDuplicateIDCard
				}
				return err
			}
			id = emp.ID
			return nil

		default:
			return err
		}
	})

	if err != nil {
		return 0, false, err
	}
	return id, reactivated, nil
}

// GetByID gets an employee by ID, active or not
func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var emp models.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// GetActiveByIDCard gets an active employee by id card
func (r *employeeRepository) GetActiveByIDCard(ctx context.Context, idCard string) (*models.Employee, error) {
	var emp models.Employee
	err := r.db.WithContext(ctx).
		Where("id_card = ? AND active = ?", idCard, true).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// ListActive lists active employees ordered by name
func (r *employeeRepository) ListActive(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Find(&employees).Error
	return employees, err
}

// Deactivate soft-deactivates an employee, keeping historical records intact
func (r *employeeRepository) Deactivate(ctx context.Context, id uint) error {
	var emp models.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEmployeeNotFound
		}
		return err
	}

	return r.db.WithContext(ctx).Model(&emp).Update("active", false).Error
}
