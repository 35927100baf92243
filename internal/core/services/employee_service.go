package services

import (
	"context"
	"strings"

	"employee-tracker/internal/adapters/persistence/models"
	"employee-tracker/internal/adapters/persistence/repositories"
	"employee-tracker/internal/core/domain"
)

// EmployeeService handles the employee roster: registration, soft
// deactivation and the card lookup used by the shop-floor terminal.
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// RegisterInput represents an employee registration request
type RegisterInput struct {
	Name   string
	IDCard string
}

// RegisterResult represents a successful registration
type RegisterResult struct {
	EmployeeID  uint   `json:"employeeId"`
	Reactivated bool   `json:"wasReactivated"`
	Message     string `json:"message"`
}

// Register adds a new employee, or reactivates (and renames) an inactive row
// holding the same id card. An active holder of the card fails with
// domain.ErrDuplicateIDCard.
func (s *EmployeeService) Register(ctx context.Context, input *RegisterInput) (*RegisterResult, error) {
	name := strings.TrimSpace(input.Name)
	idCard := strings.TrimSpace(input.IDCard)
	if name == "" || idCard == "" {
		return nil, domain.ErrInvalidInput
	}

	id, reactivated, err := s.employeeRepo.Register(ctx, name, idCard)
	if err != nil {
		return nil, err
	}

	message := "Empleado agregado exitosamente"
	if reactivated {
		message = "Empleado reactivado exitosamente"
	}

	return &RegisterResult{
		EmployeeID:  id,
		Reactivated: reactivated,
		Message:     message,
	}, nil
}

// Deactivate flags an employee inactive, leaving historical time records
// untouched
func (s *EmployeeService) Deactivate(ctx context.Context, id uint) error {
	return s.employeeRepo.Deactivate(ctx, id)
}

// GetByID returns an employee by id, active or not
func (s *EmployeeService) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// GetByIDCard returns an active employee by id card. Deactivated employees
// do not match, so a retired card cannot clock in.
func (s *EmployeeService) GetByIDCard(ctx context.Context, idCard string) (*models.Employee, error) {
	idCard = strings.TrimSpace(idCard)
	if idCard == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.employeeRepo.GetActiveByIDCard(ctx, idCard)
}

// ListActive returns the active roster ordered by name
func (s *EmployeeService) ListActive(ctx context.Context) ([]models.Employee, error) {
	return s.employeeRepo.ListActive(ctx)
}
