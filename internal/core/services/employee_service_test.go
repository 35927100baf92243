package services

import (
	"context"
	"errors"
	"testing"

	"employee-tracker/internal/core/domain"
)

func TestRegisterNewEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	result, err := svc.Register(context.Background(), &RegisterInput{Name: "  Juan Pérez ", IDCard: " 001-0000001-1 "})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if result.Reactivated {
		t.Error("fresh registration reported as reactivation")
	}
	if result.Message != "Empleado agregado exitosamente" {
		t.Errorf("message = %q", result.Message)
	}

	emp, err := svc.GetByIDCard(context.Background(), "001-0000001-1")
	if err != nil {
		t.Fatalf("GetByIDCard: %v", err)
	}
	if emp.Name != "Juan Pérez" {
		t.Errorf("name not trimmed: %q", emp.Name)
	}
}

func TestRegisterDuplicateIDCard(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterInput{Name: "Juan Pérez", IDCard: "001-0000001-1"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, &RegisterInput{Name: "Otro Nombre", IDCard: "001-0000001-1"})
	if !errors.Is(err, domain.ErrDuplicateIDCard) {
		t.Fatalf("err = %v, want ErrDuplicateIDCard", err)
	}
}

func TestRegisterReactivatesInactive(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	first, err := svc.Register(ctx, &RegisterInput{Name: "Juan Pérez", IDCard: "001-0000001-1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.Deactivate(ctx, first.EmployeeID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	second, err := svc.Register(ctx, &RegisterInput{Name: "Juan P. Reyes", IDCard: "001-0000001-1"})
	if err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if !second.Reactivated {
		t.Error("expected reactivation")
	}
	if second.EmployeeID != first.EmployeeID {
		t.Errorf("reactivation changed id from %d to %d", first.EmployeeID, second.EmployeeID)
	}
	if second.Message != "Empleado reactivado exitosamente" {
		t.Errorf("message = %q", second.Message)
	}

	emp, err := svc.GetByID(ctx, first.EmployeeID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if emp.Name != "Juan P. Reyes" {
		t.Errorf("reactivation should rename: %q", emp.Name)
	}
}

func TestRegisterRejectsEmptyInput(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	for _, input := range []*RegisterInput{
		{Name: "", IDCard: "001-0000001-1"},
		{Name: "Juan Pérez", IDCard: "   "},
	} {
		if _, err := svc.Register(ctx, input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Register(%+v) err = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestDeactivateHidesFromCardLookup(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	result, err := svc.Register(ctx, &RegisterInput{Name: "Juan Pérez", IDCard: "001-0000001-1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.Deactivate(ctx, result.EmployeeID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	if _, err := svc.GetByIDCard(ctx, "001-0000001-1"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("card lookup err = %v, want ErrEmployeeNotFound", err)
	}

	// The row survives for historical reports
	emp, err := svc.GetByID(ctx, result.EmployeeID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if emp.Active {
		t.Error("employee still active after deactivation")
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active roster = %d, want 0", len(active))
	}
}

func TestDeactivateUnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	if err := svc.Deactivate(context.Background(), 42); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}
