package models

import (
	"errors"
	"testing"

	"hotel-reservations/apperrors"
)

func TestRaiseSalary(t *testing.T) {
	employee := Employee{Name: "Karim", JobTitle: "Receptionist", Salary: 3000}

	if err := employee.RaiseSalary(500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if employee.Salary != 3500 {
		t.Fatalf("expected salary 3500, got %v", employee.Salary)
	}

	if err := employee.RaiseSalary(-100); !errors.Is(err, apperrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for negative raise, got %v", err)
	}
	if employee.Salary != 3500 {
		t.Fatal("failed raise must not change the salary")
	}
}

func TestChangeJobTitle(t *testing.T) {
	employee := Employee{Name: "Karim", JobTitle: "Receptionist"}

	if err := employee.ChangeJobTitle("Manager"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if employee.JobTitle != "Manager" {
		t.Fatalf("expected job title Manager, got %s", employee.JobTitle)
	}

	if err := employee.ChangeJobTitle("   "); !errors.Is(err, apperrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for blank title, got %v", err)
	}
	if employee.JobTitle != "Manager" {
		t.Fatal("failed change must not alter the job title")
	}
}
