package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-reservations/apperrors"
	"hotel-reservations/models"
)

type EmployeeService struct {
	DB *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{DB: db}
}

func validateEmployee(employee *models.Employee) error {
	if strings.TrimSpace(employee.Name) == "" {
		return apperrors.InvalidRequestf("name cannot be blank")
	}
	if employee.Salary < 0 {
		return apperrors.InvalidRequestf("salary cannot be negative")
	}
	return nil
}

func (s *EmployeeService) Create(employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}
	if err := s.DB.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) GetAll(page, size int) ([]models.Employee, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}
	var employees []models.Employee
	if err := s.DB.Order("id").Offset(page * size).Limit(size).Find(&employees).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, total, nil
}

func (s *EmployeeService) GetByID(id uint) (models.Employee, error) {
	var employee models.Employee
	if err := s.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, apperrors.NotFoundf("employee %d not found", id)
		}
		return models.Employee{}, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) Update(id uint, updated models.Employee) (models.Employee, error) {
	employee, err := s.GetByID(id)
	if err != nil {
		return models.Employee{}, err
	}
	if err := validateEmployee(&updated); err != nil {
		return models.Employee{}, err
	}

	employee.Name = updated.Name
	employee.JobTitle = updated.JobTitle
	employee.Salary = updated.Salary

	if err := s.DB.Save(&employee).Error; err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) Delete(id uint) error {
	result := s.DB.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("employee %d not found", id)
	}
	return nil
}

func (s *EmployeeService) ByName(name string) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.Where("name = ?", name).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees by name: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) ByJobTitle(jobTitle string) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.Where("job_title = ?", jobTitle).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees by job title: %w", err)
	}
	return employees, nil
}
