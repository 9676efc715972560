package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-reservations/apperrors"
)

type Employee struct {
	gorm.Model

	Name     string  `json:"name" gorm:"type:varchar(50)"`
	JobTitle string  `json:"jobTitle" gorm:"column:job_title;type:varchar(50)"`
	Salary   float64 `json:"salary"`
}

func (e Employee) Describe() string {
	return fmt.Sprintf("%s (id=%d) works as %s", e.Name, e.ID, e.JobTitle)
}

// RaiseSalary adds amount to the employee's salary. The amount must be
// strictly positive.
func (e *Employee) RaiseSalary(amount float64) error {
	if amount <= 0 {
		return apperrors.InvalidRequestf("raise amount must be positive")
	}
	e.Salary += amount
	return nil
}

// ChangeJobTitle moves the employee to a new, non-blank job title.
func (e *Employee) ChangeJobTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.InvalidRequestf("job title cannot be blank")
	}
	e.JobTitle = title
	return nil
}
