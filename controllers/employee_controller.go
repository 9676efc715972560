package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/models"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type EmployeeController struct {
	EmployeeSvc *services.EmployeeService
}

func NewEmployeeController(svc *services.EmployeeService) *EmployeeController {
	return &EmployeeController{EmployeeSvc: svc}
}

type employeeRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=50"`
	JobTitle string  `json:"jobTitle" binding:"required,min=2,max=50"`
	Salary   float64 `json:"salary" binding:"gte=0"`
}

// GetEmployees (GET /api/employees)
func (ctrl *EmployeeController) GetEmployees(c *gin.Context) {
	page, size := parsePaging(c)
	employees, total, err := ctrl.EmployeeSvc.GetAll(page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, employees, total, page, size)
}

// GetEmployeeByID (GET /api/employees/:id)
func (ctrl *EmployeeController) GetEmployeeByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	employee, err := ctrl.EmployeeSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// CreateEmployee (POST /api/employees)
func (ctrl *EmployeeController) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid employee payload: "+err.Error())
		return
	}
	employee := models.Employee{
		Name:     req.Name,
		JobTitle: req.JobTitle,
		Salary:   req.Salary,
	}
	if err := ctrl.EmployeeSvc.Create(&employee); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee (PUT /api/employees/:id)
func (ctrl *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid employee payload: "+err.Error())
		return
	}
	employee, err := ctrl.EmployeeSvc.Update(id, models.Employee{
		Name:     req.Name,
		JobTitle: req.JobTitle,
		Salary:   req.Salary,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee (DELETE /api/employees/:id)
func (ctrl *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.EmployeeSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetEmployeesByName (GET /api/employees/search/name/:name)
func (ctrl *EmployeeController) GetEmployeesByName(c *gin.Context) {
	employees, err := ctrl.EmployeeSvc.ByName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployeesByJobTitle (GET /api/employees/search/job/:job)
func (ctrl *EmployeeController) GetEmployeesByJobTitle(c *gin.Context) {
	employees, err := ctrl.EmployeeSvc.ByJobTitle(c.Param("job"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}
