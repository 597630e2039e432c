// controllers/employee.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/services"
	"estetica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateEmployeeInput defines the expected JSON structure for creating an employee
type CreateEmployeeInput struct {
	Name           string   `json:"name" binding:"required"`
	Role           string   `json:"role"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	ScheduleStart  string   `json:"scheduleStart"`
	ScheduleEnd    string   `json:"scheduleEnd"`
	DaysOff        []string `json:"daysOff"`
	WorkPercentage *int     `json:"workPercentage"`
}

// UpdateEmployeeInput defines the expected JSON structure for updating an employee
type UpdateEmployeeInput struct {
	Name           *string   `json:"name"`
	Role           *string   `json:"role"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	ScheduleStart  *string   `json:"scheduleStart"`
	ScheduleEnd    *string   `json:"scheduleEnd"`
	DaysOff        *[]string `json:"daysOff"`
	WorkPercentage *int      `json:"workPercentage"`
	IsActive       *bool     `json:"isActive"`
}

func validateEmployeeFields(scheduleStart, scheduleEnd string, daysOff []string, workPercentage *int) error {
	if scheduleStart != "" && !utils.ValidateClock(scheduleStart) {
		return utils.NewValidationError("scheduleStart", "must be HH:MM")
	}
	if scheduleEnd != "" && !utils.ValidateClock(scheduleEnd) {
		return utils.NewValidationError("scheduleEnd", "must be HH:MM")
	}
	var seen models.StringList
	for _, day := range daysOff {
		if !utils.ValidateWeekday(day) {
			return utils.NewValidationError("daysOff", "unknown weekday: "+day)
		}
		normalized := strings.ToLower(day)
		if seen.Contains(normalized) {
			return utils.NewValidationError("daysOff", "duplicate weekday: "+day)
		}
		seen = append(seen, normalized)
	}
	if workPercentage != nil && (*workPercentage < 0 || *workPercentage > 100) {
		return utils.NewValidationError("workPercentage", "must be between 0 and 100")
	}
	return nil
}

// AddEmployee creates a new employee for the salon
func AddEmployee(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := validateEmployeeFields(input.ScheduleStart, input.ScheduleEnd, input.DaysOff, input.WorkPercentage); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	employee := models.Employee{
		ID:      uuid.New(),
		SalonID: salonUUID,
		Name:    input.Name,
		Role:    input.Role,
		Email:   input.Email,
		Phone:   input.Phone,
		DaysOff: input.DaysOff,
	}
	if input.ScheduleStart != "" {
		employee.ScheduleStart = input.ScheduleStart
	}
	if input.ScheduleEnd != "" {
		employee.ScheduleEnd = input.ScheduleEnd
	}
	if input.WorkPercentage != nil {
		employee.WorkPercentage = *input.WorkPercentage
	} else {
		employee.WorkPercentage = 50
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployees retrieves all employees for the salon
func GetEmployees(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var employees []models.Employee
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetEmployee retrieves a specific employee by ID
func GetEmployee(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	employeeUUID, ok := pathUUID(c, "id", "employee")
	if !ok {
		return
	}

	var employee models.Employee
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, employeeUUID).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee updates an existing employee
func UpdateEmployee(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	employeeUUID, ok := pathUUID(c, "id", "employee")
	if !ok {
		return
	}

	var input UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var employee models.Employee
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, employeeUUID).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var daysOff []string
	if input.DaysOff != nil {
		daysOff = *input.DaysOff
	}
	scheduleStart, scheduleEnd := "", ""
	if input.ScheduleStart != nil {
		scheduleStart = *input.ScheduleStart
	}
	if input.ScheduleEnd != nil {
		scheduleEnd = *input.ScheduleEnd
	}
	if err := validateEmployeeFields(scheduleStart, scheduleEnd, daysOff, input.WorkPercentage); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}
	if input.ScheduleStart != nil {
		employee.ScheduleStart = *input.ScheduleStart
	}
	if input.ScheduleEnd != nil {
		employee.ScheduleEnd = *input.ScheduleEnd
	}
	if input.DaysOff != nil {
		employee.DaysOff = *input.DaysOff
	}
	if input.WorkPercentage != nil {
		employee.WorkPercentage = *input.WorkPercentage
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee")
		return
	}

	// Keep cached display names in sync; ids stay authoritative either way
	if input.Name != nil {
		config.DB.Model(&models.Appointment{}).
			Where("employee_id = ?", employee.ID).
			Update("employee_name", employee.Name)
		config.DB.Model(&models.Payment{}).
			Where("employee_id = ?", employee.ID).
			Update("recipient", employee.Name)
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee. Appointment and payment history keeps
// its employee_id plus the cached name, so balances stay reconstructible.
func DeleteEmployee(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	employeeUUID, ok := pathUUID(c, "id", "employee")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, employeeUUID).
		Delete(&models.Employee{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

// GetEmployeeBalance returns the commission balance for one employee within a
// report window (week, month, year, all)
func GetEmployeeBalance(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	employeeUUID, ok := pathUUID(c, "id", "employee")
	if !ok {
		return
	}

	var employee models.Employee
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, employeeUUID).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	window := c.DefaultQuery("window", utils.WindowMonth)
	start := utils.WindowStart(window, time.Now())

	appointments, payments, err := loadReconciliationRecords(salonUUID, start)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load records")
		return
	}

	balance := services.EmployeeBalance(employee, appointments, payments, start)

	c.JSON(http.StatusOK, gin.H{
		"window":  window,
		"balance": balance,
	})
}

// GetEmployeeBalances returns balances for every employee of the salon
func GetEmployeeBalances(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var employees []models.Employee
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	window := c.DefaultQuery("window", utils.WindowMonth)
	start := utils.WindowStart(window, time.Now())

	appointments, payments, err := loadReconciliationRecords(salonUUID, start)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load records")
		return
	}

	balances := make([]services.Balance, 0, len(employees))
	for _, employee := range employees {
		balances = append(balances, services.EmployeeBalance(employee, appointments, payments, start))
	}

	c.JSON(http.StatusOK, gin.H{
		"window":   window,
		"balances": balances,
	})
}

func loadReconciliationRecords(salonID uuid.UUID, start time.Time) ([]models.Appointment, []models.Payment, error) {
	var appointments []models.Appointment
	if err := config.DB.Where("salon_id = ? AND scheduled_at >= ?", salonID, start).
		Find(&appointments).Error; err != nil {
		return nil, nil, err
	}

	var payments []models.Payment
	if err := config.DB.Where("salon_id = ? AND date >= ?", salonID, start).
		Find(&payments).Error; err != nil {
		return nil, nil, err
	}

	return appointments, payments, nil
}
