// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string      `json:"name" binding:"required"`
	Duration    string      `json:"duration"`
	Price       float64     `json:"price" binding:"min=0"`
	EmployeeIDs []uuid.UUID `json:"employeeIds"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string      `json:"name"`
	Duration    *string      `json:"duration"`
	Price       *float64     `json:"price"`
	IsActive    *bool        `json:"isActive"`
	EmployeeIDs *[]uuid.UUID `json:"employeeIds"`
}

// loadSalonEmployees resolves the assignable employees, rejecting ids that do
// not belong to the salon
func loadSalonEmployees(salonID uuid.UUID, ids []uuid.UUID) ([]models.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var employees []models.Employee
	if err := config.DB.Where("salon_id = ? AND id IN ?", salonID, ids).Find(&employees).Error; err != nil {
		return nil, err
	}
	if len(employees) != len(ids) {
		return nil, utils.NewValidationError("employeeIds", "unknown employee id")
	}
	return employees, nil
}

// CreateService creates a new service for the salon
func CreateService(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	employees, err := loadSalonEmployees(salonUUID, input.EmployeeIDs)
	if err != nil {
		var verr *utils.ValidationError
		if errors.As(err, &verr) {
			utils.RespondWithError(c, http.StatusBadRequest, verr.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service := models.Service{
		ID:        uuid.New(),
		SalonID:   salonUUID,
		Name:      input.Name,
		Price:     input.Price,
		IsActive:  true,
		Employees: employees,
	}
	if input.Duration != "" {
		service.Duration = input.Duration
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves all services for the salon
func GetServices(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := config.DB.Preload("Employees").
		Where("salon_id = ?", salonUUID).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	serviceUUID, ok := pathUUID(c, "id", "service")
	if !ok {
		return
	}

	var service models.Service
	if err := config.DB.Preload("Employees").
		Where("salon_id = ? AND id = ?", salonUUID, serviceUUID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	serviceUUID, ok := pathUUID(c, "id", "service")
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, serviceUUID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "price: must not be negative")
			return
		}
		service.Price = *input.Price
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	if input.EmployeeIDs != nil {
		employees, err := loadSalonEmployees(salonUUID, *input.EmployeeIDs)
		if err != nil {
			var verr *utils.ValidationError
			if errors.As(err, &verr) {
				utils.RespondWithError(c, http.StatusBadRequest, verr.Error())
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		if err := config.DB.Model(&service).Association("Employees").Replace(employees); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service employees")
			return
		}
	}

	// Cached name on appointments follows the service rename
	if input.Name != nil {
		config.DB.Model(&models.Appointment{}).
			Where("service_id = ?", service.ID).
			Update("service_name", service.Name)
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service
func DeleteService(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	serviceUUID, ok := pathUUID(c, "id", "service")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, serviceUUID).
		Delete(&models.Service{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
