// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for creating an appointment
type CreateAppointmentInput struct {
	ClientID    uuid.UUID `json:"clientId" binding:"required"`
	EmployeeID  uuid.UUID `json:"employeeId" binding:"required"`
	ServiceID   uuid.UUID `json:"serviceId" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

// UpdateAppointmentInput defines the expected JSON structure for updating an appointment
type UpdateAppointmentInput struct {
	ClientID    *uuid.UUID `json:"clientId"`
	EmployeeID  *uuid.UUID `json:"employeeId"`
	ServiceID   *uuid.UUID `json:"serviceId"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Amount      *float64   `json:"amount"`
}

// CollectAppointmentInput names the cashbox receiving the appointment revenue
type CollectAppointmentInput struct {
	CajaID uuid.UUID `json:"cajaId" binding:"required"`
}

// CreateAppointment creates a new appointment. The amount is copied from the
// service's price at creation time; display names are cached alongside the
// authoritative id references.
func CreateAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.ClientID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var employee models.Employee
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.EmployeeID).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var service models.Service
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.ServiceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !service.IsActive {
		utils.RespondWithError(c, http.StatusBadRequest, "Service is inactive")
		return
	}

	appointment := models.Appointment{
		ID:           uuid.New(),
		SalonID:      salonUUID,
		ClientID:     client.ID,
		EmployeeID:   employee.ID,
		ServiceID:    service.ID,
		ClientName:   client.Name,
		EmployeeName: employee.Name,
		ServiceName:  service.Name,
		ScheduledAt:  input.ScheduledAt,
		Amount:       service.Price,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments retrieves appointments for the salon, optionally filtered
// by day (?date=2024-06-01)
func GetAppointments(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Where("salon_id = ?", salonUUID)

	if day := c.Query("date"); day != "" {
		parsed, err := time.Parse("2006-01-02", day)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		from := utils.BeginningOfDay(parsed)
		query = query.Where("scheduled_at >= ? AND scheduled_at < ?", from, from.AddDate(0, 0, 1))
	}

	var appointments []models.Appointment
	if err := query.Order("scheduled_at").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, ok := pathUUID(c, "id", "appointment")
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment updates an existing appointment
func UpdateAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, ok := pathUUID(c, "id", "appointment")
	if !ok {
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ClientID != nil {
		var client models.Client
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, *input.ClientID).
			First(&client).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			return
		}
		appointment.ClientID = client.ID
		appointment.ClientName = client.Name
	}

	if input.EmployeeID != nil {
		var employee models.Employee
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, *input.EmployeeID).
			First(&employee).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Employee not found")
			return
		}
		appointment.EmployeeID = employee.ID
		appointment.EmployeeName = employee.Name
	}

	if input.ServiceID != nil {
		var service models.Service
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, *input.ServiceID).
			First(&service).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
			return
		}
		appointment.ServiceID = service.ID
		appointment.ServiceName = service.Name
		// Switching service re-copies its price unless the caller overrides
		if input.Amount == nil {
			appointment.Amount = service.Price
		}
	}

	if input.ScheduledAt != nil {
		appointment.ScheduledAt = *input.ScheduledAt
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "amount: must not be negative")
			return
		}
		appointment.Amount = *input.Amount
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment
func DeleteAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, ok := pathUUID(c, "id", "appointment")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		Delete(&models.Appointment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// CollectAppointment records the appointment revenue into a cashbox. The
// collected flag, the cashbox reference and the cashbox-active check commit
// atomically, so collecting twice or into an inactive cashbox is rejected.
func CollectAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, ok := pathUUID(c, "id", "appointment")
	if !ok {
		return
	}

	var input CollectAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var appointment models.Appointment
	if err := tx.Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if appointment.Collected {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusConflict, "Appointment already collected")
		return
	}

	var cashbox models.Cashbox
	if err := tx.Where("salon_id = ? AND id = ?", salonUUID, input.CajaID).
		First(&cashbox).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Cashbox not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !cashbox.Active {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusBadRequest, "Cashbox is inactive")
		return
	}

	appointment.Collected = true
	appointment.CajaID = &cashbox.ID

	if err := tx.Save(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to collect appointment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, appointment)
}

// UncollectAppointment reverses a collection
func UncollectAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, ok := pathUUID(c, "id", "appointment")
	if !ok {
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var appointment models.Appointment
	if err := tx.Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !appointment.Collected {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusConflict, "Appointment is not collected")
		return
	}

	appointment.Collected = false
	appointment.CajaID = nil

	if err := tx.Save(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to uncollect appointment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, appointment)
}
