// controllers/payment.go
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
	"gorm.io/gorm/clause"
)

// CreatePaymentInput defines the expected JSON structure for recording a payment
type CreatePaymentInput struct {
	Kind       string     `json:"kind" binding:"required,oneof=employee product service"`
	Recipient  string     `json:"recipient"`
	EmployeeID *uuid.UUID `json:"employeeId"`
	Date       time.Time  `json:"date" binding:"required"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	CajaID     uuid.UUID  `json:"cajaId" binding:"required"`
}

// PayEmployeeInput defines the expected JSON structure for paying commissions
type PayEmployeeInput struct {
	Amount float64   `json:"amount" binding:"required,gt=0"`
	CajaID uuid.UUID `json:"cajaId" binding:"required"`
}

// AddPayment records an outgoing payment. For employee payments the employee
// must belong to the salon and the recipient name is cached from it.
func AddPayment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cashbox, err := activeCashbox(salonUUID, input.CajaID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	payment := models.Payment{
		ID:        uuid.New(),
		SalonID:   salonUUID,
		Kind:      input.Kind,
		Recipient: input.Recipient,
		Date:      input.Date,
		Amount:    input.Amount,
		CajaID:    cashbox.ID,
	}

	if input.Kind == models.PaymentKindEmployee {
		if input.EmployeeID == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "employeeId: required for employee payments")
			return
		}
		var employee models.Employee
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, *input.EmployeeID).
			First(&employee).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Employee not found")
			return
		}
		payment.EmployeeID = &employee.ID
		payment.Recipient = employee.Name
	} else if payment.Recipient == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "recipient: required")
		return
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments retrieves the salon's payments, optionally filtered by kind
func GetPayments(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Where("salon_id = ?", salonUUID)
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var payments []models.Payment
	if err := query.Order("date DESC").Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPayment retrieves a specific payment by ID
func GetPayment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	paymentUUID, ok := pathUUID(c, "id", "payment")
	if !ok {
		return
	}

	var payment models.Payment
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, paymentUUID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}

// DeletePayment removes a payment record
func DeletePayment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	paymentUUID, ok := pathUUID(c, "id", "payment")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, paymentUUID).
		Delete(&models.Payment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

// PayEmployee settles part of an employee's pending commission. The employee
// row is locked for the duration of the transaction and the pending amount is
// recomputed from fresh aggregates under that lock, so two concurrent
// settlements serialize and cannot both pass the sufficiency check.
func PayEmployee(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	employeeUUID, ok := pathUUID(c, "id", "employee")
	if !ok {
		return
	}

	var input PayEmployeeInput
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

	var employee models.Employee
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("salon_id = ? AND id = ?", salonUUID, employeeUUID).
		First(&employee).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var cashbox models.Cashbox
	if err := tx.Where("salon_id = ? AND id = ? AND active = ?", salonUUID, input.CajaID, true).
		First(&cashbox).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Active cashbox not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var earned float64
	if err := tx.Model(&models.Appointment{}).
		Where("salon_id = ? AND employee_id = ?", salonUUID, employee.ID).
		Select("COALESCE(SUM(amount), 0)").Scan(&earned).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute balance")
		return
	}

	var paid float64
	if err := tx.Model(&models.Payment{}).
		Where("salon_id = ? AND employee_id = ? AND kind = ?",
			salonUUID, employee.ID, models.PaymentKindEmployee).
		Select("COALESCE(SUM(amount), 0)").Scan(&paid).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute balance")
		return
	}

	pending := earned*float64(employee.WorkPercentage)/100 - paid
	if input.Amount > pending {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusConflict, "Amount exceeds pending balance")
		return
	}

	payment := models.Payment{
		ID:         uuid.New(),
		SalonID:    salonUUID,
		Kind:       models.PaymentKindEmployee,
		Recipient:  employee.Name,
		EmployeeID: &employee.ID,
		Date:       time.Now(),
		Amount:     input.Amount,
		CajaID:     cashbox.ID,
	}

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, payment)
}

// activeCashbox loads a cashbox and rejects inactive or foreign ones
func activeCashbox(salonID, cashboxID uuid.UUID) (*models.Cashbox, error) {
	var cashbox models.Cashbox
	if err := config.DB.Where("salon_id = ? AND id = ?", salonID, cashboxID).
		First(&cashbox).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Cashbox not found")
		}
		return nil, errors.New("Database error")
	}
	if !cashbox.Active {
		return nil, errors.New("Cashbox is inactive")
	}
	return &cashbox, nil
}
