// controllers/cashbox.go
package controllers

import (
	"errors"
	"net/http"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/services"
	"estetica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCashboxInput defines the expected JSON structure for creating a cashbox
type CreateCashboxInput struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=cash bank"`
}

// UpdateCashboxInput defines the expected JSON structure for updating a cashbox
type UpdateCashboxInput struct {
	Name   *string `json:"name"`
	Kind   *string `json:"kind"`
	Active *bool   `json:"active"`
}

// CashboxView is a cashbox with its computed balance
type CashboxView struct {
	models.Cashbox
	Balance float64 `json:"balance"`
}

// AddCashbox creates a new cashbox for the salon
func AddCashbox(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateCashboxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cashbox := models.Cashbox{
		ID:      uuid.New(),
		SalonID: salonUUID,
		Name:    input.Name,
		Kind:    input.Kind,
		Active:  true,
	}

	if err := config.DB.Create(&cashbox).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create cashbox")
		return
	}

	c.JSON(http.StatusCreated, cashbox)
}

// GetCashboxes retrieves the salon's active cashboxes with computed balances.
// Pass ?all=true to include deactivated ones.
func GetCashboxes(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Where("salon_id = ?", salonUUID)
	if c.Query("all") != "true" {
		query = query.Where("active = ?", true)
	}

	var cashboxes []models.Cashbox
	if err := query.Order("created_at").Find(&cashboxes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve cashboxes")
		return
	}

	appointments, payments, err := loadCashflowRecords(salonUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute balances")
		return
	}

	views := make([]CashboxView, 0, len(cashboxes))
	for _, cb := range cashboxes {
		views = append(views, CashboxView{
			Cashbox: cb,
			Balance: services.CashboxTotal(cb.ID, appointments, payments),
		})
	}

	c.JSON(http.StatusOK, views)
}

// GetCashbox retrieves a specific cashbox with its balance
func GetCashbox(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	cashboxUUID, ok := pathUUID(c, "id", "cashbox")
	if !ok {
		return
	}

	var cashbox models.Cashbox
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, cashboxUUID).
		First(&cashbox).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cashbox not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	appointments, payments, err := loadCashflowRecords(salonUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, CashboxView{
		Cashbox: cashbox,
		Balance: services.CashboxTotal(cashbox.ID, appointments, payments),
	})
}

// UpdateCashbox updates an existing cashbox
func UpdateCashbox(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	cashboxUUID, ok := pathUUID(c, "id", "cashbox")
	if !ok {
		return
	}

	var input UpdateCashboxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var cashbox models.Cashbox
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, cashboxUUID).
		First(&cashbox).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cashbox not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		cashbox.Name = *input.Name
	}
	if input.Kind != nil {
		if *input.Kind != models.CashboxKindCash && *input.Kind != models.CashboxKindBank {
			utils.RespondWithError(c, http.StatusBadRequest, "kind: must be cash or bank")
			return
		}
		cashbox.Kind = *input.Kind
	}
	if input.Active != nil {
		cashbox.Active = *input.Active
	}

	if err := config.DB.Save(&cashbox).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cashbox")
		return
	}

	c.JSON(http.StatusOK, cashbox)
}

// DeactivateCashbox marks a cashbox inactive. The row and every appointment
// or payment pointing at it stay untouched, so past reports keep adding up.
func DeactivateCashbox(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	cashboxUUID, ok := pathUUID(c, "id", "cashbox")
	if !ok {
		return
	}

	result := config.DB.Model(&models.Cashbox{}).
		Where("salon_id = ? AND id = ?", salonUUID, cashboxUUID).
		Update("active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate cashbox")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Cashbox not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cashbox deactivated"})
}

// loadCashflowRecords fetches the collected appointments and payments that
// feed cashbox balances and cashflow reports.
func loadCashflowRecords(salonID uuid.UUID) ([]models.Appointment, []models.Payment, error) {
	var appointments []models.Appointment
	if err := config.DB.Where("salon_id = ? AND collected = ?", salonID, true).
		Find(&appointments).Error; err != nil {
		return nil, nil, err
	}

	var payments []models.Payment
	if err := config.DB.Where("salon_id = ?", salonID).
		Find(&payments).Error; err != nil {
		return nil, nil, err
	}

	return appointments, payments, nil
}
