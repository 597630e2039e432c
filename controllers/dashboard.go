// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/services"
	"estetica-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboard assembles the landing-page summary: today's agenda, client
// count, current-month money flow, low-stock alerts and who is still owed
// commission.
func GetDashboard(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	now := time.Now()
	today := utils.BeginningOfDay(now)

	var todayAppointments []models.Appointment
	if err := config.DB.Where("salon_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
		salonUUID, today, today.AddDate(0, 0, 1)).
		Order("scheduled_at").Find(&todayAppointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load appointments")
		return
	}

	var clientCount int64
	if err := config.DB.Model(&models.Client{}).
		Where("salon_id = ?", salonUUID).Count(&clientCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count clients")
		return
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	appointments, payments, err := loadCashflowRecords(salonUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load records")
		return
	}

	var monthIncome, monthExpense float64
	for _, e := range services.MergeCashflow(appointments, payments, monthStart, nil) {
		if e.Kind == "expense" {
			monthExpense += -e.Amount
		} else {
			monthIncome += e.Amount
		}
	}

	// Quantity below 20% of max counts as running low
	var lowStock []models.Product
	if err := config.DB.Where("salon_id = ? AND quantity * 5 < max", salonUUID).
		Order("name").Find(&lowStock).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load products")
		return
	}

	var employees []models.Employee
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	windowStart := utils.WindowStart(utils.WindowMonth, now)
	balAppointments, balPayments, err := loadReconciliationRecords(salonUUID, windowStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load records")
		return
	}

	pending := make([]services.Balance, 0, len(employees))
	for _, employee := range employees {
		balance := services.EmployeeBalance(employee, balAppointments, balPayments, windowStart)
		if balance.Pending != 0 {
			pending = append(pending, balance)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"todayAppointments": todayAppointments,
		"clientCount":       clientCount,
		"monthIncome":       monthIncome,
		"monthExpense":      monthExpense,
		"lowStock":          lowStock,
		"pendingBalances":   pending,
	})
}
