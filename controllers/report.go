// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/services"
	"estetica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CashflowReport merges collected appointments and payments into a transaction
// list plus monthly chart buckets. Query params: window (week|month|year|all,
// default month) and cajaId to restrict to one cashbox.
func CashflowReport(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	window := c.DefaultQuery("window", utils.WindowMonth)
	start := utils.WindowStart(window, time.Now())

	var cajaID *uuid.UUID
	if raw := c.Query("cajaId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid cajaId")
			return
		}
		cajaID = &parsed
	}

	appointments, payments, err := loadCashflowRecords(salonUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load records")
		return
	}

	entries := services.MergeCashflow(appointments, payments, start, cajaID)
	flows := services.MonthlyCashflow(entries)

	var income, expense float64
	for _, f := range flows {
		income += f.Income
		expense += f.Expense
	}

	c.JSON(http.StatusOK, gin.H{
		"window":       window,
		"entries":      entries,
		"monthly":      flows,
		"totalIncome":  income,
		"totalExpense": expense,
		"net":          income - expense,
	})
}

// ExportCashflow streams the monthly cashflow as a PDF or CSV attachment
// (?format=pdf|csv, default pdf). Accepts the same window and cajaId params
// as the report.
func ExportCashflow(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	window := c.DefaultQuery("window", utils.WindowMonth)
	start := utils.WindowStart(window, time.Now())

	var cajaID *uuid.UUID
	if raw := c.Query("cajaId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid cajaId")
			return
		}
		cajaID = &parsed
	}

	appointments, payments, err := loadCashflowRecords(salonUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load records")
		return
	}

	flows := services.MonthlyCashflow(services.MergeCashflow(appointments, payments, start, cajaID))

	var setting models.Setting
	businessName := "Salon"
	if err := config.DB.Where("salon_id = ?", salonUUID).First(&setting).Error; err == nil &&
		setting.BusinessName != "" {
		businessName = setting.BusinessName
	}

	stamp := time.Now().Format("2006-01-02")

	switch c.DefaultQuery("format", "pdf") {
	case "pdf":
		data, err := services.CashflowPDF(businessName, window, flows)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render PDF")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cashflow-%s.pdf", stamp))
		c.Data(http.StatusOK, "application/pdf", data)
	case "csv":
		data, err := services.CashflowCSV(flows)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render CSV")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cashflow-%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", data)
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid format, expected pdf or csv")
	}
}
