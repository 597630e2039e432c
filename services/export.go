// services/export.go
package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

// CashflowPDF renders the monthly cashflow summary as a PDF document.
func CashflowPDF(businessName string, window string, flows []MonthlyFlow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, businessName)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Flujo de caja (%s)", window))
	pdf.Ln(12)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(40, 8, "Mes", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Ingresos", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, "Egresos", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, "Neto", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	var totalIncome, totalExpense float64
	for _, f := range flows {
		pdf.CellFormat(40, 8, fmt.Sprintf("%s %d", f.Label, f.Year), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("$%.2f", f.Income), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("$%.2f", f.Expense), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("$%.2f", f.Income-f.Expense), "1", 1, "R", false, 0, "")
		totalIncome += f.Income
		totalExpense += f.Expense
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("$%.2f", totalIncome), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("$%.2f", totalExpense), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("$%.2f", totalIncome-totalExpense), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CashflowCSV renders the monthly cashflow summary as CSV.
func CashflowCSV(flows []MonthlyFlow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"mes", "anio", "ingresos", "egresos", "neto"}); err != nil {
		return nil, err
	}
	for _, f := range flows {
		record := []string{
			f.Label,
			fmt.Sprintf("%d", f.Year),
			fmt.Sprintf("%.2f", f.Income),
			fmt.Sprintf("%.2f", f.Expense),
			fmt.Sprintf("%.2f", f.Income-f.Expense),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
