package services

import (
	"bytes"
	"strings"
	"testing"
)

func TestCashflowCSV(t *testing.T) {
	flows := []MonthlyFlow{
		{Year: 2024, Month: 1, Label: "Ene", Income: 300, Expense: 120},
		{Year: 2024, Month: 2, Label: "Feb", Income: 50, Expense: 75},
	}

	data, err := CashflowCSV(flows)
	if err != nil {
		t.Fatalf("CashflowCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "mes,anio,ingresos,egresos,neto" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "Ene,2024,300.00,120.00,180.00" {
		t.Errorf("unexpected row %q", lines[1])
	}
	if lines[2] != "Feb,2024,50.00,75.00,-25.00" {
		t.Errorf("unexpected row %q", lines[2])
	}
}

func TestCashflowCSVEmpty(t *testing.T) {
	data, err := CashflowCSV(nil)
	if err != nil {
		t.Fatalf("CashflowCSV: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "mes,anio,ingresos,egresos,neto" {
		t.Errorf("empty export = %q, want header only", got)
	}
}

func TestCashflowPDF(t *testing.T) {
	flows := []MonthlyFlow{
		{Year: 2024, Month: 1, Label: "Ene", Income: 300, Expense: 120},
	}

	data, err := CashflowPDF("Estetica Sur", "month", flows)
	if err != nil {
		t.Fatalf("CashflowPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}
