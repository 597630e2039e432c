// services/reconcile.go
package services

import (
	"sort"
	"time"

	"estetica-backend/models"

	"github.com/google/uuid"
)

// Balance is the commission reconciliation for one employee within a time
// window. Pending may be negative: an overpayment is surfaced, never clamped.
type Balance struct {
	EmployeeID        uuid.UUID `json:"employeeId"`
	EmployeeName      string    `json:"employeeName"`
	WorkPercentage    int       `json:"workPercentage"`
	TotalAppointments float64   `json:"totalAppointments"`
	Owed              float64   `json:"owed"`
	TotalPaid         float64   `json:"totalPaid"`
	Pending           float64   `json:"pending"`
}

// EmployeeBalance computes the commission owed to emp for appointments dated
// at or after start, minus employee payments made to them in the same window.
// Matching is by employee id. Pure function of its inputs; recomputed fresh on
// every call.
func EmployeeBalance(emp models.Employee, appointments []models.Appointment, payments []models.Payment, start time.Time) Balance {
	var totalAppointments float64
	for _, a := range appointments {
		if a.EmployeeID != emp.ID || a.ScheduledAt.Before(start) {
			continue
		}
		totalAppointments += a.Amount
	}

	owed := totalAppointments * float64(emp.WorkPercentage) / 100

	var totalPaid float64
	for _, p := range payments {
		if p.Kind != models.PaymentKindEmployee || p.EmployeeID == nil || *p.EmployeeID != emp.ID {
			continue
		}
		if p.Date.Before(start) {
			continue
		}
		totalPaid += p.Amount
	}

	return Balance{
		EmployeeID:        emp.ID,
		EmployeeName:      emp.Name,
		WorkPercentage:    emp.WorkPercentage,
		TotalAppointments: totalAppointments,
		Owed:              owed,
		TotalPaid:         totalPaid,
		Pending:           owed - totalPaid,
	}
}

// CashboxTotal sums collected appointment inflows minus payment outflows
// attributed to the cashbox. Order-independent: permuting the inputs cannot
// change the result.
func CashboxTotal(cashboxID uuid.UUID, appointments []models.Appointment, payments []models.Payment) float64 {
	var inflow float64
	for _, a := range appointments {
		if a.Collected && a.CajaID != nil && *a.CajaID == cashboxID {
			inflow += a.Amount
		}
	}

	var outflow float64
	for _, p := range payments {
		if p.CajaID == cashboxID {
			outflow += p.Amount
		}
	}

	return inflow - outflow
}

// CashflowEntry is one merged transaction: a collected appointment (income)
// or an outgoing payment (expense, negative amount).
type CashflowEntry struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Kind        string    `json:"kind"` // income | expense
	CajaID      uuid.UUID `json:"cajaId"`
}

// MergeCashflow merges collected appointments and payments into one
// transaction list, filtered by window start and optional cashbox, newest
// first.
func MergeCashflow(appointments []models.Appointment, payments []models.Payment, start time.Time, cajaID *uuid.UUID) []CashflowEntry {
	entries := make([]CashflowEntry, 0, len(appointments)+len(payments))

	for _, a := range appointments {
		if !a.Collected || a.CajaID == nil || a.ScheduledAt.Before(start) {
			continue
		}
		if cajaID != nil && *a.CajaID != *cajaID {
			continue
		}
		desc := a.ServiceName
		if a.ClientName != "" {
			desc += " - " + a.ClientName
		}
		entries = append(entries, CashflowEntry{
			Date:        a.ScheduledAt,
			Description: desc,
			Amount:      a.Amount,
			Kind:        "income",
			CajaID:      *a.CajaID,
		})
	}

	for _, p := range payments {
		if p.Date.Before(start) {
			continue
		}
		if cajaID != nil && p.CajaID != *cajaID {
			continue
		}
		entries = append(entries, CashflowEntry{
			Date:        p.Date,
			Description: "Pago " + p.Kind + " - " + p.Recipient,
			Amount:      -p.Amount,
			Kind:        "expense",
			CajaID:      p.CajaID,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries
}

// MonthlyFlow is one chart bucket: income and expense summed per calendar
// month.
type MonthlyFlow struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Short month names as the chart renders them
var monthLabels = [13]string{"", "Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// MonthlyCashflow groups entries per calendar month, summing income and
// expense separately. Buckets come back in calendar order regardless of the
// order the entries were supplied in.
func MonthlyCashflow(entries []CashflowEntry) []MonthlyFlow {
	type key struct {
		year  int
		month time.Month
	}

	buckets := make(map[key]*MonthlyFlow)
	for _, e := range entries {
		k := key{e.Date.Year(), e.Date.Month()}
		b, ok := buckets[k]
		if !ok {
			b = &MonthlyFlow{
				Year:  k.year,
				Month: int(k.month),
				Label: monthLabels[k.month],
			}
			buckets[k] = b
		}
		if e.Kind == "expense" {
			b.Expense += -e.Amount
		} else {
			b.Income += e.Amount
		}
	}

	flows := make([]MonthlyFlow, 0, len(buckets))
	for _, b := range buckets {
		flows = append(flows, *b)
	}

	sort.Slice(flows, func(i, j int) bool {
		if flows[i].Year != flows[j].Year {
			return flows[i].Year < flows[j].Year
		}
		return flows[i].Month < flows[j].Month
	})

	return flows
}
