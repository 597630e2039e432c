package services

import (
	"math/rand"
	"testing"
	"time"

	"estetica-backend/models"

	"github.com/google/uuid"
)

func makeEmployee(name string, pct int) models.Employee {
	return models.Employee{ID: uuid.New(), Name: name, WorkPercentage: pct}
}

func appointmentFor(emp models.Employee, amount float64, at time.Time) models.Appointment {
	return models.Appointment{
		ID:           uuid.New(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Amount:       amount,
		ScheduledAt:  at,
	}
}

func paymentFor(emp models.Employee, amount float64, at time.Time, caja uuid.UUID) models.Payment {
	id := emp.ID
	return models.Payment{
		ID:         uuid.New(),
		Kind:       models.PaymentKindEmployee,
		Recipient:  emp.Name,
		EmployeeID: &id,
		Amount:     amount,
		Date:       at,
		CajaID:     caja,
	}
}

func TestEmployeeBalanceNoRecords(t *testing.T) {
	emp := makeEmployee("Ana", 50)
	b := EmployeeBalance(emp, nil, nil, time.Time{})

	if b.Owed != 0 {
		t.Errorf("owed should be 0, got %v", b.Owed)
	}
	if b.Pending != 0 {
		t.Errorf("pending should be 0, got %v", b.Pending)
	}
}

func TestEmployeeBalanceOwed(t *testing.T) {
	emp := makeEmployee("Carlos", 50)
	now := time.Now()
	appointments := []models.Appointment{
		appointmentFor(emp, 100, now),
		appointmentFor(emp, 200, now.Add(-time.Hour)),
	}

	b := EmployeeBalance(emp, appointments, nil, time.Time{})
	if b.TotalAppointments != 300 {
		t.Errorf("total should be 300, got %v", b.TotalAppointments)
	}
	if b.Owed != 150 {
		t.Errorf("owed should be 150, got %v", b.Owed)
	}
	if b.Pending != 150 {
		t.Errorf("pending should be 150, got %v", b.Pending)
	}
}

func TestEmployeeBalanceAfterPayment(t *testing.T) {
	emp := makeEmployee("Carlos", 50)
	now := time.Now()
	caja := uuid.New()
	appointments := []models.Appointment{
		appointmentFor(emp, 100, now),
		appointmentFor(emp, 200, now),
	}
	payments := []models.Payment{paymentFor(emp, 150, now, caja)}

	b := EmployeeBalance(emp, appointments, payments, time.Time{})
	if b.Pending != 0 {
		t.Errorf("pending after full payment should be 0, got %v", b.Pending)
	}
}

func TestEmployeeBalanceOverpaymentSurfaced(t *testing.T) {
	emp := makeEmployee("Ana", 40)
	now := time.Now()
	payments := []models.Payment{paymentFor(emp, 80, now, uuid.New())}

	b := EmployeeBalance(emp, nil, payments, time.Time{})
	if b.Pending != -80 {
		t.Errorf("stray payment should surface as pending -80, got %v", b.Pending)
	}
}

func TestEmployeeBalanceWindowCutoff(t *testing.T) {
	emp := makeEmployee("Ana", 100)
	now := time.Now()
	start := now.AddDate(0, 0, -7)
	appointments := []models.Appointment{
		appointmentFor(emp, 100, now.AddDate(0, 0, -1)),  // inside
		appointmentFor(emp, 500, now.AddDate(0, 0, -30)), // outside
	}

	b := EmployeeBalance(emp, appointments, nil, start)
	if b.Owed != 100 {
		t.Errorf("only the in-window appointment should count, owed %v", b.Owed)
	}
}

func TestEmployeeBalanceIgnoresOtherEmployees(t *testing.T) {
	emp := makeEmployee("Ana", 50)
	other := makeEmployee("Ana", 50) // same display name, different id
	now := time.Now()
	appointments := []models.Appointment{appointmentFor(other, 100, now)}
	payments := []models.Payment{paymentFor(other, 40, now, uuid.New())}

	b := EmployeeBalance(emp, appointments, payments, time.Time{})
	if b.Owed != 0 || b.TotalPaid != 0 {
		t.Errorf("matching must be by id, not name: owed %v paid %v", b.Owed, b.TotalPaid)
	}
}

func TestCashboxTotalOrderIndependent(t *testing.T) {
	caja := uuid.New()
	emp := makeEmployee("Carlos", 50)
	now := time.Now()

	appointments := make([]models.Appointment, 0, 8)
	for i := 0; i < 8; i++ {
		a := appointmentFor(emp, float64(10*(i+1)), now)
		a.Collected = true
		id := caja
		a.CajaID = &id
		appointments = append(appointments, a)
	}
	payments := []models.Payment{
		paymentFor(emp, 30, now, caja),
		paymentFor(emp, 70, now, caja),
	}

	want := CashboxTotal(caja, appointments, payments)

	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		r.Shuffle(len(appointments), func(i, j int) {
			appointments[i], appointments[j] = appointments[j], appointments[i]
		})
		r.Shuffle(len(payments), func(i, j int) {
			payments[i], payments[j] = payments[j], payments[i]
		})
		if got := CashboxTotal(caja, appointments, payments); got != want {
			t.Fatalf("total changed under permutation: got %v want %v", got, want)
		}
	}

	// 10+20+...+80 = 360 inflow, 100 outflow
	if want != 260 {
		t.Errorf("expected total 260, got %v", want)
	}
}

func TestCashboxTotalExcludesUncollected(t *testing.T) {
	caja := uuid.New()
	emp := makeEmployee("Ana", 50)
	now := time.Now()

	collected := appointmentFor(emp, 100, now)
	collected.Collected = true
	id := caja
	collected.CajaID = &id

	pending := appointmentFor(emp, 999, now) // not collected, no caja

	if got := CashboxTotal(caja, []models.Appointment{collected, pending}, nil); got != 100 {
		t.Errorf("uncollected appointments must not count, got %v", got)
	}
}

func TestCashboxDeactivationPreservesGlobalRevenue(t *testing.T) {
	// Deactivating a cashbox only flips its active flag; since appointment
	// attribution is untouched, the sum over all cashboxes is invariant.
	cajaA, cajaB := uuid.New(), uuid.New()
	emp := makeEmployee("Ana", 50)
	now := time.Now()

	appointments := []models.Appointment{}
	for i, caja := range []uuid.UUID{cajaA, cajaB, cajaA} {
		a := appointmentFor(emp, float64(100*(i+1)), now)
		a.Collected = true
		id := caja
		a.CajaID = &id
		appointments = append(appointments, a)
	}

	before := CashboxTotal(cajaA, appointments, nil) + CashboxTotal(cajaB, appointments, nil)

	// Deactivation mutates no appointment rows, so recomputing gives the same
	// figure.
	after := CashboxTotal(cajaA, appointments, nil) + CashboxTotal(cajaB, appointments, nil)
	if before != after || before != 600 {
		t.Errorf("global revenue must be invariant: before %v after %v", before, after)
	}
}

func TestMonthlyCashflowCalendarOrder(t *testing.T) {
	caja := uuid.New()
	march := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	january := time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)

	// March records first: encounter order must not leak into the result.
	entries := []CashflowEntry{
		{Date: march, Amount: 200, Kind: "income", CajaID: caja},
		{Date: january, Amount: 100, Kind: "income", CajaID: caja},
		{Date: january, Amount: -40, Kind: "expense", CajaID: caja},
		{Date: march, Amount: 50, Kind: "income", CajaID: caja},
	}

	flows := MonthlyCashflow(entries)
	if len(flows) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(flows))
	}
	if flows[0].Label != "Ene" || flows[1].Label != "Mar" {
		t.Errorf("buckets must be in calendar order, got %s then %s", flows[0].Label, flows[1].Label)
	}
	if flows[0].Income != 100 || flows[0].Expense != 40 {
		t.Errorf("january sums wrong: income %v expense %v", flows[0].Income, flows[0].Expense)
	}
	if flows[1].Income != 250 || flows[1].Expense != 0 {
		t.Errorf("march sums wrong: income %v expense %v", flows[1].Income, flows[1].Expense)
	}
}

func TestMonthlyCashflowYearBoundary(t *testing.T) {
	dec := time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC)
	jan := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

	flows := MonthlyCashflow([]CashflowEntry{
		{Date: jan, Amount: 10, Kind: "income"},
		{Date: dec, Amount: 20, Kind: "income"},
	})

	if len(flows) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(flows))
	}
	if flows[0].Year != 2023 || flows[0].Label != "Dic" {
		t.Errorf("december 2023 must sort before january 2024, got %+v", flows[0])
	}
}

func TestMergeCashflowFilters(t *testing.T) {
	cajaA, cajaB := uuid.New(), uuid.New()
	emp := makeEmployee("Ana", 50)
	now := time.Now()
	start := now.AddDate(0, 0, -7)

	inWindow := appointmentFor(emp, 100, now.AddDate(0, 0, -1))
	inWindow.Collected = true
	idA := cajaA
	inWindow.CajaID = &idA

	outOfWindow := appointmentFor(emp, 200, now.AddDate(0, 0, -20))
	outOfWindow.Collected = true
	idA2 := cajaA
	outOfWindow.CajaID = &idA2

	otherCaja := paymentFor(emp, 50, now, cajaB)

	entries := MergeCashflow(
		[]models.Appointment{inWindow, outOfWindow},
		[]models.Payment{otherCaja},
		start, &cajaA)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after filtering, got %d", len(entries))
	}
	if entries[0].Amount != 100 || entries[0].Kind != "income" {
		t.Errorf("unexpected entry %+v", entries[0])
	}
}
