package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentKindEmployee = "employee"
	PaymentKindProduct  = "product"
	PaymentKindService  = "service"
)

// Payment is an outgoing payment drawn from a cashbox. For employee
// commission payments EmployeeID is set and Recipient caches the name.
type Payment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`

	Kind       string     `gorm:"type:varchar(10);not null" json:"kind"` // employee | product | service
	Recipient  string     `gorm:"not null" json:"recipient"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index" json:"employeeId"`

	Date   time.Time `gorm:"index;not null" json:"date"`
	Amount float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	CajaID uuid.UUID `gorm:"type:uuid;index;not null;column:caja_id" json:"cajaId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
