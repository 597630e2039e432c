package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment references client, employee and service by id. The *Name
// columns are a denormalized display cache filled at write time; the ids are
// authoritative, so renames never detach history.
type Appointment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`

	ClientID   uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index;not null" json:"employeeId"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	ClientName   string `json:"clientName"`
	EmployeeName string `json:"employeeName"`
	ServiceName  string `json:"serviceName"`

	ScheduledAt time.Time `gorm:"index;not null" json:"scheduledAt"`

	// Copied from the service's price at creation time
	Amount float64 `gorm:"type:decimal(10,2);not null" json:"amount"`

	Collected bool       `gorm:"default:false" json:"collected"`
	CajaID    *uuid.UUID `gorm:"type:uuid;index;column:caja_id" json:"cajaId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
