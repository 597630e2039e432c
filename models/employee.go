package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee rows are hard-deleted. Appointment and payment history keeps its
// employee_id plus a cached name, so balances stay reconstructible after the
// row is gone.
type Employee struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`

	Name  string `gorm:"not null" json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Weekly schedule, "HH:MM" 24h
	ScheduleStart string `gorm:"type:varchar(5);default:'09:00'" json:"scheduleStart"`
	ScheduleEnd   string `gorm:"type:varchar(5);default:'18:00'" json:"scheduleEnd"`

	// Weekday names with no shifts, e.g. ["sunday","monday"]
	DaysOff StringList `gorm:"type:jsonb;default:'[]'" json:"daysOff"`

	// Share of each appointment's price owed to the employee, 0-100
	WorkPercentage int `gorm:"not null;default:50" json:"workPercentage"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Appointments []Appointment `gorm:"foreignKey:EmployeeID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
