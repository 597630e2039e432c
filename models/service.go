package models

import (
	"github.com/google/uuid"
)

type Service struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`

	Name     string  `gorm:"not null" json:"name"`
	Duration string  `gorm:"default:'30 min'" json:"duration"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive bool    `gorm:"default:true" json:"isActive"`

	// Employees allowed to perform this service
	Employees []Employee `gorm:"many2many:service_employees" json:"employees,omitempty"`
}
