package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`

	Name      string  `gorm:"not null" json:"name"`
	Quantity  int     `gorm:"not null;default:0" json:"quantity"`
	Max       int     `gorm:"not null" json:"max"`
	Cost      float64 `gorm:"type:decimal(10,2);default:0.0" json:"cost"`
	SalePrice float64 `gorm:"type:decimal(10,2);default:0.0" json:"salePrice"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
