package models

import (
	"time"

	"github.com/google/uuid"
)

// Setting holds branding configuration for a salon. One row per salon; this
// row is the single source of truth, served through the in-process cache in
// the settings controller.
type Setting struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"salonId"`

	BusinessName   string `gorm:"not null" json:"businessName"`
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	PrimaryColor   string `gorm:"type:varchar(7);default:'#000000'" json:"primaryColor"`
	SecondaryColor string `gorm:"type:varchar(7);default:'#ffffff'" json:"secondaryColor"`
	Logo           string `gorm:"type:text" json:"logo"` // data URL

	UpdatedAt time.Time `json:"updatedAt"`
}
