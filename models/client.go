package models

import (
	"time"

	"github.com/google/uuid"
)

// Client rows are hard-deleted; the phone uniqueness constraint is scoped to
// the salon, so two salons can share a client's number.
type Client struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_salon_client_phone,priority:1" json:"salonId"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Name  string `gorm:"not null" json:"name"`
	Phone string `gorm:"not null;uniqueIndex:idx_salon_client_phone,priority:2" json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`

	Appointments []Appointment `gorm:"foreignKey:ClientID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
