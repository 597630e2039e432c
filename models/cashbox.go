package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CashboxKindCash = "cash"
	CashboxKindBank = "bank"
)

// Cashbox is a money-holding bucket (cash drawer or bank account). Deleting
// one only flips Active: collected appointments keep their caja_id so
// historical attribution survives.
type Cashbox struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`

	Name   string `gorm:"not null" json:"name"`
	Kind   string `gorm:"type:varchar(10);not null" json:"kind"` // cash | bank
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
