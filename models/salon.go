package models

import (
	"github.com/google/uuid"
)

type Salon struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `json:"address"`

	Users        []User        `gorm:"foreignKey:SalonID" json:"-"`
	Clients      []Client      `gorm:"foreignKey:SalonID" json:"-"`
	Employees    []Employee    `gorm:"foreignKey:SalonID" json:"-"`
	Services     []Service     `gorm:"foreignKey:SalonID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:SalonID" json:"-"`
	Cashboxes    []Cashbox     `gorm:"foreignKey:SalonID" json:"-"`
	Payments     []Payment     `gorm:"foreignKey:SalonID" json:"-"`
}
