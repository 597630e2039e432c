package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	gorm.Model `json:"-"`
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
