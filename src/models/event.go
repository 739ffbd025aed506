package models

import (
	"time"

	"iconic/src/types"
)

type Event struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	CelebrityID uint            `json:"celebrityId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Price       string          `gorm:"type:decimal(10,2)" json:"price"`
	Location    string          `json:"location"`
	Type        types.EventType `gorm:"default:'meet_greet'" json:"type"`
	TotalSlots  uint            `json:"totalSlots"`
	BookedSlots uint            `gorm:"default:0" json:"bookedSlots"`

	Celebrity *Celebrity `gorm:"foreignKey:celebrity_id" json:"celebrity,omitempty"`
	Bookings  []Booking  `gorm:"foreignKey:event_id" json:"bookings,omitempty"`
}
