package models

import (
	"time"

	"iconic/src/types"
)

type Booking struct {
	ID        uint                `gorm:"primarykey" json:"id"`
	FanCardID uint                `json:"fanCardId"`
	EventID   uint                `json:"eventId"`
	Status    types.BookingStatus `gorm:"default:'confirmed'" json:"status"`
	CreatedAt time.Time           `gorm:"autoCreateTime" json:"createdAt"`

	FanCard *FanCard `gorm:"foreignKey:fan_card_id" json:"fanCard,omitempty"`
	Event   *Event   `gorm:"foreignKey:event_id" json:"event,omitempty"`
}
