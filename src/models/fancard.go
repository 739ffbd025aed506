package models

import (
	"time"

	"iconic/src/types"
)

type FanCard struct {
	ID           uint                `gorm:"primarykey" json:"id"`
	CelebrityID  uint                `json:"celebrityId"`
	CardCode     string              `gorm:"uniqueIndex" json:"cardCode"`
	Email        string              `json:"email"`
	FanName      string              `json:"fanName"`
	Tier         types.CardTier      `json:"tier"`
	CardType     string              `gorm:"default:'digital'" json:"cardType"`
	Status       types.FanCardStatus `gorm:"default:'active'" json:"status"`
	PurchaseDate time.Time           `gorm:"autoCreateTime" json:"purchaseDate"`

	Celebrity *Celebrity `gorm:"foreignKey:celebrity_id" json:"celebrity,omitempty"`
	Bookings  []Booking  `gorm:"foreignKey:fan_card_id" json:"bookings,omitempty"`
}
