package models

import (
	"iconic/src/types"
)

type FanCardTier struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	Name        string           `gorm:"uniqueIndex" json:"name"`
	BasePrice   string           `gorm:"type:decimal(10,2)" json:"basePrice"`
	Description string           `json:"description"`
	Features    types.JSONBArray `gorm:"type:jsonb" json:"features,omitempty"`
	Color       string           `gorm:"default:'#FFD700'" json:"color"`
}
