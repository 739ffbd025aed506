package models

import (
	"iconic/src/types"
)

type Celebrity struct {
	ID              uint             `gorm:"primarykey" json:"id"`
	Name            string           `json:"name"`
	Slug            string           `gorm:"uniqueIndex" json:"slug"`
	Category        string           `gorm:"default:'musician'" json:"category"`
	Bio             string           `json:"bio"`
	FullBio         *string          `json:"fullBio,omitempty"`
	CareerStart     *int             `json:"careerStart,omitempty"`
	Accomplishments types.JSONBArray `gorm:"type:jsonb" json:"accomplishments,omitempty"`
	SocialMedia     types.JSONB      `gorm:"type:jsonb" json:"socialMedia,omitempty"`
	Gallery         types.JSONBArray `gorm:"type:jsonb" json:"gallery,omitempty"`
	HeroImage       string           `json:"heroImage"`
	AvatarImage     string           `json:"avatarImage"`
	AccentColor     string           `gorm:"default:'#3b82f6'" json:"accentColor"`
	IsFeatured      bool             `gorm:"default:false" json:"isFeatured"`

	Events   []Event   `gorm:"foreignKey:celebrity_id" json:"events,omitempty"`
	FanCards []FanCard `gorm:"foreignKey:celebrity_id" json:"fanCards,omitempty"`
}
