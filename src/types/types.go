package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Test        Environment = "test"
)

type JSONB map[string]any
type JSONBArray []any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

func (a JSONBArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONBArray) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type EventType string

const (
	EVENT_CONCERT    EventType = "concert"
	EVENT_MEET_GREET EventType = "meet_greet"
	EVENT_VISITATION EventType = "visitation"
)

type FanCardStatus string

const (
	FANCARD_ACTIVE  FanCardStatus = "active"
	FANCARD_PENDING FanCardStatus = "pending"
)

type BookingStatus string

const (
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
)

type CardTier string

const (
	TIER_GOLD     CardTier = "Gold"
	TIER_PLATINUM CardTier = "Platinum"
	TIER_BLACK    CardTier = "Black"
)

type CreateCelebrityRequestBody struct {
	Name            string         `json:"name" binding:"required"`
	Category        string         `json:"category,omitempty"`
	Bio             string         `json:"bio" binding:"required"`
	FullBio         string         `json:"fullBio,omitempty"`
	CareerStart     int            `json:"careerStart,omitempty"`
	Accomplishments []string       `json:"accomplishments,omitempty"`
	SocialMedia     map[string]any `json:"socialMedia,omitempty"`
	Gallery         []string       `json:"gallery,omitempty"`
	HeroImage       string         `json:"heroImage" binding:"required"`
	AvatarImage     string         `json:"avatarImage" binding:"required"`
	AccentColor     string         `json:"accentColor,omitempty" binding:"omitempty,hexcolor"`
	IsFeatured      bool           `json:"isFeatured,omitempty"`
}

type CreateEventRequestBody struct {
	CelebrityID uint      `json:"celebrityId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        string    `json:"date" binding:"required,bookabledate"`
	Price       string    `json:"price" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Type        EventType `json:"type" binding:"required,oneof=concert meet_greet visitation"`
	TotalSlots  uint      `json:"totalSlots" binding:"required,min=1"`
}

type PurchaseFanCardRequestBody struct {
	CelebrityID uint     `json:"celebrityId" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	FanName     string   `json:"fanName,omitempty"`
	Tier        CardTier `json:"tier" binding:"required,oneof=Gold Platinum Black"`
	CardType    string   `json:"cardType,omitempty" binding:"omitempty,oneof=digital physical"`
}

type FanLoginRequestBody struct {
	CardCode string `json:"cardCode" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type ManagerLoginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateBookingRequestBody struct {
	FanCardID uint `json:"fanCardId" binding:"required"`
	EventID   uint `json:"eventId" binding:"required"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type SlugRequestParams struct {
	Slug string `uri:"slug" binding:"required"`
}

type Claims struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	CardCode string `json:"cardCode,omitempty"`
	jwt.RegisteredClaims
}
