package utils

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	mrand "math/rand"
	"os"
	"strings"
	"time"

	"iconic/src/config"
	"iconic/src/db"
	"iconic/src/lib"
	"iconic/src/models"
	"iconic/src/types"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var ErrCelebrityNotFound = errors.New("Celebrity not found")

var jwtKey = []byte(os.Getenv("JWT_SECRET_KEY"))

func GenerateJWT(username string, id uint, role string) (string, error) {
	now := time.Now()
	claims := types.Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", id),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(jwtKey)
}

func GenerateFanJWT(card *models.FanCard) (string, error) {
	now := time.Now()
	claims := types.Claims{
		Username: card.Email,
		Role:     "fan",
		CardCode: card.CardCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", card.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(jwtKey)
}

// GenerateCardCode derives the card prefix from the first word of the
// celebrity's name plus a random 4-digit suffix, e.g. TAYLOR-4821.
func GenerateCardCode(celebrityName string) string {
	fields := strings.Fields(celebrityName)
	prefix := "FAN"
	if len(fields) > 0 {
		prefix = strings.ToUpper(fields[0])
	}
	return fmt.Sprintf("%s-%d", prefix, 1000+mrand.Intn(9000))
}

func CreateNewCelebrity(params *types.CreateCelebrityRequestBody) (*models.Celebrity, error) {
	conn := db.GetDb()
	celebrity := models.Celebrity{
		Name:        params.Name,
		Slug:        slug.Make(params.Name),
		Category:    params.Category,
		Bio:         params.Bio,
		HeroImage:   params.HeroImage,
		AvatarImage: params.AvatarImage,
		AccentColor: params.AccentColor,
		IsFeatured:  params.IsFeatured,
	}
	if params.FullBio != "" {
		celebrity.FullBio = &params.FullBio
	}
	if params.CareerStart != 0 {
		celebrity.CareerStart = &params.CareerStart
	}
	if len(params.Accomplishments) > 0 {
		celebrity.Accomplishments = toJSONBArray(params.Accomplishments)
	}
	if len(params.Gallery) > 0 {
		celebrity.Gallery = toJSONBArray(params.Gallery)
	}
	if len(params.SocialMedia) > 0 {
		celebrity.SocialMedia = types.JSONB(params.SocialMedia)
	}
	err := conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&celebrity).Error; err != nil {
			log.Printf("Error creating Celebrity: %s\n", err.Error())
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	go InvalidateCelebrityCache(context.Background())
	return &celebrity, nil
}

func CreateNewEvent(params *types.CreateEventRequestBody) (*models.Event, error) {
	conn := db.GetDb()
	date, err := time.Parse(config.TIME_PARSE_FORMAT, params.Date)
	if err != nil {
		return nil, err
	}
	event := models.Event{
		CelebrityID: params.CelebrityID,
		Title:       params.Title,
		Description: params.Description,
		Date:        date,
		Price:       params.Price,
		Location:    params.Location,
		Type:        params.Type,
		TotalSlots:  params.TotalSlots,
	}
	err = conn.Transaction(func(tx *gorm.DB) error {
		var celebrity models.Celebrity
		if err := tx.
			Where(&models.Celebrity{ID: params.CelebrityID}).
			First(&celebrity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCelebrityNotFound
			}
			return err
		}
		if err := tx.Create(&event).Error; err != nil {
			log.Printf("Error creating Event: %s\n", err.Error())
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func CreateFanCard(params *types.PurchaseFanCardRequestBody) (*models.FanCard, error) {
	conn := db.GetDb()
	var card models.FanCard
	err := conn.Transaction(func(tx *gorm.DB) error {
		var celebrity models.Celebrity
		if err := tx.
			Where(&models.Celebrity{ID: params.CelebrityID}).
			First(&celebrity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCelebrityNotFound
			}
			return err
		}
		cardType := params.CardType
		if cardType == "" {
			cardType = "digital"
		}
		card = models.FanCard{
			CelebrityID: celebrity.ID,
			CardCode:    GenerateCardCode(celebrity.Name),
			Email:       params.Email,
			FanName:     params.FanName,
			Tier:        params.Tier,
			CardType:    cardType,
			Status:      types.FANCARD_ACTIVE,
		}
		if err := tx.Create(&card).Error; err != nil {
			log.Printf("Error creating FanCard: %s\n", err.Error())
			return err
		}
		card.Celebrity = &celebrity
		return nil
	})
	if err != nil {
		return nil, err
	}
	go SendPurchaseConfirmation(&card)
	return &card, nil
}

func SendPurchaseConfirmation(card *models.FanCard) {
	celebrityName := ""
	if card.Celebrity != nil {
		celebrityName = card.Celebrity.Name
	}
	body := fmt.Sprintf(
		"<p>Welcome to the inner circle%s.</p><p>Your <b>%s</b> fan card code is <b>%s</b>. Keep it safe: the code together with this email address is how you sign in and book events.</p>",
		nameGreeting(card.FanName), card.Tier, card.CardCode,
	)
	if celebrityName != "" {
		body = fmt.Sprintf("<p>Your membership for <b>%s</b> is active.</p>%s", celebrityName, body)
	}
	err := lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Iconic Memberships",
		To:       []string{card.Email},
		Subject:  fmt.Sprintf("Your %s fan card", card.Tier),
		Body:     body,
		Html:     true,
	})
	if err != nil {
		log.Printf("Could not send purchase confirmation for card [%s]: %s\n", card.CardCode, err.Error())
	}
}

func nameGreeting(fanName string) string {
	if fanName == "" {
		return ""
	}
	return ", " + fanName
}

func GetFanCardBookings(fanCardID uint) ([]models.Booking, error) {
	conn := db.GetDb()
	var bookings []models.Booking
	if err := conn.
		Where(&models.Booking{FanCardID: fanCardID}).
		Preload("Event").
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

const CelebrityCacheKey = "celebrities:catalog"
const celebrityCacheTTL = 10 * time.Minute

// CachedCelebrities serves the catalog from redis when warm and falls back
// to the database, rewarming the cache on the way out.
func CachedCelebrities(ctx context.Context) ([]models.Celebrity, error) {
	rd := lib.GetRedisClient()
	if rd != nil {
		val, err := rd.Get(ctx, CelebrityCacheKey).Result()
		if err == nil {
			var cached []models.Celebrity
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}
	conn := db.GetDb()
	var celebrities []models.Celebrity
	if err := conn.
		Model(&models.Celebrity{}).
		Order("name").
		Find(&celebrities).Error; err != nil {
		return nil, err
	}
	if rd != nil {
		if raw, err := json.Marshal(&celebrities); err == nil {
			if err := rd.Set(ctx, CelebrityCacheKey, raw, celebrityCacheTTL).Err(); err != nil {
				log.Printf("[redis] Error updating celebrity cache: %s\n", err.Error())
			}
		}
	}
	return celebrities, nil
}

func InvalidateCelebrityCache(ctx context.Context) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	if err := rd.Del(ctx, CelebrityCacheKey).Err(); err != nil {
		log.Printf("[redis] Error invalidating celebrity cache: %s\n", err.Error())
	}
}

func RefreshCelebrityCache() {
	ctx := context.Background()
	InvalidateCelebrityCache(ctx)
	if _, err := CachedCelebrities(ctx); err != nil {
		log.Printf("Error rewarming celebrity cache: %s\n", err.Error())
	}
}

func EncryptMessage(key []byte, message string) (string, error) {
	plaintext := []byte(message)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	cipherText := gcm.Seal(nonce, nonce, plaintext, nil)
	encodedString := hex.EncodeToString(cipherText)

	return encodedString, nil
}

func DecryptMessage(key []byte, message string) (*string, error) {
	cipherText, err := hex.DecodeString(message)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	decryptedData, err := gcm.Open(nil, cipherText[:gcm.NonceSize()], cipherText[gcm.NonceSize():], nil)
	if err != nil {
		return nil, err
	}
	decodedString := string(decryptedData)

	return &decodedString, nil
}

func toJSONBArray(values []string) types.JSONBArray {
	arr := make(types.JSONBArray, 0, len(values))
	for _, v := range values {
		arr = append(arr, v)
	}
	return arr
}
