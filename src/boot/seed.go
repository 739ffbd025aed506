package boot

import (
	"log"
	"os"
	"time"

	"iconic/src/db"
	"iconic/src/models"
	"iconic/src/types"
	"iconic/src/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the demo catalog and the default manager account on first boot.
// It only runs against an empty celebrities table.
func Seed() error {
	conn := db.GetDb()

	var count int64
	if err := conn.Model(&models.Celebrity{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.Println("Seeding database...")

	return conn.Transaction(func(tx *gorm.DB) error {
		if err := seedManager(tx); err != nil {
			return err
		}
		if err := seedTiers(tx); err != nil {
			return err
		}
		return seedCatalog(tx)
	})
}

func seedManager(tx *gorm.DB) error {
	password := os.Getenv("MANAGER_PASSWORD")
	if password == "" {
		password = "admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	manager := models.User{
		Username: "admin",
		Password: string(hash),
		IsAdmin:  true,
	}
	return tx.Create(&manager).Error
}

func seedTiers(tx *gorm.DB) error {
	tiers := []models.FanCardTier{
		{
			Name:        string(types.TIER_GOLD),
			BasePrice:   "500.00",
			Description: "Entry to the inner circle with access to event bookings.",
			Features:    types.JSONBArray{"Event booking access", "Digital fan card", "Member newsletter"},
			Color:       "#FFD700",
		},
		{
			Name:        string(types.TIER_PLATINUM),
			BasePrice:   "2000.00",
			Description: "Priority treatment and exclusive experiences.",
			Features:    types.JSONBArray{"Everything in Gold", "Priority event access", "Exclusive merchandise drops"},
			Color:       "#E5E4E2",
		},
		{
			Name:        string(types.TIER_BLACK),
			BasePrice:   "5000.00",
			Description: "The ultimate membership for the most devoted fans.",
			Features:    types.JSONBArray{"Everything in Platinum", "Backstage invitations", "Personal concierge"},
			Color:       "#111111",
		},
	}
	return tx.Create(&tiers).Error
}

func seedCatalog(tx *gorm.DB) error {
	fullBio1 := "Taylor Alison Swift is an American singer-songwriter who has achieved unprecedented success in contemporary music. Known for her autobiographical songwriting and artistic reinventions, she has received numerous accolades including 14 Grammy Awards."
	careerStart1 := 2006
	celeb1 := models.Celebrity{
		Name:        "Taylor Swift",
		Slug:        "taylor-swift",
		Category:    "musician",
		Bio:         "Global superstar, singer-songwriter, and 14-time Grammy winner known for her narrative songwriting.",
		FullBio:     &fullBio1,
		CareerStart: &careerStart1,
		Accomplishments: types.JSONBArray{
			"14 Grammy Awards including Album of the Year (4 times)",
			"Eras Tour became highest-grossing tour of all time",
			"Over 200 million records sold worldwide",
		},
		SocialMedia: types.JSONB{
			"instagram": map[string]any{"followers": 280000000},
			"twitter":   map[string]any{"followers": 95000000},
		},
		Gallery: types.JSONBArray{
			"https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1470225620780-dba8ba36b745?auto=format&fit=crop&q=80&w=800",
		},
		HeroImage:   "https://images.unsplash.com/photo-1540575467063-17e6fc485380?auto=format&fit=crop&q=80&w=2000",
		AvatarImage: "https://images.unsplash.com/photo-1493229656367-108529a9792e?auto=format&fit=crop&q=80&w=400",
		AccentColor: "#be123c",
		IsFeatured:  true,
	}
	if err := tx.Create(&celeb1).Error; err != nil {
		return err
	}

	fullBio2 := "Abel Makkonen Tesfaye, known professionally as The Weeknd, is a Canadian singer-songwriter who has revolutionized contemporary R&B with his unique sound and visual aesthetic."
	careerStart2 := 2010
	celeb2 := models.Celebrity{
		Name:        "The Weeknd",
		Slug:        "the-weeknd",
		Category:    "musician",
		Bio:         "Canadian singer, songwriter, and record producer. Known for his sonic versatility and dark lyricism.",
		FullBio:     &fullBio2,
		CareerStart: &careerStart2,
		Accomplishments: types.JSONBArray{
			"4 Grammy Awards",
			"Super Bowl LV Halftime Show performer",
			"Diamond certification for multiple singles",
		},
		SocialMedia: types.JSONB{
			"instagram": map[string]any{"followers": 55000000},
			"twitter":   map[string]any{"followers": 18000000},
		},
		HeroImage:   "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?auto=format&fit=crop&q=80&w=2000",
		AvatarImage: "https://images.unsplash.com/photo-1570295999919-56ceb5ecca61?auto=format&fit=crop&q=80&w=400",
		AccentColor: "#000000",
		IsFeatured:  true,
	}
	if err := tx.Create(&celeb2).Error; err != nil {
		return err
	}

	events := []models.Event{
		{
			CelebrityID: celeb1.ID,
			Title:       "Eras Tour - London",
			Description: "The final leg of the European tour at Wembley Stadium.",
			Date:        time.Date(2025, 8, 15, 19, 0, 0, 0, time.UTC),
			Price:       "150.00",
			Location:    "Wembley Stadium, London",
			Type:        types.EVENT_CONCERT,
			TotalSlots:  90000,
		},
		{
			CelebrityID: celeb1.ID,
			Title:       "VIP Meet & Greet",
			Description: "Exclusive backstage access and photo opportunity.",
			Date:        time.Date(2025, 8, 15, 16, 0, 0, 0, time.UTC),
			Price:       "500.00",
			Location:    "Wembley Stadium, London",
			Type:        types.EVENT_MEET_GREET,
			TotalSlots:  50,
		},
		{
			CelebrityID: celeb2.ID,
			Title:       "After Hours - Tokyo",
			Description: "Live performance at Tokyo Dome.",
			Date:        time.Date(2025, 9, 20, 19, 0, 0, 0, time.UTC),
			Price:       "120.00",
			Location:    "Tokyo Dome",
			Type:        types.EVENT_CONCERT,
			TotalSlots:  55000,
		},
	}
	if err := tx.Create(&events).Error; err != nil {
		return err
	}

	demoCard := models.FanCard{
		CelebrityID: celeb1.ID,
		CardCode:    utils.GenerateCardCode(celeb1.Name),
		Email:       "demo@fan.com",
		FanName:     "Demo Fan",
		Tier:        types.TIER_PLATINUM,
		Status:      types.FANCARD_ACTIVE,
	}
	return tx.Create(&demoCard).Error
}
