package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"iconic/src/config"
	"iconic/src/db"
	"iconic/src/lib"
	"iconic/src/models"
	"iconic/src/types"
	"iconic/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeqown/go-qrcode"
	"gorm.io/gorm"
)

func fancardHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/fancards/purchase", func(ctx *gin.Context) {
			var body types.PurchaseFanCardRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			card, err := utils.CreateFanCard(&body)
			if err != nil {
				if errors.Is(err, utils.ErrCelebrityNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Celebrity not found"})
					return
				}
				log.Printf("Error creating FanCard: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create fan card"})
				return
			}
			ctx.JSON(http.StatusCreated, card)
		}).
		POST("/fancards/login", func(ctx *gin.Context) {
			var body types.FanLoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var card models.FanCard
			conn := db.GetDb()
			if err := conn.
				Where(&models.FanCard{CardCode: body.CardCode, Email: body.Email}).
				First(&card).Error; err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			token, err := utils.GenerateFanJWT(&card)
			if err != nil {
				log.Printf("Error signing token for card [%s]: %s\n", card.CardCode, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
				return
			}
			go func() {
				rd := lib.GetRedisClient()
				if rd == nil {
					return
				}
				key := fmt.Sprintf("fancard:%d:token", card.ID)
				if err := rd.SetEx(context.Background(), key, token, 24*time.Hour).Err(); err != nil {
					log.Printf("[redis] Error caching session token: %s\n", err.Error())
				}
			}()
			ctx.JSON(http.StatusOK, gin.H{"token": token, "fanCard": card})
		}).
		GET("/fancards/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var card models.FanCard
			conn := db.GetDb()
			if err := conn.
				Preload("Celebrity").
				Where(&models.FanCard{ID: params.ID}).
				First(&card).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Fan card not found"})
					return
				}
				log.Printf("Error retrieving FanCard [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch fan card"})
				return
			}
			ctx.JSON(http.StatusOK, card)
		}).
		GET("/fancards/:id/bookings", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			conn := db.GetDb()
			var card models.FanCard
			if err := conn.
				Where(&models.FanCard{ID: params.ID}).
				First(&card).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Fan card not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch fan card"})
				return
			}
			bookings, err := utils.GetFanCardBookings(card.ID)
			if err != nil {
				log.Printf("Error retrieving Bookings for card [%d]: %s\n", card.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch bookings"})
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		}).
		GET("/fancards/:id/qr", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var card models.FanCard
			conn := db.GetDb()
			if err := conn.
				Where(&models.FanCard{ID: params.ID}).
				First(&card).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Fan card not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch fan card"})
				return
			}
			payload, err := json.Marshal(map[string]any{
				"fanCardId": card.ID,
				"cardCode":  card.CardCode,
				"tier":      card.Tier,
				"reference": uuid.NewString(),
				"issuedAt":  time.Now().UnixMilli(),
			})
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build pass"})
				return
			}
			key, err := hex.DecodeString(config.API_QRC_SECRET)
			if err != nil {
				log.Printf("Error reading QR secret: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build pass"})
				return
			}
			encryptedMessage, err := utils.EncryptMessage(key, string(payload))
			if err != nil {
				log.Printf("Error encrypting message: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build pass"})
				return
			}
			qrc, err := qrcode.New(encryptedMessage)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build pass"})
				return
			}
			filepath := path.Join(os.TempDir(), fmt.Sprintf("%s.jpeg", card.CardCode))
			if err = qrc.Save(filepath); err != nil {
				log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build pass"})
				return
			}
			ctx.FileAttachment(filepath, "fancard.jpeg")
		})
	return g
}
