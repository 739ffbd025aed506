package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"iconic/src/db"
	"iconic/src/models"
	"iconic/src/types"
	"iconic/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func celebrityHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/celebrities", func(ctx *gin.Context) {
			celebrities, err := utils.CachedCelebrities(ctx.Request.Context())
			if err != nil {
				log.Printf("Error retrieving Celebrities: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch celebrities"})
				return
			}
			ctx.JSON(http.StatusOK, celebrities)
		}).
		GET("/celebrities/:slug", func(ctx *gin.Context) {
			var params types.SlugRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var celebrity models.Celebrity
			conn := db.GetDb()
			if err := conn.
				Where(&models.Celebrity{Slug: params.Slug}).
				First(&celebrity).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Celebrity not found"})
					return
				}
				log.Printf("Error retrieving Celebrity [%s]: %s\n", params.Slug, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch celebrity"})
				return
			}
			ctx.JSON(http.StatusOK, celebrity)
		}).
		GET("/celebrities/:slug/events", func(ctx *gin.Context) {
			var params types.SlugRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			conn := db.GetDb()
			var celebrity models.Celebrity
			// The storefront addresses this route by numeric id, deep links
			// use the slug. Accept both.
			query := conn.Model(&models.Celebrity{})
			if id, err := strconv.Atoi(params.Slug); err == nil {
				query = query.Where("id = ?", id)
			} else {
				query = query.Where("slug = ?", params.Slug)
			}
			if err := query.First(&celebrity).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Celebrity not found"})
					return
				}
				log.Printf("Error retrieving Celebrity [%s]: %s\n", params.Slug, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch celebrity"})
				return
			}
			var events []models.Event
			if err := conn.
				Where(&models.Event{CelebrityID: celebrity.ID}).
				Order("date").
				Find(&events).Error; err != nil {
				log.Printf("Error retrieving Events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch events"})
				return
			}
			ctx.JSON(http.StatusOK, events)
		}).
		GET("/fan-card-tiers", func(ctx *gin.Context) {
			var tiers []models.FanCardTier
			conn := db.GetDb()
			if err := conn.Order("id").Find(&tiers).Error; err != nil {
				log.Printf("Error retrieving FanCardTiers: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tiers"})
				return
			}
			ctx.JSON(http.StatusOK, tiers)
		})
	return g
}
