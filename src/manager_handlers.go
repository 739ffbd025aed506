package main

import (
	"errors"
	"log"
	"net/http"

	"iconic/src/db"
	"iconic/src/models"
	"iconic/src/types"
	"iconic/src/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func managerAuthHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/manager/login", func(ctx *gin.Context) {
			var body types.ManagerLoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			var user models.User
			conn := db.GetDb()
			if err := conn.
				Where(&models.User{Username: body.Username}).
				First(&user).Error; err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			token, err := utils.GenerateJWT(user.Username, user.ID, "manager")
			if err != nil {
				log.Printf("Error signing token for user [%d]: %s\n", user.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "token": token})
		})
	return g
}

func managerHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/celebrities", func(ctx *gin.Context) {
			var body types.CreateCelebrityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			celebrity, err := utils.CreateNewCelebrity(&body)
			if err != nil {
				log.Printf("Error creating Celebrity: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create celebrity"})
				return
			}
			ctx.JSON(http.StatusCreated, celebrity)
		}).
		POST("/events", func(ctx *gin.Context) {
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			event, err := utils.CreateNewEvent(&body)
			if err != nil {
				if errors.Is(err, utils.ErrCelebrityNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Celebrity not found"})
					return
				}
				log.Printf("Error creating Event: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create event"})
				return
			}
			ctx.JSON(http.StatusCreated, event)
		})
	return g
}
