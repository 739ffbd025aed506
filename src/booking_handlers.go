package main

import (
	"errors"
	"log"
	"net/http"

	"iconic/src/types"
	"iconic/src/utils"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking data"})
				return
			}
			booking, err := utils.RequestBooking(body.FanCardID, body.EventID)
			if err != nil {
				switch {
				case errors.Is(err, utils.ErrEventNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
				case errors.Is(err, utils.ErrFanCardNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Fan card not found"})
				case errors.Is(err, utils.ErrFanCardInactive):
					ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Fan card is not active"})
				case errors.Is(err, utils.ErrEventFull):
					ctx.JSON(http.StatusBadRequest, gin.H{"message": "Event fully booked"})
				default:
					log.Printf("Error creating Booking: %s\n", err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create booking"})
				}
				return
			}
			ctx.JSON(http.StatusCreated, booking)
		})
	return g
}
