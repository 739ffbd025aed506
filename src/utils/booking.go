package utils

import (
	"errors"
	"strings"
	"sync"

	"iconic/src/db"
	"iconic/src/models"
	"iconic/src/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound   = errors.New("Event not found")
	ErrFanCardNotFound = errors.New("Fan card not found")
	ErrFanCardInactive = errors.New("Fan card is not active")
	ErrEventFull       = errors.New("Event fully booked")
)

const bookingRetryLimit = 3

// keyedMutex hands out one mutex per event so in-flight bookings for the
// same event serialize while bookings for different events proceed freely.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func (k *keyedMutex) get(id uint) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	l, ok := k.locks[id]
	if !ok {
		l = &sync.Mutex{}
		k.locks[id] = l
	}
	return l
}

var bookingLocks = keyedMutex{locks: make(map[uint]*sync.Mutex)}

// RequestBooking admits a fan into an event. The capacity check, the booking
// insert and the slot increment happen inside one transaction with the event
// row locked, so the booked count can never pass the slot limit no matter how
// many requests race. Rejections leave no rows behind.
func RequestBooking(fanCardID, eventID uint) (*models.Booking, error) {
	lock := bookingLocks.get(eventID)
	lock.Lock()
	defer lock.Unlock()

	var lastErr error
	for attempt := 0; attempt < bookingRetryLimit; attempt++ {
		booking, err := admitBooking(fanCardID, eventID)
		if err == nil {
			return booking, nil
		}
		if !retryableTxError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func admitBooking(fanCardID, eventID uint) (*models.Booking, error) {
	conn := db.GetDb()
	var booking models.Booking
	err := conn.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Event{ID: eventID}).
			First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		var card models.FanCard
		if err := tx.
			Where(&models.FanCard{ID: fanCardID}).
			First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFanCardNotFound
			}
			return err
		}
		if card.Status != types.FANCARD_ACTIVE {
			return ErrFanCardInactive
		}
		if event.BookedSlots >= event.TotalSlots {
			return ErrEventFull
		}
		booking = models.Booking{
			FanCardID: fanCardID,
			EventID:   eventID,
			Status:    types.BOOKING_CONFIRMED,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		res := tx.
			Model(&models.Event{}).
			Where("id = ? AND booked_slots < total_slots", eventID).
			UpdateColumn("booked_slots", gorm.Expr("booked_slots + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		// The guarded increment is the last word on capacity. Zero rows
		// means another writer filled the event first.
		if res.RowsAffected != 1 {
			return ErrEventFull
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func retryableTxError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "40001") ||
		strings.Contains(msg, "40P01") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "deadlock detected")
}
