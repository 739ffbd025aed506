package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"iconic/src/db"
	"iconic/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type BookingTestSuite struct {
	suite.Suite
	Mock sqlmock.Sqlmock
}

func (s *BookingTestSuite) SetupTest() {
	d, mock := NewMockDB()
	db.NewDB(d)
	s.Mock = mock
}

func (s *BookingTestSuite) postBooking(router *gin.Engine, fanCardID, eventID uint) *httptest.ResponseRecorder {
	body, _ := json.Marshal(types.CreateBookingRequestBody{FanCardID: fanCardID, EventID: eventID})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/bookings", strings.NewReader(string(body)))
	router.ServeHTTP(w, req)
	return w
}

func (s *BookingTestSuite) TestCreateBooking() {
	router := setupRouter()
	bookingHandlers(apiGroup(router))

	s.Run("Should admit a fan into an event with open slots", func() {
		s.Mock.ExpectBegin()
		s.Mock.ExpectQuery(`SELECT (.+) FROM "events" (.+)FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "celebrity_id", "title", "total_slots", "booked_slots"}).
				AddRow(7, 1, "Eras Tour - London", 100, 40))
		s.Mock.ExpectQuery(`SELECT (.+) FROM "fan_cards"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "celebrity_id", "card_code", "status"}).
				AddRow(3, 1, "TAYLOR-4821", "active"))
		s.Mock.ExpectQuery(`INSERT INTO "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		s.Mock.ExpectExec(`UPDATE "events" SET "booked_slots"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.Mock.ExpectCommit()

		w := s.postBooking(router, 3, 7)

		assert.Equal(s.T(), 201, w.Code)
		body := w.Body.String()
		assert.Equal(s.T(), int64(10), gjson.Get(body, "id").Int())
		assert.Equal(s.T(), "confirmed", gjson.Get(body, "status").String())
		assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
	})

	s.Run("Should return 404 for an unknown event without touching any rows", func() {
		s.Mock.ExpectBegin()
		s.Mock.ExpectQuery(`SELECT (.+) FROM "events" (.+)FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		s.Mock.ExpectRollback()

		w := s.postBooking(router, 3, 404)

		assert.Equal(s.T(), 404, w.Code)
		assert.Equal(s.T(), "Event not found", gjson.Get(w.Body.String(), "message").String())
		assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
	})

	s.Run("Should return 404 for an unknown fan card", func() {
		s.Mock.ExpectBegin()
		s.Mock.ExpectQuery(`SELECT (.+) FROM "events" (.+)FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "total_slots", "booked_slots"}).AddRow(7, 100, 40))
		s.Mock.ExpectQuery(`SELECT (.+) FROM "fan_cards"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		s.Mock.ExpectRollback()

		w := s.postBooking(router, 999, 7)

		assert.Equal(s.T(), 404, w.Code)
		assert.Equal(s.T(), "Fan card not found", gjson.Get(w.Body.String(), "message").String())
		assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
	})

	s.Run("Should reject an inactive fan card", func() {
		s.Mock.ExpectBegin()
		s.Mock.ExpectQuery(`SELECT (.+) FROM "events" (.+)FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "total_slots", "booked_slots"}).AddRow(7, 100, 40))
		s.Mock.ExpectQuery(`SELECT (.+) FROM "fan_cards"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "card_code", "status"}).AddRow(3, "TAYLOR-4821", "pending"))
		s.Mock.ExpectRollback()

		w := s.postBooking(router, 3, 7)

		assert.Equal(s.T(), 401, w.Code)
		assert.Equal(s.T(), "Fan card is not active", gjson.Get(w.Body.String(), "message").String())
		assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
	})

	s.Run("Should reject a booking for a full event with no side effects", func() {
		s.Mock.ExpectBegin()
		s.Mock.ExpectQuery(`SELECT (.+) FROM "events" (.+)FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "total_slots", "booked_slots"}).AddRow(7, 50, 50))
		s.Mock.ExpectQuery(`SELECT (.+) FROM "fan_cards"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "card_code", "status"}).AddRow(3, "TAYLOR-4821", "active"))
		s.Mock.ExpectRollback()

		w := s.postBooking(router, 3, 7)

		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), "Event fully booked", gjson.Get(w.Body.String(), "message").String())
		// No insert and no increment ever hit the connection.
		assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
	})

	s.Run("Should reject malformed booking payloads", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/bookings", strings.NewReader(`{"fanCardId":"x"}`))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), "Invalid booking data", gjson.Get(w.Body.String(), "message").String())
	})
}

func (s *BookingTestSuite) TestLastSlotRace() {
	router := setupRouter()
	bookingHandlers(apiGroup(router))

	// Two fans race for a single remaining slot. Per-event serialization
	// means the connection sees one full winning transaction, then one
	// losing transaction that observes the filled event.
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery(`SELECT (.+) FROM "events" (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_slots", "booked_slots"}).AddRow(7, 1, 0))
	s.Mock.ExpectQuery(`SELECT (.+) FROM "fan_cards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(3, "active"))
	s.Mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	s.Mock.ExpectExec(`UPDATE "events" SET "booked_slots"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.Mock.ExpectCommit()

	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery(`SELECT (.+) FROM "events" (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_slots", "booked_slots"}).AddRow(7, 1, 1))
	s.Mock.ExpectQuery(`SELECT (.+) FROM "fan_cards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(4, "active"))
	s.Mock.ExpectRollback()

	var wg sync.WaitGroup
	codes := make(chan int, 2)
	for _, cardID := range []uint{3, 4} {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			w := s.postBooking(router, id, 7)
			codes <- w.Code
		}(cardID)
	}
	wg.Wait()
	close(codes)

	var admitted, rejected int
	for code := range codes {
		switch code {
		case 201:
			admitted++
		case 400:
			rejected++
		}
	}
	assert.Equal(s.T(), 1, admitted, "exactly one fan should win the last slot")
	assert.Equal(s.T(), 1, rejected, "the other fan should be turned away")
	assert.Nil(s.T(), s.Mock.ExpectationsWereMet())
}

func TestBookingRunner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(BookingTestSuite))
}
