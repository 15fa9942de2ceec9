package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"clinic-booking-server/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAvailableReturnsOrderedSlots(t *testing.T) {
	db, mock := newMockDB(t)
	handler := NewSlotHandler(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `available_slots` WHERE status = (.+) AND date >=").
		WillReturnRows(sqlmock.NewRows(slotColumns()).
			AddRow("s1", now, now, "2025-06-01", "10:00", "available").
			AddRow("s2", now, now, "2025-06-01", "11:30", "available").
			AddRow("s3", now, now, "2025-06-02", "09:00", "available"))

	recorder, env := perform(t, func(r *gin.Engine) {
		r.GET("/slots", handler.ListAvailable)
	}, http.MethodGet, "/slots?from=2025-06-01", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var slots []models.Slot
	require.NoError(t, json.Unmarshal(env.Data, &slots))
	require.Len(t, slots, 3)
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, "11:30", slots[1].Time)
	assert.Equal(t, "2025-06-02", slots[2].Date)
	for _, slot := range slots {
		assert.EqualValues(t, "available", slot.Status)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAvailableRejectsBadFromDate(t *testing.T) {
	db, _ := newMockDB(t)
	handler := NewSlotHandler(db)

	recorder, _ := perform(t, func(r *gin.Engine) {
		r.GET("/slots", handler.ListAvailable)
	}, http.MethodGet, "/slots?from=june-1st", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateSlot(t *testing.T) {
	db, mock := newMockDB(t)
	handler := NewSlotHandler(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `available_slots`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	recorder, env := perform(t, func(r *gin.Engine) {
		r.POST("/admin/slots", handler.Create)
	}, http.MethodPost, "/admin/slots", map[string]string{
		"date": "2025-06-01",
		"time": "10:00",
	})

	require.Equal(t, http.StatusCreated, recorder.Code, env.Error)

	var slot models.Slot
	require.NoError(t, json.Unmarshal(env.Data, &slot))
	assert.EqualValues(t, "available", slot.Status)
	assert.NotEmpty(t, slot.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSlotRejectsMalformedDate(t *testing.T) {
	db, _ := newMockDB(t)
	handler := NewSlotHandler(db)

	recorder, _ := perform(t, func(r *gin.Engine) {
		r.POST("/admin/slots", handler.Create)
	}, http.MethodPost, "/admin/slots", map[string]string{
		"date": "01/06/2025",
		"time": "10:00",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteSlotNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	handler := NewSlotHandler(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `available_slots`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	recorder, _ := perform(t, func(r *gin.Engine) {
		r.DELETE("/admin/slots/:id", handler.Delete)
	}, http.MethodDelete, "/admin/slots/missing-id", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
