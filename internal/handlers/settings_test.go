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

func TestGetSettingsAssemblesSections(t *testing.T) {
	db, mock := newMockDB(t)
	handler := NewSettingsHandler(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `clinic_settings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "key", "value"}).
			AddRow("c1", now, now, models.SettingContactInfo, []byte(`{"phone":"0100000000","whatsapp":"+201234567890"}`)).
			AddRow("c2", now, now, models.SettingDoctorInfo, []byte(`{"name":"Dr. Salma"}`)))

	recorder, env := perform(t, func(r *gin.Engine) {
		r.GET("/settings", handler.Get)
	}, http.MethodGet, "/settings", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var settings models.ClinicSettings
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "Dr. Salma", settings.DoctorInfo.Name)
	assert.Equal(t, "+201234567890", settings.ContactInfo.WhatsApp)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSettingsUpsertsEachSection(t *testing.T) {
	db, mock := newMockDB(t)
	handler := NewSettingsHandler(db)

	mock.ExpectBegin()
	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT INTO `clinic_settings`").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	body := models.ClinicSettings{
		DoctorInfo:   models.DoctorInfo{Name: "Dr. Salma"},
		ContactInfo:  models.ContactInfo{WhatsApp: "+201234567890"},
		WorkingHours: map[string]string{"sat": "10:00-18:00"},
	}

	recorder, env := perform(t, func(r *gin.Engine) {
		r.PUT("/admin/settings", handler.Update)
	}, http.MethodPut, "/admin/settings", body)

	require.Equal(t, http.StatusOK, recorder.Code, env.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}
