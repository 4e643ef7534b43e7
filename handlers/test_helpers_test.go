package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"clinica_app_go/config"
	"clinica_app_go/db"
	"clinica_app_go/models"
	"clinica_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name to isolate tests while allowing shared cache
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Setting{},
		&models.BlockedSlot{},
		&models.Appointment{},
	)
	assert.NoError(t, err)

	err = services.EnsureAppointmentSlotIndex(testDB)
	assert.NoError(t, err)

	// Seed a predictable schedule: Monday-Thursday open, hourly slots 08:00..11:00
	err = services.SaveScheduleConfig(testDB, &models.ScheduleConfig{
		WorkingDays: models.WorkingDays{
			"monday":    {Enabled: true},
			"tuesday":   {Enabled: true},
			"wednesday": {Enabled: true},
			"thursday":  {Enabled: true},
			"friday":    {Enabled: false},
			"saturday":  {Enabled: false},
			"sunday":    {Enabled: false},
		},
		StartTime:                   "08:00",
		EndTime:                     "12:00",
		SessionDurationMinutes:      50,
		FirstSessionDurationMinutes: 60,
		AdvanceDays:                 30,
	})
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment:   "test",
		EmailTestMode: true,
		AppURL:        "http://localhost:8080",
	})

	return e, c, rec
}

// nextOpenDate returns the next Monday (today included) as YYYY-MM-DD
func nextOpenDate() string {
	date := services.Today()
	for date.Weekday() != time.Monday {
		date = date.AddDate(0, 0, 1)
	}
	return services.FormatDate(date)
}

// nextClosedDate returns the next Saturday (today included) as YYYY-MM-DD
func nextClosedDate() string {
	date := services.Today()
	for date.Weekday() != time.Saturday {
		date = date.AddDate(0, 0, 1)
	}
	return services.FormatDate(date)
}
