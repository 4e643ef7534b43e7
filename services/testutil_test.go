package services

import (
	"testing"
	"time"

	"clinica_app_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Setting{}, &models.BlockedSlot{}, &models.Appointment{})
	assert.NoError(t, err)

	err = EnsureAppointmentSlotIndex(db)
	assert.NoError(t, err)

	return db
}

// testScheduleConfig mirrors the reference scenario: open Monday through
// Thursday, hourly slots 08:00..11:00, 30-day booking window
func testScheduleConfig() *models.ScheduleConfig {
	return &models.ScheduleConfig{
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
	}
}

// nextWeekday returns the next calendar date (today included) falling on the
// given weekday, in the clinic's timezone
func nextWeekday(weekday time.Weekday) time.Time {
	date := Today()
	for date.Weekday() != weekday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
