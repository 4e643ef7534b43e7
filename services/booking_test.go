package services

import (
	"sync"
	"testing"
	"time"

	"clinica_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func validBookingRequest(date time.Time, horario string) BookingRequest {
	return BookingRequest{
		Nome:       "Ana Pereira",
		Email:      "ana@example.com",
		Telefone:   "11 97777-6666",
		Data:       date,
		Horario:    horario,
		Modalidade: models.ModalidadeOnline,
	}
}

func TestBookAppointmentSuccess(t *testing.T) {
	db := setupServiceTestDB(t)
	cfg := testScheduleConfig()
	monday := nextWeekday(time.Monday)

	apt, err := BookAppointment(db, cfg, validBookingRequest(monday, "09:00"))
	assert.NoError(t, err)
	assert.NotEmpty(t, apt.ID)
	assert.NotEmpty(t, apt.Codigo)
	assert.Equal(t, models.AppointmentStatusAgendado, apt.Status)
	assert.Equal(t, "09:00", apt.HorarioSelecionado)
	assert.Equal(t, CivilDate(monday), apt.DataSelecionada)
}

func TestBookAppointmentValidation(t *testing.T) {
	db := setupServiceTestDB(t)
	cfg := testScheduleConfig()
	monday := nextWeekday(time.Monday)

	cases := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"missing name", func(r *BookingRequest) { r.Nome = "  " }},
		{"missing email", func(r *BookingRequest) { r.Email = "" }},
		{"invalid email", func(r *BookingRequest) { r.Email = "not-an-email" }},
		{"missing phone", func(r *BookingRequest) { r.Telefone = "" }},
		{"bad slot format", func(r *BookingRequest) { r.Horario = "9am" }},
		{"bad modality", func(r *BookingRequest) { r.Modalidade = "telepática" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBookingRequest(monday, "09:00")
			tc.mutate(&req)
			_, err := BookAppointment(db, cfg, req)
			assert.Error(t, err)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestBookAppointmentSlotConflicts(t *testing.T) {
	db := setupServiceTestDB(t)
	cfg := testScheduleConfig()
	monday := nextWeekday(time.Monday)

	// Taken slot
	_, err := BookAppointment(db, cfg, validBookingRequest(monday, "09:00"))
	assert.NoError(t, err)
	_, err = BookAppointment(db, cfg, validBookingRequest(monday, "09:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Blocked slot
	assert.NoError(t, CreateBlockedSlot(db, &models.BlockedSlot{
		BlockType: models.BlockTypeRecurring,
		DayOfWeek: intPtr(1),
		TimeSlot:  "10:00",
		IsActive:  true,
	}))
	_, err = BookAppointment(db, cfg, validBookingRequest(monday, "10:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Closed weekday
	_, err = BookAppointment(db, cfg, validBookingRequest(nextWeekday(time.Saturday), "09:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Outside the advance window
	_, err = BookAppointment(db, cfg, validBookingRequest(Today().AddDate(0, 0, cfg.AdvanceDays+7), "09:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBookAppointmentCancelledSlotIsReusable(t *testing.T) {
	db := setupServiceTestDB(t)
	cfg := testScheduleConfig()
	monday := nextWeekday(time.Monday)

	first, err := BookAppointment(db, cfg, validBookingRequest(monday, "11:00"))
	assert.NoError(t, err)

	_, err = CancelAppointmentByCodigo(db, first.Codigo)
	assert.NoError(t, err)

	// The partial unique index ignores cancelled rows, so rebooking works
	second, err := BookAppointment(db, cfg, validBookingRequest(monday, "11:00"))
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestBookAppointmentConcurrentSameSlot(t *testing.T) {
	// Shared-cache in-memory database so both goroutines hit the same store
	dbName := "mem_" + uuid.New().String()
	db, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, db.AutoMigrate(&models.Setting{}, &models.BlockedSlot{}, &models.Appointment{}))
	assert.NoError(t, EnsureAppointmentSlotIndex(db))

	cfg := testScheduleConfig()
	monday := nextWeekday(time.Monday)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := BookAppointment(db, cfg, validBookingRequest(monday, "08:00"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrSlotUnavailable):
			conflicts++
		}
	}
	assert.Equal(t, 1, successes, "exactly one booking must win")
	assert.Equal(t, 1, conflicts, "the loser must get a conflict")

	// The ledger never holds two non-cancelled rows for the same slot
	var count int64
	db.Model(&models.Appointment{}).
		Where("data_selecionada = ? AND horario_selecionado = ? AND status <> ?",
			CivilDate(monday), "08:00", models.AppointmentStatusCancelado).
		Count(&count)
	assert.Equal(t, int64(1), count)
}
