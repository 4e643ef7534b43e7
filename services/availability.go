package services

import (
	"time"

	"clinica_app_go/models"

	"gorm.io/gorm"
)

// slotCatalog is the clinic's fixed set of canonical appointment start times.
// Session duration is informational metadata and never subdivides the day;
// the bookable portion of the catalog is clipped to the configured window.
var slotCatalog = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
	"20:00", "21:00",
}

// SlotCatalog returns the canonical slots inside [StartTime, EndTime).
// HH:MM strings compare correctly as plain strings.
func SlotCatalog(cfg *models.ScheduleConfig) []string {
	slots := make([]string, 0, len(slotCatalog))
	for _, slot := range slotCatalog {
		if slot >= cfg.StartTime && slot < cfg.EndTime {
			slots = append(slots, slot)
		}
	}
	return slots
}

// IsWorkingDay reports whether the clinic operates on the given date's weekday.
// Callers use this to tell "closed" apart from "fully booked"; the
// availability computation itself only needs the empty result.
func IsWorkingDay(cfg *models.ScheduleConfig, date time.Time) bool {
	return cfg.DayEnabled(date.Weekday())
}

// ComputeAvailableSlots returns the bookable time slots for a calendar date,
// in ascending order.
//
// The result is a pure function of the injected configuration plus the
// current block registry and appointment ledger; nothing is cached between
// calls, so admin toggles take effect on the very next computation. An empty
// result is a normal outcome (past date, outside the advance window, closed
// weekday, or fully booked), never an error.
func ComputeAvailableSlots(db *gorm.DB, cfg *models.ScheduleConfig, date time.Time) ([]string, error) {
	if cfg == nil {
		return nil, ErrScheduleConfigMissing
	}

	day := CivilDate(date)

	// Date-range guard: [today, today+advanceDays] in the clinic's timezone
	today := Today()
	if day.Before(today) || day.After(today.AddDate(0, 0, cfg.AdvanceDays)) {
		return []string{}, nil
	}

	// Working-day guard
	if !IsWorkingDay(cfg, day) {
		return []string{}, nil
	}

	blocked, err := blockedTimesFor(db, day)
	if err != nil {
		return nil, err
	}

	booked, err := bookedTimesFor(db, day)
	if err != nil {
		return nil, err
	}

	available := make([]string, 0, len(slotCatalog))
	for _, slot := range SlotCatalog(cfg) {
		if blocked[slot] || booked[slot] {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

// bookedTimesFor collects the slot times held by non-cancelled appointments on a date
func bookedTimesFor(db *gorm.DB, date time.Time) (map[string]bool, error) {
	var times []string
	err := db.Model(&models.Appointment{}).
		Where("data_selecionada = ? AND status <> ?", CivilDate(date), models.AppointmentStatusCancelado).
		Pluck("horario_selecionado", &times).Error
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(times))
	for _, t := range times {
		booked[t] = true
	}
	return booked, nil
}
