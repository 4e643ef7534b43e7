package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// dayKeys maps time.Weekday (0=Sunday) to the JSON keys used by the admin UI
var dayKeys = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// DaySchedule is the normalized per-weekday configuration.
// Location 1/2 pins the day to one of the clinic's addresses; nil means both operate.
type DaySchedule struct {
	Enabled  bool `json:"enabled"`
	Location *int `json:"location"`
}

// WorkingDays maps lowercase day names ("monday"..."sunday") to their schedule.
//
// Two persisted shapes exist: the legacy one stores a plain boolean per day,
// the location-aware one stores {"enabled": bool, "location": 1|2|null}.
// Decoding lifts the legacy shape into the richer one, so everything past
// this boundary only ever sees DaySchedule values.
type WorkingDays map[string]DaySchedule

func (w *WorkingDays) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(WorkingDays, len(raw))
	for day, value := range raw {
		var enabled bool
		if err := json.Unmarshal(value, &enabled); err == nil {
			// Legacy boolean format
			out[day] = DaySchedule{Enabled: enabled}
			continue
		}

		var ds DaySchedule
		if err := json.Unmarshal(value, &ds); err != nil {
			return fmt.Errorf("invalid working day entry %q: %w", day, err)
		}
		out[day] = ds
	}

	*w = out
	return nil
}

// ScheduleConfig holds the clinic-wide booking settings.
// It is persisted as JSON in the settings table and injected into the
// availability computation, never read from global state.
type ScheduleConfig struct {
	WorkingDays                 WorkingDays `json:"workingDays"`
	StartTime                   string      `json:"startTime"` // "HH:MM"
	EndTime                     string      `json:"endTime"`   // "HH:MM"
	SessionDurationMinutes      int         `json:"sessionDurationMinutes"`
	FirstSessionDurationMinutes int         `json:"firstSessionDurationMinutes"`
	AdvanceDays                 int         `json:"advanceDays"`
}

// Validate checks the configuration shape before it is persisted
func (c *ScheduleConfig) Validate() error {
	if !IsValidTimeSlot(c.StartTime) {
		return fmt.Errorf("startTime must be in HH:MM format")
	}
	if !IsValidTimeSlot(c.EndTime) {
		return fmt.Errorf("endTime must be in HH:MM format")
	}
	if c.StartTime >= c.EndTime {
		return fmt.Errorf("startTime must be before endTime")
	}
	if c.AdvanceDays < 0 {
		return fmt.Errorf("advanceDays must not be negative")
	}
	for day := range c.WorkingDays {
		if !isValidDayKey(day) {
			return fmt.Errorf("unknown working day %q", day)
		}
	}
	return nil
}

// DayEnabled reports whether the clinic operates on the given weekday.
// Location filtering is a caller refinement; enabled is enough for availability.
func (c *ScheduleConfig) DayEnabled(weekday time.Weekday) bool {
	return c.WorkingDays[dayKeys[weekday]].Enabled
}

// DayLocation returns the location pinned to a weekday, or nil when both operate
func (c *ScheduleConfig) DayLocation(weekday time.Weekday) *int {
	ds := c.WorkingDays[dayKeys[weekday]]
	return ds.Location
}

func isValidDayKey(day string) bool {
	for _, k := range dayKeys {
		if k == day {
			return true
		}
	}
	return false
}

// IsValidTimeSlot reports whether a string is a well-formed "HH:MM" wall-clock time
func IsValidTimeSlot(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
