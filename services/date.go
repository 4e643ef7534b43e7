package services

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultClinicTimezone anchors all "today" computations. The clinic operates
// in a single fixed timezone; mixing UTC instants with calendar dates here is
// what causes off-by-one availability at day boundaries.
const DefaultClinicTimezone = "America/Sao_Paulo"

var (
	clinicLocOnce sync.Once
	clinicLoc     *time.Location
)

// ClinicLocation returns the clinic's timezone, falling back to UTC if the
// tzdata entry cannot be loaded
func ClinicLocation() *time.Location {
	clinicLocOnce.Do(func() {
		loc, err := time.LoadLocation(DefaultClinicTimezone)
		if err != nil {
			log.Printf("[WARNING] Failed to load timezone %s, falling back to UTC: %v", DefaultClinicTimezone, err)
			loc = time.UTC
		}
		clinicLoc = loc
	})
	return clinicLoc
}

// ParseDate parses a date string in the ISO format used by HTML5 date inputs (YYYY-MM-DD).
// The result is a timezone-free calendar date (midnight UTC), the only date
// representation the availability computation works with.
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}
	return parsed, nil
}

// CivilDate strips the time-of-day and timezone from t, keeping only its
// calendar date (as midnight UTC)
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in the clinic's timezone
func Today() time.Time {
	return CivilDate(time.Now().In(ClinicLocation()))
}

// FormatDate renders a calendar date back to YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
