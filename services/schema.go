package services

import (
	"log"

	"gorm.io/gorm"
)

// EnsureAppointmentSlotIndex creates the partial unique index that guarantees
// at most one non-cancelled appointment per (date, time slot) pair.
//
// GORM tags cannot express a partial index on SQLite, so this runs as raw SQL
// after AutoMigrate. The index is what makes the booking write race-safe: two
// concurrent inserts for the same slot both pass the availability re-check,
// but only one survives the constraint.
func EnsureAppointmentSlotIndex(db *gorm.DB) error {
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
		ON appointments(data_selecionada, horario_selecionado)
		WHERE status <> 'cancelado'
	`).Error
	if err != nil {
		return err
	}

	log.Println("Appointment slot uniqueness index ensured")
	return nil
}
