package services

import (
	"time"

	"clinica_app_go/models"

	"gorm.io/gorm"
)

// GetAppointmentByID fetches a single appointment
func GetAppointmentByID(db *gorm.DB, id string) (*models.Appointment, error) {
	var apt models.Appointment
	err := db.First(&apt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

// GetAppointmentByCodigo fetches an appointment by its confirmation code
func GetAppointmentByCodigo(db *gorm.DB, codigo string) (*models.Appointment, error) {
	var apt models.Appointment
	err := db.First(&apt, "codigo = ?", codigo).Error
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

// ListAppointments fetches appointments for the admin dashboard, optionally
// filtered to one calendar date
func ListAppointments(db *gorm.DB, date *time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	query := db.Order("data_selecionada, horario_selecionado")
	if date != nil {
		query = query.Where("data_selecionada = ?", CivilDate(*date))
	}
	err := query.Find(&appointments).Error
	return appointments, err
}

// ListAppointmentsInRange fetches appointments with dates in [from, to]
func ListAppointmentsInRange(db *gorm.DB, from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Where("data_selecionada >= ? AND data_selecionada <= ?", CivilDate(from), CivilDate(to)).
		Order("data_selecionada, horario_selecionado").
		Find(&appointments).Error
	return appointments, err
}

// UpdateAppointmentStatus moves an appointment through its lifecycle,
// rejecting transitions the lifecycle does not allow
func UpdateAppointmentStatus(db *gorm.DB, id, status string) (*models.Appointment, error) {
	if !models.IsValidAppointmentStatus(status) {
		return nil, NewValidationError("status inválido: %s", status)
	}

	apt, err := GetAppointmentByID(db, id)
	if err != nil {
		return nil, err
	}

	if !apt.CanTransitionTo(status) {
		return nil, NewValidationError("transição de %s para %s não é permitida", apt.Status, status)
	}

	updates := map[string]interface{}{"status": status}
	if status == models.AppointmentStatusCancelado {
		now := time.Now()
		updates["cancelado_em"] = &now
	}

	if err := db.Model(apt).Updates(updates).Error; err != nil {
		return nil, err
	}
	return apt, nil
}

// CancelAppointmentByCodigo cancels a booking via the public confirmation code,
// freeing its slot for rebooking
func CancelAppointmentByCodigo(db *gorm.DB, codigo string) (*models.Appointment, error) {
	apt, err := GetAppointmentByCodigo(db, codigo)
	if err != nil {
		return nil, err
	}

	if !apt.IsCancellable() {
		return nil, NewValidationError("agendamento não pode mais ser cancelado")
	}

	return UpdateAppointmentStatus(db, apt.ID, models.AppointmentStatusCancelado)
}
