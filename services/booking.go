package services

import (
	"errors"
	"strings"
	"time"

	"clinica_app_go/models"

	"gorm.io/gorm"
)

// BookingRequest carries the client's booking submission after transport-level
// parsing. Data is a calendar date (see ParseDate).
type BookingRequest struct {
	Nome             string
	Email            string
	Telefone         string
	Data             time.Time
	Horario          string
	Modalidade       string
	Mensagem         *string
	PrimeiraConsulta bool
}

// BookAppointment validates the request, re-checks availability at write time
// and inserts the appointment.
//
// The availability re-check never trusts an earlier read: the client's read
// and this write are separated by unbounded time. Even so, two concurrent
// requests can both pass the re-check; the partial unique index on
// (data_selecionada, horario_selecionado) then lets exactly one insert
// through, and the loser gets ErrSlotUnavailable.
func BookAppointment(db *gorm.DB, cfg *models.ScheduleConfig, req BookingRequest) (*models.Appointment, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	available, err := ComputeAvailableSlots(db, cfg, req.Data)
	if err != nil {
		return nil, err
	}
	if !containsSlot(available, req.Horario) {
		return nil, ErrSlotUnavailable
	}

	apt := &models.Appointment{
		Nome:               strings.TrimSpace(req.Nome),
		Email:              strings.TrimSpace(req.Email),
		Telefone:           strings.TrimSpace(req.Telefone),
		DataSelecionada:    CivilDate(req.Data),
		HorarioSelecionado: req.Horario,
		Modalidade:         req.Modalidade,
		Status:             models.AppointmentStatusAgendado,
		PrimeiraConsulta:   req.PrimeiraConsulta,
		Mensagem:           req.Mensagem,
	}

	if err := db.Create(apt).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	return apt, nil
}

func validateBookingRequest(req BookingRequest) error {
	if strings.TrimSpace(req.Nome) == "" {
		return NewValidationError("nome é obrigatório")
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return NewValidationError("email válido é obrigatório")
	}
	if strings.TrimSpace(req.Telefone) == "" {
		return NewValidationError("telefone é obrigatório")
	}
	if req.Data.IsZero() {
		return NewValidationError("data é obrigatória")
	}
	if !models.IsValidTimeSlot(req.Horario) {
		return NewValidationError("horário deve estar no formato HH:MM")
	}
	if !models.IsValidModalidade(req.Modalidade) {
		return NewValidationError("modalidade deve ser %s ou %s", models.ModalidadePresencial, models.ModalidadeOnline)
	}
	return nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// isDuplicateKey detects a uniqueness violation from the storage layer.
// The string check covers connections opened without GORM error translation
// (the in-memory test databases).
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
