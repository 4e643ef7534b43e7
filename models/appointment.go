package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment status constants
const (
	AppointmentStatusAgendado   = "agendado"
	AppointmentStatusConfirmado = "confirmado"
	AppointmentStatusCancelado  = "cancelado"
	AppointmentStatusRealizado  = "realizado"
)

// Modality constants
const (
	ModalidadePresencial = "presencial"
	ModalidadeOnline     = "online"
)

// Appointment is one confirmed booking occupying a single (date, time slot) pair.
// At most one non-cancelled appointment may exist per pair; a partial unique
// index on (data_selecionada, horario_selecionado) enforces that at the
// storage layer (see services.EnsureAppointmentSlotIndex).
type Appointment struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Contact info
	Nome     string `gorm:"size:200;not null" json:"nome"`
	Email    string `gorm:"size:255;not null;index" json:"email"`
	Telefone string `gorm:"size:30;not null" json:"telefone"`

	// Schedule
	DataSelecionada    time.Time `gorm:"type:date;index;not null" json:"dataSelecionada"`
	HorarioSelecionado string    `gorm:"size:5;not null" json:"horarioSelecionado"`
	Modalidade         string    `gorm:"size:20;not null" json:"modalidade"`

	// Status
	Status      string     `gorm:"size:20;default:'agendado';index" json:"status"`
	CanceladoEm *time.Time `json:"canceladoEm,omitempty"`

	PrimeiraConsulta bool    `json:"primeiraConsulta"`
	Mensagem         *string `gorm:"type:text" json:"mensagem,omitempty"`

	// Unique confirmation code handed to the client (used for lookup/cancellation)
	Codigo string `gorm:"size:20;uniqueIndex;not null" json:"codigo"`
}

// BeforeCreate hook to generate UUID and confirmation code
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Codigo == "" {
		a.Codigo = NewConfirmationCode()
	}
	return nil
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// NewConfirmationCode generates a short, unique, human-readable confirmation code
func NewConfirmationCode() string {
	return "AGD-" + strings.ToUpper(strings.SplitN(uuid.New().String(), "-", 2)[0])
}

// IsValidAppointmentStatus checks if the status is valid
func IsValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentStatusAgendado, AppointmentStatusConfirmado,
		AppointmentStatusCancelado, AppointmentStatusRealizado:
		return true
	}
	return false
}

// IsValidModalidade checks if the modality is valid
func IsValidModalidade(modalidade string) bool {
	return modalidade == ModalidadePresencial || modalidade == ModalidadeOnline
}

// OccupiesSlot reports whether this appointment still holds its (date, slot) pair.
// Cancelled appointments free the slot.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != AppointmentStatusCancelado
}

// IsCancellable checks if the appointment can be cancelled
func (a *Appointment) IsCancellable() bool {
	return a.Status == AppointmentStatusAgendado || a.Status == AppointmentStatusConfirmado
}

// CanTransitionTo reports whether the status lifecycle allows moving to newStatus.
// agendado -> confirmado -> realizado, with cancellation possible until the
// appointment is realized. cancelado and realizado are terminal.
func (a *Appointment) CanTransitionTo(newStatus string) bool {
	switch a.Status {
	case AppointmentStatusAgendado:
		return newStatus == AppointmentStatusConfirmado || newStatus == AppointmentStatusCancelado
	case AppointmentStatusConfirmado:
		return newStatus == AppointmentStatusRealizado || newStatus == AppointmentStatusCancelado
	default:
		return false
	}
}
