package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for the booking flow. Handlers map these onto HTTP statuses:
// validation errors to 400, conflicts to 409, gorm.ErrRecordNotFound to 404,
// everything else (including a missing schedule configuration) to 500.
var (
	// ErrSlotUnavailable means the requested slot was taken or excluded between
	// the client's read and the booking write. Retryable after re-querying.
	ErrSlotUnavailable = errors.New("horário não está mais disponível")

	// ErrDuplicateBlock means an active block already covers the same day/date and slot
	ErrDuplicateBlock = errors.New("já existe um bloqueio ativo para este horário")

	// ErrScheduleConfigMissing is a fatal precondition: the singleton
	// configuration record was never seeded.
	ErrScheduleConfigMissing = errors.New("configuração de agenda não encontrada")
)

// ValidationError marks input problems the client must fix before retrying
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
