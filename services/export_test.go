package services

import (
	"testing"
	"time"

	"clinica_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildAppointmentsWorkbook(t *testing.T) {
	mensagem := "Primeira vez na clínica"
	appointments := []models.Appointment{
		{
			Codigo:             "AGD-AAAA1111",
			Nome:               "Maria Silva",
			Email:              "maria@example.com",
			Telefone:           "11 99999-0000",
			DataSelecionada:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			HorarioSelecionado: "09:00",
			Modalidade:         models.ModalidadePresencial,
			Status:             models.AppointmentStatusConfirmado,
			PrimeiraConsulta:   true,
			Mensagem:           &mensagem,
		},
		{
			Codigo:             "AGD-BBBB2222",
			Nome:               "João Souza",
			Email:              "joao@example.com",
			Telefone:           "11 98888-7777",
			DataSelecionada:    time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
			HorarioSelecionado: "14:00",
			Modalidade:         models.ModalidadeOnline,
			Status:             models.AppointmentStatusAgendado,
		},
	}

	workbook, err := BuildAppointmentsWorkbook(appointments)
	assert.NoError(t, err)
	defer workbook.Close()

	// Header row
	header, err := workbook.GetCellValue("Agendamentos", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Código", header)

	// First data row
	codigo, err := workbook.GetCellValue("Agendamentos", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "AGD-AAAA1111", codigo)

	date, err := workbook.GetCellValue("Agendamentos", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "07/09/2026", date)

	primeira, err := workbook.GetCellValue("Agendamentos", "I2")
	assert.NoError(t, err)
	assert.Equal(t, "sim", primeira)

	// Second data row
	modalidade, err := workbook.GetCellValue("Agendamentos", "G3")
	assert.NoError(t, err)
	assert.Equal(t, "online", modalidade)

	rows, err := workbook.GetRows("Agendamentos")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestBuildAppointmentsWorkbookEmpty(t *testing.T) {
	workbook, err := BuildAppointmentsWorkbook(nil)
	assert.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Agendamentos")
	assert.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
