package services

import (
	"fmt"

	"clinica_app_go/models"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Agendamentos"

// BuildAppointmentsWorkbook renders an appointment list as an Excel workbook
// for the admin export endpoint
func BuildAppointmentsWorkbook(appointments []models.Appointment) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Código", "Data", "Horário", "Nome", "Email", "Telefone", "Modalidade", "Status", "Primeira consulta", "Mensagem"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for row, apt := range appointments {
		mensagem := ""
		if apt.Mensagem != nil {
			mensagem = *apt.Mensagem
		}
		primeira := "não"
		if apt.PrimeiraConsulta {
			primeira = "sim"
		}

		values := []interface{}{
			apt.Codigo,
			apt.DataSelecionada.Format("02/01/2006"),
			apt.HorarioSelecionado,
			apt.Nome,
			apt.Email,
			apt.Telefone,
			apt.Modalidade,
			apt.Status,
			primeira,
			mensagem,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// Readable default widths for the contact columns
	if err := f.SetColWidth(exportSheetName, "A", "C", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheetName, "D", "F", 28); err != nil {
		return nil, err
	}

	return f, nil
}
