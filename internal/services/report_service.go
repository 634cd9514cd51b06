package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/medirec/hospital-service/internal/repositories"
)

const reportSheet = "Appointments"

var reportHeader = []string{
	"ID", "Patient", "Doctor", "Specialization", "Date", "Time", "Symptoms", "Status",
}

type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// AppointmentsReport renders every appointment, joined with the patient and
// doctor names, as an xlsx workbook.
func (s *reportService) AppointmentsReport(ctx context.Context) ([]byte, error) {
	details, err := s.repo.Appointment().ListDetails(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(reportSheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, d := range details {
		row := []interface{}{
			d.ID,
			d.PatientName,
			d.DoctorName,
			d.Specialization,
			d.AppointmentDate.String(),
			d.AppointmentTime.String(),
			d.Symptoms,
			string(d.Status),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(reportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	s.logger.Info("Appointments report generated", "rows", len(details))
	return buf.Bytes(), nil
}
