package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tykimikk/ndash-extract/internal/repository"
)

// Service is a tiny façade over the lab repository that produces XLSX bytes
// for lab history exports.
type Service struct {
	labs   repository.LabResultRepository
	logger *slog.Logger
}

func NewService(labs repository.LabResultRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{labs: labs, logger: logger}
}

// ExportLabResultsXLSX returns an XLSX workbook (as bytes) with the full lab
// history for one patient, ordered by test date then test name.
func (s *Service) ExportLabResultsXLSX(ctx context.Context, patientID uuid.UUID) ([]byte, error) {
	start := time.Now()

	recs, err := s.labs.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("query lab results: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Lab Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Test Date",
		"Category",
		"Test Name",
		"Result",
		"Unit",
		"Reference Range",
		"Status",
		"Severity",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !r.TestDate.IsZero() {
			write(1, r.TestDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, string(r.Category))
		write(3, r.TestName)
		write(4, r.Result)
		write(5, r.Unit)
		write(6, r.ReferenceRange)
		write(7, string(r.Status))
		write(8, string(r.Severity))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 20) // category
	_ = f.SetColWidth(sheet, "C", "C", 30) // test name
	_ = f.SetColWidth(sheet, "D", "E", 12) // result, unit
	_ = f.SetColWidth(sheet, "F", "F", 20) // reference range
	_ = f.SetColWidth(sheet, "G", "H", 12) // status, severity

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"patient_id", patientID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
