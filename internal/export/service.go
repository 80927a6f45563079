package export

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
)

const sheet = "Resultados"

// Service renders batch entries into report files.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteText writes the plain-text report.
func (s *Service) WriteText(path string, entries []Entry) error {
	start := time.Now()
	if err := WriteText(path, entries); err != nil {
		s.logger.Error("export.text.failed", "path", path, "error", err)
		return err
	}
	s.logger.Info("export.text.ok",
		"path", path,
		"entries", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// WriteXLSX writes the spreadsheet report.
func (s *Service) WriteXLSX(path string, entries []Entry) error {
	start := time.Now()
	b, err := s.BuildXLSX(entries)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "path", path, "error", err)
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		s.logger.Error("export.xlsx.failed", "path", path, "error", err)
		return fmt.Errorf("write xlsx: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		"path", path,
		"rows", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// BuildXLSX returns an XLSX workbook (as bytes) with one row per entry.
func (s *Service) BuildXLSX(entries []Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("export.xlsx.close_error", "error", err)
		}
	}()

	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	_ = f.DeleteSheet("Sheet1")
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Documento",
		"Archivo original",
		"Estado",
		"Renombrado",
		"Páginas",
		"SHA-256",
		"Resultado",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, e := range entries {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, e.Filename)
		write(2, e.OriginalName)
		write(3, string(e.Status))
		if e.Renamed {
			write(4, "sí")
		} else {
			write(4, "no")
		}
		write(5, e.Pages)
		write(6, e.SHA256)
		write(7, e.Result)
	}

	_ = f.SetColWidth(sheet, "A", "B", 36) // names
	_ = f.SetColWidth(sheet, "C", "E", 12)
	_ = f.SetColWidth(sheet, "F", "F", 66) // hash
	_ = f.SetColWidth(sheet, "G", "G", 80) // model reply

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
