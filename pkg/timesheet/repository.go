package timesheet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/stempel/stempel/internal/config"
)

type Repository interface {
	Load(ctx context.Context) (*Sheet, error)
	Save(ctx context.Context, sheet *Sheet) error
	Path() string
}

// XLSXRepository persists the timesheet as a single-sheet xlsx workbook.
// Save rewrites the whole workbook: every cell gets the base font, the
// header keeps its thick bottom border, and column widths are refitted to
// the widest cell plus the configured padding.
type XLSXRepository struct {
	path      string
	sheetName string
	style     config.Style
}

func NewXLSXRepository(path string, cfg config.Application) *XLSXRepository {
	return &XLSXRepository{
		path:      path,
		sheetName: cfg.Timesheet.SheetName,
		style:     cfg.Style,
	}
}

func (r *XLSXRepository) Path() string {
	return r.path
}

// Load reads the workbook into a Sheet. A missing file is not an error: the
// first punch in a workspace starts from a header-only sheet and the save
// at the end of the punch creates the file.
func (r *XLSXRepository) Load(ctx context.Context) (*Sheet, error) {
	if _, err := os.Stat(r.path); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("No timesheet at %s, starting a new one", r.path)
			return NewSheet(), nil
		}
		return nil, fmt.Errorf("could not access timesheet file: %w", err)
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("could not open timesheet file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheetName)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", r.sheetName, err)
	}

	sheet := &Sheet{}
	for i, row := range rows {
		for j, value := range row {
			if value != "" {
				sheet.SetCell(i+1, j+1, value)
			}
		}
	}
	if sheet.MaxRow() == 0 {
		return NewSheet(), nil
	}
	return sheet, nil
}

func (r *XLSXRepository) Save(ctx context.Context, sheet *Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", r.sheetName); err != nil {
		return fmt.Errorf("could not name sheet: %w", err)
	}

	baseFont := &excelize.Font{Family: r.style.FontFamily, Size: r.style.FontSize}
	baseStyle, err := f.NewStyle(&excelize.Style{Font: baseFont})
	if err != nil {
		return fmt.Errorf("could not create cell style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   baseFont,
		Border: []excelize.Border{{Type: "bottom", Style: 5}}, // thick
	})
	if err != nil {
		return fmt.Errorf("could not create header style: %w", err)
	}

	for row := 1; row <= sheet.MaxRow(); row++ {
		for col := 1; col <= sheet.NumCols(); col++ {
			value := sheet.Cell(row, col)
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return fmt.Errorf("could not resolve cell name: %w", err)
			}
			if err := f.SetCellStr(r.sheetName, cell, value); err != nil {
				return fmt.Errorf("could not write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetCellStyle(r.sheetName, "A1", "D1", headerStyle); err != nil {
		return fmt.Errorf("could not style header: %w", err)
	}
	if sheet.MaxRow() > HeaderRow {
		if err := f.SetCellStyle(r.sheetName, "A2", fmt.Sprintf("D%d", sheet.MaxRow()), baseStyle); err != nil {
			return fmt.Errorf("could not style cells: %w", err)
		}
	}

	if err := r.fitColumns(f, sheet); err != nil {
		return err
	}

	return r.atomicSave(f)
}

// fitColumns sets each column to the width of its widest cell plus padding.
func (r *XLSXRepository) fitColumns(f *excelize.File, sheet *Sheet) error {
	for col := 1; col <= sheet.NumCols(); col++ {
		widest := 0
		for row := 1; row <= sheet.MaxRow(); row++ {
			if length := utf8.RuneCountInString(sheet.Cell(row, col)); length > widest {
				widest = length
			}
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return fmt.Errorf("could not resolve column name: %w", err)
		}
		width := float64(widest + r.style.ColumnPadding)
		if err := f.SetColWidth(r.sheetName, name, name, width); err != nil {
			return fmt.Errorf("could not set column width: %w", err)
		}
	}
	return nil
}

// atomicSave writes to a uniquely named temp file next to the target and
// renames it into place, so a failed write never truncates the timesheet.
func (r *XLSXRepository) atomicSave(f *excelize.File) error {
	dir := filepath.Dir(r.path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s-%s.tmp", filepath.Base(r.path), uuid.NewString()))

	// f.SaveAs rejects the .tmp extension, so stream the workbook to the
	// temp file with f.Write instead.
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not write timesheet file: %w", err)
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return fmt.Errorf("could not write timesheet file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("could not write timesheet file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			log.Warnf("Failed to clean up temp file %s: %v", tmp, removeErr)
		}
		return fmt.Errorf("could not replace timesheet file: %w", err)
	}
	return nil
}
