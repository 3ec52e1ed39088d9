package timesheet

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/stempel/stempel/internal/config"
)

func testConfig() config.Application {
	return config.Application{
		Timesheet: config.Timesheet{FileName: "timesheet.xlsx", SheetName: "Timesheet"},
		Style:     config.Style{FontFamily: "Times New Roman", FontSize: 12, ColumnPadding: 2},
	}
}

func TestXLSXRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file loads as a header-only sheet", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewXLSXRepository(filepath.Join(dir, "timesheet.xlsx"), testConfig())

		sheet, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, HeaderRow, sheet.MaxRow())
		assert.Equal(t, "Date", sheet.Cell(1, ColDate))

		// loading must not create the file
		_, err = os.Stat(repo.Path())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("save and load round trip", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewXLSXRepository(filepath.Join(dir, "timesheet.xlsx"), testConfig())

		sheet := NewSheet()
		sheet.SetCell(2, ColDate, "2025-03-10")
		sheet.SetCell(2, ColClockIn, "09:00:00")
		sheet.SetCell(2, ColClockOut, "11:30:00")
		sheet.SetCell(2, ColDuration, "2.5 Hours")
		sheet.SetCell(3, ColClockOut, TotalLabel)
		sheet.SetCell(3, ColDuration, "2.5 Hours")

		require.NoError(t, repo.Save(ctx, sheet))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", loaded.Cell(2, ColDate))
		assert.Equal(t, "09:00:00", loaded.Cell(2, ColClockIn))
		assert.Equal(t, "11:30:00", loaded.Cell(2, ColClockOut))
		assert.Equal(t, "2.5 Hours", loaded.Cell(2, ColDuration))
		assert.Equal(t, TotalLabel, loaded.Cell(3, ColClockOut))
		assert.Equal(t, "2.5 Hours", loaded.Cell(3, ColDuration))
	})

	t.Run("save leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewXLSXRepository(filepath.Join(dir, "timesheet.xlsx"), testConfig())

		require.NoError(t, repo.Save(ctx, NewSheet()))

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, file := range files {
			assert.False(t, strings.HasSuffix(file.Name(), ".tmp"), "leftover temp file: %s", file.Name())
		}
	})

	t.Run("columns are fitted to the widest cell plus padding", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewXLSXRepository(filepath.Join(dir, "timesheet.xlsx"), testConfig())

		require.NoError(t, repo.Save(ctx, NewSheet()))

		f, err := excelize.OpenFile(repo.Path())
		require.NoError(t, err)
		defer f.Close()

		// header "Time Clocked-In" is 15 runes wide, plus 2 padding
		width, err := f.GetColWidth("Timesheet", "B")
		require.NoError(t, err)
		assert.Equal(t, 17.0, width)
	})

	t.Run("load fails when the sheet is missing from the workbook", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "timesheet.xlsx")

		f := excelize.NewFile()
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())

		repo := NewXLSXRepository(path, testConfig())
		_, err := repo.Load(ctx)
		require.ErrorContains(t, err, "could not read sheet")
	})

	t.Run("load fails on a corrupt file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "timesheet.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

		repo := NewXLSXRepository(path, testConfig())
		_, err := repo.Load(ctx)
		require.ErrorContains(t, err, "could not open timesheet")
	})
}
