package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply when no file exists", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "stempel.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "timesheet.xlsx", cfg.Timesheet.FileName)
		assert.Equal(t, "Timesheet", cfg.Timesheet.SheetName)
		assert.Equal(t, "Times New Roman", cfg.Style.FontFamily)
		assert.Equal(t, 12.0, cfg.Style.FontSize)
		assert.Equal(t, 2, cfg.Style.ColumnPadding)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stempel.yaml")
		content := "timesheet:\n  filename: hours.xlsx\nstyle:\n  fontsize: 10\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "hours.xlsx", cfg.Timesheet.FileName)
		assert.Equal(t, 10.0, cfg.Style.FontSize)
		// untouched keys keep their defaults
		assert.Equal(t, "Timesheet", cfg.Timesheet.SheetName)
	})

	t.Run("environment overrides file and defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stempel.yaml")
		content := "timesheet:\n  filename: hours.xlsx\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		t.Setenv("STEMPEL_TIMESHEET_FILENAME", "tracked.xlsx")
		t.Setenv("STEMPEL_STYLE_COLUMNPADDING", "4")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "tracked.xlsx", cfg.Timesheet.FileName)
		assert.Equal(t, 4, cfg.Style.ColumnPadding)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stempel.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timesheet: ["), 0o644))

		_, err := Load(path)
		require.Error(t, err)
	})
}
