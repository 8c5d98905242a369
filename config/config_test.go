package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("row_tolerance: 3.5\nworkers: 4\n"))
	require.NoError(t, err)
	require.Equal(t, 3.5, cfg.RowTolerance)
	require.Equal(t, 4, cfg.Workers)

	def := Default()
	require.Equal(t, def.HeaderMargin, cfg.HeaderMargin)
	require.Equal(t, def.MinRectWidth, cfg.MinRectWidth)
	require.Equal(t, def.MinHeaders, cfg.MinHeaders)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("row_tolerence: 3\n"))
	require.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tolerance", "row_tolerance: 0\n"},
		{"negative margin", "header_margin: -1\n"},
		{"too many headers", "min_headers: 7\n"},
		{"no workers", "workers: 0\n"},
		{"negative slack", "rect_slack: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalid), "expected ErrInvalid, got %v", err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "examtable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_headers: 4\ndate_slack: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.MinHeaders)
	require.Equal(t, 3.0, cfg.DateSlack)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
