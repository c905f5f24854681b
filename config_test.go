package rexgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.Nil(t, os.WriteFile(path, []byte("conversion_of_digits: true\nminimum_repetitions: 2\n"), 0644))

	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.True(t, cfg.ConversionOfDigits)
	require.Equal(t, 2, cfg.MinimumRepetitions)

	opts := cfg.Options([]string{"a1"})
	require.Equal(t, []string{"a1"}, opts.Examples)
	require.True(t, opts.ConversionOfDigits)
	require.Equal(t, 2, opts.MinimumRepetitions)
}

func TestGenerateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.Nil(t, GenerateSample(path))

	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.Equal(t, 1, cfg.MinimumRepetitions)
	require.Equal(t, 1, cfg.MinimumSubstringLength)
	require.False(t, cfg.ConversionOfRepetitions)
}

func TestFormatPattern(t *testing.T) {
	require.Equal(t, "^a$", FormatPattern("{{pattern}}", "^a$"))
	require.Equal(t, `grep -P '^a$' file`, FormatPattern("grep -P '{{pattern}}' file", "^a$"))
	require.Equal(t, "^a$", FormatPattern("§pattern§", "^a$"))
}
