package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/testbridge/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultStorePath",
			got:      domain.DefaultStorePath(),
			expected: filepath.Join(".testbridge", "store"),
		},
		{
			name:     "OutputDirPath",
			got:      domain.OutputDirPath(".angular/cache", "21.0.0", "app"),
			expected: ".angular/cache/21.0.0/app/unit-test/output-files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestIsVersionDir(t *testing.T) {
	assert.True(t, domain.IsVersionDir("21.0.0"))
	assert.True(t, domain.IsVersionDir("1.2.3"))
	assert.False(t, domain.IsVersionDir("readme"))
	assert.False(t, domain.IsVersionDir("1.2"))
	assert.False(t, domain.IsVersionDir("1.2.3-rc.1"))
	assert.False(t, domain.IsVersionDir("v1.2.3"))
}

func TestNewestVersion(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		order domain.VersionOrder
		want  string
		found bool
	}{
		{
			name:  "ignores non-version siblings",
			names: []string{"1.2.3", "readme", "2.0.0"},
			order: domain.OrderLexical,
			want:  "2.0.0",
			found: true,
		},
		{
			name:  "no candidates",
			names: []string{"readme", "angular-webpack"},
			order: domain.OrderLexical,
			found: false,
		},
		{
			name:  "empty",
			order: domain.OrderLexical,
			found: false,
		},
		{
			// Lexical order: "10.0.0" > "1.0.0" since '.' sorts before '0'.
			name:  "lexical picks 10.0.0 over 1.0.0",
			names: []string{"1.0.0", "10.0.0"},
			order: domain.OrderLexical,
			want:  "10.0.0",
			found: true,
		},
		{
			// Lexical order keeps the known mis-ordering of two-digit majors.
			name:  "lexical picks 9.0.0 over 10.0.0",
			names: []string{"9.0.0", "10.0.0"},
			order: domain.OrderLexical,
			want:  "9.0.0",
			found: true,
		},
		{
			name:  "numeric picks 10.0.0 over 9.0.0",
			names: []string{"9.0.0", "10.0.0"},
			order: domain.OrderNumeric,
			want:  "10.0.0",
			found: true,
		},
		{
			name:  "numeric ignores leading zeros",
			names: []string{"02.0.0", "1.9.9"},
			order: domain.OrderNumeric,
			want:  "02.0.0",
			found: true,
		},
		{
			name:  "numeric zero-padded minor",
			names: []string{"1.010.0", "1.9.0"},
			order: domain.OrderNumeric,
			want:  "1.010.0",
			found: true,
		},
		{
			name:  "numeric compares minor components",
			names: []string{"21.2.0", "21.10.0"},
			order: domain.OrderNumeric,
			want:  "21.10.0",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := domain.NewestVersion(tt.names, tt.order)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersionOrder(t *testing.T) {
	o, err := domain.ParseVersionOrder("")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderLexical, o)

	o, err = domain.ParseVersionOrder("Numeric")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderNumeric, o)

	_, err = domain.ParseVersionOrder("semver")
	require.ErrorIs(t, err, domain.ErrInvalidVersionOrder)
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]domain.Strategy{
		"":       domain.StrategyMtime,
		"mtime":  domain.StrategyMtime,
		"HASH":   domain.StrategyHash,
		"always": domain.StrategyAlways,
	} {
		got, err := domain.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseStrategy("on-change")
	require.ErrorIs(t, err, domain.ErrInvalidStrategy)
}

func TestRebuildOutcome_Succeeded(t *testing.T) {
	assert.True(t, domain.RebuildOutcome{}.Succeeded())
	assert.False(t, domain.RebuildOutcome{ExitCode: 1}.Succeeded())
	assert.False(t, domain.RebuildOutcome{TimedOut: true}.Succeeded())
}

func TestSources(t *testing.T) {
	assert.True(t, domain.IsSkippedDir("node_modules"))
	assert.True(t, domain.IsSkippedDir(".git"))
	assert.False(t, domain.IsSkippedDir("src"))

	exts := domain.DefaultExtensions()
	assert.True(t, domain.HasWatchedExtension("app.component.scss", exts))
	assert.False(t, domain.HasWatchedExtension("logo.svg", exts))
	assert.False(t, domain.HasWatchedExtension("main.ts", nil))
}
