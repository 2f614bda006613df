package application

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-compass/infrastructure/scoring"
	"github.com/ahrav/go-compass/internal/ports"
)

func TestDefaultEngineConfig_IsValid(t *testing.T) {
	cfg := DefaultEngineConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, scoring.MissingExclude, cfg.MissingAnswers)
	assert.Equal(t, scoring.DefaultBinPrecision, cfg.BinPrecision)
	assert.Equal(t, scoring.PositionFixed, cfg.Positioning)
	assert.Equal(t, GroupByParty, cfg.GroupBy)
	assert.Equal(t, "fi", cfg.Locale)
	assert.False(t, cfg.RoundAnswers)
}

func TestEngineConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EngineConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*EngineConfig) {}},
		{name: "neutral policy", mutate: func(c *EngineConfig) { c.MissingAnswers = scoring.MissingNeutral }},
		{name: "union positioning", mutate: func(c *EngineConfig) { c.Positioning = scoring.PositionUnion }},
		{name: "group by city", mutate: func(c *EngineConfig) { c.GroupBy = GroupByCity }},
		{name: "region subtag", mutate: func(c *EngineConfig) { c.Locale = "sv-FI" }},
		{name: "unknown policy", mutate: func(c *EngineConfig) { c.MissingAnswers = "skip" }, wantErr: true},
		{name: "unknown positioning", mutate: func(c *EngineConfig) { c.Positioning = "log" }, wantErr: true},
		{name: "negative precision", mutate: func(c *EngineConfig) { c.BinPrecision = -1 }, wantErr: true},
		{name: "precision too large", mutate: func(c *EngineConfig) { c.BinPrecision = 13 }, wantErr: true},
		{name: "unknown grouping", mutate: func(c *EngineConfig) { c.GroupBy = "region" }, wantErr: true},
		{name: "empty locale", mutate: func(c *EngineConfig) { c.Locale = "" }, wantErr: true},
		{name: "malformed locale", mutate: func(c *EngineConfig) { c.Locale = "not a tag" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEngineConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadConfigFromReader(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		cfg, err := LoadConfigFromReader(strings.NewReader(`
missing_answers: neutral
bin_precision: 3
bin_positioning: union
round_answers: true
group_by: city
locale: sv
`))
		require.NoError(t, err)
		assert.Equal(t, scoring.MissingNeutral, cfg.MissingAnswers)
		assert.Equal(t, 3, cfg.BinPrecision)
		assert.Equal(t, scoring.PositionUnion, cfg.Positioning)
		assert.True(t, cfg.RoundAnswers)
		assert.Equal(t, GroupByCity, cfg.GroupBy)
		assert.Equal(t, "sv", cfg.Locale)
	})

	t.Run("partial document keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfigFromReader(strings.NewReader("bin_precision: 2\n"))
		require.NoError(t, err)
		want := DefaultEngineConfig()
		want.BinPrecision = 2
		assert.Equal(t, want, cfg)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := LoadConfigFromReader(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultEngineConfig(), cfg)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadConfigFromReader(strings.NewReader("bin_precison: 2\n"))
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := LoadConfigFromReader(strings.NewReader("missing_answers: maybe\n"))
		assert.Error(t, err)
	})

	t.Run("failures are config errors", func(t *testing.T) {
		readErr := errors.New("disk unplugged")
		for _, r := range []io.Reader{
			iotest.ErrReader(readErr),
			strings.NewReader("bin_precison: 2\n"),
			strings.NewReader("group_by: street\n"),
		} {
			_, err := LoadConfigFromReader(r)
			var cfgErr *ports.ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, "reader", cfgErr.ConfigKey)
		}

		_, err := LoadConfigFromReader(iotest.ErrReader(readErr))
		assert.ErrorIs(t, err, readErr)
	})
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compass.yaml")
	require.NoError(t, os.WriteFile(path, []byte("group_by: city\n"), 0o600))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, GroupByCity, cfg.GroupBy)

	missing := filepath.Join(dir, "missing.yaml")
	_, err = LoadConfigFromFile(missing)
	require.Error(t, err)
	var cfgErr *ports.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, missing, cfgErr.ConfigKey)
	assert.ErrorIs(t, err, ports.ErrConfigNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("locale: \"!!\"\n"), 0o600))
	_, err = LoadConfigFromFile(bad)
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, bad, cfgErr.ConfigKey)
	assert.NotErrorIs(t, err, ports.ErrConfigNotFound)
}
