package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.False(t, cfg.Calc.SpouseRadd)
	assert.Equal(t, int32(2), cfg.Calc.AmountPlaces)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FARAID_SERVER_PORT", "9090")
	t.Setenv("FARAID_SERVER_LOG_LEVEL", "debug")
	t.Setenv("FARAID_CALC_SPOUSE_RADD", "true")
	t.Setenv("FARAID_CALC_AMOUNT_PLACES", "4")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.True(t, cfg.Calc.SpouseRadd)
	assert.Equal(t, int32(4), cfg.Calc.AmountPlaces)

	calc := cfg.Calc.Calculator()
	assert.True(t, calc.SpouseRadd)
	assert.Equal(t, int32(4), calc.AmountPlaces)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faraid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\ncalc:\n  spouse_radd: true\n"), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.True(t, cfg.Calc.SpouseRadd)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faraid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600))
	t.Setenv("FARAID_SERVER_PORT", "6060")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port out of range", map[string]string{"FARAID_SERVER_PORT": "70000"}},
		{"unknown log level", map[string]string{"FARAID_SERVER_LOG_LEVEL": "loud"}},
		{"too many places", map[string]string{"FARAID_CALC_AMOUNT_PLACES": "12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load("")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLogger(t *testing.T) {
	log, err := ServerConfig{LogLevel: "warn"}.Logger()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	_, err = ServerConfig{LogLevel: "shout"}.Logger()
	assert.Error(t, err)
}

func TestCalcConfigValidate(t *testing.T) {
	assert.NoError(t, CalcConfig{AmountPlaces: 0}.Validate())
	assert.NoError(t, CalcConfig{AmountPlaces: 8, SpouseRadd: true}.Validate())

	for _, places := range []int32{-3, 9, 40} {
		err := CalcConfig{AmountPlaces: places}.Validate()
		require.Error(t, err, "places %d", places)
		assert.Contains(t, err.Error(), "AmountPlaces")
	}
}
