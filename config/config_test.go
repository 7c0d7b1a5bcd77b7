package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/campuslib/lending-service/config"
)

// Options must win over the env defaults, so a caller can pin a timeout or
// interval regardless of the `default:` tags.
func TestNewConfig_OptionsWinOverDefaults(t *testing.T) {
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.WarnLevel),
		config.WithWriteTimeout(42*time.Second),
		config.WithSweepInterval(time.Hour),
	)

	require.Equal(t, zapcore.WarnLevel, cfg.Log.LogLevel)
	require.Equal(t, 42*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, time.Hour, cfg.SweepEvery)

	// untouched fields keep their env defaults
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 300*time.Second, cfg.SettingsTTL)
}
