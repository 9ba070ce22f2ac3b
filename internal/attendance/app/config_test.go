package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "attendance.db", cfg.DatabaseFile)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ATTENDANCE_DATABASE_FILE", "/tmp/att.db")
	t.Setenv("ATTENDANCE_SESSION_TTL", "30m")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "text")

	cfg := LoadConfig()

	require.Equal(t, "/tmp/att.db", cfg.DatabaseFile)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfigIgnoresGarbageValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("ATTENDANCE_SESSION_TTL", "soon")

	cfg := LoadConfig()

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
}
