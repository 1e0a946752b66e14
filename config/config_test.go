package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults with required env", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("POSTGRES_DSN", "postgres://localhost/todo?sslmode=disable")
		t.Setenv("JWT_SECRET_KEY", "secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.HTTPServer.Port)
		assert.Equal(t, "session", cfg.Cookie.Name)
		assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
		assert.Equal(t, 9, cfg.Reminder.DailyHour)
		assert.Equal(t, time.Minute, cfg.Reminder.ScanInterval)
		assert.Equal(t, "America/New_York", cfg.Reminder.Timezone)
		assert.Equal(t, "todo-images", cfg.Storage.ImageBucket)
		assert.Equal(t, "voice-notes", cfg.Storage.VoiceBucket)
		assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
	})

	t.Run("Env overrides", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("DATABASE_URL", "postgres://override/todo")
		t.Setenv("JWT_SECRET", "s2")
		t.Setenv("REMINDER_DAILY_HOUR", "7")
		t.Setenv("REMINDER_TIMEZONE", "UTC")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "postgres://override/todo", cfg.Postgres.DSN)
		assert.Equal(t, "s2", cfg.JWT.SecretKey)
		assert.Equal(t, 7, cfg.Reminder.DailyHour)
		assert.Equal(t, "UTC", cfg.Reminder.Timezone)
	})

	t.Run("Missing dsn", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("JWT_SECRET_KEY", "secret")

		_, err := Load()
		assert.ErrorContains(t, err, "postgres.dsn")
	})

	t.Run("Invalid daily hour", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("POSTGRES_DSN", "postgres://localhost/todo")
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("REMINDER_DAILY_HOUR", "24")

		_, err := Load()
		assert.ErrorContains(t, err, "daily_hour")
	})
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
