package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		viper.Reset()
	})
	viper.Reset()
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/tasks.txt", cfg.Storage.Path)
	assert.Equal(t, "Asia/Singapore", cfg.DateMath.Timezone)
	assert.Equal(t, "Bye. Hope to see you again soon!", cfg.UI.Goodbye)
	assert.Equal(t, 60, cfg.RateLimit.PerMin)
	assert.Equal(t, time.Hour, cfg.GoogleCalendar.EventDuration)
	assert.False(t, cfg.GoogleCalendar.Enabled)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := chdirTemp(t)
	yaml := []byte("storage:\n  path: /tmp/mine.txt\ntelegram:\n  bot_token: ${MY_BOT_TOKEN}\nui:\n  welcome: hi\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))
	t.Setenv("MY_BOT_TOKEN", "123:abc")
	t.Setenv("DATEMATH_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/mine.txt", cfg.Storage.Path)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "hi", cfg.UI.Welcome)
	assert.Equal(t, "UTC", cfg.DateMath.Timezone)
}

func TestLoad_CalendarNeedsCredentials(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GOOGLE_CALENDAR_ENABLED", "true")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_TelegramSecretToken(t *testing.T) {
	chdirTemp(t)
	t.Setenv("MY_WEBHOOK_SECRET", "abc_DEF-123")
	t.Setenv("TELEGRAM_SECRET_TOKEN", "${MY_WEBHOOK_SECRET}")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "abc_DEF-123", cfg.Telegram.SecretToken)

	viper.Reset()
	t.Setenv("TELEGRAM_SECRET_TOKEN", "not allowed!")
	_, err = Load()
	assert.Error(t, err)
}
