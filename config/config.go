package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task assistant
	Storage  StorageConfig
	DateMath DateMathConfig
	UI       UIConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	CORSOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string // empty logs to stderr
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

type RateLimitConfig struct {
	PerMin    int
	Burst     int
	CacheSize int
}

type StorageConfig struct {
	Path string
}

type DateMathConfig struct {
	Timezone string
}

// UIConfig holds the fixed texts of the interactive shells.
type UIConfig struct {
	Welcome string
	Goodbye string
	Divider string
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string // sent to setWebhook and required on every update
	NgrokAPI    string // local ngrok API used to discover WebhookURL when unset
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	EventDuration   time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/task-assistant/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/task-assistant/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.CORSOrigins = viper.GetStringSlice("http_server.cors_origins")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.CacheSize = viper.GetInt("rate_limit.cache_size")

	// Task assistant
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.DateMath.Timezone = viper.GetString("datemath.timezone")
	cfg.UI.Welcome = viper.GetString("ui.welcome")
	cfg.UI.Goodbye = viper.GetString("ui.goodbye")
	cfg.UI.Divider = viper.GetString("ui.divider")

	// Integrations
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.EventDuration = viper.GetDuration("google_calendar.event_duration")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive, got %d", c.RateLimit.PerMin)
	}
	if s := c.Telegram.SecretToken; s != "" && !secretTokenPattern.MatchString(s) {
		return fmt.Errorf("telegram.secret_token must be 1-256 characters of A-Z, a-z, 0-9, _ or -")
	}
	if c.GoogleCalendar.Enabled && c.GoogleCalendar.CredentialsPath == "" {
		return fmt.Errorf("google_calendar.credentials_path is required when calendar mirroring is enabled")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.max_size_mb", 10)
	viper.SetDefault("logger.max_backups", 3)
	viper.SetDefault("logger.max_age_days", 28)
	viper.SetDefault("rate_limit.per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.cache_size", 10000)

	viper.SetDefault("storage.path", "data/tasks.txt")
	viper.SetDefault("datemath.timezone", "Asia/Singapore")
	viper.SetDefault("ui.welcome", "Hello! I'm Banana \nWhat can I do for you?")
	viper.SetDefault("ui.goodbye", "Bye. Hope to see you again soon!")
	viper.SetDefault("ui.divider", "    ____________________________________________________________")

	viper.SetDefault("google_calendar.enabled", false)
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.event_duration", "1h")
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// secretTokenPattern is the character set Telegram accepts for secret_token.
var secretTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,256}$`)
