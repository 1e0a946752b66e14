package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Persistence
	Postgres PostgresConfig

	// Sessions
	JWT    JWTConfig
	Cookie CookieConfig

	// Smart Todo specifics
	GoogleCalendar GoogleCalendarConfig
	Storage        StorageConfig
	Telegram       TelegramConfig
	Reminder       ReminderConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	ClientID        string
	ClientSecret    string
	RedirectURL     string
	Timezone        string
}

type StorageConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
	PublicBaseURL   string
	ImageBucket     string
	VoiceBucket     string
	MaxUploadMB     int64
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type ReminderConfig struct {
	Enabled        bool
	DailyHour      int
	ScanInterval   time.Duration
	PlatformAlerts bool
	Timezone       string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.AutoMigrate = viper.GetBool("postgres.auto_migrate")

	// Sessions
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.SecretKey = secret
	}
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.ClientID = viper.GetString("google_calendar.client_id")
	cfg.GoogleCalendar.ClientSecret = viper.GetString("google_calendar.client_secret")
	cfg.GoogleCalendar.RedirectURL = viper.GetString("google_calendar.redirect_url")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Object storage
	cfg.Storage.Region = viper.GetString("storage.region")
	cfg.Storage.Endpoint = viper.GetString("storage.endpoint")
	cfg.Storage.AccessKeyID = viper.GetString("storage.access_key_id")
	cfg.Storage.SecretAccessKey = viper.GetString("storage.secret_access_key")
	cfg.Storage.ForcePathStyle = viper.GetBool("storage.force_path_style")
	cfg.Storage.PublicBaseURL = viper.GetString("storage.public_base_url")
	cfg.Storage.ImageBucket = viper.GetString("storage.image_bucket")
	cfg.Storage.VoiceBucket = viper.GetString("storage.voice_bucket")
	cfg.Storage.MaxUploadMB = viper.GetInt64("storage.max_upload_mb")

	// Telegram alerts
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Reminders
	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.DailyHour = viper.GetInt("reminder.daily_hour")
	cfg.Reminder.ScanInterval = viper.GetDuration("reminder.scan_interval")
	cfg.Reminder.PlatformAlerts = viper.GetBool("reminder.platform_alerts")
	cfg.Reminder.Timezone = viper.GetString("reminder.timezone")
	if cfg.Reminder.Timezone == "" {
		cfg.Reminder.Timezone = cfg.GoogleCalendar.Timezone
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.auto_migrate", true)

	viper.SetDefault("jwt.issuer", "smart-todo")
	viper.SetDefault("jwt.ttl", "24h")
	viper.SetDefault("cookie.name", "session")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "America/New_York")

	viper.SetDefault("storage.region", "us-east-1")
	viper.SetDefault("storage.image_bucket", "todo-images")
	viper.SetDefault("storage.voice_bucket", "voice-notes")
	viper.SetDefault("storage.max_upload_mb", 10)

	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.daily_hour", 9)
	viper.SetDefault("reminder.scan_interval", "60s")
	viper.SetDefault("reminder.platform_alerts", false)
}

func validate(cfg *Config) error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if cfg.Reminder.DailyHour < 0 || cfg.Reminder.DailyHour > 23 {
		return fmt.Errorf("reminder.daily_hour must be between 0 and 23, got %d", cfg.Reminder.DailyHour)
	}
	if cfg.Reminder.ScanInterval <= 0 {
		return fmt.Errorf("reminder.scan_interval must be positive")
	}
	if _, err := time.LoadLocation(cfg.Reminder.Timezone); err != nil {
		return fmt.Errorf("invalid reminder.timezone %q: %w", cfg.Reminder.Timezone, err)
	}
	return nil
}
