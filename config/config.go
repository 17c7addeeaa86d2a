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
	Security   SecurityConfig

	// Calendar assistant specifics
	GoogleCalendar GoogleCalendarConfig
	Assistant      AssistantConfig
	Booking        BookingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int // 0 disables the limiter
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SecurityConfig struct {
	APIKey       string
	APIKeyHeader string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type AssistantConfig struct {
	Timezone          string
	BusinessOpenHour  int
	BusinessCloseHour int
	DefaultDuration   time.Duration
	SlotDuration      time.Duration
}

type BookingConfig struct {
	AutoConfirm    bool
	RejectPast     bool
	FetchPadding   time.Duration
	ConflictBuffer time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Security.APIKey = viper.GetString("security.api_key")
	cfg.Security.APIKeyHeader = viper.GetString("security.api_key_header")
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.Security.APIKey = apiKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	if googleToken := viper.GetString("google_calendar_token"); googleToken != "" {
		cfg.GoogleCalendar.TokenPath = googleToken
	}
	if calendarID := viper.GetString("calendar_id"); calendarID != "" {
		cfg.GoogleCalendar.CalendarID = calendarID
	}

	// Assistant
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	if tz := viper.GetString("tz"); tz != "" {
		cfg.Assistant.Timezone = tz
	}
	cfg.Assistant.BusinessOpenHour = viper.GetInt("assistant.business_open_hour")
	cfg.Assistant.BusinessCloseHour = viper.GetInt("assistant.business_close_hour")
	cfg.Assistant.DefaultDuration = viper.GetDuration("assistant.default_duration")
	cfg.Assistant.SlotDuration = viper.GetDuration("assistant.slot_duration")

	// Booking
	cfg.Booking.AutoConfirm = viper.GetBool("booking.auto_confirm")
	cfg.Booking.RejectPast = viper.GetBool("booking.reject_past")
	cfg.Booking.FetchPadding = viper.GetDuration("booking.fetch_padding")
	cfg.Booking.ConflictBuffer = viper.GetDuration("booking.conflict_buffer")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("security.api_key_header", "x-api-key")

	viper.SetDefault("google_calendar.credentials_path", "credentials.json")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("assistant.timezone", "UTC")
	viper.SetDefault("assistant.business_open_hour", 9)
	viper.SetDefault("assistant.business_close_hour", 17)
	viper.SetDefault("assistant.default_duration", "30m")
	viper.SetDefault("assistant.slot_duration", "1h")

	viper.SetDefault("booking.auto_confirm", false)
	viper.SetDefault("booking.reject_past", true)
	viper.SetDefault("booking.fetch_padding", "24h")
	viper.SetDefault("booking.conflict_buffer", "0s")
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.RateLimitPerMin < 0 {
		return fmt.Errorf("http_server.rate_limit_per_min must not be negative")
	}
	if cfg.Security.APIKeyHeader == "" {
		return fmt.Errorf("security.api_key_header is required")
	}

	a := cfg.Assistant
	if a.BusinessOpenHour < 0 || a.BusinessCloseHour > 24 || a.BusinessOpenHour >= a.BusinessCloseHour {
		return fmt.Errorf("invalid business hours %d-%d", a.BusinessOpenHour, a.BusinessCloseHour)
	}
	if a.DefaultDuration <= 0 {
		return fmt.Errorf("assistant.default_duration must be positive")
	}
	if a.SlotDuration <= 0 {
		return fmt.Errorf("assistant.slot_duration must be positive")
	}
	if _, err := time.LoadLocation(a.Timezone); err != nil {
		return fmt.Errorf("invalid assistant.timezone %q: %w", a.Timezone, err)
	}

	if cfg.Booking.FetchPadding < 0 || cfg.Booking.ConflictBuffer < 0 {
		return fmt.Errorf("booking paddings must not be negative")
	}
	return nil
}
