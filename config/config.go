package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Discovery-call scheduling window.
	SlotMinutes int    `mapstructure:"SLOT_MINUTES"`
	StartHour   int    `mapstructure:"START_HOUR"`
	EndHour     int    `mapstructure:"END_HOUR"`
	Timezone    string `mapstructure:"TIMEZONE"`

	// Fallback join link used when calendar sync is unavailable or fails.
	MeetingURL string `mapstructure:"MEETING_URL"`

	// Google Calendar integration. Both values must be set for sync to run.
	GCalCalendarID        string `mapstructure:"GCAL_CALENDAR_ID"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`

	// SMTP relay for confirmation and contact emails.
	SMTPHost  string `mapstructure:"SMTP_HOST"`
	SMTPPort  int    `mapstructure:"SMTP_PORT"`
	SMTPUser  string `mapstructure:"SMTP_USER"`
	SMTPPass  string `mapstructure:"SMTP_PASS"`
	FromEmail string `mapstructure:"FROM_EMAIL"`
	ToEmail   string `mapstructure:"TO_EMAIL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SLOT_MINUTES", 20)
	viper.SetDefault("START_HOUR", 10)
	viper.SetDefault("END_HOUR", 17)
	viper.SetDefault("TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("MEETING_URL", "https://meet.google.com")
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SMTPConfigured reports whether the email relay has enough settings to send.
func (c Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

// CalendarConfigured reports whether Google Calendar sync can be attempted.
func (c Config) CalendarConfigured() bool {
	return c.GCalCalendarID != "" && c.GoogleCredentialsFile != ""
}

// SchedulingWindow bundles the immutable slot-generation parameters so they
// can be injected into the scheduling and booking services.
type SchedulingWindow struct {
	SlotMinutes int
	StartHour   int
	EndHour     int
	Timezone    string
}

// Window extracts the scheduling window from the loaded config.
func (c Config) Window() SchedulingWindow {
	return SchedulingWindow{
		SlotMinutes: c.SlotMinutes,
		StartHour:   c.StartHour,
		EndHour:     c.EndHour,
		Timezone:    c.Timezone,
	}
}
