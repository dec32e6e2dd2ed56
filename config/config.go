package config

import (
	"log"

	"staycation/models"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisBookingDB       int    `mapstructure:"REDIS_BOOKING_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Check-in reminders.
	RemindersEnabled  bool `mapstructure:"REMINDERS_ENABLED"`
	ReminderLeadHours int  `mapstructure:"REMINDER_LEAD_HOURS"`

	// Booking rules.
	MinBookingHours         int     `mapstructure:"BOOKING_MIN_HOURS"`
	MaxHourlyBookingHours   int     `mapstructure:"BOOKING_MAX_HOURLY_HOURS"`
	LateCutoffHour          int     `mapstructure:"BOOKING_LATE_CUTOFF_HOUR"`
	MaxEndHour              int     `mapstructure:"BOOKING_MAX_END_HOUR"`
	CleaningHours           int     `mapstructure:"BOOKING_CLEANING_HOURS"`
	EffectiveAvailableHours int     `mapstructure:"BOOKING_EFFECTIVE_AVAILABLE_HOURS"`
	MultiDayPremium         float64 `mapstructure:"BOOKING_MULTI_DAY_PREMIUM"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	rules := models.DefaultBookingRules()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "staycation")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_BOOKING_DB", 0)
	v.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	v.SetDefault("REMINDERS_ENABLED", true)
	v.SetDefault("REMINDER_LEAD_HOURS", 24)

	v.SetDefault("BOOKING_MIN_HOURS", rules.MinBookingHours)
	v.SetDefault("BOOKING_MAX_HOURLY_HOURS", rules.MaxHourlyBookingHours)
	v.SetDefault("BOOKING_LATE_CUTOFF_HOUR", rules.LateCutoffHour)
	v.SetDefault("BOOKING_MAX_END_HOUR", rules.MaxEndHour)
	v.SetDefault("BOOKING_CLEANING_HOURS", rules.CleaningHours)
	v.SetDefault("BOOKING_EFFECTIVE_AVAILABLE_HOURS", rules.EffectiveAvailableHours)
	v.SetDefault("BOOKING_MULTI_DAY_PREMIUM", rules.MultiDayPremium)
}

// Load reads configuration from the given viper instance into a Config.
// Environment variables win over config.yaml, which wins over defaults.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Rules builds the canonical booking rule set from configuration.
func (c Config) Rules() models.BookingRules {
	return models.BookingRules{
		MinBookingHours:         c.MinBookingHours,
		MaxHourlyBookingHours:   c.MaxHourlyBookingHours,
		LateCutoffHour:          c.LateCutoffHour,
		MaxEndHour:              c.MaxEndHour,
		CleaningHours:           c.CleaningHours,
		EffectiveAvailableHours: c.EffectiveAvailableHours,
		MultiDayPremium:         c.MultiDayPremium,
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
