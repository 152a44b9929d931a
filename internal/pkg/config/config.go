package config

import (
	"fmt"
	"time"

	"roomboard/internal/domain/schedule"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (window bounds, thresholds, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Schedule ScheduleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// ScheduleConfig carries the default business window for rooms that do not
// override it, plus the "heavily booked" thresholds. AllHours replaces the
// source system's developer-mode bypass: it swaps in a 00:00-24:00 window
// instead of mutating hidden global state.
type ScheduleConfig struct {
	OpenTime               string  `envconfig:"SCHEDULE_OPEN_TIME" default:"08:00"`
	CloseTime              string  `envconfig:"SCHEDULE_CLOSE_TIME" default:"20:00"`
	GranularityMinutes     int     `envconfig:"SCHEDULE_GRANULARITY_MINUTES" default:"15"`
	DefaultDurationMinutes int     `envconfig:"SCHEDULE_DEFAULT_DURATION_MINUTES" default:"30"`
	HeavyBookingCount      int     `envconfig:"SCHEDULE_HEAVY_BOOKING_COUNT" default:"3"`
	HeavyLoadFraction      float64 `envconfig:"SCHEDULE_HEAVY_LOAD_FRACTION" default:"0.66"`
	AllHours               bool    `envconfig:"SCHEDULE_ALL_HOURS" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// DefaultWindow builds the configured default business window, validated by
// the engine's own constructor so a bad deployment fails at startup.
func (c ScheduleConfig) DefaultWindow() (schedule.BusinessWindow, error) {
	open, close := c.OpenTime, c.CloseTime
	if c.AllHours {
		open, close = "00:00", "24:00"
	}
	return schedule.NewBusinessWindow(open, close, c.GranularityMinutes, c.DefaultDurationMinutes)
}

func (c ScheduleConfig) Thresholds() schedule.LoadThresholds {
	return schedule.LoadThresholds{
		HeavyBookingCount: c.HeavyBookingCount,
		HeavyLoadFraction: c.HeavyLoadFraction,
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.Schedule.DefaultWindow(); err != nil {
		return Config{}, fmt.Errorf("invalid schedule config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Schedule: ScheduleConfig{
			OpenTime:               "08:00",
			CloseTime:              "20:00",
			GranularityMinutes:     15,
			DefaultDurationMinutes: 30,
			HeavyBookingCount:      3,
			HeavyLoadFraction:      0.66,
		},
	}
}
