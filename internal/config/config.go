package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Calendar CalendarConfig
	Keys     map[string][]string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// CalendarConfig holds widget settings. StartOfWeek below zero means "derive
// from the locale".
type CalendarConfig struct {
	Value            string
	Locale           string
	StartOfWeek      int      `mapstructure:"start_of_week"`
	DisabledWeekdays []string `mapstructure:"disabled_weekdays"`
	DisabledDates    []string `mapstructure:"disabled_dates"`
	WeekdaysOnly     bool     `mapstructure:"weekdays_only"`
	WeekendsOnly     bool     `mapstructure:"weekends_only"`
	MinDate          string   `mapstructure:"min_date"`
	MaxDate          string   `mapstructure:"max_date"`
}

// StartOfWeekOverride returns nil when the locale should decide.
func (c CalendarConfig) StartOfWeekOverride() *int {
	if c.StartOfWeek < 0 {
		return nil
	}
	n := c.StartOfWeek
	return &n
}

// Load reads configuration from file and env. Env var overrides use prefix DATEFOCUS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "datefocus", "datefocus.db"))
	v.SetDefault("database.migrations", filepath.Join("internal", "database", "migrations"))
	v.SetDefault("calendar.value", "")
	v.SetDefault("calendar.locale", "")
	v.SetDefault("calendar.start_of_week", -1)
	v.SetDefault("calendar.disabled_weekdays", []string{})
	v.SetDefault("calendar.disabled_dates", []string{})
	v.SetDefault("calendar.weekdays_only", false)
	v.SetDefault("calendar.weekends_only", false)
	v.SetDefault("calendar.min_date", "")
	v.SetDefault("calendar.max_date", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DATEFOCUS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "datefocus"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DATEFOCUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("DATEFOCUS_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "datefocus", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("calendar.value", cfg.Calendar.Value)
	v.Set("calendar.locale", cfg.Calendar.Locale)
	v.Set("calendar.start_of_week", cfg.Calendar.StartOfWeek)
	v.Set("calendar.disabled_weekdays", cfg.Calendar.DisabledWeekdays)
	v.Set("calendar.disabled_dates", cfg.Calendar.DisabledDates)
	v.Set("calendar.weekdays_only", cfg.Calendar.WeekdaysOnly)
	v.Set("calendar.weekends_only", cfg.Calendar.WeekendsOnly)
	v.Set("calendar.min_date", cfg.Calendar.MinDate)
	v.Set("calendar.max_date", cfg.Calendar.MaxDate)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
