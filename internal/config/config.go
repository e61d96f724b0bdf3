// Package config manages moon configuration using Viper and XDG base directories.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/MuhammadAbdulBari/moon-phase/internal/moon"
	"github.com/MuhammadAbdulBari/moon-phase/internal/sky"
	"github.com/spf13/viper"
)

// LocationConfig holds the observing place used for sunrise and sunset.
type LocationConfig struct {
	Latitude  *float64 `mapstructure:"latitude"`
	Longitude *float64 `mapstructure:"longitude"`
}

// RandomConfig bounds the years random dates are drawn from.
type RandomConfig struct {
	StartYear int `mapstructure:"start_year"`
	EndYear   int `mapstructure:"end_year"`
}

// Config holds the complete moon configuration.
type Config struct {
	Timezone string         `mapstructure:"timezone"`
	Location LocationConfig `mapstructure:"location"`
	Random   RandomConfig   `mapstructure:"random"`
}

// Keys lists the settings `moon config set` accepts.
var Keys = []string{
	"timezone",
	"location.latitude",
	"location.longitude",
	"random.start_year",
	"random.end_year",
}

var v *viper.Viper

// Load reads the configuration from the config file and environment variables.
// Environment variables take precedence over config file values.
func Load() (*Config, error) {
	return load(true)
}

// LoadFile reads the configuration from the config file alone, ignoring
// environment variables. Use it before editing and writing the file back.
func LoadFile() (*Config, error) {
	return load(false)
}

func load(withEnv bool) (*Config, error) {
	v = viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())

	if withEnv {
		_ = v.BindEnv("timezone", "MOON_TIMEZONE")
		_ = v.BindEnv("location.latitude", "MOON_LATITUDE")
		_ = v.BindEnv("location.longitude", "MOON_LONGITUDE")
	}

	v.SetDefault("timezone", "Local")
	v.SetDefault("random.start_year", 1900)
	v.SetDefault("random.end_year", 2100)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// FileUsed returns the config file the last Load read, or "" if none was found.
func FileUsed() string {
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// Validate checks that every value can be used.
func (c *Config) Validate() error {
	if _, err := c.TimeLocation(); err != nil {
		return err
	}
	if c.HasPlace() {
		if err := c.Place(time.UTC).Validate(); err != nil {
			return err
		}
	} else if c.Location.Latitude != nil || c.Location.Longitude != nil {
		return fmt.Errorf("location needs both latitude and longitude")
	}
	for _, y := range []int{c.Random.StartYear, c.Random.EndYear} {
		if y < moon.MinYear || y > moon.MaxYear {
			return fmt.Errorf("random year %d out of range [%d, %d]", y, moon.MinYear, moon.MaxYear)
		}
	}
	if c.Random.StartYear > c.Random.EndYear {
		return fmt.Errorf("random.start_year %d is after random.end_year %d", c.Random.StartYear, c.Random.EndYear)
	}
	return nil
}

// TimeLocation resolves the configured timezone name.
func (c *Config) TimeLocation() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// HasPlace reports whether an observing location is configured.
func (c *Config) HasPlace() bool {
	return c.Location.Latitude != nil && c.Location.Longitude != nil
}

// Place returns the configured observing location in loc. It must only be
// called when HasPlace is true.
func (c *Config) Place(loc *time.Location) sky.Place {
	return sky.Place{
		Latitude:  *c.Location.Latitude,
		Longitude: *c.Location.Longitude,
		Location:  loc,
	}
}

// Write persists the given config to the config file.
func Write(cfg *Config) error {
	dir := configDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("timezone", cfg.Timezone)
	if cfg.Location.Latitude != nil {
		v.Set("location.latitude", *cfg.Location.Latitude)
	}
	if cfg.Location.Longitude != nil {
		v.Set("location.longitude", *cfg.Location.Longitude)
	}
	v.Set("random.start_year", cfg.Random.StartYear)
	v.Set("random.end_year", cfg.Random.EndYear)

	return v.WriteConfigAs(Path())
}

// configDir returns the XDG-compliant config directory for moon.
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "moon")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "moon")
}

// Path returns the path Write saves to.
func Path() string {
	return filepath.Join(configDir(), "config.yml")
}
