package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MOON_TIMEZONE", "")
	t.Setenv("MOON_LATITUDE", "")
	t.Setenv("MOON_LONGITUDE", "")
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	configPath := filepath.Join(dir, "moon")
	if err := os.MkdirAll(configPath, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.yml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
timezone: Europe/Kyiv
location:
  latitude: 50.45
  longitude: 30.52
random:
  start_year: 1950
  end_year: 2050
`)
	t.Setenv("XDG_CONFIG_HOME", dir)
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Timezone != "Europe/Kyiv" {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, "Europe/Kyiv")
	}
	if !cfg.HasPlace() {
		t.Fatal("HasPlace() = false, want true")
	}
	if *cfg.Location.Latitude != 50.45 {
		t.Errorf("Latitude = %v, want 50.45", *cfg.Location.Latitude)
	}
	if *cfg.Location.Longitude != 30.52 {
		t.Errorf("Longitude = %v, want 30.52", *cfg.Location.Longitude)
	}
	if cfg.Random.StartYear != 1950 || cfg.Random.EndYear != 2050 {
		t.Errorf("Random = %+v, want 1950..2050", cfg.Random)
	}
	if FileUsed() == "" {
		t.Error("FileUsed() should name the config file")
	}
}

func TestEnvVarsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
timezone: Europe/Kyiv
location:
  latitude: 50.45
  longitude: 30.52
`)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("MOON_TIMEZONE", "UTC")
	t.Setenv("MOON_LATITUDE", "-33.87")
	t.Setenv("MOON_LONGITUDE", "151.21")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want %q (env should override)", cfg.Timezone, "UTC")
	}
	if *cfg.Location.Latitude != -33.87 {
		t.Errorf("Latitude = %v, want -33.87 (env should override)", *cfg.Location.Latitude)
	}
	if *cfg.Location.Longitude != 151.21 {
		t.Errorf("Longitude = %v, want 151.21 (env should override)", *cfg.Location.Longitude)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Timezone != "Local" {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, "Local")
	}
	if cfg.HasPlace() {
		t.Error("HasPlace() = true with no location configured")
	}
	if cfg.Random.StartYear != 1900 || cfg.Random.EndYear != 2100 {
		t.Errorf("Random = %+v, want 1900..2100", cfg.Random)
	}
	if FileUsed() != "" {
		t.Errorf("FileUsed() = %q, want empty", FileUsed())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "timezone: [unterminated\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail on malformed YAML")
	}
}

func TestWriteAndReload(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	clearEnv(t)

	lat, lon := 51.48, -0.0015
	cfg := &Config{
		Timezone: "Europe/London",
		Location: LocationConfig{Latitude: &lat, Longitude: &lon},
		Random:   RandomConfig{StartYear: 2000, EndYear: 2030},
	}
	if err := Write(cfg); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "moon", "config.yml")); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Timezone != "Europe/London" {
		t.Errorf("Timezone = %q, want %q", loaded.Timezone, "Europe/London")
	}
	if !loaded.HasPlace() || *loaded.Location.Latitude != lat || *loaded.Location.Longitude != lon {
		t.Errorf("Location = %+v, want %v, %v", loaded.Location, lat, lon)
	}
	if loaded.Random.StartYear != 2000 || loaded.Random.EndYear != 2030 {
		t.Errorf("Random = %+v, want 2000..2030", loaded.Random)
	}
}

func TestValidate(t *testing.T) {
	lat, lon := 45.0, 90.0
	badLat := 95.0
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Timezone: "Local", Random: RandomConfig{1900, 2100}}, false},
		{"named zone", Config{Timezone: "UTC", Random: RandomConfig{1900, 2100}}, false},
		{"unknown zone", Config{Timezone: "Mars/Olympus_Mons", Random: RandomConfig{1900, 2100}}, true},
		{"place", Config{Location: LocationConfig{&lat, &lon}, Random: RandomConfig{1900, 2100}}, false},
		{"half a place", Config{Location: LocationConfig{Latitude: &lat}, Random: RandomConfig{1900, 2100}}, true},
		{"latitude off the globe", Config{Location: LocationConfig{&badLat, &lon}, Random: RandomConfig{1900, 2100}}, true},
		{"years reversed", Config{Random: RandomConfig{2100, 1900}}, true},
		{"widest years", Config{Random: RandomConfig{1, 9999}}, false},
		{"year zero", Config{Random: RandomConfig{0, 2100}}, true},
		{"five digit year", Config{Random: RandomConfig{1900, 10000}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got := configDir(); got != "/custom/config/moon" {
		t.Errorf("configDir() = %q, want %q", got, "/custom/config/moon")
	}
	if got := Path(); got != "/custom/config/moon/config.yml" {
		t.Errorf("Path() = %q, want %q", got, "/custom/config/moon/config.yml")
	}
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "timezone: Europe/Kyiv\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("MOON_TIMEZONE", "UTC")
	t.Setenv("MOON_LATITUDE", "10")
	t.Setenv("MOON_LONGITUDE", "")

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Timezone != "Europe/Kyiv" {
		t.Errorf("Timezone = %q, want %q (env should be ignored)", cfg.Timezone, "Europe/Kyiv")
	}
	if cfg.Location.Latitude != nil {
		t.Errorf("Latitude = %v, want unset", *cfg.Location.Latitude)
	}
}
