package cmd

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/MuhammadAbdulBari/moon-phase/internal/config"
	"github.com/MuhammadAbdulBari/moon-phase/internal/exitcode"
	"github.com/MuhammadAbdulBari/moon-phase/internal/output"
	"github.com/spf13/cobra"
)

var configDryRun bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change moon's configuration",
	Long: `Show or change the settings stored in the config file.

Keys:
  timezone            IANA timezone dates are read in, or "Local"
  location.latitude   observing latitude for sunrise and sunset
  location.longitude  observing longitude for sunrise and sunset
  random.start_year   first year random dates are drawn from
  random.end_year     last year random dates are drawn from

MOON_TIMEZONE, MOON_LATITUDE and MOON_LONGITUDE override the file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE [KEY VALUE...]",
	Short: "Save one or more settings",
	Example: `  moon config set timezone Europe/Kyiv
  moon config set location.latitude 50.45 location.longitude 30.52`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("accepts KEY VALUE pairs, received %d arg(s)", len(args))
		}
		return nil
	},
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY...",
	Short: "Reset settings to their defaults",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConfigUnset,
}

func init() {
	configSetCmd.Flags().BoolVar(&configDryRun, "dry-run", false, "Show what would change without saving")
	configUnsetCmd.Flags().BoolVar(&configDryRun, "dry-run", false, "Show what would change without saving")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

// configView is the JSON form of a configuration.
type configView struct {
	File      string   `json:"file,omitempty"`
	Timezone  string   `json:"timezone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	StartYear int      `json:"random_start_year"`
	EndYear   int      `json:"random_end_year"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := current.cfg
	if cfg == nil {
		return exitcode.General("configuration not loaded", nil)
	}
	w := cmd.OutOrStdout()

	if output.IsJSON(outputFormat) {
		return output.JSON(w, configView{
			File:      config.FileUsed(),
			Timezone:  cfg.Timezone,
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
			StartYear: cfg.Random.StartYear,
			EndYear:   cfg.Random.EndYear,
		})
	}

	file := config.FileUsed()
	if file == "" {
		file = output.Dim(config.Path() + " (not created)")
	}

	d := output.NewDetailWriter(w, "CONFIG", file)
	fields := make([]output.KeyValue, 0, len(config.Keys))
	for _, key := range config.Keys {
		fields = append(fields, output.KV(key, configValue(cfg, key)))
	}
	d.Fields(fields)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.Redf("Invalid: %s", err))
	}
	return nil
}

// configValue returns the display form of one setting.
func configValue(cfg *config.Config, key string) string {
	switch key {
	case "timezone":
		return cfg.Timezone
	case "location.latitude":
		return formatCoordinate(cfg.Location.Latitude)
	case "location.longitude":
		return formatCoordinate(cfg.Location.Longitude)
	case "random.start_year":
		return strconv.Itoa(cfg.Random.StartYear)
	case "random.end_year":
		return strconv.Itoa(cfg.Random.EndYear)
	}
	return output.DetailMissing
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return output.DetailMissing
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// applySetting parses value for key and stores it in cfg.
func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "timezone":
		cfg.Timezone = value
	case "location.latitude", "location.longitude":
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s must be a number, got %q", key, value)
		}
		if key == "location.latitude" {
			cfg.Location.Latitude = &f
		} else {
			cfg.Location.Longitude = &f
		}
	case "random.start_year", "random.end_year":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s must be a whole year, got %q", key, value)
		}
		if key == "random.start_year" {
			cfg.Random.StartYear = n
		} else {
			cfg.Random.EndYear = n
		}
	default:
		return fmt.Errorf("unknown key %q (valid keys: %s)", key, strings.Join(config.Keys, ", "))
	}
	return nil
}

// resetSetting restores key to its default.
func resetSetting(cfg *config.Config, key string) error {
	switch key {
	case "timezone":
		cfg.Timezone = "Local"
	case "location.latitude":
		cfg.Location.Latitude = nil
	case "location.longitude":
		cfg.Location.Longitude = nil
	case "random.start_year":
		cfg.Random.StartYear = 1900
	case "random.end_year":
		cfg.Random.EndYear = 2100
	default:
		return fmt.Errorf("unknown key %q (valid keys: %s)", key, strings.Join(config.Keys, ", "))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	return changeConfig(cmd, func(cfg *config.Config) ([]string, error) {
		var keys []string
		for i := 0; i < len(args); i += 2 {
			if err := applySetting(cfg, args[i], args[i+1]); err != nil {
				return nil, err
			}
			keys = append(keys, args[i])
		}
		return keys, nil
	})
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	return changeConfig(cmd, func(cfg *config.Config) ([]string, error) {
		for _, key := range args {
			if err := resetSetting(cfg, key); err != nil {
				return nil, err
			}
		}
		return args, nil
	})
}

// changeConfig loads the config file without environment or flag
// overrides applied, lets edit change it, validates the result and saves
// it unless --dry-run is set.
func changeConfig(cmd *cobra.Command, edit func(cfg *config.Config) ([]string, error)) error {
	cfg, err := config.LoadFile()
	if err != nil {
		return exitcode.General("loading config", err)
	}
	before := *cfg

	keys, err := edit(cfg)
	if err != nil {
		return exitcode.Usage(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return exitcode.Usagef("invalid config: %s", err)
	}

	var changes []output.Change
	for _, key := range config.Keys {
		if !slices.Contains(keys, key) {
			continue
		}
		oldVal, newVal := configValue(&before, key), configValue(cfg, key)
		if oldVal == newVal {
			continue
		}
		changes = append(changes, output.Change{Key: key, Old: oldVal, New: newVal})
	}

	w := cmd.OutOrStdout()
	path := config.Path()
	if len(changes) == 0 {
		fmt.Fprintln(w, "Nothing to change.")
		return nil
	}
	if configDryRun {
		output.DryRun(w, fmt.Sprintf("Would update %s:", path), changes)
		return nil
	}

	if err := config.Write(cfg); err != nil {
		return exitcode.General("saving config", err)
	}
	logf(cmd, "→ wrote %s\n", path)
	output.ChangeList(w, fmt.Sprintf("Updated %s:", path), changes)
	return nil
}
