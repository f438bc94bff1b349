package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level wellwatch configuration.
type Config struct {
	User                string      `mapstructure:"user"`
	TrackingMode        string      `mapstructure:"tracking_mode"`
	ExperienceVariant   string      `mapstructure:"experience_variant"`
	ReadinessLevel      string      `mapstructure:"readiness_level"`
	ComBBarrier         string      `mapstructure:"comb_barrier"`
	ShowGlucoseAdvanced bool        `mapstructure:"show_glucose_advanced"`
	GlucoseZone         GlucoseZone `mapstructure:"glucose_zone"`

	// ScoringURL, when set, points at the remote scoring service whose
	// output supersedes the local engine.
	ScoringURL            string `mapstructure:"scoring_url"`
	ScoringTimeoutSeconds int    `mapstructure:"scoring_timeout_seconds"`

	CacheTTLHours int    `mapstructure:"cache_ttl_hours"`
	Output        Output `mapstructure:"output"`
}

// GlucoseZone is the target reading range used by the signal aggregator.
type GlucoseZone struct {
	Low  float64 `mapstructure:"low"`
	High float64 `mapstructure:"high"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("user", DefaultUser)
	v.SetDefault("tracking_mode", DefaultTrackingMode)
	v.SetDefault("experience_variant", DefaultExperienceVariant)
	v.SetDefault("readiness_level", DefaultReadinessLevel)
	v.SetDefault("comb_barrier", DefaultBarrier)
	v.SetDefault("show_glucose_advanced", false)
	v.SetDefault("glucose_zone.low", DefaultGlucoseZone.Low)
	v.SetDefault("glucose_zone.high", DefaultGlucoseZone.High)
	v.SetDefault("scoring_url", "")
	v.SetDefault("scoring_timeout_seconds", DefaultScoringTimeoutSeconds)
	v.SetDefault("cache_ttl_hours", DefaultCacheTTLHours)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
