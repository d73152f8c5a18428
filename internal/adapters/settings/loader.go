// Package settings loads the tool settings with viper.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
	"go.trai.ch/rapp/internal/core/domain"
	"go.trai.ch/rapp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// EnvPrefix is the prefix of environment variables overriding settings.
const EnvPrefix = "RAPP"

// Loader implements ports.SettingsLoader.
// Precedence: environment, then the settings file, then defaults.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading domain.SettingsFileName.
func NewLoader() *Loader {
	return &Loader{Filename: domain.SettingsFileName}
}

// Load reads the settings visible from dir.
func (l *Loader) Load(dir string) (*domain.Settings, error) {
	v := viper.New()

	defaults := domain.DefaultSettings()
	v.SetDefault("target_library", defaults.TargetLibrary)
	v.SetDefault("reserved_name", defaults.ReservedName)
	v.SetDefault("cache_name", defaults.CacheName)
	v.SetDefault("viewer_binary", defaults.ViewerBinary)
	v.SetDefault("library_git", defaults.LibraryGit)
	v.SetDefault("cargo", defaults.Cargo)
	v.SetDefault("build_command", defaults.BuildCommand)
	v.SetDefault("target_dir", defaults.TargetDir)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("telemetry", defaults.Telemetry)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// cargo's own override is honored when no RAPP_TARGET_DIR is set.
	if err := v.BindEnv("target_dir", EnvPrefix+"_TARGET_DIR", "CARGO_TARGET_DIR"); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
	}

	path := filepath.Join(dir, l.Filename)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var s domain.Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate rejects settings the pipeline cannot work with.
func Validate(s *domain.Settings) error {
	required := map[string]string{
		"target_library": s.TargetLibrary,
		"reserved_name":  s.ReservedName,
		"cache_name":     s.CacheName,
		"viewer_binary":  s.ViewerBinary,
		"cargo":          s.Cargo,
		"build_command":  s.BuildCommand,
	}
	keys := make([]string, 0, len(required))
	for k := range required {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if required[k] == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "setting must not be empty"), "key", k)
		}
	}

	if s.CacheName == s.ViewerBinary {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "cache_name and viewer_binary must differ"),
			"value", s.CacheName)
	}

	if _, ok := domain.ParseLogLevel(s.LogLevel); !ok {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "unknown log level"), "log_level", s.LogLevel)
	}

	if !slices.Contains([]string{domain.LogFormatPretty, domain.LogFormatJSON}, s.LogFormat) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "unknown log format"), "log_format", s.LogFormat)
	}

	if !slices.Contains([]string{domain.TelemetryProgrock, domain.TelemetryOTel, domain.TelemetryNone}, s.Telemetry) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "unknown telemetry backend"), "telemetry", s.Telemetry)
	}

	return nil
}
