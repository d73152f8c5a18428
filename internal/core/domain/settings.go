package domain

// Settings are the tool-level knobs of the pipeline. They are loaded once per process
// from defaults, an optional rapp.yaml and RAPP_* environment variables.
type Settings struct {
	TargetLibrary string `mapstructure:"target_library"`
	ReservedName  string `mapstructure:"reserved_name"`
	CacheName     string `mapstructure:"cache_name"`
	ViewerBinary  string `mapstructure:"viewer_binary"`
	LibraryGit    string `mapstructure:"library_git"`
	Cargo         string `mapstructure:"cargo"`
	BuildCommand  string `mapstructure:"build_command"`
	// TargetDir overrides the workspace target directory when set.
	TargetDir string `mapstructure:"target_dir"`
	LogLevel  string `mapstructure:"log_level"`
	// LogFormat is "pretty" or "json".
	LogFormat string `mapstructure:"log_format"`
	// Telemetry selects the stage recorder: "progrock", "otel" or "none".
	Telemetry string `mapstructure:"telemetry"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		TargetLibrary: TargetLibrary,
		ReservedName:  ReservedWrapperName,
		CacheName:     CacheName,
		ViewerBinary:  ViewerBinaryName,
		LibraryGit:    DefaultLibraryGit,
		Cargo:         DefaultCargo,
		BuildCommand:  DefaultBuildCommand,
		LogLevel:      "info",
		LogFormat:     LogFormatPretty,
		Telemetry:     TelemetryProgrock,
	}
}

// Log formats.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// Telemetry backends.
const (
	TelemetryProgrock = "progrock"
	TelemetryOTel     = "otel"
	TelemetryNone     = "none"
)
