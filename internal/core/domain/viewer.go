package domain

// Viewer is the state of the generated wrapper project.
type Viewer struct {
	// Bin is the built artifact. It is nil until a build succeeded.
	Bin              *string `yaml:"bin,omitempty"`
	CacheDir         string  `yaml:"cache_dir"`
	TargetDir        string  `yaml:"target_dir"`
	UseRelativePaths bool    `yaml:"use_relative_paths"`
	// Fingerprint identifies the generation inputs the project was rendered from.
	Fingerprint string `yaml:"fingerprint,omitempty"`
}

// NewViewer returns an unbuilt Viewer for the given Config.
func NewViewer(cfg *Config) *Viewer {
	return &Viewer{
		CacheDir:         cfg.ScratchDir,
		TargetDir:        cfg.TargetDir,
		UseRelativePaths: cfg.UseRelativePaths,
	}
}

// Built reports whether a binary path has been recorded.
func (v *Viewer) Built() bool {
	return v.Bin != nil && *v.Bin != ""
}

// BinPath returns the recorded binary path, or "" when the viewer is not built.
func (v *Viewer) BinPath() string {
	if v.Bin == nil {
		return ""
	}
	return *v.Bin
}

// SetBin records the built binary path.
func (v *Viewer) SetBin(path string) {
	v.Bin = &path
}

// Matches reports whether the viewer was generated from the same inputs as cfg.
func (v *Viewer) Matches(cfg *Config, fingerprint string) bool {
	return v.UseRelativePaths == cfg.UseRelativePaths &&
		v.CacheDir == cfg.ScratchDir &&
		v.Fingerprint == fingerprint
}
