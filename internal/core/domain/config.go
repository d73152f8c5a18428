package domain

// Config is the resolved candidate selection for a workspace.
// It is persisted in the cache directory and reused until a rebuild is requested.
type Config struct {
	Name             string `yaml:"name"`
	TargetDir        string `yaml:"target_dir"`
	ScratchDir       string `yaml:"scratch_dir"`
	AppDir           string `yaml:"app_dir"`
	CandidateDir     string `yaml:"candidate_dir,omitempty"`
	UseRelativePaths bool   `yaml:"use_relative_paths"`
	Rebuild          bool   `yaml:"rebuild"`
}

// ArtifactPath returns where the viewer binary is expected after a build.
func (c *Config) ArtifactPath(binaryName string) string {
	return ArtifactPath(c.TargetDir, binaryName)
}
