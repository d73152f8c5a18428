package domain

import "path/filepath"

const (
	// TargetLibrary is the library whose consuming crate is discovered and shown.
	TargetLibrary = "rapp"

	// ReservedWrapperName is the crate name of the wrapper itself. It is never a candidate.
	ReservedWrapperName = "runner"

	// CacheName is the name of the cache directory below <target>/debug/build.
	CacheName = "rapp_runner"

	// ViewerBinaryName is the name of the binary produced by the generated project.
	ViewerBinaryName = "rapp_viewer"

	// DefaultLibraryGit is the git source referenced by the registry manifest template.
	DefaultLibraryGit = "https://github.com/smassizzo/rapp.git"

	// DefaultCargo is the cargo executable used for metadata queries.
	DefaultCargo = "cargo"

	// DefaultBuildCommand is the shell line run by the generated build script.
	DefaultBuildCommand = `cargo build --target-dir "$RAPP_TARGET_DIR"`

	// SettingsFileName is the optional per-workspace settings file.
	SettingsFileName = "rapp.yaml"

	// ConfigFileName is the name of the persisted Config record inside the cache directory.
	ConfigFileName = "config"

	// ViewerFileName is the name of the persisted Viewer record inside the cache directory.
	ViewerFileName = "viewer"

	// ManifestFileName is the name of a cargo manifest.
	ManifestFileName = "Cargo.toml"

	// BuildScriptName is the name of the generated build script.
	BuildScriptName = "build.sh"

	// SourceDirName is the directory holding the generated entry point.
	SourceDirName = "src"

	// EntryPointName is the generated entry point inside SourceDirName.
	EntryPointName = "main.rs"

	// LibraryEntryName is the library root written by init.
	LibraryEntryName = "lib.rs"

	// DefaultTargetDirName is cargo's build output directory below the workspace root.
	DefaultTargetDirName = "target"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ScriptPerm is the permission for generated scripts (rwxr-xr-x).
	ScriptPerm = 0o755
)

// CacheDir returns <targetDir>/debug/build/<cacheName>.
func CacheDir(targetDir, cacheName string) string {
	return filepath.Join(targetDir, "debug", "build", cacheName)
}

// ArtifactPath returns the deterministic location of the built viewer binary.
// It joins targetDir, debug, build and the binary name.
func ArtifactPath(targetDir, binaryName string) string {
	return filepath.Join(targetDir, "debug", "build", binaryName)
}

// ConfigPath returns the path of the Config record inside cacheDir.
func ConfigPath(cacheDir string) string {
	return filepath.Join(cacheDir, ConfigFileName)
}

// ViewerPath returns the path of the Viewer record inside cacheDir.
func ViewerPath(cacheDir string) string {
	return filepath.Join(cacheDir, ViewerFileName)
}

// ManifestPath returns the path of the generated manifest inside cacheDir.
func ManifestPath(cacheDir string) string {
	return filepath.Join(cacheDir, ManifestFileName)
}

// BuildScriptPath returns the path of the generated build script inside cacheDir.
func BuildScriptPath(cacheDir string) string {
	return filepath.Join(cacheDir, BuildScriptName)
}

// EntryPointPath returns the path of the generated entry point inside cacheDir.
func EntryPointPath(cacheDir string) string {
	return filepath.Join(cacheDir, SourceDirName, EntryPointName)
}

// ScratchTargetDir is the cargo target directory used by the generated build script.
func ScratchTargetDir(cacheDir string) string {
	return filepath.Join(cacheDir, DefaultTargetDirName)
}
