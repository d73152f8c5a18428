package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrNoCandidate is returned when no library crate in the workspace depends on the target library.
	ErrNoCandidate = zerr.New("no library crate depends on the target library")

	// ErrAmbiguousCandidates is returned when more than one library crate qualifies.
	ErrAmbiguousCandidates = zerr.New("multiple candidate crates found")

	// ErrMissingBuildScript is returned when the generated build script is not on disk.
	ErrMissingBuildScript = zerr.New("build script not found")

	// ErrArtifactNotProduced is returned when the build finished without leaving the viewer binary.
	ErrArtifactNotProduced = zerr.New("build did not produce the viewer binary")

	// ErrNotBuilt is returned when launching a viewer that has never been built.
	ErrNotBuilt = zerr.New("viewer has not been built")

	// ErrArtifactMissing is returned when the recorded viewer binary no longer exists.
	ErrArtifactMissing = zerr.New("viewer binary not found")

	// ErrMetadataQueryFailed is returned when the workspace metadata command fails.
	ErrMetadataQueryFailed = zerr.New("failed to query workspace metadata")

	// ErrMetadataParseFailed is returned when the workspace metadata cannot be decoded.
	ErrMetadataParseFailed = zerr.New("failed to parse workspace metadata")

	// ErrWorkspaceNotFound is returned when no cargo manifest exists in or above the working directory.
	ErrWorkspaceNotFound = zerr.New("could not find Cargo.toml in the working directory or any parent")

	// ErrManifestParseFailed is returned when a cargo manifest on disk cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse cargo manifest")

	// ErrCacheDirCreateFailed is returned when the cache directory chain cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrRecordMarshalFailed is returned when a cache record cannot be encoded.
	ErrRecordMarshalFailed = zerr.New("failed to marshal cache record")

	// ErrRecordWriteFailed is returned when a cache record cannot be written.
	ErrRecordWriteFailed = zerr.New("failed to write cache record")

	// ErrTemplatePlaceholder is returned when a template placeholder is missing, duplicated or left unresolved.
	ErrTemplatePlaceholder = zerr.New("template placeholder not substituted exactly once")

	// ErrManifestInvalid is returned when the rendered manifest is not valid TOML or lacks the viewer binary.
	ErrManifestInvalid = zerr.New("generated manifest is invalid")

	// ErrBuildScriptInvalid is returned when the rendered build script does not parse.
	ErrBuildScriptInvalid = zerr.New("generated build script is invalid")

	// ErrPathNotQuotable is returned when a path cannot be represented in a POSIX shell script.
	ErrPathNotQuotable = zerr.New("path cannot be quoted for the build script")

	// ErrGenerateFailed is returned when a generated file cannot be written.
	ErrGenerateFailed = zerr.New("failed to write generated project")

	// ErrCommandStartFailed is returned when a subprocess cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrStaleArtifactRemoveFailed is returned when a previous viewer binary cannot be deleted.
	ErrStaleArtifactRemoveFailed = zerr.New("failed to remove stale viewer binary")

	// ErrInvalidSettings is returned when the settings contain an unusable value.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrSettingsReadFailed is returned when the settings file exists but cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrProjectExists is returned when init targets a directory that already holds a manifest.
	ErrProjectExists = zerr.New("a Cargo.toml already exists at the init path")

	// ErrInvalidCrateName is returned when init derives an unusable crate name.
	ErrInvalidCrateName = zerr.New("invalid crate name")
)

// CandidatesOf returns the candidate names carried by an ErrAmbiguousCandidates error.
// It returns nil for any other error.
func CandidatesOf(err error) []string {
	if !errors.Is(err, ErrAmbiguousCandidates) {
		return nil
	}
	for err != nil {
		var zErr *zerr.Error
		if !errors.As(err, &zErr) {
			return nil
		}
		if names, ok := zErr.Metadata()["candidates"].([]string); ok {
			return names
		}
		err = zErr.Unwrap()
	}
	return nil
}
