package ports

// ArtifactVerifier defines the interface for verifying built artifacts.
//
//go:generate mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type ArtifactVerifier interface {
	// Exists reports whether path is a regular file.
	Exists(path string) (bool, error)
	// Executable reports whether path is a regular file with an exec bit set.
	Executable(path string) (bool, error)
}
