package cargo

// metadataSchema is the subset of `cargo metadata --format-version 1` the pipeline reads.
type metadataSchema struct {
	Packages         []packageSchema `json:"packages"`
	WorkspaceMembers []string        `json:"workspace_members"`
	WorkspaceRoot    string          `json:"workspace_root"`
	TargetDirectory  string          `json:"target_directory"`
}

type packageSchema struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	ManifestPath string             `json:"manifest_path"`
	Dependencies []dependencySchema `json:"dependencies"`
	Targets      []targetSchema     `json:"targets"`
}

type dependencySchema struct {
	Name string `json:"name"`
	// Kind is null for normal dependencies.
	Kind *string `json:"kind"`
}

type targetSchema struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}
