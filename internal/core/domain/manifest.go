package domain

// Workspace is the process-wide configuration a generation run starts from.
type Workspace struct {
	// Root is the directory containing the manifest. Relative manifest paths
	// resolve against it.
	Root string

	// StagingBase is the base directory for staging state. Empty means not
	// configured, which is fatal before any job runs.
	StagingBase string
}

// StepSpec is one declared command of a variant or bootstrap job, still in
// manifest terms. Exactly one of Program or Tool is set: Program runs a
// binary as-is, Tool runs a project-local wrapper script with the
// platform-specific prefix applied.
type StepSpec struct {
	Program string
	Tool    string
	Dir     string
	Args    []string
	Env     []string
}

// JobSpec is a declared generation variant with workspace-relative paths.
// The planner materializes it into a GenerationJob.
type JobSpec struct {
	Name    string
	Key     string
	Inputs  []string
	Steps   []StepSpec
	Outputs []string
	Index   string
}

// BootstrapSpec declares the upstream checkout and the per-project config
// regeneration applied to every discovered subproject.
type BootstrapSpec struct {
	// Upstream is the URL of the repository to clone.
	Upstream string

	// Checkout is the staging-relative directory of the clone.
	Checkout string

	// Seed is the per-project marker file; a direct subdirectory of the
	// checkout containing it is a subproject.
	Seed string

	// Tool is the wrapper script run inside each subproject.
	Tool string

	// Args are passed to Tool for each subproject.
	Args []string

	// Generates lists the subproject-relative files the regeneration refreshes.
	Generates []string

	// PluginInputs is the shared plugin-source input set, workspace-relative,
	// tracked by every subproject job in addition to its own files.
	PluginInputs []string
}

// Manifest is the loaded project configuration.
type Manifest struct {
	Workspace Workspace
	Variants  []JobSpec
	Bootstrap *BootstrapSpec
}
