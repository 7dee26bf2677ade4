package domain

// Command is one external invocation: a program, its arguments, the working
// directory it runs in, and any additional KEY=VALUE environment entries the
// job declares. The invoker never mutates the environment beyond Env.
type Command struct {
	Program string
	Args    []string
	Dir     string
	Env     []string
}

// GenerationJob describes one regeneration unit: the tracked inputs whose
// content decides staleness, the ordered commands that regenerate, and the
// outputs the job promises to produce. Outputs are not content-hashed; the
// input fingerprint is the sole staleness signal.
type GenerationJob struct {
	// Name identifies the job in logs and results.
	Name string

	// Key is the cache key, a slash-separated path relative to the cache
	// directory. Distinct jobs must use distinct keys.
	Key string

	// Inputs is the tracked input set. Order is irrelevant; missing paths are
	// legal and contribute a fixed sentinel to the fingerprint.
	Inputs []string

	// Commands run strictly in order; the first failure aborts the rest.
	Commands []Command

	// Outputs are the paths the job refreshes on success. May be empty for
	// side-effect-only jobs.
	Outputs []string

	// Index is an optional aggregate artifact. A stale copy is deleted before
	// regeneration so a failed run never leaves a misleadingly complete file.
	Index string
}

// JobStatus is the outcome of running a job through the orchestrator.
type JobStatus string

const (
	// StatusCached means the recorded fingerprint matched and no command ran.
	StatusCached JobStatus = "Cached"
	// StatusRegenerated means the command sequence ran and was committed.
	StatusRegenerated JobStatus = "Regenerated"
	// StatusFailed means fingerprinting, a command, or the commit failed.
	StatusFailed JobStatus = "Failed"
)

// JobResult is the per-job outcome returned by the orchestrator.
type JobResult struct {
	Job         string
	Status      JobStatus
	Fingerprint Fingerprint
	Outputs     []string
}
