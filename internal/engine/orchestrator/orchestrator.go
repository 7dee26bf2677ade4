// Package orchestrator implements the hash-gated generation driver.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/regen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator decides per job whether regeneration is needed and, if so,
// drives the job's command sequence and commits the new fingerprint. It is
// strictly sequential: one command at a time, one job at a time.
type Orchestrator struct {
	hasher   ports.Hasher
	invoker  ports.Invoker
	tracer   ports.Telemetry
	verifier ports.OutputVerifier
	logger   ports.Logger

	// runID stamps every record committed during this process invocation.
	runID string
}

// New creates a new Orchestrator.
func New(
	hasher ports.Hasher,
	invoker ports.Invoker,
	tracer ports.Telemetry,
	verifier ports.OutputVerifier,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		hasher:   hasher,
		invoker:  invoker,
		tracer:   tracer,
		verifier: verifier,
		logger:   logger,
		runID:    uuid.NewString(),
	}
}

// RunIfStale runs one job against the given store.
//
// The fast path (recorded fingerprint equal to the current one) returns the
// declared outputs without spawning a single process. Otherwise the command
// sequence runs in declared order, stopping at the first failure, and the new
// fingerprint is committed only after every command succeeded. A failed run
// never commits, so the next run re-attempts the whole sequence.
func (o *Orchestrator) RunIfStale(
	ctx context.Context,
	store ports.RecordStore,
	job domain.GenerationJob,
) (domain.JobResult, error) {
	ctx, vertex := o.tracer.Record(ctx, job.Name)

	fp, err := o.hasher.Fingerprint(job.Inputs)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "failed to fingerprint tracked inputs"), "job", job.Name)
		vertex.Complete(wrapped)
		return domain.JobResult{Job: job.Name, Status: domain.StatusFailed}, wrapped
	}

	rec, err := store.Lookup(job.Key)
	if err != nil {
		// The store contract treats unreadable records as misses already; an
		// error here is unexpected but still must not fail the job.
		o.logger.Warn(fmt.Sprintf("cache lookup failed for %s, regenerating", job.Key))
		rec = nil
	}

	if rec != nil && rec.Fingerprint == fp {
		vertex.Cached()
		vertex.Complete(nil)
		return domain.JobResult{
			Job:         job.Name,
			Status:      domain.StatusCached,
			Fingerprint: fp,
			Outputs:     job.Outputs,
		}, nil
	}

	if err := o.removeStaleIndex(job); err != nil {
		vertex.Complete(err)
		return domain.JobResult{Job: job.Name, Status: domain.StatusFailed}, err
	}

	for _, cmd := range job.Commands {
		if err := o.invoker.Run(ctx, cmd); err != nil {
			wrapped := zerr.With(zerr.Wrap(err, "generation command failed"), "job", job.Name)
			vertex.Complete(wrapped)
			return domain.JobResult{Job: job.Name, Status: domain.StatusFailed}, wrapped
		}
	}

	o.warnMissingOutputs(job)

	newRec := domain.CacheRecord{
		Key:         job.Key,
		Fingerprint: fp,
		Outputs:     job.Outputs,
		RunID:       o.runID,
		Timestamp:   time.Now(),
	}
	if err := store.Commit(newRec); err != nil {
		// Losing the commit makes the next run redo finished work, so it is
		// surfaced rather than swallowed, even though the outputs exist.
		wrapped := zerr.With(zerr.Wrap(err, "failed to commit cache record"), "job", job.Name)
		vertex.Complete(wrapped)
		return domain.JobResult{Job: job.Name, Status: domain.StatusFailed, Fingerprint: fp}, wrapped
	}

	vertex.Complete(nil)
	return domain.JobResult{
		Job:         job.Name,
		Status:      domain.StatusRegenerated,
		Fingerprint: fp,
		Outputs:     job.Outputs,
	}, nil
}

// RunAll runs the jobs strictly in declared order. A failing job never stops
// its siblings; all failures are joined and returned alongside the per-job
// results.
func (o *Orchestrator) RunAll(
	ctx context.Context,
	store ports.RecordStore,
	jobs []domain.GenerationJob,
) ([]domain.JobResult, error) {
	results := make([]domain.JobResult, 0, len(jobs))

	var errs error
	for _, job := range jobs {
		res, err := o.RunIfStale(ctx, store, job)
		results = append(results, res)
		if err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return results, errs
}

// removeStaleIndex deletes the job's aggregate index artifact, if declared,
// so a failed regeneration cannot leave a misleadingly complete file behind.
func (o *Orchestrator) removeStaleIndex(job domain.GenerationJob) error {
	if job.Index == "" {
		return nil
	}
	if err := os.Remove(job.Index); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to remove stale index"), "index", job.Index)
	}
	return nil
}

// warnMissingOutputs reports declared outputs the external tool did not
// produce. Advisory only: staleness is governed purely by the input
// fingerprint.
func (o *Orchestrator) warnMissingOutputs(job domain.GenerationJob) {
	missing, err := o.verifier.Verify(job.Outputs)
	if err != nil {
		o.logger.Warn(fmt.Sprintf("output check for %s failed: %v", job.Name, err))
		return
	}
	for _, path := range missing {
		o.logger.Warn(fmt.Sprintf("job %s declared output %s but it was not produced", job.Name, path))
	}
}
