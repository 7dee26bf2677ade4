// Package telemetry provides progress recording for generation runs.
package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/regen/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry using the progrock library. Each
// generation job becomes one vertex on the tape; the final tape state is
// rendered to the output writer when the session closes.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	out io.Writer
}

// New creates a Recorder with a default tape rendering to stderr.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
		out: os.Stderr,
	}
}

// SetOutput updates where the final render is written.
func (r *Recorder) SetOutput(out io.Writer) {
	r.out = out
}

// Record starts recording a new vertex for one generation job.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes the recording session and renders the final tape state, so a
// run's per-job progress is visible even without a live display.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}
	if tape, ok := r.w.(*progrock.Tape); ok {
		return tape.Render(r.out, progrock.DefaultUI())
	}
	return nil
}

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Write forwards command output to the vertex's stdout stream.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

var _ io.Writer = (*Vertex)(nil)
