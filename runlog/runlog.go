// Package runlog implements the four append-only, value-per-line event
// streams spec section 6 calls out as optional reporting side effects:
// alias.log, mutate.log, cost.log, fitness.log. Grounded in the original
// src/cluster/logs.c's open_logs/close_logs/log_* family, adapted to Go's
// os.OpenFile append semantics and satisfying search.Logger so a Runner
// never needs to know these are files at all.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/linehan/mqtc/search"
)

// Compile-time assertion: *Files satisfies search.Logger.
var _ search.Logger = (*Files)(nil)

// Files holds the four log handles. The zero Files (no Open call) is a
// valid, fully silent Logger: every LogXxx method no-ops when its handle
// is nil, mirroring the original's ferror-gated no-op rather than panicking
// when logging is disabled.
type Files struct {
	alias   *os.File
	mutate  *os.File
	cost    *os.File
	fitness *os.File
}

// Open creates (or appends to) alias.log, mutate.log, cost.log, and
// fitness.log under dir. Unlike the original's fopen(path, "w+") (which
// truncates), Open uses O_APPEND|O_CREATE|O_WRONLY throughout, matching
// the "append-on-open" label spec section 6 actually specifies.
func Open(dir string) (*Files, error) {
	f := &Files{}
	var err error

	if f.alias, err = openAppend(dir, "alias.log"); err != nil {
		return nil, err
	}
	if f.mutate, err = openAppend(dir, "mutate.log"); err != nil {
		_ = f.Close()
		return nil, err
	}
	if f.cost, err = openAppend(dir, "cost.log"); err != nil {
		_ = f.Close()
		return nil, err
	}
	if f.fitness, err = openAppend(dir, "fitness.log"); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func openAppend(dir, name string) (*os.File, error) {
	path := filepath.Join(dir, name)
	h, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("runlog: open %s: %w", path, err)
	}
	return h, nil
}

// Close closes every non-nil handle, returning the first error encountered.
func (f *Files) Close() error {
	var firstErr error
	for _, h := range []*os.File{f.alias, f.mutate, f.cost, f.fitness} {
		if h == nil {
			continue
		}
		if err := h.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// LogAlias writes the k-mutation PMF p(k), one probability per line, in
// index order (spec section 6: "the PMF probabilities in index order").
func (f *Files) LogAlias(pmf []float64) {
	for _, p := range pmf {
		writeLine(f.alias, "%f\n", p)
	}
}

// LogMutate writes the k drawn for one proposal.
func (f *Files) LogMutate(k int) {
	writeLine(f.mutate, "%d\n", k)
}

// LogCost writes one population member's scaled cost S(T) after mutation.
func (f *Files) LogCost(scaled float64) {
	writeLine(f.cost, "%f\n", scaled)
}

// LogFitness writes the running best_cost after one mutation step.
func (f *Files) LogFitness(bestCost float64) {
	writeLine(f.fitness, "%f\n", bestCost)
}

// writeLine no-ops silently on a nil handle or write error, exactly as the
// original's ferror-gated log_* functions swallow a broken stream rather
// than propagating an I/O error into the search loop.
func writeLine(h *os.File, format string, args ...any) {
	if h == nil {
		return
	}
	_, _ = fmt.Fprintf(h, format, args...)
}
