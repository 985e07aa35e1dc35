// Package mutation applies local list patches after a state-changing API call
// succeeds.
package mutation

import (
	"context"
	"sync"

	"github.com/jobsboard/web/pkg/apiclient"
)

type Outcome int

const (
	Applied Outcome = iota
	Failed
	// Skipped means an identical mutation was already in flight.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Patch changes local state only. It runs after the remote call succeeded.
type Patch func()

type Call func(ctx context.Context) error

type Result struct {
	Outcome Outcome
	Err     error
}

func (r Result) Ok() bool {
	return r.Outcome == Applied
}

// Message is the user facing text for a failed result.
func (r Result) Message(fallback string) string {
	if r.Err == nil {
		return ""
	}
	return apiclient.MessageOr(r.Err, fallback)
}

// Key identifies a mutation for deduplication, e.g. Key("approve-company", id).
func Key(action, id string) string {
	return action + ":" + id
}

type Applier struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewApplier() *Applier {
	return &Applier{inflight: make(map[string]struct{})}
}

// Apply runs call and, only on success, every patch in order. A failure
// leaves local state untouched and is never retried. While a call with the
// same key is in flight, Apply returns Skipped without calling the remote.
func (a *Applier) Apply(ctx context.Context, key string, call Call, patches ...Patch) Result {
	if !a.acquire(key) {
		return Result{Outcome: Skipped}
	}
	defer a.release(key)

	if err := call(ctx); err != nil {
		return Result{Outcome: Failed, Err: err}
	}
	for _, patch := range patches {
		patch()
	}
	return Result{Outcome: Applied}
}

func (a *Applier) acquire(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, busy := a.inflight[key]; busy {
		return false
	}
	a.inflight[key] = struct{}{}
	return true
}

func (a *Applier) release(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.inflight, key)
}
