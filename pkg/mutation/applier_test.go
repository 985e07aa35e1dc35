package mutation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/jobs"
)

func companyID(c jobs.Company) string { return c.ID }

func approve(c *jobs.Company) { c.IsApproved = true }

func TestApplier_PatchesEveryListOnSuccess(t *testing.T) {
	t.Parallel()

	pending := NewList([]jobs.Company{{ID: "c1"}, {ID: "c2"}}, companyID)
	all := NewList([]jobs.Company{{ID: "c0", IsApproved: true}, {ID: "c1"}}, companyID)

	res := NewApplier().Apply(context.Background(), Key("approve-company", "c1"),
		func(context.Context) error { return nil },
		PatchIn(pending, "c1", approve),
		PatchIn(all, "c1", approve),
	)

	require.True(t, res.Ok())
	p, ok := pending.Get("c1")
	require.True(t, ok)
	assert.True(t, p.IsApproved)
	a, ok := all.Get("c1")
	require.True(t, ok)
	assert.True(t, a.IsApproved)
}

func TestApplier_FailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	pending := NewList([]jobs.Company{{ID: "c1"}}, companyID)
	before := pending.Items()

	res := NewApplier().Apply(context.Background(), Key("ban-company", "c1"),
		func(context.Context) error { return &apiclient.Error{Status: 403, Message: "Forbidden resource"} },
		RemoveFrom(pending, "c1"),
	)

	assert.Equal(t, Failed, res.Outcome)
	assert.Equal(t, before, pending.Items())
	assert.Equal(t, "Forbidden resource", res.Message("Failed to ban"))
}

func TestApplier_FailureMessageFallback(t *testing.T) {
	t.Parallel()

	res := NewApplier().Apply(context.Background(), "k",
		func(context.Context) error { return errors.New("dial tcp: timeout") })

	assert.Equal(t, "Failed to approve", res.Message("Failed to approve"))
	assert.Empty(t, Result{Outcome: Applied}.Message("x"))
}

func TestApplier_SkipsDuplicateInFlight(t *testing.T) {
	t.Parallel()

	applier := NewApplier()
	key := Key("approve-vacancy", "v1")
	var calls atomic.Int32
	started := make(chan struct{})
	unblock := make(chan struct{})
	done := make(chan Result)

	go func() {
		done <- applier.Apply(context.Background(), key, func(context.Context) error {
			calls.Add(1)
			close(started)
			<-unblock
			return nil
		})
	}()
	<-started

	dup := applier.Apply(context.Background(), key, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	assert.Equal(t, Skipped, dup.Outcome)

	other := applier.Apply(context.Background(), Key("approve-vacancy", "v2"), func(context.Context) error {
		calls.Add(1)
		return nil
	})
	assert.Equal(t, Applied, other.Outcome)

	close(unblock)
	assert.Equal(t, Applied, (<-done).Outcome)
	assert.Equal(t, int32(2), calls.Load())

	again := applier.Apply(context.Background(), key, func(context.Context) error { return nil })
	assert.Equal(t, Applied, again.Outcome)
}

func TestList_RemoveAndNilSafePatches(t *testing.T) {
	t.Parallel()

	list := NewList([]jobs.Vacancy{{ID: "v1"}, {ID: "v2"}, {ID: "v3"}}, func(v jobs.Vacancy) string { return v.ID })
	assert.True(t, list.Remove("v2"))
	assert.False(t, list.Remove("v2"))
	assert.Equal(t, 2, list.Len())

	var missing *List[jobs.Vacancy]
	assert.NotPanics(t, func() {
		RemoveFrom(missing, "v1")()
		PatchIn(missing, "v1", func(*jobs.Vacancy) {})()
	})
}
