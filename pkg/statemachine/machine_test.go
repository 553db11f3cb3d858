package statemachine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/statemachine"
)

type status string
type action string

const (
	draft     status = "draft"
	review    status = "review"
	published status = "published"

	submit  action = "submit"
	approve action = "approve"
	restart action = "restart"
)

func complete(_ context.Context, data any) bool {
	ok, _ := data.(bool)
	return ok
}

func newMachine(opts ...statemachine.Option[status, action]) *statemachine.Machine[status, action] {
	base := []statemachine.Option[status, action]{
		statemachine.WithTransition(draft, review, submit, complete),
		statemachine.WithTransition(review, published, approve),
		statemachine.FromAny[status, action](draft, restart),
	}
	return statemachine.New(draft, append(base, opts...)...)
}

func TestFire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("follows declared transitions", func(t *testing.T) {
		t.Parallel()
		m := newMachine()

		require.NoError(t, m.Fire(ctx, submit, true))
		assert.Equal(t, review, m.Current())
		require.NoError(t, m.Fire(ctx, approve, nil))
		assert.Equal(t, published, m.Current())
	})

	t.Run("no transition", func(t *testing.T) {
		t.Parallel()
		m := newMachine()

		err := m.Fire(ctx, approve, nil)
		require.ErrorIs(t, err, statemachine.ErrNoTransition)
		assert.NotErrorIs(t, err, statemachine.ErrRejected)

		var terr *statemachine.TransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "draft", terr.From)
		assert.Equal(t, "approve", terr.Event)
		assert.Equal(t, draft, m.Current())
	})

	t.Run("guard rejects", func(t *testing.T) {
		t.Parallel()
		m := newMachine()

		err := m.Fire(ctx, submit, false)
		assert.ErrorIs(t, err, statemachine.ErrRejected)
		assert.Equal(t, draft, m.Current())
		assert.False(t, m.CanFire(ctx, submit, false))
		assert.True(t, m.CanFire(ctx, submit, true))
	})

	t.Run("first passing candidate wins", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(draft,
			statemachine.WithTransition(draft, published, submit, complete),
			statemachine.WithTransition[status, action](draft, review, submit),
		)

		require.NoError(t, m.Fire(ctx, submit, false))
		assert.Equal(t, review, m.Current())
	})

	t.Run("wildcard from any state", func(t *testing.T) {
		t.Parallel()
		m := newMachine()
		require.NoError(t, m.Fire(ctx, submit, true))
		require.NoError(t, m.Fire(ctx, approve, nil))

		require.NoError(t, m.Fire(ctx, restart, nil))
		assert.Equal(t, draft, m.Current())
	})

	t.Run("concrete state wins over wildcard", func(t *testing.T) {
		t.Parallel()
		m := newMachine(statemachine.WithTransition(review, published, restart))
		require.NoError(t, m.Fire(ctx, submit, true))

		require.NoError(t, m.Fire(ctx, restart, nil))
		assert.Equal(t, published, m.Current())
	})
}

func TestObserverAndReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type change struct {
		from, to status
		event    action
	}
	var seen []change
	m := newMachine(statemachine.WithObserver(func(_ context.Context, from, to status, event action) {
		seen = append(seen, change{from, to, event})
	}))

	require.NoError(t, m.Fire(ctx, submit, true))
	assert.Error(t, m.Fire(ctx, submit, true))
	assert.Equal(t, []change{{draft, review, submit}}, seen)

	m.Reset()
	assert.Equal(t, draft, m.Current())
	assert.Len(t, seen, 1)
}

func TestConcurrentFire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMachine()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- m.Fire(ctx, submit, true)
		}()
	}
	wg.Wait()
	close(errs)

	var ok, failed int
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.True(t, errors.Is(err, statemachine.ErrNoTransition))
		failed++
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 9, failed)
	assert.Equal(t, review, m.Current())
}
