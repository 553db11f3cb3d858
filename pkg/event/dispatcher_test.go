package event_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/event"
)

type payload struct {
	Value string
	Calls []string
}

func TestDispatcher_Order(t *testing.T) {
	t.Parallel()

	d := event.NewDispatcher[*payload]()
	d.AddListener("save", func(_ context.Context, p *payload) error {
		p.Calls = append(p.Calls, "first")
		return nil
	})
	d.AddListener("save", func(_ context.Context, p *payload) error {
		p.Calls = append(p.Calls, "second")
		p.Value = "changed"
		return nil
	})

	p := &payload{Value: "original"}
	require.NoError(t, d.Dispatch(context.Background(), p, "save"))

	assert.Equal(t, []string{"first", "second"}, p.Calls)
	assert.Equal(t, "changed", p.Value)
}

func TestDispatcher_NoListeners(t *testing.T) {
	t.Parallel()

	d := event.NewDispatcher[*payload]()
	assert.False(t, d.HasListeners("save"))
	assert.Nil(t, d.Listeners("save"))
	assert.NoError(t, d.Dispatch(context.Background(), &payload{}, "save"))
}

func TestDispatcher_StopsOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	d := event.NewDispatcher[*payload]()
	d.AddListener("save", func(context.Context, *payload) error { return boom })
	d.AddListener("save", func(_ context.Context, p *payload) error {
		p.Calls = append(p.Calls, "unreachable")
		return nil
	})

	p := &payload{}
	err := d.Dispatch(context.Background(), p, "save")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, event.ErrListenerFailed)
	assert.Contains(t, err.Error(), "save")
	assert.Empty(t, p.Calls)
}

func TestDispatcher_Remove(t *testing.T) {
	t.Parallel()

	d := event.NewDispatcher[*payload]()
	removeFirst := d.AddListener("save", func(_ context.Context, p *payload) error {
		p.Calls = append(p.Calls, "first")
		return nil
	})
	removeSecond := d.AddListener("save", func(_ context.Context, p *payload) error {
		p.Calls = append(p.Calls, "second")
		return nil
	})

	removeFirst()
	removeFirst()

	p := &payload{}
	require.NoError(t, d.Dispatch(context.Background(), p, "save"))
	assert.Equal(t, []string{"second"}, p.Calls)

	removeSecond()
	assert.False(t, d.HasListeners("save"))
}

func TestDispatcher_InvalidRegistration(t *testing.T) {
	t.Parallel()

	d := event.NewDispatcher[string]()
	assert.PanicsWithValue(t, event.ErrEmptyEventName, func() {
		d.AddListener("", func(context.Context, string) error { return nil })
	})
	assert.PanicsWithValue(t, event.ErrNilListener, func() {
		d.AddListener("x", nil)
	})
}

func TestDispatcher_ListenerMayRegister(t *testing.T) {
	t.Parallel()

	d := event.NewDispatcher[string]()
	d.AddListener("a", func(context.Context, string) error {
		d.AddListener("b", func(context.Context, string) error { return nil })
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), "x", "a"))
	assert.True(t, d.HasListeners("b"))
}

func TestDispatcher_Concurrent(t *testing.T) {
	t.Parallel()

	d := event.NewDispatcher[int]()
	var (
		mu    sync.Mutex
		total int
	)
	d.AddListener("inc", func(_ context.Context, n int) error {
		mu.Lock()
		total += n
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = d.Dispatch(context.Background(), 2, "inc")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, total)
}
