package registry_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/registry"
)

type greeter interface{ Greet() string }

type english struct{ n int }

func (e *english) Greet() string { return "hello" }

func value(v any) registry.Constructor {
	return func() (any, error) { return v, nil }
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := registry.New()
	ctor := func() (any, error) { return &english{}, nil }

	require.NoError(t, r.Register("en", ctor))
	require.ErrorIs(t, r.Register("en", ctor), registry.ErrDuplicate)
	require.ErrorIs(t, r.Register("", ctor), registry.ErrEmptyID)
	require.ErrorIs(t, r.Register("nil", nil), registry.ErrInvalidConstructor)

	assert.True(t, r.Has("en"))
	assert.False(t, r.Has("de"))
	assert.Panics(t, func() { r.MustRegister("en", ctor) })
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("fresh value per call", func(t *testing.T) {
		t.Parallel()
		r := registry.New()
		var count int
		r.MustRegister("en", func() (any, error) {
			count++
			return &english{n: count}, nil
		})

		a, err := r.Get("en")
		require.NoError(t, err)
		b, err := r.Get("en")
		require.NoError(t, err)

		assert.NotSame(t, a, b)
		assert.Equal(t, 2, count)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		_, err := registry.New().Get("missing")

		var nf *registry.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "missing", nf.ID)
		assert.True(t, registry.IsNotFound(err))
	})

	t.Run("constructor failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		r := registry.New()
		r.MustRegister("broken", func() (any, error) { return nil, boom })

		_, err := r.Get("broken")
		var re *registry.ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "broken", re.ID)
		assert.ErrorIs(t, err, boom)
		assert.False(t, registry.IsNotFound(err))
	})

	t.Run("nil value", func(t *testing.T) {
		t.Parallel()
		r := registry.New()
		r.MustRegister("nil", func() (any, error) { return nil, nil })

		_, err := r.Get("nil")
		var re *registry.ResolutionError
		require.ErrorAs(t, err, &re)
		assert.ErrorIs(t, err, registry.ErrNilValue)
		assert.NotErrorIs(t, err, registry.ErrInvalidConstructor)
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	r := registry.New()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, r.Register(id, value(id)))
	}
	assert.Equal(t, []string{"a", "b", "c"}, r.List())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := registry.New()
	require.NoError(t, r.Register("en", value(&english{})))
	require.NoError(t, r.Register("number", value(42)))

	g, err := registry.Resolve[greeter](r, "en")
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Greet())

	_, err = registry.Resolve[greeter](r, "number")
	var tm *registry.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, "int", tm.Got)
	assert.Equal(t, "registry_test.greeter", tm.Expected)

	_, err = registry.Resolve[greeter](r, "missing")
	assert.True(t, registry.IsNotFound(err))
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := registry.New()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Register(fmt.Sprintf("id-%d", i), value(i))
		}()
		go func() {
			defer wg.Done()
			_ = r.Has(fmt.Sprintf("id-%d", i))
		}()
	}
	wg.Wait()

	assert.Len(t, r.List(), 20)
}
