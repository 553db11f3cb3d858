package binder_test

import (
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/binder"
)

type scheduleRequest struct {
	ID       uuid.UUID     `form:"id"`
	At       time.Time     `form:"at"`
	Every    time.Duration `form:"every"`
	Days     []uint8       `form:"days"`
	Reminder *bool         `form:"reminder"`
}

func TestValues_Decoding(t *testing.T) {
	t.Parallel()

	t.Run("text unmarshalers and durations", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		var req scheduleRequest
		err := binder.Values(&req, url.Values{
			"id":       {id.String()},
			"at":       {"2026-10-15T09:30:00Z"},
			"every":    {"90m"},
			"days":     {"1,3", "5"},
			"reminder": {"on"},
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, id, req.ID)
		assert.Equal(t, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC), req.At)
		assert.Equal(t, 90*time.Minute, req.Every)
		assert.Equal(t, []uint8{1, 3, 5}, req.Days)
		require.NotNil(t, req.Reminder)
		assert.True(t, *req.Reminder)
	})

	t.Run("field error", func(t *testing.T) {
		t.Parallel()
		var req scheduleRequest
		err := binder.Values(&req, url.Values{"days": {"1,300"}}, nil)
		require.ErrorIs(t, err, binder.ErrFailedToParseForm)

		var fe *binder.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "days", fe.Field)
		assert.Equal(t, "300", fe.Value)
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()
		var req scheduleRequest
		assert.ErrorIs(t, binder.Values(req, nil, nil), binder.ErrInvalidTarget)
	})
}
