package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	first, second := errors.New("first"), errors.New("second")

	attr := logger.Errors(first, nil, second)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want string
	}{
		{logger.Component("formhandler"), "component", "formhandler"},
		{logger.Event("form.fail"), "event", "form.fail"},
		{logger.Handler("contact"), "handler", "contact"},
		{logger.FormType("contact"), "form_type", "contact"},
		{logger.State("submitted_valid"), "state", "submitted_valid"},
		{logger.RequestID("abc"), "request_id", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, []string{"email"}, logger.Fields([]string{"email"}).Value.Any())
}
