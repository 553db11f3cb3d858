package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/binder"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	newRequest := func(body, contentType string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		return req
	}

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
		want        payload
	}{
		{name: "valid", body: `{"name":"Jane","age":30}`, contentType: "application/json", want: payload{Name: "Jane", Age: 30}},
		{name: "missing content type", body: `{}`, wantErr: binder.ErrMissingContentType},
		{name: "wrong content type", body: `{}`, contentType: "text/plain", wantErr: binder.ErrUnsupportedMediaType},
		{name: "unknown field", body: `{"nope":1}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "empty body", body: ``, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "trailing data", body: `{"name":"a"}{"name":"b"}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "type mismatch", body: `{"age":"x"}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got payload
			err := binder.JSON()(newRequest(tt.body, tt.contentType), &got)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		body := `{"name":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		var got payload
		require.ErrorIs(t, binder.JSON()(newRequest(body, "application/json"), &got), binder.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := newRequest(`{}`, "application/json").WithContext(ctx)
		var got payload
		require.ErrorIs(t, binder.JSON()(req, &got), binder.ErrFailedToParseJSON)
	})
}
