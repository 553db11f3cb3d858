package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/i18n"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en.yaml":   {Data: []byte("en:\n  greeting: \"Hello, %{name}!\"\n  validation:\n    required: \"field is required\"\n")},
		"de.json":   {Data: []byte(`{"de": {"greeting": "Hallo, %{name}!", "validation": {"required": "Pflichtfeld"}}}`)},
		"extra.yml": {Data: []byte("en:\n  validation:\n    email: \"must be a valid email address\"\n")},
		"README.md": {Data: []byte("ignored")},
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tr, err := i18n.Load(testFS())
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en"}, tr.Languages())

	msg, ok := tr.Lookup("en", "validation.required", nil)
	assert.True(t, ok)
	assert.Equal(t, "field is required", msg)

	msg, ok = tr.Lookup("en", "validation.email", nil)
	assert.True(t, ok, "files for one language are merged")
	assert.Equal(t, "must be a valid email address", msg)

	assert.Equal(t, "Hallo, Ann!", tr.T("de", "greeting", "name", "Ann"))
	assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting"))
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := i18n.Load(fstest.MapFS{"README.md": {Data: []byte("x")}})
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)

	_, err = i18n.Load(fstest.MapFS{"en.yaml": {Data: []byte("en: [unclosed")}})
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	_, err = i18n.Load(fstest.MapFS{"en.json": {Data: []byte(`{"en": "flat"}`)}})
	assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
}

func TestLookupMissing(t *testing.T) {
	t.Parallel()

	tr, err := i18n.Load(testFS())
	require.NoError(t, err)

	_, ok := tr.Lookup("fr", "greeting", nil)
	assert.False(t, ok)
	_, ok = tr.Lookup("en", "validation", nil)
	assert.False(t, ok, "subtrees are not messages")
	_, ok = tr.Lookup("en", "greeting.deeper", nil)
	assert.False(t, ok)
	assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	supported := []string{"de", "en"}
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact", "de", "de"},
		{"regional variant", "de-AT", "de"},
		{"quality order", "fr;q=0.9, en;q=0.8, de;q=0.1", "en"},
		{"unsupported", "fr, ja", "en"},
		{"malformed", ";;;", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.Match(tt.header, supported, "en"))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tr, err := i18n.Load(testFS())
	require.NoError(t, err)

	var got string
	h := i18n.Middleware(tr)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = i18n.Locale(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "de-CH")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "de", got)

	r = httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	r.Header.Set("Accept-Language", "de")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "en", got, "query parameter wins")

	r = httptest.NewRequest(http.MethodGet, "/?lang=xx", nil)
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "en", got)

	assert.Equal(t, i18n.DefaultLanguage, i18n.Locale(t.Context()))
}
