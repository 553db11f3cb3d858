package email_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/email"
)

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	valid := email.Message{To: "ann@example.com", Subject: "Hello", HTMLBody: "<p>hi</p>"}
	assert.NoError(t, valid.Validate())

	tests := map[string]email.Message{
		"missing to":       {Subject: "Hello", HTMLBody: "x"},
		"invalid to":       {To: "ann", Subject: "Hello", HTMLBody: "x"},
		"missing subject":  {To: "ann@example.com", HTMLBody: "x"},
		"missing body":     {To: "ann@example.com", Subject: "Hello"},
		"invalid reply to": {To: "ann@example.com", ReplyTo: "nope", Subject: "Hello", HTMLBody: "x"},
	}
	for name, msg := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, msg.Validate(), email.ErrInvalidMessage)
		})
	}
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mail")
	sender := email.NewDevSender(dir)

	msg := email.Message{To: "ann@example.com", Subject: "New contact message", HTMLBody: "<p>hi</p>", Tag: "contact"}
	require.NoError(t, sender.Send(context.Background(), msg))

	htmlFiles, err := filepath.Glob(filepath.Join(dir, "*_contact.html"))
	require.NoError(t, err)
	require.Len(t, htmlFiles, 1)
	body, err := os.ReadFile(htmlFiles[0])
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(body))

	raw, err := os.ReadFile(strings.TrimSuffix(htmlFiles[0], ".html") + ".json")
	require.NoError(t, err)
	var meta map[string]string
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "ann@example.com", meta["to"])
	assert.Equal(t, "New contact message", meta["subject"])

	assert.ErrorIs(t, sender.Send(context.Background(), email.Message{}), email.ErrInvalidMessage)
}

func TestNew(t *testing.T) {
	t.Parallel()

	dev, err := email.New(email.Config{DevOutputDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &email.DevSender{}, dev)

	pm, err := email.New(email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	})
	require.NoError(t, err)
	assert.IsType(t, &email.Postmark{}, pm)
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Hello</h1>")
		return err
	})
	html, err := email.RenderHTML(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello</h1>", html)
}
