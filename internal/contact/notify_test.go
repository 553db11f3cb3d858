package contact_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler"
	"github.com/dmitrymomot/formhandler/internal/contact"
	"github.com/dmitrymomot/formhandler/pkg/email"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func TestNotifyListener(t *testing.T) {
	t.Parallel()

	msg := &contact.Message{Name: "Ann <Lee>", Email: "ann@example.com", Subject: "Pricing", Message: "Hello"}

	t.Run("mails the inbox", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
			return m.To == "support@example.com" &&
				m.ReplyTo == "ann@example.com" &&
				m.Subject == "New contact message: Pricing" &&
				m.Tag == "contact" &&
				strings.Contains(m.HTMLBody, "Ann &lt;Lee&gt;")
		})).Return(nil).Once()

		listener := contact.NotifyListener(sender, "support@example.com", nil)
		require.NoError(t, listener(context.Background(), &formhandler.Event{Data: msg}))
		sender.AssertExpectations(t)
	})

	t.Run("send failure is not fatal", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

		listener := contact.NotifyListener(sender, "support@example.com", nil)
		assert.NoError(t, listener(context.Background(), &formhandler.Event{Data: msg}))
		sender.AssertExpectations(t)
	})

	t.Run("ignores other data", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}

		listener := contact.NotifyListener(sender, "support@example.com", nil)
		assert.NoError(t, listener(context.Background(), &formhandler.Event{Data: "other"}))
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}
