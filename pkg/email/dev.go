package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes each message to dir as an .html body and a .json envelope.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a sender writing into dir, created on first use.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type envelope struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	ReplyTo   string `json:"reply_to,omitempty"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

func (d *DevSender) Send(_ context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	now := d.now()
	label := msg.Tag
	if label == "" {
		label = msg.Subject
	}
	base := filepath.Join(d.dir, now.Format("20060102_150405.000000")+"_"+fileLabel(label))

	if err := os.WriteFile(base+".html", []byte(msg.HTMLBody), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	meta, err := json.MarshalIndent(envelope{
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if err := os.WriteFile(base+".json", meta, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9\-_.]`)

func fileLabel(s string) string {
	s = unsafeFileChars.ReplaceAllString(strings.ReplaceAll(strings.ToLower(s), " ", "_"), "")
	if len(s) > 64 {
		s = s[:64]
	}
	if s == "" {
		return "email"
	}
	return s
}
