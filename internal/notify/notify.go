package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Message is a contact request forwarded to the shop owner.
type Message struct {
	Name  string
	Phone string
	Email string
	Text  string
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// Markdown renders the message for Telegram's legacy Markdown mode.
func (m Message) Markdown() string {
	email := m.Email
	if email == "" {
		email = "Не указан"
	}
	text := m.Text
	if text == "" {
		text = "Без сообщения"
	}

	var b strings.Builder
	b.WriteString("📩 *Новая заявка с сайта*\n\n")
	fmt.Fprintf(&b, "👤 *Имя:* %s\n", markdownEscaper.Replace(m.Name))
	fmt.Fprintf(&b, "📞 *Телефон:* %s\n", markdownEscaper.Replace(m.Phone))
	fmt.Fprintf(&b, "📧 *Email:* %s\n", markdownEscaper.Replace(email))
	fmt.Fprintf(&b, "💬 *Сообщение:*\n%s", markdownEscaper.Replace(text))
	return b.String()
}

// Plain renders the message without markup, for SMS.
func (m Message) Plain() string {
	parts := []string{"Новая заявка: " + m.Name, "Тел: " + m.Phone}
	if m.Email != "" {
		parts = append(parts, "Email: "+m.Email)
	}
	if m.Text != "" {
		parts = append(parts, m.Text)
	}
	return strings.Join(parts, "\n")
}

// Notifier delivers a Message over one channel. Credentials come from the
// site settings at send time.
type Notifier interface {
	Name() string
	SettingKeys() []string
	Configured(settings map[string]string) bool
	Send(ctx context.Context, settings map[string]string, msg Message) error
}

type Result struct {
	Delivered []string
	Failed    map[string]error
}

// OK reports whether at least one channel delivered.
func (r Result) OK() bool {
	return len(r.Delivered) > 0
}

// Bridge runs notifications as background tasks bounded by Timeout.
type Bridge struct {
	notifiers []Notifier
	timeout   time.Duration
}

func NewBridge(timeout time.Duration, notifiers ...Notifier) *Bridge {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Bridge{notifiers: notifiers, timeout: timeout}
}

func (b *Bridge) Timeout() time.Duration {
	return b.timeout
}

// SettingKeys lists every settings key any notifier reads.
func (b *Bridge) SettingKeys() []string {
	var keys []string
	for _, n := range b.notifiers {
		keys = append(keys, n.SettingKeys()...)
	}
	return keys
}

func (b *Bridge) configured(settings map[string]string) []Notifier {
	var out []Notifier
	for _, n := range b.notifiers {
		if n.Configured(settings) {
			out = append(out, n)
		}
	}
	return out
}

// Dispatch starts delivery on every configured channel and returns at once.
// The channel receives exactly one Result and is buffered, so the task never
// blocks on a caller that stopped listening; the outcome is always logged.
// ok is false when no channel is configured.
func (b *Bridge) Dispatch(settings map[string]string, msg Message) (results <-chan Result, ok bool) {
	targets := b.configured(settings)
	if len(targets) == 0 {
		return nil, false
	}

	out := make(chan Result, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()

		res := Result{Failed: map[string]error{}}
		var mu sync.Mutex
		var wg sync.WaitGroup
		for _, n := range targets {
			wg.Add(1)
			go func(n Notifier) {
				defer wg.Done()
				err := n.Send(ctx, settings, msg)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					res.Failed[n.Name()] = err
					return
				}
				res.Delivered = append(res.Delivered, n.Name())
			}(n)
		}
		wg.Wait()

		for name, err := range res.Failed {
			log.Warn().Err(err).Str("channel", name).Msg("contact notification failed")
		}
		if len(res.Delivered) > 0 {
			log.Info().Strs("channels", res.Delivered).Msg("contact notification delivered")
		}
		out <- res
	}()

	return out, true
}

// sendWithContext runs a blocking send that has no context support and gives
// up when ctx ends. The send itself keeps running until it returns.
func sendWithContext(ctx context.Context, send func() error) error {
	done := make(chan error, 1)
	go func() { done <- send() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errors.Join(errors.New("notification timed out"), ctx.Err())
	}
}
