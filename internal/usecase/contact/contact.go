package contact

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/notify"
)

const (
	MsgSent          = "Message sent successfully"
	MsgNotifyFailed  = "Message received but notification failed"
	MsgNotConfigured = "Application received (notifications not configured)"
)

// waitGrace covers scheduling slack on top of the bridge timeout.
const waitGrace = 250 * time.Millisecond

// Submitter forwards contact requests to the configured channels. Contact
// requests are not stored.
type Submitter struct {
	settings catalog.SettingRepository
	bridge   *notify.Bridge
}

func NewSubmitter(settings catalog.SettingRepository, bridge *notify.Bridge) *Submitter {
	return &Submitter{settings: settings, bridge: bridge}
}

// Submit validates before any notification is attempted and never fails
// because of a notification; the outcome is only reflected in the message.
func (s *Submitter) Submit(ctx context.Context, in catalog.ContactInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	settings, err := s.settings.Values(ctx, s.bridge.SettingKeys()...)
	if err != nil {
		return "", httperr.ErrStore("Internal server error", err)
	}

	results, ok := s.bridge.Dispatch(settings, notify.Message{
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
		Text:  in.Message,
	})
	if !ok {
		return MsgNotConfigured, nil
	}

	timer := time.NewTimer(s.bridge.Timeout() + waitGrace)
	defer timer.Stop()

	select {
	case res := <-results:
		if res.OK() {
			return MsgSent, nil
		}
		return MsgNotifyFailed, nil
	case <-timer.C:
		return MsgNotifyFailed, nil
	case <-ctx.Done():
		return MsgNotifyFailed, nil
	}
}
