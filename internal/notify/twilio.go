package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const (
	SettingTwilioAccountSID = "twilio_account_sid"
	SettingTwilioAuthToken  = "twilio_auth_token"
	SettingTwilioFrom       = "twilio_from"
	SettingTwilioTo         = "twilio_to"
)

// Twilio sends the contact request as an SMS to the shop's phone.
type Twilio struct{}

func NewTwilio() *Twilio {
	return &Twilio{}
}

func (Twilio) Name() string { return "sms" }

func (Twilio) SettingKeys() []string {
	return []string{SettingTwilioAccountSID, SettingTwilioAuthToken, SettingTwilioFrom, SettingTwilioTo}
}

func (t Twilio) Configured(settings map[string]string) bool {
	for _, k := range t.SettingKeys() {
		if settings[k] == "" {
			return false
		}
	}
	return true
}

func (Twilio) Send(ctx context.Context, settings map[string]string, msg Message) error {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: settings[SettingTwilioAccountSID],
		Password: settings[SettingTwilioAuthToken],
	})

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(settings[SettingTwilioTo])
	params.SetFrom(settings[SettingTwilioFrom])
	params.SetBody(msg.Plain())

	return sendWithContext(ctx, func() error {
		if _, err := client.Api.CreateMessage(params); err != nil {
			return fmt.Errorf("twilio send failed: %w", err)
		}
		return nil
	})
}
