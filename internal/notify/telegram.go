package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	SettingTelegramToken  = "telegram_token"
	SettingTelegramChatID = "telegram_chat_id"
)

// Telegram posts to the Bot API sendMessage method.
type Telegram struct {
	BaseURL string
	Client  *http.Client
}

func NewTelegram(baseURL string) *Telegram {
	return &Telegram{BaseURL: baseURL, Client: http.DefaultClient}
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) SettingKeys() []string {
	return []string{SettingTelegramToken, SettingTelegramChatID}
}

func (t *Telegram) Configured(settings map[string]string) bool {
	return settings[SettingTelegramToken] != "" && settings[SettingTelegramChatID] != ""
}

type telegramRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func (t *Telegram) Send(ctx context.Context, settings map[string]string, msg Message) error {
	body, err := json.Marshal(telegramRequest{
		ChatID:    settings[SettingTelegramChatID],
		Text:      msg.Markdown(),
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.BaseURL, settings[SettingTelegramToken])
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		// The URL embeds the bot token; keep it out of logs.
		return fmt.Errorf("telegram request failed: %w", unwrapURLError(err))
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram responded %d", resp.StatusCode)
	}
	return nil
}

func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
