package telegram

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// Sender posts a text message to one channel.
type Sender interface {
	Send(ctx context.Context, message string) error
}

// Channel sends to a fixed channel. The bot is created on first use since
// NewBotAPI calls the Telegram API.
type Channel struct {
	token     string
	channelID int64

	once   sync.Once
	bot    *tgbotapi.BotAPI
	botErr error
}

func NewChannel(token string, channelID int64) *Channel {
	return &Channel{token: token, channelID: channelID}
}

func (c *Channel) Send(ctx context.Context, message string) error {
	if c.token == "" || c.channelID == 0 {
		return errors.New("telegram channel is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	c.once.Do(func() {
		c.bot, c.botErr = tgbotapi.NewBotAPI(c.token)
	})
	if c.botErr != nil {
		return c.botErr
	}

	_, err := c.bot.Send(tgbotapi.NewMessage(c.channelID, message))
	return err
}
