package notifications

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

// sender is the slice of the bot API we use, split out so tests can fake it.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier broadcasts submission summaries to a fixed list of chats.
type TelegramNotifier struct {
	api     sender
	chatIDs []int64
}

func NewTelegramNotifier(token string, chatIDs []int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramNotifier{api: api, chatIDs: chatIDs}, nil
}

func (t *TelegramNotifier) Name() string { return "telegram" }

func (t *TelegramNotifier) EnquiryReceived(ctx context.Context, e *models.Enquiry, product ProductView) error {
	return t.broadcast(formatEnquiry(e, product))
}

func (t *TelegramNotifier) ApplicationReceived(ctx context.Context, a *models.Application) error {
	return t.broadcast(formatApplication(a))
}

// broadcast sends one message per chat. Each send is independent; the
// returned error joins every failed destination.
func (t *TelegramNotifier) broadcast(text string) error {
	var errs []error
	for _, chatID := range t.chatIDs {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = "HTML"
		if _, err := t.api.Send(msg); err != nil {
			errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
		}
	}
	return errors.Join(errs...)
}

func formatEnquiry(e *models.Enquiry, product ProductView) string {
	return fmt.Sprintf(
		"📩 <b>New Enquiry</b>\n"+
			"👤 %s\n"+
			"📧 %s\n"+
			"📱 %s\n"+
			"📦 %s (%s)\n"+
			"🔧 Plan: %s\n"+
			"💬 %s",
		e.Name,
		e.Email,
		e.Phone,
		product.Title,
		product.Category,
		planOrNA(string(e.AdjustmentType)),
		e.Message,
	)
}

func formatApplication(a *models.Application) string {
	return fmt.Sprintf(
		"📝 <b>New Job Application</b>\n"+
			"👤 %s\n"+
			"📧 %s\n"+
			"📱 %s\n"+
			"📍 %s\n"+
			"💼 %s (%s)\n"+
			"🛠 %s\n"+
			"📅 Can join: %s\n"+
			"📄 <a href=\"%s\">Resume</a>",
		a.Name,
		a.Email,
		a.Phone,
		a.Location,
		a.Role,
		a.Experience,
		a.PrimarySkills,
		a.CanJoin,
		a.Resume,
	)
}

func planOrNA(plan string) string {
	if plan == "" {
		return "N/A"
	}
	return plan
}
