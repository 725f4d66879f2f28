package notifications

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/constants"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

type fakeSender struct {
	sent     []tgbotapi.MessageConfig
	failChat int64
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("unexpected chattable")
	}
	if msg.ChatID == f.failChat {
		return tgbotapi.Message{}, errors.New("forbidden")
	}
	f.sent = append(f.sent, msg)
	return tgbotapi.Message{}, nil
}

func TestBroadcastSendsToEveryChat(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{api: sender, chatIDs: []int64{100, 200, 300}}

	err := n.broadcast("hello")
	require.NoError(t, err)
	require.Len(t, sender.sent, 3)
	assert.Equal(t, int64(100), sender.sent[0].ChatID)
	assert.Equal(t, "HTML", sender.sent[0].ParseMode)
}

func TestBroadcastContinuesPastFailedChat(t *testing.T) {
	sender := &fakeSender{failChat: 200}
	n := &TelegramNotifier{api: sender, chatIDs: []int64{100, 200, 300}}

	err := n.broadcast("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat 200")

	// the other destinations still got their message
	require.Len(t, sender.sent, 2)
	assert.Equal(t, int64(100), sender.sent[0].ChatID)
	assert.Equal(t, int64(300), sender.sent[1].ChatID)
}

func TestFormatEnquiry(t *testing.T) {
	e := &models.Enquiry{
		Name:           "Asha",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		Message:        "Need a custom build",
		AdjustmentType: constants.TierPro,
	}

	text := formatEnquiry(e, ProductView{Title: "Shopfront", Category: "ecommerce"})
	assert.Contains(t, text, "Asha")
	assert.Contains(t, text, "asha@example.com")
	assert.Contains(t, text, "Shopfront")
	assert.Contains(t, text, "ecommerce")
	assert.Contains(t, text, "Plan: pro")
	assert.Contains(t, text, "Need a custom build")
}

func TestFormatEnquiryWithoutProduct(t *testing.T) {
	e := &models.Enquiry{Name: "Ravi", Email: "r@example.com", Phone: "1", Message: "hi"}

	text := formatEnquiry(e, PlaceholderProduct())
	assert.Contains(t, text, "N/A")
	assert.Contains(t, text, "Plan: N/A")
}

func TestFormatApplication(t *testing.T) {
	a := &models.Application{
		Name:          "Meera",
		Email:         "meera@example.com",
		Phone:         "123",
		Location:      "Pune",
		Role:          "Backend Engineer",
		Experience:    "3 years",
		PrimarySkills: "Go, Postgres",
		CanJoin:       "2 weeks",
		Resume:        "https://example.com/resume.pdf",
	}

	text := formatApplication(a)
	assert.Contains(t, text, "Meera")
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "https://example.com/resume.pdf")
}
