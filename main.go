package main

import (
	"log"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/config"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/db"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/handlers"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/notifications"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/routes"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/services"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	fanout := notifications.NewFanout(buildNotifiers(cfg)...)

	sm := services.NewServiceManager(database, fanout, cfg)
	hm := handlers.NewHandlerManager(sm)

	r := routes.SetupRoutes(hm, cfg.JWTSecret)

	log.Printf("MarketPlace service starting on port %s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}

// buildNotifiers constructs every channel that has configuration; a channel
// with missing settings is skipped, not fatal.
func buildNotifiers(cfg *config.Config) []notifications.Notifier {
	var notifiers []notifications.Notifier

	if cfg.TelegramToken != "" && len(cfg.TelegramChatIDs) > 0 {
		tg, err := notifications.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatIDs)
		if err != nil {
			log.Printf("telegram notifier disabled: %v", err)
		} else {
			notifiers = append(notifiers, tg)
		}
	} else {
		log.Printf("telegram notifier disabled: missing token or chat ids")
	}

	if cfg.SMTPHost != "" && cfg.SMTPUser != "" {
		notifiers = append(notifiers, notifications.NewEmailNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass))
	} else {
		log.Printf("email notifier disabled: missing SMTP configuration")
	}

	if cfg.PushServiceURL != "" {
		notifiers = append(notifiers, notifications.NewPushNotifier(cfg.PushServiceURL, cfg.PushAPIKey, cfg.PushTopic))
	} else {
		log.Printf("push notifier disabled: missing service url")
	}

	return notifiers
}
