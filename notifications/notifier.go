package notifications

import (
	"context"
	"log"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

// ProductView is the product snapshot rendered into notification text. It is
// never persisted; enquiries without a product get the placeholder.
type ProductView struct {
	ID       string
	Title    string
	Category string
}

// PlaceholderProduct is the view used when an enquiry has no product.
func PlaceholderProduct() ProductView {
	return ProductView{Title: "N/A", Category: "N/A"}
}

// Notifier sends one kind of notification over one external channel.
type Notifier interface {
	Name() string
	EnquiryReceived(ctx context.Context, e *models.Enquiry, product ProductView) error
	ApplicationReceived(ctx context.Context, a *models.Application) error
}

// Fanout dispatches an event to every configured channel. Each channel is
// independent: a failure is logged and must never reach the caller, so a
// third-party outage cannot fail the request that triggered it.
type Fanout struct {
	notifiers []Notifier
}

func NewFanout(notifiers ...Notifier) *Fanout {
	return &Fanout{notifiers: notifiers}
}

func (f *Fanout) EnquiryReceived(ctx context.Context, e *models.Enquiry, product ProductView) {
	for _, n := range f.notifiers {
		if err := n.EnquiryReceived(ctx, e, product); err != nil {
			log.Printf("notifications: %s enquiry dispatch failed: %v", n.Name(), err)
		}
	}
}

func (f *Fanout) ApplicationReceived(ctx context.Context, a *models.Application) {
	for _, n := range f.notifiers {
		if err := n.ApplicationReceived(ctx, a); err != nil {
			log.Printf("notifications: %s application dispatch failed: %v", n.Name(), err)
		}
	}
}
