package services

import (
	"gorm.io/gorm"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/config"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/notifications"
)

// ServiceManager wires every service over the shared database handle and the
// notification fanout.
type ServiceManager struct {
	Auth         AuthService
	Enquiries    EnquiryService
	Applications ApplicationService
	Offers       OfferService
	Products     ProductService
}

func NewServiceManager(db *gorm.DB, fanout *notifications.Fanout, cfg *config.Config) *ServiceManager {
	return &ServiceManager{
		Auth:         NewAuthService(cfg),
		Enquiries:    NewEnquiryService(db, fanout),
		Applications: NewApplicationService(db, fanout),
		Offers:       NewOfferService(db),
		Products:     NewProductService(db),
	}
}
