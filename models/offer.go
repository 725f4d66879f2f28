package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/constants"
)

// Offer is a time-bound promotion over one or more products. It is "live"
// for public listing only while Active is true and ExpiresAt has not passed.
type Offer struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	BannerImage string         `json:"bannerImage"`
	Active      bool           `gorm:"index" json:"active"`
	ExpiresAt   time.Time      `gorm:"index" json:"expiresAt"`
	Products    []OfferProduct `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"products"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Live reports whether the offer qualifies for public listing at t.
func (o *Offer) Live(t time.Time) bool {
	return o.Active && !o.ExpiresAt.Before(t)
}

// OfferProduct links an offer to a product, optionally overriding the
// price/discount of one tier for the duration of the offer.
type OfferProduct struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"-"`
	OfferID            uuid.UUID      `gorm:"type:uuid;index" json:"-"`
	ProductID          uuid.UUID      `gorm:"type:uuid;not null" json:"productId"`
	Product            *Product       `gorm:"foreignKey:ProductID" json:"-"`
	Tier               constants.Tier `json:"tier,omitempty"`
	Price              *float64       `json:"price,omitempty"`
	DiscountPercentage *float64       `json:"discountPercentage,omitempty"`
}

func (op *OfferProduct) BeforeCreate(tx *gorm.DB) error {
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	return nil
}

// OfferProductView is an offer line with its product populated for the
// public listing.
type OfferProductView struct {
	OfferProduct
	ProductRef *ProductOfferView `json:"product,omitempty"`
}

// OfferView is the public shape of an offer.
type OfferView struct {
	Offer
	Products []OfferProductView `json:"products"`
}

func (o Offer) View() OfferView {
	products := make([]OfferProductView, 0, len(o.Products))
	for _, op := range o.Products {
		products = append(products, OfferProductView{
			OfferProduct: op,
			ProductRef:   op.Product.OfferView(),
		})
	}
	return OfferView{Offer: o, Products: products}
}
