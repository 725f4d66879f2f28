package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/constants"
)

// Product is a pre-built software product listed on the marketplace.
type Product struct {
	ID               uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string                    `gorm:"not null" json:"title"`
	ShortDescription string                    `json:"shortDescription"`
	Description      string                    `gorm:"type:text" json:"description"`
	Category         constants.ProductCategory `gorm:"index" json:"category"`
	Features         StringList                `gorm:"type:text" json:"features"`
	CoverImage       string                    `json:"coverImage"`
	Pricing          PricingList               `gorm:"type:text" json:"pricing"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProductSummary is the reduced projection attached to admin enquiry listings.
type ProductSummary struct {
	ID       uuid.UUID                 `json:"id"`
	Title    string                    `json:"title"`
	Category constants.ProductCategory `json:"category"`
}

func (p *Product) Summary() *ProductSummary {
	if p == nil {
		return nil
	}
	return &ProductSummary{ID: p.ID, Title: p.Title, Category: p.Category}
}

// ProductOfferView is the projection populated into public offer listings.
type ProductOfferView struct {
	ID               uuid.UUID   `json:"id"`
	Title            string      `json:"title"`
	ShortDescription string      `json:"shortDescription"`
	Pricing          PricingList `json:"pricingOptions"`
}

func (p *Product) OfferView() *ProductOfferView {
	if p == nil {
		return nil
	}
	return &ProductOfferView{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Pricing:          p.Pricing,
	}
}
