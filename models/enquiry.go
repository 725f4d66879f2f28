package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/constants"
)

// Enquiry is a public submission asking about a product or a custom build.
// ProductID is nil for general enquiries; AdjustmentType is only meaningful
// when a product is attached and is dropped otherwise.
type Enquiry struct {
	ID             uuid.UUID               `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string                  `gorm:"not null" json:"name"`
	Email          string                  `gorm:"not null;index" json:"email"`
	Phone          string                  `gorm:"not null" json:"phone"`
	Message        string                  `gorm:"type:text;not null" json:"message"`
	ProductID      *uuid.UUID              `gorm:"type:uuid" json:"-"`
	Product        *Product                `gorm:"foreignKey:ProductID" json:"-"`
	AdjustmentType constants.Tier          `json:"adjustmentType,omitempty"`
	Status         constants.EnquiryStatus `gorm:"index" json:"status"`
	Notes          StringList              `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time               `json:"createdAt"`
}

func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = constants.EnquiryPending
	}
	return nil
}

// EnquiryView is an enquiry with its product reference reduced to the
// {title, category} projection used by admin listings and intake responses.
type EnquiryView struct {
	Enquiry
	ProductRef *ProductSummary `json:"product,omitempty"`
}

func (e Enquiry) View() EnquiryView {
	return EnquiryView{Enquiry: e, ProductRef: e.Product.Summary()}
}
