package models

import (
	"time"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/constants"
)

// EnquiryRequest is the public enquiry intake body. Required fields are
// checked one by one in the service so the first missing field is named.
type EnquiryRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	Product        string `json:"product"`
	AdjustmentType string `json:"adjustmentType"`
}

// ApplicationRequest is the public job application body.
type ApplicationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Role            string `json:"role"`
	Experience      string `json:"experience"`
	PrimarySkills   string `json:"primarySkills"`
	SecondarySkills string `json:"secondarySkills"`
	Github          string `json:"github"`
	Linkedin        string `json:"linkedin"`
	Portfolio       string `json:"portfolio"`
	Resume          string `json:"resume"`
	CanJoin         string `json:"canJoin"`
	CoverLetter     string `json:"coverLetter"`
}

// UpdateStatusRequest is the admin PATCH body for enquiries and
// applications. Notes stays untyped so a malformed value can be rejected
// with a precise error instead of a generic bind failure.
type UpdateStatusRequest struct {
	Status string      `json:"status"`
	Notes  interface{} `json:"notes"`
}

// OfferCreateRequest is the admin offer create body.
type OfferCreateRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description" binding:"required"`
	BannerImage string                `json:"bannerImage" binding:"required"`
	ExpiresAt   time.Time             `json:"expiresAt" binding:"required"`
	Active      *bool                 `json:"active"`
	Products    []OfferProductRequest `json:"products"`
}

type OfferProductRequest struct {
	ProductID          string         `json:"productId" binding:"required"`
	Tier               constants.Tier `json:"tier"`
	Price              *float64       `json:"price"`
	DiscountPercentage *float64       `json:"discountPercentage"`
}

// OfferUpdateRequest carries partial updates; nil fields are left unchanged.
type OfferUpdateRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	BannerImage *string                `json:"bannerImage"`
	ExpiresAt   *time.Time             `json:"expiresAt"`
	Active      *bool                  `json:"active"`
	Products    *[]OfferProductRequest `json:"products"`
}

// ProductCreateRequest is the admin product create body.
type ProductCreateRequest struct {
	Title            string                    `json:"title" binding:"required"`
	ShortDescription string                    `json:"shortDescription"`
	Description      string                    `json:"description"`
	Category         constants.ProductCategory `json:"category" binding:"required"`
	Features         []string                  `json:"features"`
	CoverImage       string                    `json:"coverImage"`
	Pricing          []PricingOption           `json:"pricing"`
}

// ProductUpdateRequest carries partial updates; nil fields are left unchanged.
type ProductUpdateRequest struct {
	Title            *string                    `json:"title"`
	ShortDescription *string                    `json:"shortDescription"`
	Description      *string                    `json:"description"`
	Category         *constants.ProductCategory `json:"category"`
	Features         *[]string                  `json:"features"`
	CoverImage       *string                    `json:"coverImage"`
	Pricing          *[]PricingOption           `json:"pricing"`
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
