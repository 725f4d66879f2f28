package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/constants"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/notifications"
)

type EnquiryService interface {
	Create(ctx context.Context, req models.EnquiryRequest) (*models.EnquiryView, error)
	List(ctx context.Context) ([]models.EnquiryView, error)
	Get(ctx context.Context, id string) (*models.EnquiryView, error)
	Update(ctx context.Context, id string, req models.UpdateStatusRequest) (*models.Enquiry, error)
	Delete(ctx context.Context, id string) error
}

type enquiryService struct {
	db     *gorm.DB
	fanout *notifications.Fanout
}

func NewEnquiryService(db *gorm.DB, fanout *notifications.Fanout) EnquiryService {
	return &enquiryService{db: db, fanout: fanout}
}

// Create validates and persists a public enquiry, then fans out the
// notifications. Persistence success is the only success criterion; channel
// failures are logged inside the fanout and never surface here.
func (s *enquiryService) Create(ctx context.Context, req models.EnquiryRequest) (*models.EnquiryView, error) {
	if err := checkRequired([]requiredField{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"message", req.Message},
	}); err != nil {
		return nil, err
	}

	enquiry := models.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  constants.EnquiryPending,
		Notes:   models.StringList{},
	}

	productView := notifications.PlaceholderProduct()
	if req.Product != "" {
		product, err := s.resolveProduct(ctx, req.Product)
		if err != nil {
			return nil, err
		}
		enquiry.ProductID = &product.ID
		enquiry.Product = product
		// adjustmentType only means something next to a product
		enquiry.AdjustmentType = constants.Tier(req.AdjustmentType)
		productView = notifications.ProductView{
			ID:       product.ID.String(),
			Title:    product.Title,
			Category: string(product.Category),
		}
	}

	if err := s.db.WithContext(ctx).Omit("Product").Create(&enquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	s.fanout.EnquiryReceived(ctx, &enquiry, productView)

	view := enquiry.View()
	return &view, nil
}

func (s *enquiryService) resolveProduct(ctx context.Context, raw string) (*models.Product, error) {
	pid, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrInvalidProduct
	}
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidProduct
		}
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	return &product, nil
}

func (s *enquiryService) List(ctx context.Context) ([]models.EnquiryView, error) {
	var enquiries []models.Enquiry
	if err := s.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Find(&enquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}

	views := make([]models.EnquiryView, 0, len(enquiries))
	for _, e := range enquiries {
		views = append(views, e.View())
	}
	return views, nil
}

func (s *enquiryService) Get(ctx context.Context, id string) (*models.EnquiryView, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var enquiry models.Enquiry
	if err := s.db.WithContext(ctx).Preload("Product").First(&enquiry, "id = ?", eid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}
	view := enquiry.View()
	return &view, nil
}

// Update applies an admin status/notes patch. Any value from the fixed enum
// is accepted regardless of the current status.
func (s *enquiryService) Update(ctx context.Context, id string, req models.UpdateStatusRequest) (*models.Enquiry, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var enquiry models.Enquiry
	if err := s.db.WithContext(ctx).First(&enquiry, "id = ?", eid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}

	if req.Status != "" {
		status := constants.EnquiryStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		enquiry.Status = status
	}

	notes, present, err := toNotes(req.Notes)
	if err != nil {
		return nil, err
	}
	if present {
		enquiry.Notes = notes
	}

	if err := s.db.WithContext(ctx).Save(&enquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to update enquiry: %w", err)
	}
	return &enquiry, nil
}

func (s *enquiryService) Delete(ctx context.Context, id string) error {
	eid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res := s.db.WithContext(ctx).Delete(&models.Enquiry{}, "id = ?", eid)
	if res.Error != nil {
		return fmt.Errorf("failed to delete enquiry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
