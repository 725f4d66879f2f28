package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

type OfferService interface {
	ListLive(ctx context.Context) ([]models.OfferView, error)
	ListAll(ctx context.Context) ([]models.Offer, error)
	Create(ctx context.Context, req models.OfferCreateRequest) (*models.Offer, error)
	Get(ctx context.Context, id string) (*models.Offer, error)
	Update(ctx context.Context, id string, req models.OfferUpdateRequest) (*models.Offer, error)
	Delete(ctx context.Context, id string) error
}

type offerService struct {
	db *gorm.DB
}

func NewOfferService(db *gorm.DB) OfferService {
	return &offerService{db: db}
}

// ListLive returns only offers that are active and not yet expired, with
// product references populated for the storefront.
func (s *offerService) ListLive(ctx context.Context) ([]models.OfferView, error) {
	var offers []models.Offer
	if err := s.db.WithContext(ctx).
		Preload("Products.Product").
		Where("active = ? AND expires_at >= ?", true, time.Now()).
		Order("created_at DESC").
		Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	views := make([]models.OfferView, 0, len(offers))
	for _, o := range offers {
		views = append(views, o.View())
	}
	return views, nil
}

func (s *offerService) ListAll(ctx context.Context) ([]models.Offer, error) {
	var offers []models.Offer
	if err := s.db.WithContext(ctx).
		Preload("Products").
		Order("created_at DESC").
		Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

func (s *offerService) Create(ctx context.Context, req models.OfferCreateRequest) (*models.Offer, error) {
	products, err := s.buildProducts(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	offer := models.Offer{
		Title:       req.Title,
		Description: req.Description,
		BannerImage: req.BannerImage,
		Active:      active,
		ExpiresAt:   req.ExpiresAt,
		Products:    products,
	}

	if err := s.db.WithContext(ctx).Create(&offer).Error; err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}
	return &offer, nil
}

func (s *offerService) buildProducts(ctx context.Context, reqs []models.OfferProductRequest) ([]models.OfferProduct, error) {
	products := make([]models.OfferProduct, 0, len(reqs))
	for _, r := range reqs {
		pid, err := uuid.Parse(r.ProductID)
		if err != nil {
			return nil, ErrInvalidProduct
		}
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", pid).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}
		if count == 0 {
			return nil, ErrInvalidProduct
		}
		products = append(products, models.OfferProduct{
			ProductID:          pid,
			Tier:               r.Tier,
			Price:              r.Price,
			DiscountPercentage: r.DiscountPercentage,
		})
	}
	return products, nil
}

func (s *offerService) Get(ctx context.Context, id string) (*models.Offer, error) {
	oid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var offer models.Offer
	if err := s.db.WithContext(ctx).Preload("Products").First(&offer, "id = ?", oid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

func (s *offerService) Update(ctx context.Context, id string, req models.OfferUpdateRequest) (*models.Offer, error) {
	oid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var offer models.Offer
	if err := s.db.WithContext(ctx).Preload("Products").First(&offer, "id = ?", oid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.BannerImage != nil {
		offer.BannerImage = *req.BannerImage
	}
	if req.ExpiresAt != nil {
		offer.ExpiresAt = *req.ExpiresAt
	}
	if req.Active != nil {
		offer.Active = *req.Active
	}

	if req.Products != nil {
		products, err := s.buildProducts(ctx, *req.Products)
		if err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Where("offer_id = ?", offer.ID).Delete(&models.OfferProduct{}).Error; err != nil {
			return nil, fmt.Errorf("failed to replace offer products: %w", err)
		}
		for i := range products {
			products[i].OfferID = offer.ID
		}
		offer.Products = products
	}

	if err := s.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&offer).Error; err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}
	return &offer, nil
}

func (s *offerService) Delete(ctx context.Context, id string) error {
	oid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}
	res := s.db.WithContext(ctx).Delete(&models.Offer{}, "id = ?", oid)
	if res.Error != nil {
		return fmt.Errorf("failed to delete offer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if err := s.db.WithContext(ctx).Where("offer_id = ?", oid).Delete(&models.OfferProduct{}).Error; err != nil {
		return fmt.Errorf("failed to delete offer products: %w", err)
	}
	return nil
}
