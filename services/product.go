package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, req models.ProductCreateRequest) (*models.Product, error)
	Update(ctx context.Context, id string, req models.ProductUpdateRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) ProductService {
	return &productService{db: db}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id string) (*models.Product, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (s *productService) Create(ctx context.Context, req models.ProductCreateRequest) (*models.Product, error) {
	if !req.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	for _, p := range req.Pricing {
		if !p.Tier.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	product := models.Product{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Category:         req.Category,
		Features:         models.StringList(req.Features),
		CoverImage:       req.CoverImage,
		Pricing:          models.PricingList(req.Pricing),
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *productService) Update(ctx context.Context, id string, req models.ProductUpdateRequest) (*models.Product, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.ShortDescription != nil {
		product.ShortDescription = *req.ShortDescription
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		product.Category = *req.Category
	}
	if req.Features != nil {
		product.Features = models.StringList(*req.Features)
	}
	if req.CoverImage != nil {
		product.CoverImage = *req.CoverImage
	}
	if req.Pricing != nil {
		for _, p := range *req.Pricing {
			if !p.Tier.Valid() {
				return nil, ErrInvalidStatus
			}
		}
		product.Pricing = models.PricingList(*req.Pricing)
	}

	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	pid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}
	res := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", pid)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
