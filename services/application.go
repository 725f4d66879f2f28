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

type ApplicationService interface {
	Create(ctx context.Context, req models.ApplicationRequest) (*models.Application, error)
	List(ctx context.Context) ([]models.Application, error)
	Get(ctx context.Context, id string) (*models.Application, error)
	Update(ctx context.Context, id string, req models.UpdateStatusRequest) (*models.Application, error)
	Delete(ctx context.Context, id string) error
}

type applicationService struct {
	db     *gorm.DB
	fanout *notifications.Fanout
}

func NewApplicationService(db *gorm.DB, fanout *notifications.Fanout) ApplicationService {
	return &applicationService{db: db, fanout: fanout}
}

// Create validates and persists a job application, then fans out the
// notifications. The first missing required field short-circuits.
func (s *applicationService) Create(ctx context.Context, req models.ApplicationRequest) (*models.Application, error) {
	if err := checkRequired([]requiredField{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"location", req.Location},
		{"role", req.Role},
		{"experience", req.Experience},
		{"primarySkills", req.PrimarySkills},
		{"resume", req.Resume},
		{"canJoin", req.CanJoin},
		{"coverLetter", req.CoverLetter},
	}); err != nil {
		return nil, err
	}

	application := models.Application{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		Role:            req.Role,
		Experience:      req.Experience,
		PrimarySkills:   req.PrimarySkills,
		SecondarySkills: req.SecondarySkills,
		Github:          req.Github,
		Linkedin:        req.Linkedin,
		Portfolio:       req.Portfolio,
		Resume:          req.Resume,
		CanJoin:         req.CanJoin,
		CoverLetter:     req.CoverLetter,
		Status:          constants.ApplicationPending,
		Notes:           models.StringList{},
	}

	if err := s.db.WithContext(ctx).Create(&application).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.fanout.ApplicationReceived(ctx, &application)

	return &application, nil
}

func (s *applicationService) List(ctx context.Context) ([]models.Application, error) {
	var applications []models.Application
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

func (s *applicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var application models.Application
	if err := s.db.WithContext(ctx).First(&application, "id = ?", aid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &application, nil
}

func (s *applicationService) Update(ctx context.Context, id string, req models.UpdateStatusRequest) (*models.Application, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var application models.Application
	if err := s.db.WithContext(ctx).First(&application, "id = ?", aid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	if req.Status != "" {
		status := constants.ApplicationStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		application.Status = status
	}

	notes, present, err := toNotes(req.Notes)
	if err != nil {
		return nil, err
	}
	if present {
		application.Notes = notes
	}

	if err := s.db.WithContext(ctx).Save(&application).Error; err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return &application, nil
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	aid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res := s.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", aid)
	if res.Error != nil {
		return fmt.Errorf("failed to delete application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
