package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/constants"
)

// Application is a job candidate submission from the careers form.
type Application struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string                      `gorm:"not null" json:"name"`
	Email           string                      `gorm:"not null;index" json:"email"`
	Phone           string                      `gorm:"not null" json:"phone"`
	Location        string                      `gorm:"not null" json:"location"`
	Role            string                      `gorm:"not null" json:"role"`
	Experience      string                      `gorm:"not null" json:"experience"`
	PrimarySkills   string                      `gorm:"not null" json:"primarySkills"`
	SecondarySkills string                      `json:"secondarySkills"`
	Github          string                      `json:"github"`
	Linkedin        string                      `json:"linkedin"`
	Portfolio       string                      `json:"portfolio"`
	Resume          string                      `gorm:"not null" json:"resume"`
	CanJoin         string                      `gorm:"not null" json:"canJoin"`
	CoverLetter     string                      `gorm:"type:text;not null" json:"coverLetter"`
	Status          constants.ApplicationStatus `gorm:"index" json:"status"`
	Notes           StringList                  `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time                   `json:"createdAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = constants.ApplicationPending
	}
	return nil
}
