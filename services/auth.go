package services

import (
	"crypto/subtle"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/config"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/utils"
)

type AuthService interface {
	Login(email, password string) (string, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login checks the configured admin credential and issues a session token.
func (s *authService) Login(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if !emailOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT([]byte(s.cfg.JWTSecret), email)
}
