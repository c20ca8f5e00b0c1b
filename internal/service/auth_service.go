package service

import (
	"errors"

	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/internal/repository"
	"go-pos-backoffice/pkg/apperr"
	"go-pos-backoffice/pkg/jwt"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(username, password string) (*model.Profile, error)
	Login(username, password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*model.Profile, error)
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Profile *model.Profile `json:"profile"`
}

type authService struct {
	profileRepo repository.ProfileRepository
}

func NewAuthService(profileRepo repository.ProfileRepository) AuthService {
	return &authService{profileRepo: profileRepo}
}

func (s *authService) Register(username, password string) (*model.Profile, error) {
	if username == "" {
		return nil, apperr.Validation("username is required")
	}
	if len(password) < 6 {
		return nil, apperr.Validation("password must be at least 6 characters")
	}

	if existing, err := s.profileRepo.FindByUsername(username); err == nil && existing != nil {
		return nil, apperr.Conflict("username already taken")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile := &model.Profile{Username: username}
	if err := profile.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	profile, err := s.profileRepo.FindByUsername(username)
	if err != nil {
		return nil, apperr.Unauthenticated("invalid username or password")
	}

	if !profile.CheckPassword(password) {
		return nil, apperr.Unauthenticated("invalid username or password")
	}

	token, err := jwt.GenerateToken(profile.ID, profile.Username)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{Token: token, Profile: profile}, nil
}

func (s *authService) ValidateToken(tokenString string) (*model.Profile, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, apperr.Unauthenticated("invalid or expired token")
	}

	profile, err := s.profileRepo.FindByID(claims.TenantID)
	if err != nil {
		return nil, apperr.Unauthenticated("profile no longer exists")
	}
	return profile, nil
}
