package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"eduhub/internal/apis/dtos"
	"eduhub/internal/repositories"
	"eduhub/internal/utils"
	"eduhub/pkg/logger"
)

// AuthService authenticates the operator allowed to run setup endpoints.
type AuthService interface {
	Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.AuthResponse, uint, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dtos.RefreshTokenResponse, uint, error)
	Logout(ctx context.Context, refreshToken string, accessToken string) (uint, error)
}

type authService struct {
	jwtService        utils.JWTService
	tokenRepo         repositories.TokenRepository
	adminUser         string
	adminPasswordHash string
	accessTokenTTL    time.Duration
	log               *logger.Logger
}

func NewAuthService(
	jwtService utils.JWTService,
	tokenRepo repositories.TokenRepository,
	adminUser string,
	adminPassword string,
	accessTokenTTL time.Duration,
	log *logger.Logger,
) (AuthService, error) {
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{
		jwtService:        jwtService,
		tokenRepo:         tokenRepo,
		adminUser:         adminUser,
		adminPasswordHash: hash,
		accessTokenTTL:    accessTokenTTL,
		log:               log,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.AuthResponse, uint, error) {
	if req.Username != s.adminUser || !utils.CheckPasswordHash(req.Password, s.adminPasswordHash) {
		s.log.Warn("AuthService -> Login -> invalid credentials", "username", req.Username)
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}

	accessToken, err := s.jwtService.GenerateToken(req.Username)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(req.Username)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	if err := s.tokenRepo.StoreRefreshToken(ctx, req.Username, *refreshToken); err != nil {
		s.log.Error("AuthService -> Login -> store refresh token failed", "error", err)
		return nil, http.StatusInternalServerError, err
	}

	s.log.Info("AuthService -> Login -> operator logged in", "username", req.Username)
	return &dtos.AuthResponse{
		AccessToken:  *accessToken,
		RefreshToken: *refreshToken,
		Username:     req.Username,
	}, http.StatusOK, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dtos.RefreshTokenResponse, uint, error) {
	subject, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, http.StatusUnauthorized, errors.New("invalid refresh token")
	}

	if !s.tokenRepo.ValidateRefreshToken(ctx, *subject, refreshToken) {
		return nil, http.StatusUnauthorized, errors.New("refresh token not found")
	}

	accessToken, err := s.jwtService.GenerateToken(*subject)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return &dtos.RefreshTokenResponse{
		AccessToken: *accessToken,
	}, http.StatusOK, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string, accessToken string) (uint, error) {
	subject, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return http.StatusUnauthorized, errors.New("invalid refresh token")
	}

	if _, err := s.jwtService.ValidateToken(accessToken); err != nil {
		return http.StatusUnauthorized, errors.New("invalid access token")
	}

	if err := s.tokenRepo.DeleteRefreshToken(ctx, *subject, refreshToken); err != nil {
		s.log.Warn("AuthService -> Logout -> delete refresh token failed", "error", err)
		return http.StatusUnauthorized, err
	}

	// Blacklist the access token until its original expiration
	if err := s.tokenRepo.BlacklistToken(ctx, accessToken, s.accessTokenTTL); err != nil {
		return http.StatusInternalServerError, err
	}

	s.log.Info("AuthService -> Logout -> operator logged out", "username", *subject)
	return http.StatusOK, nil
}
