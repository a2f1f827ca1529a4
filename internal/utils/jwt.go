package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
	tokenIssuer      = "eduhub"
)

type JWTService interface {
	GenerateToken(subject string) (*string, error)
	GenerateRefreshToken(subject string) (*string, error)
	// ValidateToken accepts only access tokens and returns their subject.
	ValidateToken(token string) (*string, error)
	// ValidateRefreshToken accepts only refresh tokens and returns their subject.
	ValidateRefreshToken(token string) (*string, error)
}

type jwtService struct {
	secretKey            string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

func NewJWTService(secretKey string, accessTokenDuration time.Duration, refreshTokenDuration time.Duration) JWTService {
	return &jwtService{
		secretKey:            secretKey,
		accessTokenDuration:  accessTokenDuration,
		refreshTokenDuration: refreshTokenDuration,
	}
}

func (s *jwtService) GenerateToken(subject string) (*string, error) {
	return s.sign(subject, tokenTypeAccess, s.accessTokenDuration)
}

func (s *jwtService) GenerateRefreshToken(subject string) (*string, error) {
	return s.sign(subject, tokenTypeRefresh, s.refreshTokenDuration)
}

func (s *jwtService) sign(subject, tokenType string, ttl time.Duration) (*string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        subject,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"iss":        tokenIssuer,
		"exp":        now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*string, error) {
	return s.validate(tokenString, tokenTypeAccess)
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (*string, error) {
	return s.validate(tokenString, tokenTypeRefresh)
}

func (s *jwtService) validate(tokenString, tokenType string) (*string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims["token_type"] != tokenType {
		return nil, fmt.Errorf("expected %s token", tokenType)
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("token has no subject")
	}
	return &subject, nil
}
