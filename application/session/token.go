package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessAudience = "fashion-directory"
	resetAudience  = "fashion-directory-password-reset"
)

func (s *sessionAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseJWT(tokenString, accessAudience)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	// only the profile's current user holds a usable token
	s.mu.RLock()
	current := s.state.User
	s.mu.RUnlock()
	if current == nil || current.ID != userID {
		return 0, fmt.Errorf("token does not belong to the current session")
	}

	return userID, nil
}

func (s *sessionAppImpl) generateJWT(userID uint64, audience string, ttl time.Duration) (string, *jwt.RegisteredClaims, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token id: %w", err)
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims, nil
}

func (s *sessionAppImpl) parseJWT(tokenString, audience string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	return claims, nil
}
