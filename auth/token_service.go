package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token lifetimes.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 30 * 24 * time.Hour
)

// TokenServiceImpl implements the TokenService interface
type TokenServiceImpl struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     Logger
}

// NewTokenService creates a new TokenService instance. Non-positive TTLs
// fall back to the defaults.
func NewTokenService(accessKey, refreshKey []byte, accessTTL, refreshTTL time.Duration, logger Logger) *TokenServiceImpl {
	if logger == nil {
		logger = defLogger{}
	}
	if accessTTL == 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL == 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &TokenServiceImpl{
		accessKey:  accessKey,
		refreshKey: refreshKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Verify interface compliance
var _ TokenService = (*TokenServiceImpl)(nil)

// IssueAccessToken signs a short-lived token carrying the identity's
// role and gym scope.
func (ts *TokenServiceImpl) IssueAccessToken(identity Identity) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.accessTTL)),
		},
		UserRole: identity.Role,
		Gym:      identity.GymID,
		Member:   identity.MemberID,
	}

	return ts.sign(claims, ts.accessKey)
}

// IssueRefreshToken signs a long-lived token carrying only the subject.
func (ts *TokenServiceImpl) IssueRefreshToken(userID string) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.refreshTTL)),
		},
	}

	return ts.sign(claims, ts.refreshKey)
}

// ValidateAccessToken parses and validates an access token string.
func (ts *TokenServiceImpl) ValidateAccessToken(raw string) (AuthClaims, error) {
	return ts.validate(raw, ts.accessKey)
}

// ValidateRefreshToken parses and validates a refresh token string.
func (ts *TokenServiceImpl) ValidateRefreshToken(raw string) (AuthClaims, error) {
	return ts.validate(raw, ts.refreshKey)
}

func (ts *TokenServiceImpl) sign(claims *JWTClaims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(key)
	if err != nil {
		ts.logger.Error("TokenService failed to sign token", "error", err)
		return "", err
	}

	return signedString, nil
}

// validate collapses every failure mode into ErrTokenInvalid. The cause
// is logged at debug level only: callers must not be able to tell an
// expired token from a tampered one.
func (ts *TokenServiceImpl) validate(raw string, key []byte) (AuthClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &JWTClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Warn("TokenService validate encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, ErrTokenInvalid
		}
		return key, nil
	})

	if err != nil {
		ts.logger.Debug("TokenService validate failed", "error", err)
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		ts.logger.Debug("TokenService validate could not decode claims")
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
