// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Package sec provides cryptographic primitives, token management and the
// role policy of the admin surface.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing,
// authorization sets) from the domain logic.
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside an access token.
//
// The subject carries the user id. Username and role are informational;
// authorization always uses the live user resolved from the subject.
type AuthClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserID parses the numeric subject.
func (claims *AuthClaims) UserID() (int64, error) {
	return strconv.ParseInt(claims.Subject, 10, 64)
}

// TokenService issues and verifies HMAC-signed access tokens.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// ErrWeakSecret is returned when the signing secret is empty.
var ErrWeakSecret = errors.New("sec: signing secret must not be empty")

// NewTokenService creates a [TokenService] for one of HS256, HS384 or HS512.
func NewTokenService(secret, algorithm, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrWeakSecret
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("sec: unsupported signing algorithm %q", algorithm)
	}

	return &TokenService{
		secret: []byte(secret),
		method: method,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// TTL returns the lifetime of issued tokens.
func (service *TokenService) TTL() time.Duration { return service.ttl }

// IssueToken creates a signed token binding the user id, username and role.
func (service *TokenService) IssueToken(userID int64, username, role string) (string, error) {
	currentTime := service.now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		Username: username,
		Role:     role,
	}

	signedToken, err := jwt.NewWithClaims(service.method, claims).SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks signature, algorithm, issuer and expiry.
//
// It fails closed: any problem yields (nil, false) and nothing else.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, bool) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return service.secret, nil },
		jwt.WithValidMethods([]string{service.method.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil || !token.Valid {
		return nil, false
	}

	if _, err := claims.UserID(); err != nil {
		return nil, false
	}

	return claims, true
}
