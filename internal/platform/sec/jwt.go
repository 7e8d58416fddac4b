// Copyright (c) 2026 StoreRatings. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the payload embedded inside a session token.
//
// # Why custom claims?
//
// By embedding the UserID, Name, and Role directly inside the JWT, the
// authentication middleware can reconstruct the active principal WITHOUT
// querying the database on every single API request. Identity is immutable
// once issued: role changes only take effect after re-authentication.
type Claims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID int64  `json:"uid"`
	Name   string `json:"unm"`
	Role   Role   `json:"rol"`
}

var (
	// ErrTokenInvalid marks a token whose signature or structure failed
	// verification. Any bit-level tamper surfaces as this error.
	ErrTokenInvalid = errors.New("sec: token invalid")

	// ErrTokenExpired marks a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("sec: token expired")
)

// TokenCodec signs and verifies session tokens using HS256.
//
// Encoding is deterministic over the full claim set, so the role cannot be
// escalated by altering the token without invalidating the signature.
// Decoding is pure: no storage lookup, which keeps token verification
// horizontally scalable.
type TokenCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenCodec creates a TokenCodec with a shared signing secret and the
// fixed token lifetime.
func NewTokenCodec(secret, issuer string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Encode creates a signed session token for the given principal.
func (codec *TokenCodec) Encode(userID int64, name string, role Role) (string, error) {
	currentTime := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    codec.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(codec.ttl)),
		},
		UserID: userID,
		Name:   name,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(codec.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Decode checks the signature and validity of a token string.
//
// # Returns
//   - [ErrTokenExpired] if the signature is valid but the token is past expiry.
//   - [ErrTokenInvalid] for any other failure (tamper, malformed structure,
//     wrong signing algorithm, unknown role).
func (codec *TokenCodec) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject algorithm-substitution tokens (e.g. "none" or RS256).
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return codec.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if !claims.Role.Valid() {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
