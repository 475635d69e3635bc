package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the given compact JWT has an "exp" claim in
// the past. The token is parsed without signature verification: the client
// has no signing key, and the check only decides whether a cached session is
// worth restoring. A token without an expiry claim is treated as valid.
//
// Returns an error if the string is not a parseable JWT.
func TokenExpired(tokenString string) (bool, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false, fmt.Errorf("invalid token claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false, fmt.Errorf("read expiration claim: %w", err)
	}
	if exp == nil {
		return false, nil
	}

	return exp.Before(time.Now()), nil
}

// TokenSubject extracts the "sub" claim (the user identifier on this API)
// from a compact JWT without verifying its signature.
func TokenSubject(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("read subject claim: %w", err)
	}

	return sub, nil
}
