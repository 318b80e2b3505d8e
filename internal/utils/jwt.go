package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-sos-relay/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a token carries no room id.
var ErrEmptySubject = errors.New("empty subject error")

// RoomKeyFunc resolves the signing key of a room.
type RoomKeyFunc func(roomID string) (string, error)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for a room.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the issuing device or service
//   - Subject   (sub): the room id
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// The token is signed with the room key. All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("sos-relay", room.ID, time.Minute, room.Key)
func GenerateJWTToken(issuer, roomID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || roomID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   roomID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, RoomID: roomID}, nil
}

// ValidateAndParseJWTToken validates a room token and extracts its room id.
//
// The signing key is looked up with keyFunc from the token's own subject,
// so a token can only be verified with the key of the room it names.
// Validation covers the HS256 signature, the issuer and the expiry.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, rooms.KeyOf, "sos-relay")
func ValidateAndParseJWTToken(tokenString string, keyFunc RoomKeyFunc, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		roomID, err := token.Claims.GetSubject()
		if err != nil {
			return nil, err
		}
		if roomID == "" {
			return nil, ErrEmptySubject
		}
		key, err := keyFunc(roomID)
		if err != nil {
			return nil, err
		}
		return []byte(key), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	roomID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if roomID == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{Token: token, RoomID: roomID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
