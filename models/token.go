package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to a device for one room.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. The "sub" claim holds
// the room id; the token is signed with the room key, so only devices that
// scanned or created the room can talk to the hub on its behalf.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// RoomID is a cached copy of the "sub" claim.
	RoomID string `json:"-"`
}

// GetRoomID extracts the room identifier from the token's "sub" claim.
func (t *Token) GetRoomID() (string, error) {
	roomID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting RoomID from token: %w", err)
	}
	if roomID == "" {
		return "", errors.New("empty room id in token subject")
	}
	return roomID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
