// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HMAC hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, geodesic distance and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// RoomIDCtxKey is the key used to store the authenticated room id in the
// context.
//
//	ctx := context.WithValue(ctx, utils.RoomIDCtxKey, "room_ab12cd")
var RoomIDCtxKey = contextKey("roomID")

// GetRoomIDFromContext retrieves the authenticated room id from the context.
// ok is false when the value is missing or has an unexpected type.
func GetRoomIDFromContext(ctx context.Context) (string, bool) {
	roomID, ok := ctx.Value(RoomIDCtxKey).(string)
	return roomID, ok && roomID != ""
}
