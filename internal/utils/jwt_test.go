package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func keyOf(keys map[string]string) RoomKeyFunc {
	return func(roomID string) (string, error) {
		key, ok := keys[roomID]
		if !ok {
			return "", errors.New("unknown room")
		}
		return key, nil
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	roomID := "room_abc123"

	token, err := GenerateJWTToken(issuer, roomID, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.RoomID != roomID {
		t.Errorf("expected room %s, got %s", roomID, token.RoomID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != roomID {
		t.Errorf("expected subject %s, got %s", roomID, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		roomID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "room", time.Hour, "key"},
		{"empty room", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "room", 0, "key"},
		{"empty key", "iss", "room", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.roomID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "room_a", time.Minute*5, "key-a")

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, keyOf(map[string]string{"room_a": "key-a"}), "iss")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.RoomID != "room_a" {
		t.Errorf("expected room_a, got %s", parsed.RoomID)
	}
}

func TestValidateAndParseJWTToken_KeyOfAnotherRoom(t *testing.T) {
	// signed with room_b's key but claiming room_a
	genToken, _ := GenerateJWTToken("iss", "room_a", time.Hour, "key-b")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, keyOf(map[string]string{"room_a": "key-a", "room_b": "key-b"}), "iss")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_UnknownRoom(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "room_x", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, keyOf(nil), "iss")
	if err == nil {
		t.Error("expected error for unknown room, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "room_a", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, keyOf(map[string]string{"room_a": "key"}), "iss")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "room_a", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, keyOf(map[string]string{"room_a": "key"}), "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", keyOf(nil), "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Errorf("unexpected result %q, %v", tok, err)
	}

	for _, h := range []string{"", "Bearer", "Bearer ", "a b c"} {
		if _, err := ParseBearerToken(h); err == nil {
			t.Errorf("expected error for %q", h)
		}
	}
}
