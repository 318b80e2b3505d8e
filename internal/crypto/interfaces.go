package crypto

import "github.com/MKhiriev/go-sos-relay/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/room_cipher_mock.go -package=mock

// RoomCipher owns all client-side cryptography of a room. It knows nothing
// about the network, the database or the collections.
//
// Scheme:
//
//	Room      = NewRoom()                           random id and 128-bit key
//	KEK       = Argon2id(room.Key, salt)            per message, random salt
//	Sealed    = base64(salt ‖ nonce ‖ AES-GCM(KEK, body))
type RoomCipher interface {
	// NewRoom generates a room: "room_" followed by six base36 characters,
	// and a 16-byte key encoded as hex.
	NewRoom() (models.Room, error)

	// Seal encrypts plaintext for every device that knows roomKey.
	Seal(plaintext, roomKey string) (string, error)

	// Open reverses Seal. It fails when the key is wrong or the blob was
	// tampered with.
	Open(sealed, roomKey string) (string, error)
}
