// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/MKhiriev/go-sos-relay/models"
	"golang.org/x/crypto/argon2"
)

const (
	roomIDPrefix   = "room_"
	roomIDLength   = 6
	roomKeyBytes   = 16
	saltBytes      = 16
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// ErrSealedTooShort is returned by Open for blobs that cannot hold a salt and
// a nonce.
var ErrSealedTooShort = errors.New("sealed message is too short")

// roomCipher is the private implementation of [RoomCipher].
type roomCipher struct {
	// Argon2id tuning parameters. Kept in the struct so they can be lowered
	// on constrained devices.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	random io.Reader
}

// NewRoomCipher constructs a [RoomCipher] with the OWASP minimum Argon2id
// parameters:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (AES-256)
func NewRoomCipher() RoomCipher {
	return &roomCipher{
		argonTime:    2,
		argonMemory:  19 * 1024,
		argonThreads: 1,
		argonKeyLen:  32,
		random:       rand.Reader,
	}
}

// NewRoom implements [RoomCipher].
func (c *roomCipher) NewRoom() (models.Room, error) {
	id := make([]byte, roomIDLength)
	alphabet := big.NewInt(int64(len(base36Alphabet)))
	for i := range id {
		n, err := rand.Int(c.random, alphabet)
		if err != nil {
			return models.Room{}, fmt.Errorf("generate room id: %w", err)
		}
		id[i] = base36Alphabet[n.Int64()]
	}

	key := make([]byte, roomKeyBytes)
	if _, err := io.ReadFull(c.random, key); err != nil {
		return models.Room{}, fmt.Errorf("generate room key: %w", err)
	}

	return models.Room{ID: roomIDPrefix + string(id), Key: hex.EncodeToString(key)}, nil
}

// Seal implements [RoomCipher]. A fresh salt and nonce are drawn for every
// message.
func (c *roomCipher) Seal(plaintext, roomKey string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.aead(roomKey, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(salt, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [RoomCipher].
func (c *roomCipher) Open(sealed, roomKey string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode sealed message: %w", err)
	}
	if len(blob) < saltBytes {
		return "", ErrSealedTooShort
	}

	salt, rest := blob[:saltBytes], blob[saltBytes:]
	gcm, err := c.aead(roomKey, salt)
	if err != nil {
		return "", err
	}
	if len(rest) < gcm.NonceSize() {
		return "", ErrSealedTooShort
	}

	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("open sealed message: %w", err)
	}
	return string(plaintext), nil
}

func (c *roomCipher) aead(roomKey string, salt []byte) (cipher.AEAD, error) {
	if roomKey == "" {
		return nil, errors.New("empty room key")
	}
	kek := argon2.IDKey([]byte(roomKey), salt, c.argonTime, c.argonMemory, c.argonThreads, c.argonKeyLen)

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
