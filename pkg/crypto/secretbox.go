package crypto

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/go-jose/go-jose/v3"
)

// SecretBox encrypts short PII values (KYC document numbers) for storage
// at rest using JWE compact serialization with a direct AES-256-GCM key.
type SecretBox struct {
	key       []byte
	encrypter jose.Encrypter
}

// NewSecretBox creates a secret box from a 32-byte hex-encoded key.
func NewSecretBox(keyHex string) (*SecretBox, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: key},
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &SecretBox{key: key, encrypter: encrypter}, nil
}

// Seal encrypts a plaintext value into a compact JWE string.
func (b *SecretBox) Seal(plaintext string) (string, error) {
	obj, err := b.encrypter.Encrypt([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return obj.CompactSerialize()
}

// Open decrypts a compact JWE string produced by Seal.
func (b *SecretBox) Open(ciphertext string) (string, error) {
	obj, err := jose.ParseEncrypted(ciphertext)
	if err != nil {
		return "", err
	}
	plaintext, err := obj.Decrypt(b.key)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Mask returns a display-safe form of a document number, keeping only the
// last four characters.
func Mask(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
