// Package secrets seals small values (vendor storefront credentials) for
// storage with AES-256-GCM.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const keySize = 32

// The salt is fixed so a passphrase always derives the same key.
var passphraseSalt = []byte("partnerhub/secrets/v1")

var (
	// ErrEmptyKey indicates no key material was configured.
	ErrEmptyKey = errors.New("secret key is empty")
	// ErrMalformed indicates a sealed value that is not valid base64 or is too short.
	ErrMalformed = errors.New("malformed sealed value")
	// ErrDecrypt indicates authentication failed: wrong key or tampered value.
	ErrDecrypt = errors.New("decrypt sealed value")
)

// Box seals and opens values under one key.
type Box struct {
	aead cipher.AEAD
}

// New builds a Box. A base64 key that decodes to 32 bytes is used as is;
// anything else is treated as a passphrase and stretched with scrypt.
func New(key string) (*Box, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}

	raw, err := deriveKey(key)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return &Box{aead: aead}, nil
}

func deriveKey(key string) ([]byte, error) {
	if decoded, err := base64.StdEncoding.DecodeString(key); err == nil && len(decoded) == keySize {
		return decoded, nil
	}
	derived, err := scrypt.Key([]byte(key), passphraseSalt, 1<<15, 8, 1, keySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return derived, nil
}

// Seal encrypts plaintext and returns base64(nonce || ciphertext).
func (b *Box) Seal(plaintext string) (string, error) {
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	sealed := b.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal.
func (b *Box) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(sealed))
	if err != nil {
		return "", ErrMalformed
	}
	nonceSize := b.aead.NonceSize()
	if len(raw) < nonceSize+b.aead.Overhead() {
		return "", ErrMalformed
	}
	plaintext, err := b.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(plaintext), nil
}
