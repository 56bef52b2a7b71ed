// Package clientcrypto seals the CLI wallet key at rest with a passphrase.
package clientcrypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Params
const (
	KeKLen  = 32
	SaltLen = 16

	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 1
)

// ErrWrongPassphrase is returned when a sealed key cannot be opened.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

func Rand(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// DeriveKEK derives a KEK from passphrase and salt using Argon2id.
func DeriveKEK(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, KeKLen)
}

// Seal encrypts plaintext with kek using XChaCha20-Poly1305 and a random
// nonce. The output is nonce||ciphertext.
func Seal(kek, plaintext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(kek)
	if err != nil {
		return nil, err
	}
	nonce, err := Rand(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, plaintext, aad)...)
	return out, nil
}

// Open decrypts the output of Seal.
func Open(kek, sealed, aad []byte) ([]byte, error) {
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return nil, errors.New("sealed too short")
	}
	aead, err := chacha20poly1305.NewX(kek)
	if err != nil {
		return nil, err
	}
	nonce := sealed[:chacha20poly1305.NonceSizeX]
	ct := sealed[chacha20poly1305.NonceSizeX:]
	return aead.Open(nil, nonce, ct, aad)
}

// SealKey protects a raw private key with passphrase. The account address is
// bound as AAD so a key file cannot be relabelled. Output is salt||nonce||ct.
func SealKey(passphrase, address, rawKey []byte) ([]byte, error) {
	salt, err := Rand(SaltLen)
	if err != nil {
		return nil, err
	}
	box, err := Seal(DeriveKEK(passphrase, salt), rawKey, address)
	if err != nil {
		return nil, err
	}
	return append(salt, box...), nil
}

// OpenKey reverses SealKey.
func OpenKey(passphrase, address, sealed []byte) ([]byte, error) {
	if len(sealed) < SaltLen {
		return nil, ErrWrongPassphrase
	}
	raw, err := Open(DeriveKEK(passphrase, sealed[:SaltLen]), sealed[SaltLen:], address)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return raw, nil
}
