// Package crypto implements wallet keys and EIP-191 personal message signatures.
package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// SignatureLen is the length of an [R || S || V] signature.
const SignatureLen = 65

// ErrBadSignature is returned when a signature does not recover to the expected address.
var ErrBadSignature = errors.New("signature does not match address")

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// GenerateKey creates a new secp256k1 wallet key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return ethcrypto.GenerateKey()
}

// Address returns the account address of key.
func Address(key *ecdsa.PrivateKey) common.Address {
	return ethcrypto.PubkeyToAddress(key.PublicKey)
}

// MarshalKey returns the raw 32 byte private scalar.
func MarshalKey(key *ecdsa.PrivateKey) []byte {
	return ethcrypto.FromECDSA(key)
}

// ParseKey is the inverse of MarshalKey.
func ParseKey(raw []byte) (*ecdsa.PrivateKey, error) {
	return ethcrypto.ToECDSA(raw)
}

// TextHash returns keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg).
func TextHash(msg []byte) []byte {
	prefix := []byte("\x19Ethereum Signed Message:\n" + strconv.Itoa(len(msg)))
	return ethcrypto.Keccak256(prefix, msg)
}

// SignText signs msg the way personal_sign does and returns 0x-prefixed hex
// with V in {27, 28}.
func SignText(key *ecdsa.PrivateKey, msg []byte) (string, error) {
	sig, err := ethcrypto.Sign(TextHash(msg), key)
	if err != nil {
		return "", err
	}
	sig[64] += 27
	return hexutil.Encode(sig), nil
}

// RecoverText returns the address that produced sigHex over msg.
func RecoverText(msg []byte, sigHex string) (common.Address, error) {
	sig, err := hexutil.Decode(sigHex)
	if err != nil || len(sig) != SignatureLen {
		return common.Address{}, fmt.Errorf("invalid signature format")
	}
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	pub, err := ethcrypto.SigToPub(TextHash(msg), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("signature recovery failed: %w", err)
	}
	return ethcrypto.PubkeyToAddress(*pub), nil
}

// VerifyText checks that sigHex over msg was produced by want.
func VerifyText(want common.Address, msg []byte, sigHex string) error {
	got, err := RecoverText(msg, sigHex)
	if err != nil {
		return err
	}
	if got != want {
		return ErrBadSignature
	}
	return nil
}
