package main

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/unlockable/internal/crypto"
	"github.com/and161185/unlockable/internal/crypto/clientcrypto"
	"github.com/and161185/unlockable/internal/secretstore"
)

var (
	errNoWallet     = errors.New("no wallet; run keygen first")
	errLoginNeeded  = errors.New("no valid session (login required)")
	errAccountMoved = errors.New("wallet changed since last login; session discarded, login required")
)

// ---- config dir ----

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "unlockable")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "unlockable")
}

func keyPath() string     { return filepath.Join(cfgDir(), "wallet.json") }
func tokenPath() string   { return filepath.Join(cfgDir(), "session.json") }
func secretsPath() string { return filepath.Join(cfgDir(), "secrets.insecure.json") }

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// ---- wallet ----

// walletFile keeps the address in clear so read-only commands work without
// the passphrase. The address is bound into the sealed key as AAD.
type walletFile struct {
	Address string `json:"address"`
	Sealed  []byte `json:"sealed_key"`
}

func saveWallet(passphrase []byte, key *ecdsa.PrivateKey) (common.Address, error) {
	addr := crypto.Address(key)
	sealed, err := clientcrypto.SealKey(passphrase, addr.Bytes(), crypto.MarshalKey(key))
	if err != nil {
		return common.Address{}, err
	}
	return addr, writeJSON(keyPath(), walletFile{Address: addr.Hex(), Sealed: sealed})
}

func readWallet() (walletFile, common.Address, error) {
	b, err := os.ReadFile(keyPath())
	if errors.Is(err, os.ErrNotExist) {
		return walletFile{}, common.Address{}, errNoWallet
	}
	if err != nil {
		return walletFile{}, common.Address{}, err
	}
	var wf walletFile
	if err := json.Unmarshal(b, &wf); err != nil {
		return walletFile{}, common.Address{}, err
	}
	if !common.IsHexAddress(wf.Address) {
		return walletFile{}, common.Address{}, errors.New("wallet file has a malformed address")
	}
	return wf, common.HexToAddress(wf.Address), nil
}

// activeAddress returns the wallet address without unsealing the key.
func activeAddress() (common.Address, error) {
	_, addr, err := readWallet()
	return addr, err
}

// unlockWallet opens the sealed key.
func unlockWallet(passphrase []byte) (*ecdsa.PrivateKey, error) {
	wf, addr, err := readWallet()
	if err != nil {
		return nil, err
	}
	raw, err := clientcrypto.OpenKey(passphrase, addr.Bytes(), wf.Sealed)
	if err != nil {
		return nil, err
	}
	key, err := crypto.ParseKey(raw)
	if err != nil {
		return nil, err
	}
	if crypto.Address(key) != addr {
		return nil, errors.New("wallet file address does not match the key")
	}
	return key, nil
}

// ---- session ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Address     string    `json:"address"`
}

func saveToken(tok string, exp time.Time, addr common.Address) error {
	return writeJSON(tokenPath(), tokenFile{AccessToken: tok, ExpiresAt: exp, Address: addr.Hex()})
}

// loadToken returns the saved session for addr. A session issued to another
// address is removed.
func loadToken(addr common.Address) (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", errLoginNeeded
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if !common.IsHexAddress(tf.Address) || common.HexToAddress(tf.Address) != addr {
		_ = os.Remove(tokenPath())
		return "", errAccountMoved
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errLoginNeeded
	}
	return tf.AccessToken, nil
}

// ---- secrets ----

func secrets() secretstore.InsecureStore {
	return secretstore.NewInsecureFile(secretsPath())
}
