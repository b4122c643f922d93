package solana

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
)

// Wallet is a connected wallet identity. A wallet resolved from a bare
// address has no private key and cannot sign; payment operations reject it.
type Wallet struct {
	PublicKey  solana.PublicKey
	PrivateKey solana.PrivateKey
}

// Connected reports whether the wallet carries a public identity
func (w Wallet) Connected() bool {
	return !w.PublicKey.IsZero()
}

// CanSign reports whether the wallet can sign transactions
func (w Wallet) CanSign() bool {
	return len(w.PrivateKey) > 0
}

// Address returns the wallet's base58 address, empty when disconnected
func (w Wallet) Address() string {
	if !w.Connected() {
		return ""
	}
	return w.PublicKey.String()
}

// Keyring holds custodial demo keypairs so the server can sign transfers on
// behalf of known wallet addresses.
type Keyring struct {
	keys map[string]solana.PrivateKey // key: base58 address
}

// NewKeyring creates an empty keyring
func NewKeyring() *Keyring {
	return &Keyring{keys: make(map[string]solana.PrivateKey)}
}

// LoadKeyring reads a JSON file mapping base58 addresses to base58 private
// keys. An empty path yields an empty keyring.
func LoadKeyring(path string) (*Keyring, error) {
	kr := NewKeyring()
	if path == "" {
		return kr, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyring file %s: %w", path, err)
	}

	var entries map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse keyring file %s: %w", path, err)
	}

	for address, encoded := range entries {
		key, err := solana.PrivateKeyFromBase58(encoded)
		if err != nil {
			return nil, fmt.Errorf("invalid private key for %s: %w", address, err)
		}
		if key.PublicKey().String() != address {
			return nil, fmt.Errorf("keyring entry %s does not match its private key", address)
		}
		kr.keys[address] = key
	}
	return kr, nil
}

// Add registers a keypair under its derived address
func (k *Keyring) Add(key solana.PrivateKey) {
	k.keys[key.PublicKey().String()] = key
}

// Resolve returns a wallet for the given address. Unknown addresses yield a
// watch-only wallet; unparseable addresses yield a disconnected wallet.
func (k *Keyring) Resolve(address string) Wallet {
	pub, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return Wallet{}
	}

	w := Wallet{PublicKey: pub}
	if key, ok := k.keys[address]; ok {
		w.PrivateKey = key
	}
	return w
}
