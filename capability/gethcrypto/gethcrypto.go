// Package gethcrypto is the reference Crypto capability implementation,
// backed by go-ethereum's secp256k1 recovery and golang.org/x/crypto's
// Keccak-256, the same pair the teacher bridge uses directly in
// verifySequencerSignature and its gossip recovery path.
package gethcrypto

import (
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// Crypto implements capability.Crypto over go-ethereum's secp256k1.
type Crypto struct{}

// New returns the reference Crypto capability.
func New() Crypto { return Crypto{} }

// Keccak256 returns the Keccak-256 digest of data.
func (Crypto) Keccak256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// RecoverAddress recovers the signer address from a digest and a
// recoverable ECDSA signature, normalizing v from {27,28} to {0,1} the
// way the teacher's verifySequencerSignature does before calling
// SigToPub, then deriving the address as keccak256(pubkey)[12:32].
func (Crypto) RecoverAddress(digest [32]byte, sig [65]byte) ([20]byte, error) {
	var out [20]byte

	normalized := sig
	switch normalized[64] {
	case 27, 28:
		normalized[64] -= 27
	case 0, 1:
		// already normalized
	default:
		return out, fmt.Errorf("invalid recovery id: %d", sig[64])
	}

	pubkey, err := ethcrypto.SigToPub(digest[:], normalized[:])
	if err != nil {
		return out, fmt.Errorf("recover public key: %w", err)
	}

	addr := ethcrypto.PubkeyToAddress(*pubkey)
	copy(out[:], addr[:])
	return out, nil
}
