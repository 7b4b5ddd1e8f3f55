// Package payload implements the structural decoder for a single data
// package and for a whole RedStone-style payload (§4.3, §4.4). It
// produces derived views over the input byte slice; it never recovers
// or trusts a signer, that is the trust package's job once it is
// handed a Crypto capability.
package payload

import "github.com/holiman/uint256"

// FeedID is an opaque 32-byte tag. Equality is byte-wise.
type FeedID [32]byte

// DataPoint is a single (feed_id, value) pair from a data package.
type DataPoint struct {
	FeedID FeedID
	Value  *uint256.Int
}

// Package is one structurally-decoded data package: its points, its
// timestamp, and everything needed to recover and verify its signer
// without re-touching the original payload bytes.
type Package struct {
	Points []DataPoint
	// TimestampMs is the package's declared timestamp, milliseconds
	// since Unix epoch (48-bit wire field, widened to uint64).
	TimestampMs uint64
	// SignableRegion is the original signable-region bytes in wire
	// order, unmodified. The signed digest must be computed over these
	// exact bytes, never over a re-serialization.
	SignableRegion []byte
	// Signature is the 65-byte (r || s || v) recoverable ECDSA
	// signature over keccak256(SignableRegion).
	Signature [65]byte
}
