// Package errors defines the typed error taxonomy surfaced by the
// payload processor and every component it composes. Errors are
// concrete struct types rather than sentinel values so that callers
// can errors.As into the specific failure and recover its context
// without re-decoding the payload.
package errors

import "fmt"

// WrongRedStoneMarkerError is returned when the trailing marker bytes
// do not match the fixed RedStone framing constant.
type WrongRedStoneMarkerError struct {
	Got []byte
}

func (e *WrongRedStoneMarkerError) Error() string {
	return fmt.Sprintf("wrong redstone marker: got %x", e.Got)
}

// NonEmptyPayloadRemainderError is returned when bytes remain after
// the structural parse has consumed everything it expected to.
type NonEmptyPayloadRemainderError struct {
	RemainingBytes int
}

func (e *NonEmptyPayloadRemainderError) Error() string {
	return fmt.Sprintf("non-empty payload remainder: %d bytes left over", e.RemainingBytes)
}

// InsufficientBytesError is returned when a length field implies more
// bytes than remain in the buffer being drained.
type InsufficientBytesError struct {
	Requested int
	Available int
}

func (e *InsufficientBytesError) Error() string {
	return fmt.Sprintf("insufficient bytes: requested %d, available %d", e.Requested, e.Available)
}

// SizeNotSupportedError is returned when a fixed-width field is read
// wider than the domain it is being widened into allows.
type SizeNotSupportedError struct {
	N    int
	Bits int
}

func (e *SizeNotSupportedError) Error() string {
	return fmt.Sprintf("size not supported: %d bytes does not fit in %d-bit domain", e.N, e.Bits)
}

// InvalidPayloadLengthError is returned when a package's point-records
// prefix length does not match point_count * (32 + value_size).
type InvalidPayloadLengthError struct {
	Expected int
	Got      int
}

func (e *InvalidPayloadLengthError) Error() string {
	return fmt.Sprintf("invalid payload length: expected %d bytes, got %d", e.Expected, e.Got)
}

// SignerNotRecoverableError is returned when ECDSA recovery fails for
// a package's signature. This is a protocol-integrity signal, not an
// untrusted-signer signal, and is always fatal to the call.
type SignerNotRecoverableError struct {
	PackageIndex int
	Cause        error
}

func (e *SignerNotRecoverableError) Error() string {
	return fmt.Sprintf("signer not recoverable for package %d: %v", e.PackageIndex, e.Cause)
}

func (e *SignerNotRecoverableError) Unwrap() error { return e.Cause }

// TimestampOutOfRangeError is returned when a trusted package's
// timestamp falls outside the configured freshness window.
type TimestampOutOfRangeError struct {
	TimestampMs uint64
	BlockMs     uint64
	MaxDelayMs  uint64
	MaxAheadMs  uint64
}

func (e *TimestampOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"timestamp out of range: ts=%d block=%d window=[%d, %d]",
		e.TimestampMs, e.BlockMs, e.BlockMs-e.MaxDelayMs, e.BlockMs+e.MaxAheadMs,
	)
}

// TimestampMustBeGreaterThanBeforeError is reserved for an optional
// monotonicity check across successive calls; the core never raises
// it on its own, since each call is independent (see spec Non-goals).
type TimestampMustBeGreaterThanBeforeError struct {
	TimestampMs uint64
	PreviousMs  uint64
}

func (e *TimestampMustBeGreaterThanBeforeError) Error() string {
	return fmt.Sprintf("timestamp %d must be greater than previous %d", e.TimestampMs, e.PreviousMs)
}

// InsufficientSignerCountError is returned when a requested feed did
// not collect enough distinct trusted signers to meet quorum.
type InsufficientSignerCountError struct {
	FeedIndex int
	Found     int
	Required  int
}

func (e *InsufficientSignerCountError) Error() string {
	return fmt.Sprintf(
		"insufficient signer count for feed %d: found %d, required %d",
		e.FeedIndex, e.Found, e.Required,
	)
}

// CryptoError wraps a failure surfaced by the Crypto capability.
type CryptoError struct {
	Cause error
}

func (e *CryptoError) Error() string { return fmt.Sprintf("crypto error: %v", e.Cause) }

func (e *CryptoError) Unwrap() error { return e.Cause }
