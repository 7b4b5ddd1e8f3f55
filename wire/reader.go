package wire

import (
	"github.com/holiman/uint256"

	rserrors "github.com/corpus-core/redstone-payload/processor/errors"
)

// Reader is a bounded view over an immutable byte slice that drains
// from the tail. The wire format is trailer-anchored — sizes and
// counts sit at the end of each structure — so consumers read
// backwards instead of forwards. No read may straddle the remaining
// view; every method is bounds-checked against what is left.
type Reader struct {
	buf []byte
}

// NewReader wraps b for trailer-first draining. b is never mutated;
// each Trim call narrows the view, it does not copy or alter b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Len reports the number of bytes still undrained.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining returns the current undrained view. Callers must treat it
// as read-only.
func (r *Reader) Remaining() []byte { return r.buf }

// Empty reports whether the reader has nothing left to drain.
func (r *Reader) Empty() bool { return len(r.buf) == 0 }

// TrimEnd removes and returns the last n bytes of the remaining view.
func (r *Reader) TrimEnd(n int) ([]byte, error) {
	if n < 0 || n > len(r.buf) {
		return nil, &rserrors.InsufficientBytesError{Requested: n, Available: len(r.buf)}
	}
	split := len(r.buf) - n
	tail := r.buf[split:]
	r.buf = r.buf[:split]
	return tail, nil
}

// PeekEnd returns the n bytes located skip bytes before the current
// tail, without consuming anything. It is used to look ahead at a
// package's own trailer fields before committing to its length.
func (r *Reader) PeekEnd(skip, n int) ([]byte, error) {
	if skip < 0 || n < 0 || skip+n > len(r.buf) {
		return nil, &rserrors.InsufficientBytesError{Requested: skip + n, Available: len(r.buf)}
	}
	hi := len(r.buf) - skip
	lo := hi - n
	return r.buf[lo:hi], nil
}

// TrimEndUint64 consumes the last n bytes, interprets them as
// big-endian, and zero-extends into a uint64. It fails
// SizeNotSupported if n would not fit in 64 bits.
func (r *Reader) TrimEndUint64(n int) (uint64, error) {
	if n*8 > 64 {
		return 0, &rserrors.SizeNotSupportedError{N: n, Bits: 64}
	}
	b, err := r.TrimEnd(n)
	if err != nil {
		return 0, err
	}
	return beUint64(b), nil
}

// PeekEndUint64 is the non-consuming counterpart of TrimEndUint64,
// used to look ahead at a length-prefix field before deciding how
// many bytes to trim.
func (r *Reader) PeekEndUint64(skip, n int) (uint64, error) {
	if n*8 > 64 {
		return 0, &rserrors.SizeNotSupportedError{N: n, Bits: 64}
	}
	b, err := r.PeekEnd(skip, n)
	if err != nil {
		return 0, err
	}
	return beUint64(b), nil
}

// TrimEndUint256 consumes the last n bytes, interprets them as
// big-endian, and zero-extends (left-pads) into the widened 256-bit
// unsigned domain used for all protocol values. It fails
// SizeNotSupported if n exceeds MaxValueSize.
func (r *Reader) TrimEndUint256(n int) (*uint256.Int, error) {
	if n > MaxValueSize {
		return nil, &rserrors.SizeNotSupportedError{N: n, Bits: MaxValueSize * 8}
	}
	b, err := r.TrimEnd(n)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(b), nil
}

// Finish asserts the reader has been fully drained, failing
// NonEmptyPayloadRemainder otherwise.
func (r *Reader) Finish() error {
	if len(r.buf) != 0 {
		return &rserrors.NonEmptyPayloadRemainderError{RemainingBytes: len(r.buf)}
	}
	return nil
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = (v << 8) | uint64(c)
	}
	return v
}
