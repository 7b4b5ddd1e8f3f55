package payload

import (
	"github.com/holiman/uint256"

	"github.com/corpus-core/redstone-payload/wire"

	rserrors "github.com/corpus-core/redstone-payload/processor/errors"
)

// DecodePackage structurally parses a byte slice positioned to
// contain exactly one data package, with its 65-byte signature at the
// tail (§4.3). It does not recover or trust the signer: that requires
// the Crypto capability and lives in the trust package.
func DecodePackage(buf []byte) (*Package, error) {
	r := wire.NewReader(buf)

	sigBytes, err := r.TrimEnd(wire.SignatureSize)
	if err != nil {
		return nil, err
	}
	// The signable region is everything before the signature, in its
	// original wire-order bytes — the digest must hash exactly this,
	// never a re-serialization of the decoded fields.
	signableRegion := r.Remaining()

	pointCount, err := r.TrimEndUint64(wire.DataPointsCountSize)
	if err != nil {
		return nil, err
	}
	valueSize, err := r.TrimEndUint64(wire.DataPointValueSizeBytes)
	if err != nil {
		return nil, err
	}
	if valueSize > wire.MaxValueSize {
		return nil, &rserrors.SizeNotSupportedError{N: int(valueSize), Bits: wire.MaxValueSize * 8}
	}
	timestampMs, err := r.TrimEndUint64(wire.TimestampSize)
	if err != nil {
		return nil, err
	}

	recordSize := wire.DataFeedIDSize + int(valueSize)
	expectedLen := int(pointCount) * recordSize
	if r.Len() != expectedLen {
		return nil, &rserrors.InvalidPayloadLengthError{Expected: expectedLen, Got: r.Len()}
	}

	points := make([]DataPoint, pointCount)
	body := r.Remaining()
	for i := 0; i < int(pointCount); i++ {
		rec := body[i*recordSize : (i+1)*recordSize]
		var p DataPoint
		copy(p.FeedID[:], rec[:wire.DataFeedIDSize])
		p.Value = new(uint256.Int).SetBytes(rec[wire.DataFeedIDSize:])
		points[i] = p
	}

	pkg := &Package{
		Points:         points,
		TimestampMs:    timestampMs,
		SignableRegion: signableRegion,
	}
	copy(pkg.Signature[:], sigBytes)
	return pkg, nil
}
