package payload

import (
	"bytes"

	"github.com/corpus-core/redstone-payload/wire"

	rserrors "github.com/corpus-core/redstone-payload/processor/errors"
)

// Parse decodes a whole payload into its ordered data packages (§4.4).
// Packages are returned in wire order (re-reversed from the tail-first
// consumption order) for caller-observable determinism; aggregation
// itself is commutative per feed, so processing order never affects
// the result.
func Parse(buf []byte) ([]*Package, error) {
	r := wire.NewReader(buf)

	marker, err := r.TrimEnd(wire.RedStoneMarkerSize)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(marker, wire.RedStoneMarker[:]) {
		return nil, &rserrors.WrongRedStoneMarkerError{Got: marker}
	}

	packageCount, err := r.TrimEndUint64(wire.DataPackagesCountSize)
	if err != nil {
		return nil, err
	}

	metadataSize, err := r.TrimEndUint64(wire.UnsignedMetadataSizeBS)
	if err != nil {
		return nil, err
	}
	// Unsigned metadata is opaque to the core; it is consumed but never
	// interpreted.
	if _, err := r.TrimEnd(int(metadataSize)); err != nil {
		return nil, err
	}

	packages := make([]*Package, packageCount)
	for i := int(packageCount) - 1; i >= 0; i-- {
		pkgBuf, err := trimOnePackage(r)
		if err != nil {
			return nil, err
		}
		pkg, err := DecodePackage(pkgBuf)
		if err != nil {
			return nil, err
		}
		packages[i] = pkg
	}

	if err := r.Finish(); err != nil {
		return nil, err
	}

	return packages, nil
}

// trimOnePackage peeks the tail-most package's own trailer fields
// (point_count, value_size) to compute its total length, then trims
// exactly that many bytes as one package blob, without decoding it.
func trimOnePackage(r *wire.Reader) ([]byte, error) {
	pointCount, err := r.PeekEndUint64(wire.SignatureSize, wire.DataPointsCountSize)
	if err != nil {
		return nil, err
	}
	valueSize, err := r.PeekEndUint64(
		wire.SignatureSize+wire.DataPointsCountSize,
		wire.DataPointValueSizeBytes,
	)
	if err != nil {
		return nil, err
	}
	if valueSize > wire.MaxValueSize {
		return nil, &rserrors.SizeNotSupportedError{N: int(valueSize), Bits: wire.MaxValueSize * 8}
	}

	pkgLen := wire.SignatureSize +
		int(pointCount)*(wire.DataFeedIDSize+int(valueSize)) +
		wire.TimestampSize +
		wire.DataPointValueSizeBytes +
		wire.DataPointsCountSize

	return r.TrimEnd(pkgLen)
}
