package payload

import (
	"encoding/binary"

	"github.com/corpus-core/redstone-payload/wire"
)

// buildPointBytes concatenates point records in wire order: feed_id(32B) || value(valueSize B).
func buildPointBytes(feeds [][32]byte, values [][]byte, valueSize int) []byte {
	out := make([]byte, 0, len(feeds)*(32+valueSize))
	for i, f := range feeds {
		out = append(out, f[:]...)
		v := make([]byte, valueSize)
		copy(v[valueSize-len(values[i]):], values[i])
		out = append(out, v...)
	}
	return out
}

func beBytes(v uint64, n int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf[8-n:]
}

// buildPackageBytes assembles one wire-order data package:
// points || timestamp(6B) || value_size(4B) || point_count(3B) || signature(65B).
func buildPackageBytes(feeds [][32]byte, values [][]byte, valueSize int, timestampMs uint64, sig [65]byte) []byte {
	var out []byte
	out = append(out, buildPointBytes(feeds, values, valueSize)...)
	out = append(out, beBytes(timestampMs, wire.TimestampSize)...)
	out = append(out, beBytes(uint64(valueSize), wire.DataPointValueSizeBytes)...)
	out = append(out, beBytes(uint64(len(feeds)), wire.DataPointsCountSize)...)
	out = append(out, sig[:]...)
	return out
}

// buildPayloadBytes assembles a whole payload from already-encoded
// packages (in wire order) plus opaque metadata:
// packages || metadata || metadata_size(3B) || package_count(2B) || marker(9B).
func buildPayloadBytes(packages [][]byte, metadata []byte) []byte {
	var out []byte
	for _, p := range packages {
		out = append(out, p...)
	}
	out = append(out, metadata...)
	out = append(out, beBytes(uint64(len(metadata)), wire.UnsignedMetadataSizeBS)...)
	out = append(out, beBytes(uint64(len(packages)), wire.DataPackagesCountSize)...)
	out = append(out, wire.RedStoneMarker[:]...)
	return out
}

func feedID(tag byte) [32]byte {
	var f [32]byte
	f[31] = tag
	return f
}
