package processor

import (
	"encoding/binary"

	"github.com/corpus-core/redstone-payload/payload"
	"github.com/corpus-core/redstone-payload/trust"
	"github.com/corpus-core/redstone-payload/wire"
)

func beBytes(v uint64, n int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf[8-n:]
}

func feedID(tag byte) payload.FeedID {
	var f payload.FeedID
	f[31] = tag
	return f
}

func signerAddr(tag byte) trust.SignerAddress {
	var a trust.SignerAddress
	a[0] = tag
	return a
}

// buildPackage assembles one wire-order data package signed (in the
// fake crypto's scheme) by signerTag: points || timestamp(6B) ||
// value_size(4B) || point_count(3B) || signature(65B).
func buildPackage(feeds []payload.FeedID, values []uint64, valueSize int, timestampMs uint64, signerTag byte) []byte {
	var out []byte
	for i, f := range feeds {
		out = append(out, f[:]...)
		out = append(out, beBytes(values[i], valueSize)...)
	}
	out = append(out, beBytes(timestampMs, wire.TimestampSize)...)
	out = append(out, beBytes(uint64(valueSize), wire.DataPointValueSizeBytes)...)
	out = append(out, beBytes(uint64(len(feeds)), wire.DataPointsCountSize)...)

	var sig [65]byte
	sig[0] = signerTag
	sig[64] = 27
	out = append(out, sig[:]...)
	return out
}

func buildPayload(packages [][]byte) []byte {
	var out []byte
	for _, p := range packages {
		out = append(out, p...)
	}
	out = append(out, beBytes(0, wire.UnsignedMetadataSizeBS)...)
	out = append(out, beBytes(uint64(len(packages)), wire.DataPackagesCountSize)...)
	out = append(out, wire.RedStoneMarker[:]...)
	return out
}

// fakeCrypto recovers a deterministic signer address from the first
// byte of the signature, set by buildPackage, so tests can construct
// payloads "signed" by chosen signers without real secp256k1 math.
type fakeCrypto struct{}

func (fakeCrypto) Keccak256(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], data)
	return out
}

func (fakeCrypto) RecoverAddress(digest [32]byte, sig [65]byte) ([20]byte, error) {
	var addr [20]byte
	addr[0] = sig[0]
	return addr, nil
}
