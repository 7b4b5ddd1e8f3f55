// Package wire holds the fixed field widths of the RedStone-style
// payload format and the trailer-first bounded reader that drains it.
package wire

// Field widths, bit-exact with the wire format (§6.1).
const (
	DataFeedIDSize          = 32
	DataPointValueSizeBytes = 4
	TimestampSize           = 6
	DataPointsCountSize     = 3
	SignatureSize           = 65
	DataPackagesCountSize   = 2
	UnsignedMetadataSizeBS  = 3
	RedStoneMarkerSize      = 9
	MaxValueSize            = 32
)

// RedStoneMarker anchors the trailer of a payload. Its presence is a
// necessary, not sufficient, framing check.
var RedStoneMarker = [RedStoneMarkerSize]byte{0x00, 0x00, 0x02, 0xED, 0x57, 0x01, 0x1E, 0x00, 0x00}
