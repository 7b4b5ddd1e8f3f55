// Package validate enforces timestamp freshness and per-feed
// signer-diversity quorum over the set of trusted data packages
// (§4.5). It does not recover or trust signers itself — it consumes
// the trust package's verdict — and it does not compute medians,
// only collects the per-feed values the aggregator will reduce.
package validate

import (
	"github.com/holiman/uint256"

	"github.com/corpus-core/redstone-payload/payload"
	rserrors "github.com/corpus-core/redstone-payload/processor/errors"
)

// TrustedPackage pairs a structurally-decoded package with the index
// of its signer in the caller's trusted-signer list.
type TrustedPackage struct {
	SignerIndex int
	Package     *payload.Package
}

// CheckFreshness asserts every trusted package's timestamp lies in
// [block-maxDelay, block+maxAhead] and returns the minimum observed
// timestamp across all of them. A single violation aborts the entire
// call (§4.5) — unlike an untrusted signer, this is fatal.
func CheckFreshness(pkgs []TrustedPackage, blockMs, maxDelayMs, maxAheadMs uint64) (uint64, error) {
	lowerBound := uint64(0)
	if blockMs > maxDelayMs {
		lowerBound = blockMs - maxDelayMs
	}
	upperBound := blockMs + maxAheadMs

	minTimestampMs := uint64(0)
	haveMin := false
	for _, tp := range pkgs {
		ts := tp.Package.TimestampMs
		if ts < lowerBound || ts > upperBound {
			return 0, &rserrors.TimestampOutOfRangeError{
				TimestampMs: ts,
				BlockMs:     blockMs,
				MaxDelayMs:  maxDelayMs,
				MaxAheadMs:  maxAheadMs,
			}
		}
		if !haveMin || ts < minTimestampMs {
			minTimestampMs = ts
			haveMin = true
		}
	}
	return minTimestampMs, nil
}

// CollectFeedValues gathers one value per distinct trusted signer
// that contributed a point for feed, in wire order, and fails
// InsufficientSignerCount if fewer than minSigners distinct signers
// contributed. If a single signer has multiple points for the same
// feed, only its first occurrence in wire order is kept — this
// prevents one signer from biasing the median via duplicates.
func CollectFeedValues(
	pkgs []TrustedPackage,
	feed payload.FeedID,
	minSigners int,
	feedIndex int,
) ([]*uint256.Int, error) {
	seen := make(map[int]bool)
	values := make([]*uint256.Int, 0, len(pkgs))

	for _, tp := range pkgs {
		if seen[tp.SignerIndex] {
			continue
		}
		for _, pt := range tp.Package.Points {
			if pt.FeedID == feed {
				values = append(values, pt.Value)
				seen[tp.SignerIndex] = true
				break
			}
		}
	}

	if len(values) < minSigners {
		return nil, &rserrors.InsufficientSignerCountError{
			FeedIndex: feedIndex,
			Found:     len(values),
			Required:  minSigners,
		}
	}
	return values, nil
}
