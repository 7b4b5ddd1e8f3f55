// Package processor is the single entry point of the payload
// processing core (§4.7): it composes the payload parser, the
// signature-recovery/trust-mapping step, the validator, and the
// aggregator into one synchronous call that either returns a full
// ValidatedPayload covering every requested feed, or a single typed
// error. There are no retries and no partial success.
package processor

import (
	"github.com/holiman/uint256"

	"github.com/corpus-core/redstone-payload/aggregate"
	"github.com/corpus-core/redstone-payload/capability"
	"github.com/corpus-core/redstone-payload/payload"
	"github.com/corpus-core/redstone-payload/trust"
	"github.com/corpus-core/redstone-payload/validate"
)

// Config describes the caller's expectations for one Process call.
// It is read-only and may be shared across concurrent calls (§5).
type Config struct {
	// Feeds is the ordered list of feed identifiers the caller wants.
	// Duplicates are forbidden; output order matches this order.
	Feeds []payload.FeedID
	// Signers is the ordered list of trusted signer addresses.
	// Duplicates are forbidden.
	Signers []trust.SignerAddress
	// MinSigners is the quorum required per feed: 1 <= MinSigners <= len(Signers).
	MinSigners int
	// BlockTimestampMs is the caller's authoritative current time.
	BlockTimestampMs uint64
	// MaxTimestampDelayMs and MaxTimestampAheadMs bound the freshness
	// window: a trusted package's timestamp must satisfy
	// block - MaxTimestampDelayMs <= ts <= block + MaxTimestampAheadMs.
	MaxTimestampDelayMs uint64
	MaxTimestampAheadMs uint64
}

// ValidatedPayload is the successful outcome of Process: the minimum
// observed timestamp across all trusted packages, and one widened
// value per requested feed, in Config.Feeds order.
type ValidatedPayload struct {
	MinTimestampMs uint64
	Values         []*uint256.Int
}

// Process decodes, authenticates, and aggregates rawPayload according
// to cfg, using crypto for signature recovery. It is a pure function
// of its inputs: no I/O, no retries, no global state.
func Process(crypto capability.Crypto, cfg Config, rawPayload []byte) (*ValidatedPayload, error) {
	packages, err := payload.Parse(rawPayload)
	if err != nil {
		return nil, err
	}

	trusted, err := resolveTrusted(crypto, cfg.Signers, packages)
	if err != nil {
		return nil, err
	}

	minTimestampMs, err := validate.CheckFreshness(
		trusted, cfg.BlockTimestampMs, cfg.MaxTimestampDelayMs, cfg.MaxTimestampAheadMs,
	)
	if err != nil {
		return nil, err
	}

	values := make([]*uint256.Int, len(cfg.Feeds))
	for i, feed := range cfg.Feeds {
		feedValues, err := validate.CollectFeedValues(trusted, feed, cfg.MinSigners, i)
		if err != nil {
			return nil, err
		}
		values[i] = aggregate.Median(feedValues)
	}

	return &ValidatedPayload{MinTimestampMs: minTimestampMs, Values: values}, nil
}

// resolveTrusted recovers each package's signer and keeps only the
// packages whose signer is a trusted one (§4.3 steps 5-6, §4.5).
// Packages with an unrecoverable signature abort the whole call
// (protocol-integrity signal); packages with a recoverable but
// untrusted signer are silently dropped (normal multi-consumer
// condition), never errored.
func resolveTrusted(
	crypto capability.Crypto,
	signers []trust.SignerAddress,
	packages []*payload.Package,
) ([]validate.TrustedPackage, error) {
	trustedPkgs := make([]validate.TrustedPackage, 0, len(packages))
	for i, pkg := range packages {
		addr, err := trust.Recover(crypto, pkg, i)
		if err != nil {
			return nil, err
		}
		idx, ok := trust.Index(signers, addr)
		if !ok {
			continue
		}
		trustedPkgs = append(trustedPkgs, validate.TrustedPackage{SignerIndex: idx, Package: pkg})
	}
	return trustedPkgs, nil
}
