// Package trust recovers a data package's signer from its signature
// and maps the recovered address to a trusted-signer index (§4.3
// steps 5-6, §4.5 trust filter). Untrusted signers are not an error
// here — the caller decides what to do with a miss; recovery failure
// is always fatal and is the only error this package raises itself.
package trust

import (
	"github.com/corpus-core/redstone-payload/capability"
	"github.com/corpus-core/redstone-payload/payload"
	rserrors "github.com/corpus-core/redstone-payload/processor/errors"
)

// SignerAddress is the 20-byte Ethereum-style address derived from a
// secp256k1 public key via Keccak-256.
type SignerAddress [20]byte

// Recover computes the signed digest over a package's signable region
// (in its original wire-order bytes, never a re-serialization) and
// recovers the signer address via the Crypto capability. packageIndex
// is carried only for error context.
func Recover(crypto capability.Crypto, pkg *payload.Package, packageIndex int) (SignerAddress, error) {
	digest := crypto.Keccak256(pkg.SignableRegion)
	addr, err := crypto.RecoverAddress(digest, pkg.Signature)
	if err != nil {
		return SignerAddress{}, &rserrors.SignerNotRecoverableError{PackageIndex: packageIndex, Cause: err}
	}
	return SignerAddress(addr), nil
}

// Index maps a recovered address to its position in the configured
// trusted-signer list. Packages whose signer is not found here are
// silently dropped by the processor, not errored (§4.5, §7).
func Index(signers []SignerAddress, addr SignerAddress) (int, bool) {
	for i, s := range signers {
		if s == addr {
			return i, true
		}
	}
	return -1, false
}
