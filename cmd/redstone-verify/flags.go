package main

import "strings"

// hexList is a custom flag type for handling a repeatable hex-encoded
// argument (one or more feed ids / signer addresses), mirroring the
// teacher bridge's multiAddrs flag.Value implementation.
type hexList []string

func (h *hexList) String() string { return strings.Join(*h, ",") }

func (h *hexList) Set(s string) error {
	*h = append(*h, s)
	return nil
}
