// redstone-verify is a thin CLI adapter around the processor core: it
// loads a payload file (optionally zstd-compressed, as the teacher
// bridge stores its captured preconfirmations), wires in the
// reference go-ethereum-backed Crypto capability, and prints the
// validated result as JSON; a typed failure is logged and the process
// exits non-zero.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/corpus-core/redstone-payload/capability/gethcrypto"
	"github.com/corpus-core/redstone-payload/payload"
	"github.com/corpus-core/redstone-payload/processor"
	"github.com/corpus-core/redstone-payload/trust"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

func main() {
	var payloadPath string
	var feeds hexList
	var signers hexList
	var minSigners int
	var blockTimestampMs uint64
	var maxDelayMs uint64
	var maxAheadMs uint64

	flag.StringVar(&payloadPath, "payload", "", "path to a raw or zstd-compressed payload file (required)")
	flag.Var(&feeds, "feed", "32-byte hex feed id to extract (repeatable)")
	flag.Var(&signers, "signer", "20-byte hex trusted signer address (repeatable)")
	flag.IntVar(&minSigners, "min-signers", 1, "quorum of distinct trusted signers required per feed")
	flag.Uint64Var(&blockTimestampMs, "block-timestamp-ms", 0, "caller's authoritative current time in ms (default now)")
	flag.Uint64Var(&maxDelayMs, "max-delay-ms", 15000, "maximum allowed staleness in ms")
	flag.Uint64Var(&maxAheadMs, "max-ahead-ms", 3000, "maximum allowed future skew in ms")
	flag.Parse()

	if payloadPath == "" {
		log.Fatalf("❌ -payload is required")
	}

	traceID := uuid.NewString()
	log.Printf("🔍 [%s] loading payload from %s", traceID, payloadPath)

	raw, err := loadPayloadFile(payloadPath)
	if err != nil {
		log.Fatalf("❌ [%s] failed to load payload: %v", traceID, err)
	}
	log.Printf("📦 [%s] payload ready: %d bytes", traceID, len(raw))

	cfg, err := buildConfig(feeds, signers, minSigners, blockTimestampMs, maxDelayMs, maxAheadMs)
	if err != nil {
		log.Fatalf("❌ [%s] invalid configuration: %v", traceID, err)
	}

	result, err := processor.Process(gethcrypto.New(), cfg, raw)
	if err != nil {
		log.Fatalf("❌ [%s] processing failed: %v", traceID, err)
	}
	log.Printf("✅ [%s] processed payload: %d feed(s), min timestamp %d", traceID, len(result.Values), result.MinTimestampMs)

	if err := json.NewEncoder(os.Stdout).Encode(toJSON(result)); err != nil {
		log.Fatalf("❌ [%s] failed to encode result: %v", traceID, err)
	}
}

// loadPayloadFile reads path and transparently decompresses it if it
// starts with the zstd magic number, matching the on-disk convention
// the teacher bridge uses for captured preconfirmations.
func loadPayloadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if !bytes.HasPrefix(raw, zstdMagic) {
		return raw, nil
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer decoder.Close()

	dec, err := decoder.DecodeAll(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return dec, nil
}

func buildConfig(
	feedHex, signerHex hexList,
	minSigners int,
	blockTimestampMs, maxDelayMs, maxAheadMs uint64,
) (processor.Config, error) {
	feeds := make([]payload.FeedID, len(feedHex))
	for i, h := range feedHex {
		b, err := decodeFixedHex(h, len(payload.FeedID{}))
		if err != nil {
			return processor.Config{}, fmt.Errorf("feed %d: %w", i, err)
		}
		copy(feeds[i][:], b)
	}

	signers := make([]trust.SignerAddress, len(signerHex))
	for i, h := range signerHex {
		b, err := decodeFixedHex(h, len(trust.SignerAddress{}))
		if err != nil {
			return processor.Config{}, fmt.Errorf("signer %d: %w", i, err)
		}
		copy(signers[i][:], b)
	}

	if blockTimestampMs == 0 {
		blockTimestampMs = uint64(time.Now().UnixMilli())
	}

	return processor.Config{
		Feeds:               feeds,
		Signers:             signers,
		MinSigners:          minSigners,
		BlockTimestampMs:    blockTimestampMs,
		MaxTimestampDelayMs: maxDelayMs,
		MaxTimestampAheadMs: maxAheadMs,
	}, nil
}

func decodeFixedHex(s string, n int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != n {
		return nil, fmt.Errorf("expected %d bytes, got %d", n, len(b))
	}
	return b, nil
}

type jsonResult struct {
	MinTimestampMs uint64   `json:"min_timestamp_ms"`
	Values         []string `json:"values"`
}

func toJSON(r *processor.ValidatedPayload) jsonResult {
	values := make([]string, len(r.Values))
	for i, v := range r.Values {
		values[i] = v.Hex()
	}
	return jsonResult{MinTimestampMs: r.MinTimestampMs, Values: values}
}
