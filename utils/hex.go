package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// NormalizeHex brings a hex string into the canonical form used throughout
// the SDK: lowercase with a 0x prefix. All values crossing the public API
// are normalized once on ingress so downstream comparisons never have to
// deal with casing or prefix variants again.
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return "0x" + strings.ToLower(s)
}

// HexEqual compares two hex strings case-insensitively, ignoring prefix
// variants.
func HexEqual(a, b string) bool {
	return NormalizeHex(a) == NormalizeHex(b)
}

// DecodeHex decodes a hex string in any accepted form (with or without
// prefix, any casing) into bytes.
func DecodeHex(s string) ([]byte, error) {
	return hexutil.Decode(NormalizeHex(s))
}

// EncodeHex encodes bytes into the canonical lowercase 0x-prefixed form.
func EncodeHex(b []byte) string {
	return hexutil.Encode(b)
}
