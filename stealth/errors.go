package stealth

import "errors"

var (
	// ErrInvalidKeyLength is returned when a private scalar is not exactly
	// 32 bytes or a public point is neither 33 (compressed) nor 65
	// (uncompressed) bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidPublicKeyFormat is returned when a supplied public key does
	// not decode to a valid secp256k1 point.
	ErrInvalidPublicKeyFormat = errors.New("invalid public key format")

	// ErrMissingViewingKeys is returned when a scan is attempted without
	// both viewing keys.
	ErrMissingViewingKeys = errors.New("missing viewing keys")

	// ErrSharedSecretComputationFailed wraps curve-level failures during
	// ECDH (scalar out of range, point not on curve).
	ErrSharedSecretComputationFailed = errors.New("shared secret computation failed")

	// ErrDerivedAddressMismatch is returned by spending-key recovery when
	// the re-derived address does not match the claimed stealth address.
	// It is fatal: a key that does not verifiably control the claimed
	// address is never returned.
	ErrDerivedAddressMismatch = errors.New("derived address does not match stealth address")
)
