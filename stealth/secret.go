package stealth

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/zkAsterDex/zkaster-stealth-sdk/utils"
)

const (
	// SecretKeyLength is the byte length of a secp256k1 private scalar.
	SecretKeyLength = 32
	// CompressedPubKeyLength is the byte length of a compressed point.
	CompressedPubKeyLength = 33
	// UncompressedPubKeyLength is the byte length of an uncompressed point.
	UncompressedPubKeyLength = 65
)

// ComputeSharedSecret computes the symmetric ECDH secret both the sender
// (ephemeral private key, viewing public key) and the receiver (viewing
// private key, ephemeral public key) can derive independently:
//
//	secret = keccak256(compressed(scalar * point))
//
// The hash is taken over the 33-byte compressed encoding of the shared
// point. That encoding is the canonical byte representation every code
// path (generation, scanning, spending-key recovery) must agree on;
// hashing raw coordinates instead would silently break recoverability.
//
// The point may be supplied compressed (33 bytes) or uncompressed
// (65 bytes); both normalize to the same secret. The function is pure and
// safe for concurrent use.
func ComputeSharedSecret(scalar, point []byte) ([32]byte, error) {
	var secret [32]byte

	if len(scalar) != SecretKeyLength {
		return secret, fmt.Errorf("%w: private scalar must be %d bytes, got %d",
			ErrInvalidKeyLength, SecretKeyLength, len(scalar))
	}
	if len(point) != CompressedPubKeyLength && len(point) != UncompressedPubKeyLength {
		return secret, fmt.Errorf("%w: public point must be %d or %d bytes, got %d",
			ErrInvalidKeyLength, CompressedPubKeyLength, UncompressedPubKeyLength, len(point))
	}

	pubKey, err := secp256k1.ParsePubKey(point)
	if err != nil {
		return secret, fmt.Errorf("%w: %v", ErrSharedSecretComputationFailed, err)
	}

	var k secp256k1.ModNScalar
	overflow := k.SetByteSlice(scalar)
	if overflow || k.IsZero() {
		return secret, fmt.Errorf("%w: private scalar out of range",
			ErrSharedSecretComputationFailed)
	}

	var pt, shared secp256k1.JacobianPoint
	pubKey.AsJacobian(&pt)
	secp256k1.ScalarMultNonConst(&k, &pt, &shared)
	if (shared.X.IsZero() && shared.Y.IsZero()) || shared.Z.IsZero() {
		return secret, fmt.Errorf("%w: shared point at infinity",
			ErrSharedSecretComputationFailed)
	}
	shared.ToAffine()

	sharedPubKey := secp256k1.NewPublicKey(&shared.X, &shared.Y)
	secret = utils.ConvertToFixedLength32(crypto.Keccak256(sharedPubKey.SerializeCompressed()))
	return secret, nil
}
