package stealth

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
	"github.com/zkAsterDex/zkaster-stealth-sdk/utils"
)

// stealthScalarFromSecret derives the one-time private scalar from a shared
// secret and the receiver's compressed viewing public key:
//
//	stealthScalar = keccak256(sharedSecret || viewingPubKey)
//
// The concatenation order is fixed. Generation, scanning and spending-key
// recovery all go through this function so the three paths cannot drift
// apart.
func stealthScalarFromSecret(sharedSecret [32]byte, viewingPubKey [33]byte) [32]byte {
	return utils.ConvertToFixedLength32(
		crypto.Keccak256(sharedSecret[:], viewingPubKey[:]),
	)
}

// AddressFromScalar derives the on-chain address controlled by a private
// scalar: keccak256 over the uncompressed public key coordinates, last 20
// bytes. Returned in canonical lowercase hex.
func AddressFromScalar(scalar [32]byte) (string, error) {
	var k secp256k1.ModNScalar
	overflow := k.SetBytes(&scalar)
	if overflow != 0 || k.IsZero() {
		return "", fmt.Errorf("%w: derived scalar out of range", ErrSharedSecretComputationFailed)
	}
	priv := secp256k1.NewPrivateKey(&k)
	uncompressed := priv.PubKey().SerializeUncompressed()
	addr := common.BytesToAddress(crypto.Keccak256(uncompressed[1:])[12:])
	return utils.EncodeHex(addr.Bytes()), nil
}

// AddressFromSharedSecret runs the receiver side of the derivation: the
// one-time scalar from the shared secret and viewing public key, then the
// address that scalar controls. Scanners call this after a view-tag match.
func AddressFromSharedSecret(sharedSecret [32]byte, viewingPubKey [33]byte) (string, error) {
	return AddressFromScalar(stealthScalarFromSecret(sharedSecret, viewingPubKey))
}

// ViewTagFromSecret extracts the one-byte view tag published alongside a
// stealth address. Scanners compare it before paying for a full address
// re-derivation.
func ViewTagFromSecret(sharedSecret [32]byte) string {
	return utils.EncodeHex(sharedSecret[:1])
}

// GenerateStealthAddress derives a fresh one-time stealth address for the
// receiver identified by viewingPubKey. All keys are hex strings in any
// accepted casing/prefix form; outputs are canonical lowercase hex.
//
// spendingPubKey is validated for format when supplied but is not mixed
// into the derivation under the current formula; see the package
// documentation for the protocol caveat this implies.
//
// ephemeralPrivKey is normally left empty, in which case a fresh key is
// drawn from RandReader per call and never reused. Supplying one makes the
// derivation fully deterministic, which is intended for tests and
// cross-implementation vectors only.
func GenerateStealthAddress(viewingPubKey, spendingPubKey, ephemeralPrivKey string) (*types.StealthAddress, error) {
	viewPub, err := DecodePublicKey(viewingPubKey)
	if err != nil {
		return nil, err
	}

	if spendingPubKey != "" {
		if _, err = DecodePublicKey(spendingPubKey); err != nil {
			return nil, err
		}
	}

	var ephPriv [32]byte
	if ephemeralPrivKey != "" {
		ephPriv, err = DecodeSecretKey(ephemeralPrivKey)
		if err != nil {
			return nil, err
		}
	} else {
		priv, genErr := secp256k1.GeneratePrivateKeyFromRand(RandReader)
		if genErr != nil {
			return nil, fmt.Errorf("failed to generate ephemeral key: %w", genErr)
		}
		copy(ephPriv[:], priv.Serialize())
	}

	sharedSecret, err := ComputeSharedSecret(ephPriv[:], viewPub[:])
	if err != nil {
		return nil, err
	}

	stealthScalar := stealthScalarFromSecret(sharedSecret, viewPub)
	address, err := AddressFromScalar(stealthScalar)
	if err != nil {
		return nil, err
	}

	ephPub := PubKeyFromSecKey(&ephPriv)

	return &types.StealthAddress{
		Address:            address,
		EphemeralPublicKey: utils.EncodeHex(ephPub[:]),
		ViewTag:            ViewTagFromSecret(sharedSecret),
	}, nil
}

// DeriveStealthSpendingKey reconstructs the one-time private key for an
// already-discovered stealth address and verifies it controls that address
// before returning it. The verification is mandatory: on any divergence
// between the re-derived and the claimed address the call fails with
// ErrDerivedAddressMismatch and no key is returned.
//
// viewingPubKey may be empty, in which case it is derived from
// viewingPrivKey. spendingPrivKey is accepted and length-checked but the
// returned scalar does not depend on it under the current formula.
func DeriveStealthSpendingKey(spendingPrivKey, viewingPrivKey, stealthAddress, ephemeralPubKey, viewingPubKey string) (string, error) {
	if spendingPrivKey != "" {
		if _, err := DecodeSecretKey(spendingPrivKey); err != nil {
			return "", err
		}
	}

	viewPriv, err := DecodeSecretKey(viewingPrivKey)
	if err != nil {
		return "", err
	}

	var viewPub [33]byte
	if viewingPubKey != "" {
		viewPub, err = DecodePublicKey(viewingPubKey)
		if err != nil {
			return "", err
		}
	} else {
		viewPub = *PubKeyFromSecKey(&viewPriv)
	}

	ephPub, err := DecodePublicKey(ephemeralPubKey)
	if err != nil {
		return "", err
	}

	sharedSecret, err := ComputeSharedSecret(viewPriv[:], ephPub[:])
	if err != nil {
		return "", err
	}

	stealthScalar := stealthScalarFromSecret(sharedSecret, viewPub)
	derivedAddress, err := AddressFromScalar(stealthScalar)
	if err != nil {
		return "", err
	}

	if !utils.HexEqual(derivedAddress, stealthAddress) {
		return "", fmt.Errorf("%w: derived %s, claimed %s",
			ErrDerivedAddressMismatch, derivedAddress, utils.NormalizeHex(stealthAddress))
	}

	return utils.EncodeHex(stealthScalar[:]), nil
}
