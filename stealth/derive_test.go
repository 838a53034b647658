package stealth

import (
	"strings"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/zkAsterDex/zkaster-stealth-sdk/utils"
)

// fixed scalars for deterministic vectors, all valid secp256k1 keys
const (
	testViewingPriv   = "0x2e0e242b6d0d5df96b3f634a28d9334ba587b8cd7d6f1ebb25fa5c712e496e2d"
	testSpendingPriv  = "0x529e1f1a64ae3b61e7c5d1a1b75c1e2a8fd3c16ae05b0b3cd6b2e43ec7e8b21f"
	testEphemeralPriv = "0x71aa13e6a64b4c2a118ec54f0b3c2ab2c58b82726a23cb046d47f2dba29cd22a"
)

func testViewingKeys(t *testing.T) (privHex, pubHex string) {
	t.Helper()
	priv, err := DecodeSecretKey(testViewingPriv)
	require.NoError(t, err)
	pub := PubKeyFromSecKey(&priv)
	return testViewingPriv, utils.EncodeHex(pub[:])
}

func TestGenerateStealthAddressDeterministicWithEphemeral(t *testing.T) {
	_, viewPub := testViewingKeys(t)

	a1, err := GenerateStealthAddress(viewPub, "", testEphemeralPriv)
	require.NoError(t, err)
	a2, err := GenerateStealthAddress(viewPub, "", testEphemeralPriv)
	require.NoError(t, err)

	require.Equal(t, a1, a2)
	require.Len(t, a1.Address, 2+40, "20-byte address in 0x hex")
	require.Len(t, a1.EphemeralPublicKey, 2+66, "compressed ephemeral key in 0x hex")
	require.Len(t, a1.ViewTag, 2+2, "one-byte view tag in 0x hex")
	require.Equal(t, a1.Address, strings.ToLower(a1.Address))
}

func TestGenerateStealthAddressFreshEphemeralPerCall(t *testing.T) {
	_, viewPub := testViewingKeys(t)

	a1, err := GenerateStealthAddress(viewPub, "", "")
	require.NoError(t, err)
	a2, err := GenerateStealthAddress(viewPub, "", "")
	require.NoError(t, err)

	require.NotEqual(t, a1.EphemeralPublicKey, a2.EphemeralPublicKey,
		"ephemeral keys must never repeat across calls")
	require.NotEqual(t, a1.Address, a2.Address,
		"same receiver must get unlinkable addresses")
}

func TestGenerateStealthAddressAcceptsUncompressedViewingKey(t *testing.T) {
	_, viewPub := testViewingKeys(t)

	// re-encode the viewing key uncompressed; derivation must normalize
	pubBytes, err := utils.DecodeHex(viewPub)
	require.NoError(t, err)
	parsed, err := secp256k1.ParsePubKey(pubBytes)
	require.NoError(t, err)
	uncompressed := utils.EncodeHex(parsed.SerializeUncompressed())

	a1, err := GenerateStealthAddress(viewPub, "", testEphemeralPriv)
	require.NoError(t, err)
	a2, err := GenerateStealthAddress(uncompressed, "", testEphemeralPriv)
	require.NoError(t, err)

	require.Equal(t, a1.Address, a2.Address,
		"compressed and uncompressed viewing keys must derive the same address")
}

func TestGenerateStealthAddressValidatesInputs(t *testing.T) {
	_, viewPub := testViewingKeys(t)

	_, err := GenerateStealthAddress("0x1234", "", "")
	require.ErrorIs(t, err, ErrInvalidPublicKeyFormat)

	_, err = GenerateStealthAddress("not hex at all", "", "")
	require.ErrorIs(t, err, ErrInvalidPublicKeyFormat)

	_, err = GenerateStealthAddress(viewPub, "0xdead", "")
	require.ErrorIs(t, err, ErrInvalidPublicKeyFormat, "spending key is validated even though unused")

	_, err = GenerateStealthAddress(viewPub, "", "0xabcd")
	require.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestDeriveStealthSpendingKeyRoundTrip(t *testing.T) {
	viewPriv, viewPub := testViewingKeys(t)

	generated, err := GenerateStealthAddress(viewPub, "", testEphemeralPriv)
	require.NoError(t, err)

	scalarHex, err := DeriveStealthSpendingKey(
		testSpendingPriv, viewPriv, generated.Address, generated.EphemeralPublicKey, viewPub)
	require.NoError(t, err)

	// the returned scalar must control the claimed address
	scalar, err := DecodeSecretKey(scalarHex)
	require.NoError(t, err)
	controlled, err := AddressFromScalar(scalar)
	require.NoError(t, err)
	require.Equal(t, generated.Address, controlled)
}

func TestDeriveStealthSpendingKeyDerivesViewingPubWhenAbsent(t *testing.T) {
	viewPriv, viewPub := testViewingKeys(t)

	generated, err := GenerateStealthAddress(viewPub, "", testEphemeralPriv)
	require.NoError(t, err)

	withPub, err := DeriveStealthSpendingKey(
		"", viewPriv, generated.Address, generated.EphemeralPublicKey, viewPub)
	require.NoError(t, err)

	withoutPub, err := DeriveStealthSpendingKey(
		"", viewPriv, generated.Address, generated.EphemeralPublicKey, "")
	require.NoError(t, err)

	require.Equal(t, withPub, withoutPub)
}

func TestDeriveStealthSpendingKeyMismatchIsFatal(t *testing.T) {
	viewPriv, viewPub := testViewingKeys(t)

	generated, err := GenerateStealthAddress(viewPub, "", testEphemeralPriv)
	require.NoError(t, err)

	wrongAddress := "0x000000000000000000000000000000000000dead"
	key, err := DeriveStealthSpendingKey(
		testSpendingPriv, viewPriv, wrongAddress, generated.EphemeralPublicKey, viewPub)
	require.ErrorIs(t, err, ErrDerivedAddressMismatch)
	require.Empty(t, key, "no key may be returned on mismatch")
}

// Documents the protocol caveat from the package docs rather than hiding
// it: the recovered scalar does not depend on the master spending key
// under the current formula.
func TestDeriveStealthSpendingKeyIndependentOfSpendingKey(t *testing.T) {
	viewPriv, viewPub := testViewingKeys(t)

	generated, err := GenerateStealthAddress(viewPub, "", testEphemeralPriv)
	require.NoError(t, err)

	k1, err := DeriveStealthSpendingKey(
		testSpendingPriv, viewPriv, generated.Address, generated.EphemeralPublicKey, viewPub)
	require.NoError(t, err)

	otherSpending := testEphemeralPriv // any other valid scalar
	k2, err := DeriveStealthSpendingKey(
		otherSpending, viewPriv, generated.Address, generated.EphemeralPublicKey, viewPub)
	require.NoError(t, err)

	require.Equal(t, k1, k2)
}

func TestViewTagMatchesSecretFirstByte(t *testing.T) {
	viewPrivHex, viewPub := testViewingKeys(t)

	generated, err := GenerateStealthAddress(viewPub, "", testEphemeralPriv)
	require.NoError(t, err)

	// receiver side recomputation
	viewPriv, err := DecodeSecretKey(viewPrivHex)
	require.NoError(t, err)
	ephPub, err := DecodePublicKey(generated.EphemeralPublicKey)
	require.NoError(t, err)
	secret, err := ComputeSharedSecret(viewPriv[:], ephPub[:])
	require.NoError(t, err)

	require.Equal(t, generated.ViewTag, ViewTagFromSecret(secret))
}
