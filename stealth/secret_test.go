package stealth

import (
	"bytes"
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

func testKeyPair(t *testing.T) (priv []byte, pubCompressed, pubUncompressed []byte) {
	t.Helper()
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	return key.Serialize(), key.PubKey().SerializeCompressed(), key.PubKey().SerializeUncompressed()
}

func TestComputeSharedSecretSymmetry(t *testing.T) {
	aPriv, aPub, _ := testKeyPair(t)
	bPriv, bPub, _ := testKeyPair(t)

	senderSide, err := ComputeSharedSecret(aPriv, bPub)
	require.NoError(t, err)

	receiverSide, err := ComputeSharedSecret(bPriv, aPub)
	require.NoError(t, err)

	require.Equal(t, senderSide, receiverSide, "ECDH must be symmetric")
}

func TestComputeSharedSecretPointFormAgnostic(t *testing.T) {
	aPriv, _, _ := testKeyPair(t)
	_, bPubComp, bPubUncomp := testKeyPair(t)

	fromCompressed, err := ComputeSharedSecret(aPriv, bPubComp)
	require.NoError(t, err)

	fromUncompressed, err := ComputeSharedSecret(aPriv, bPubUncomp)
	require.NoError(t, err)

	require.Equal(t, fromCompressed, fromUncompressed,
		"compressed and uncompressed encodings of the same point must derive the same secret")
}

func TestComputeSharedSecretDistinctPairsDistinctSecrets(t *testing.T) {
	aPriv, _, _ := testKeyPair(t)
	_, bPub, _ := testKeyPair(t)
	_, cPub, _ := testKeyPair(t)

	s1, err := ComputeSharedSecret(aPriv, bPub)
	require.NoError(t, err)
	s2, err := ComputeSharedSecret(aPriv, cPub)
	require.NoError(t, err)

	require.False(t, bytes.Equal(s1[:], s2[:]))
}

func TestComputeSharedSecretInvalidLengths(t *testing.T) {
	priv, pub, _ := testKeyPair(t)

	_, err := ComputeSharedSecret(priv[:31], pub)
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = ComputeSharedSecret(append(priv, 0x00), pub)
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = ComputeSharedSecret(priv, pub[:32])
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = ComputeSharedSecret(priv, append(pub, 0x00))
	require.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestComputeSharedSecretCurveFailures(t *testing.T) {
	priv, pub, _ := testKeyPair(t)

	zeroScalar := make([]byte, 32)
	_, err := ComputeSharedSecret(zeroScalar, pub)
	require.ErrorIs(t, err, ErrSharedSecretComputationFailed)

	notAPoint := make([]byte, 33)
	notAPoint[0] = 0x05 // invalid point encoding
	_, err = ComputeSharedSecret(priv, notAPoint)
	if !errors.Is(err, ErrSharedSecretComputationFailed) {
		t.Fatalf("expected shared secret failure, got %v", err)
	}
}
