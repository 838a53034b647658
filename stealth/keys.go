package stealth

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
	"github.com/zkAsterDex/zkaster-stealth-sdk/utils"
)

// RandReader is the randomness source used for key generation. It defaults
// to crypto/rand and is swappable so tests can run against a deterministic
// source.
var RandReader io.Reader = rand.Reader

// GenerateKeyPair generates a fresh secp256k1 key pair in canonical hex
// form.
func GenerateKeyPair() (types.KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(RandReader)
	if err != nil {
		return types.KeyPair{}, fmt.Errorf("failed to generate private key: %w", err)
	}
	return types.KeyPair{
		PrivateKey: utils.EncodeHex(priv.Serialize()),
		PublicKey:  utils.EncodeHex(priv.PubKey().SerializeCompressed()),
	}, nil
}

// GenerateStealthKeys generates the two independent long-lived key pairs a
// receiver publishes: the spending pair and the viewing pair.
func GenerateStealthKeys() (*types.StealthKeys, error) {
	spending, err := GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	viewing, err := GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &types.StealthKeys{Spending: spending, Viewing: viewing}, nil
}

// PubKeyFromSecKey returns the compressed public key for a 32-byte private
// scalar.
func PubKeyFromSecKey(secKey *[32]byte) *[33]byte {
	priv := secp256k1.PrivKeyFromBytes(secKey[:])
	pub := utils.ConvertToFixedLength33(priv.PubKey().SerializeCompressed())
	return &pub
}

// DecodeSecretKey decodes a hex private scalar, enforcing the 32-byte
// length.
func DecodeSecretKey(hexKey string) ([32]byte, error) {
	var out [32]byte
	b, err := utils.DecodeHex(hexKey)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidKeyLength, err)
	}
	if len(b) != SecretKeyLength {
		return out, fmt.Errorf("%w: private scalar must be %d bytes, got %d",
			ErrInvalidKeyLength, SecretKeyLength, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// DecodePublicKey decodes a hex public key, accepting compressed and
// uncompressed encodings, and normalizes it to the canonical compressed
// form. All downstream hashing uses the compressed encoding, so sender and
// receiver agree byte-for-byte regardless of the form the key arrived in.
func DecodePublicKey(hexKey string) ([33]byte, error) {
	var out [33]byte
	b, err := utils.DecodeHex(hexKey)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidPublicKeyFormat, err)
	}
	if len(b) != CompressedPubKeyLength && len(b) != UncompressedPubKeyLength {
		return out, fmt.Errorf("%w: public key must be %d or %d bytes, got %d",
			ErrInvalidPublicKeyFormat, CompressedPubKeyLength, UncompressedPubKeyLength, len(b))
	}
	pubKey, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidPublicKeyFormat, err)
	}
	copy(out[:], pubKey.SerializeCompressed())
	return out, nil
}
