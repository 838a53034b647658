package types

import (
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/zkAsterDex/zkaster-stealth-sdk/utils"
)

// SecretKey is a 32-byte secp256k1 private scalar
type SecretKey [32]byte

func (s SecretKey) String() string {
	return hexutil.Encode(s[:])
}

func (s SecretKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SecretKey) UnmarshalJSON(data []byte) error {
	dataCleanString := strings.ReplaceAll(string(data), "\"", "")
	dataBytes, err := utils.DecodeHex(dataCleanString)
	if err != nil {
		return err
	}
	key := utils.ConvertToFixedLength32(dataBytes)
	copy(s[:], key[:])
	return nil
}

func (s SecretKey) ToArray() [32]byte {
	return [32]byte(s)
}

func (s SecretKey) ToArrayPtr() *[32]byte {
	x := s.ToArray()
	return &x
}

// PublicKey is a 33-byte compressed secp256k1 public key
type PublicKey [33]byte

func (s PublicKey) String() string {
	return hexutil.Encode(s[:])
}

func (s PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PublicKey) UnmarshalJSON(data []byte) error {
	dataCleanString := strings.ReplaceAll(string(data), "\"", "")
	dataBytes, err := utils.DecodeHex(dataCleanString)
	if err != nil {
		return err
	}
	key := utils.ConvertToFixedLength33(dataBytes)
	copy(s[:], key[:])
	return nil
}

func (s PublicKey) ToArray() [33]byte {
	return [33]byte(s)
}

func (s PublicKey) ToArrayPtr() *[33]byte {
	x := s.ToArray()
	return &x
}

// KeyPair bundles a private scalar with its compressed public key, both in
// canonical hex form.
type KeyPair struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

// StealthKeys are the two long-lived key pairs a receiver publishes from:
// the spending pair authorizes spending from discovered addresses, the
// viewing pair only detects incoming payments.
type StealthKeys struct {
	Spending KeyPair `json:"spending"`
	Viewing  KeyPair `json:"viewing"`
}
