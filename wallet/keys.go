package wallet

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"

	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
)

// NewMnemonic generates a fresh 24-word BIP-39 mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// DeriveKeys derives the spending and viewing secrets from a mnemonic.
// The derivation is a fixed keccak chain over the BIP-39 seed, so the same
// mnemonic always restores the same key pairs.
func DeriveKeys(mnemonic string) (spendingSecret, viewingSecret types.SecretKey, err error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		err = fmt.Errorf("invalid mnemonic")
		return
	}

	seed := bip39.NewSeed(mnemonic, "")

	spendingHash := crypto.Keccak256(seed)
	copy(spendingSecret[:], spendingHash)

	viewingHash := crypto.Keccak256(spendingHash)
	copy(viewingSecret[:], viewingHash)

	return spendingSecret, viewingSecret, nil
}
