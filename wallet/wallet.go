// package wallet
// Receiver-side state for the stealth SDK: long-lived keys restored from a
// mnemonic, the stealth meta-address published to senders, and the payments
// discovered by scanning.
package wallet

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/zkAsterDex/zkaster-stealth-sdk/networking"
	"github.com/zkAsterDex/zkaster-stealth-sdk/scanning"
	"github.com/zkAsterDex/zkaster-stealth-sdk/stealth"
	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
	"github.com/zkAsterDex/zkaster-stealth-sdk/utils"
)

// MetaAddressPrefix prefixes the published stealth meta-address,
// st:eth:0x<spendingPub><viewingPub> with both keys compressed hex.
const MetaAddressPrefix = "st:eth:0x"

// metaAddressLength is prefix + 2 * 66 hex chars.
const metaAddressLength = len(MetaAddressPrefix) + 2*2*33

type Wallet struct {
	Mnemonic       string          `json:"mnemonic"`
	Network        types.Network   `json:"network"`
	SecretKeySpend types.SecretKey `json:"sec_key_spend"`
	PubKeySpend    types.PublicKey `json:"pub_key_spend"`
	SecretKeyView  types.SecretKey `json:"sec_key_view"`
	PubKeyView     types.PublicKey `json:"pub_key_view"`
	LastScanID     uint64          `json:"last_scan_id,omitempty"`
	Payments       PaymentHistory  `json:"payments,omitempty"`

	paymentIndex map[string]struct{}
}

// NewWallet restores a wallet from a mnemonic for the given network.
func NewWallet(mnemonic string, network types.Network) (*Wallet, error) {
	spendingSecret, viewingSecret, err := DeriveKeys(mnemonic)
	if err != nil {
		return nil, err
	}

	w := &Wallet{
		Mnemonic:       mnemonic,
		Network:        network,
		SecretKeySpend: spendingSecret,
		SecretKeyView:  viewingSecret,
		paymentIndex:   make(map[string]struct{}),
	}
	copy(w.PubKeySpend[:], stealth.PubKeyFromSecKey(spendingSecret.ToArrayPtr())[:])
	copy(w.PubKeyView[:], stealth.PubKeyFromSecKey(viewingSecret.ToArrayPtr())[:])
	return w, nil
}

// MetaAddress of the wallet, the value a receiver publishes so senders can
// derive stealth addresses for it.
func (w *Wallet) MetaAddress() string {
	return MetaAddressPrefix + w.PubKeySpend.String()[2:] + w.PubKeyView.String()[2:]
}

// ParseMetaAddress splits a published meta-address into its spending and
// viewing public keys in canonical hex.
func ParseMetaAddress(metaAddress string) (spendingPubKey, viewingPubKey string, err error) {
	if len(metaAddress) != metaAddressLength || !strings.HasPrefix(metaAddress, MetaAddressPrefix) {
		return "", "", fmt.Errorf("%w: malformed meta-address", stealth.ErrInvalidPublicKeyFormat)
	}
	body := metaAddress[len(MetaAddressPrefix):]
	spendingPubKey = utils.NormalizeHex(body[:66])
	viewingPubKey = utils.NormalizeHex(body[66:])

	// reject anything that does not decode to curve points
	if _, err = stealth.DecodePublicKey(spendingPubKey); err != nil {
		return "", "", err
	}
	if _, err = stealth.DecodePublicKey(viewingPubKey); err != nil {
		return "", "", err
	}
	return spendingPubKey, viewingPubKey, nil
}

// GenerateAddressForMeta is the sender-side entry point: derive a one-time
// stealth address for the receiver behind the given meta-address.
func GenerateAddressForMeta(metaAddress string) (*types.StealthAddress, error) {
	spendingPubKey, viewingPubKey, err := ParseMetaAddress(metaAddress)
	if err != nil {
		return nil, err
	}
	return stealth.GenerateStealthAddress(viewingPubKey, spendingPubKey, "")
}

// NewScanner builds a registry scanner bound to this wallet's viewing keys.
func (w *Wallet) NewScanner(client networking.RegistryConnector) *scanning.Scanner {
	return scanning.NewScanner(client, w.SecretKeyView.String(), w.PubKeyView.String(), w.Network)
}

// AddPayments appends discovered payments, dropping any stealth address the
// wallet already holds.
func (w *Wallet) AddPayments(payments ...*Payment) {
	if w.paymentIndex == nil {
		w.paymentIndex = make(map[string]struct{}, len(w.Payments))
		for _, p := range w.Payments {
			w.paymentIndex[utils.NormalizeHex(p.StealthAddress)] = struct{}{}
		}
	}

	for _, p := range payments {
		key := utils.NormalizeHex(p.StealthAddress)
		if _, exists := w.paymentIndex[key]; exists {
			continue
		}
		w.paymentIndex[key] = struct{}{}
		w.Payments = append(w.Payments, p)
	}
}

// TotalReceivedWei sums all recorded payment amounts.
func (w *Wallet) TotalReceivedWei() *big.Int {
	total := new(big.Int)
	for _, p := range w.Payments {
		if p.AmountWei != nil {
			total.Add(total, p.AmountWei)
		}
	}
	return total
}
