package wallet

import (
	"math/big"
	"time"

	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
	"github.com/zkAsterDex/zkaster-stealth-sdk/utils"
)

type PaymentHistory []*Payment

// Payment is one discovered incoming stealth payment. AmountWei is whatever
// the caller learned from their balance source; the SDK itself does no
// chain lookups.
type Payment struct {
	StealthAddress     string        `json:"stealth_address"`
	EphemeralPublicKey string        `json:"ephemeral_pub_key"`
	AmountWei          *big.Int      `json:"amount_wei"`
	Network            types.Network `json:"network"`
	ReceivedAt         time.Time     `json:"received_at"`
}

// PaymentFromMatch records a scan match as a payment with an unknown
// amount.
func PaymentFromMatch(match types.StealthAddress, network types.Network) *Payment {
	return &Payment{
		StealthAddress:     match.Address,
		EphemeralPublicKey: match.EphemeralPublicKey,
		AmountWei:          new(big.Int),
		Network:            network,
		ReceivedAt:         time.Now().UTC(),
	}
}

// AmountETH renders the amount as a decimal ether string.
func (p *Payment) AmountETH() string {
	return utils.FormatWeiToETH(p.AmountWei)
}

func (t PaymentHistory) FindByAddress(stealthAddress string) *Payment {
	for i := range t {
		if utils.HexEqual(t[i].StealthAddress, stealthAddress) {
			return t[i]
		}
	}
	return nil
}

func (t PaymentHistory) TotalWei() *big.Int {
	total := new(big.Int)
	for i := range t {
		if t[i].AmountWei != nil {
			total.Add(total, t[i].AmountWei)
		}
	}
	return total
}
