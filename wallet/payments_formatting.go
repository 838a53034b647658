package wallet

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
)

var (
	_ json.Marshaler   = (*Payment)(nil)
	_ json.Unmarshaler = (*Payment)(nil)
)

// ========== Payment JSON ==========

// AmountWei is serialised as a decimal string; wei amounts overflow every
// JSON-safe integer width.

func (p Payment) MarshalJSON() ([]byte, error) {
	type out struct {
		StealthAddress     string        `json:"stealth_address"`
		EphemeralPublicKey string        `json:"ephemeral_pub_key"`
		AmountWei          string        `json:"amount_wei"`
		Network            types.Network `json:"network"`
		ReceivedAt         time.Time     `json:"received_at"`
	}
	amount := "0"
	if p.AmountWei != nil {
		amount = p.AmountWei.String()
	}
	return json.Marshal(out{
		StealthAddress:     p.StealthAddress,
		EphemeralPublicKey: p.EphemeralPublicKey,
		AmountWei:          amount,
		Network:            p.Network,
		ReceivedAt:         p.ReceivedAt,
	})
}

func (p *Payment) UnmarshalJSON(b []byte) error {
	type in struct {
		StealthAddress     string        `json:"stealth_address"`
		EphemeralPublicKey string        `json:"ephemeral_pub_key"`
		AmountWei          string        `json:"amount_wei"`
		Network            types.Network `json:"network"`
		ReceivedAt         time.Time     `json:"received_at"`
	}
	var tmp in
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}

	amount := new(big.Int)
	if tmp.AmountWei != "" {
		if _, ok := amount.SetString(tmp.AmountWei, 10); !ok {
			return fmt.Errorf("invalid amount_wei: %q", tmp.AmountWei)
		}
	}

	p.StealthAddress = tmp.StealthAddress
	p.EphemeralPublicKey = tmp.EphemeralPublicKey
	p.AmountWei = amount
	p.Network = tmp.Network
	p.ReceivedAt = tmp.ReceivedAt
	return nil
}
