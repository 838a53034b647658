package types

import "time"

// StealthAddress is the sender-side output of a single stealth-address
// generation: the derived on-chain address, the ephemeral public key the
// receiver needs to recompute the shared secret, and the one-byte view tag
// used by scanners as a cheap pre-filter. All fields are canonical
// lowercase 0x-hex. A StealthAddress has no owner at creation time;
// ownership is only established when a receiver re-derives it during a scan.
type StealthAddress struct {
	Address            string `json:"stealthAddress"`
	EphemeralPublicKey string `json:"ephemeralPublicKey"`
	ViewTag            string `json:"viewTag"`
}

// StealthMetadata is the publication-layer record wrapped around a
// StealthAddress. It is produced by the sender, persisted and transported
// by whatever registry the caller uses, and consumed read-only by the
// scanner. Field names are part of the wire format.
type StealthMetadata struct {
	StealthAddress     string    `json:"stealthAddress"`
	EphemeralPublicKey string    `json:"ephemeralPublicKey"`
	ViewTag            string    `json:"viewTag"`
	Network            Network   `json:"network"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CreateStealthMetadata wraps a generated stealth address into a
// publication record for the given network.
func CreateStealthMetadata(address StealthAddress, network Network) StealthMetadata {
	return StealthMetadata{
		StealthAddress:     address.Address,
		EphemeralPublicKey: address.EphemeralPublicKey,
		ViewTag:            address.ViewTag,
		Network:            network,
		CreatedAt:          time.Now().UTC(),
	}
}
