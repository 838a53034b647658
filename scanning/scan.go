package scanning

import (
	"errors"

	"github.com/zkAsterDex/zkaster-stealth-sdk/logging"
	"github.com/zkAsterDex/zkaster-stealth-sdk/stealth"
	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
	"github.com/zkAsterDex/zkaster-stealth-sdk/utils"
)

var ErrAlreadyScanning = errors.New("scanner is already scanning")

// ScanStealthAddresses walks a list of published metadata records and
// returns the ones addressed to the holder of the viewing keys, in input
// order.
//
// Per record the shared secret is recomputed from the viewing private key
// and the record's ephemeral public key. The record's view tag is compared
// first; only on a tag match (roughly 1 in 256 of unrelated records) is the
// full one-time address re-derived and compared. A tag match alone is never
// sufficient: the record is included only when the re-derived address
// equals the claimed address.
//
// A malformed or otherwise unscannable record is skipped, never propagated:
// one corrupt record must not deny scanning the rest of the list. An empty
// result is a valid outcome.
func ScanStealthAddresses(viewingPrivKey, viewingPubKey string, records []types.StealthMetadata) ([]types.StealthAddress, error) {
	scanKeys, err := newScanKeys(viewingPrivKey, viewingPubKey)
	if err != nil {
		return nil, err
	}

	matches := make([]types.StealthAddress, 0)
	for i := range records {
		if match, ok := scanRecord(scanKeys, &records[i]); ok {
			matches = append(matches, *match)
		}
	}
	return matches, nil
}

// scanKeys holds the decoded viewing keys so a scan decodes them once
// instead of per record.
type scanKeys struct {
	viewPriv [32]byte
	viewPub  [33]byte
}

func newScanKeys(viewingPrivKey, viewingPubKey string) (*scanKeys, error) {
	if viewingPrivKey == "" || viewingPubKey == "" {
		return nil, stealth.ErrMissingViewingKeys
	}

	viewPriv, err := stealth.DecodeSecretKey(viewingPrivKey)
	if err != nil {
		return nil, err
	}
	viewPub, err := stealth.DecodePublicKey(viewingPubKey)
	if err != nil {
		return nil, err
	}

	return &scanKeys{viewPriv: viewPriv, viewPub: viewPub}, nil
}

// scanRecord checks a single record against the viewing keys. Any
// per-record failure results in (nil, false); errors never escape.
func scanRecord(keys *scanKeys, record *types.StealthMetadata) (*types.StealthAddress, bool) {
	if record.StealthAddress == "" || record.EphemeralPublicKey == "" || record.ViewTag == "" {
		logging.L.Debug().Msg("skipping record with missing fields")
		return nil, false
	}

	ephPub, err := stealth.DecodePublicKey(record.EphemeralPublicKey)
	if err != nil {
		logging.L.Debug().Err(err).
			Str("ephemeral_pub_key", record.EphemeralPublicKey).
			Msg("skipping record with bad ephemeral key")
		return nil, false
	}

	sharedSecret, err := stealth.ComputeSharedSecret(keys.viewPriv[:], ephPub[:])
	if err != nil {
		logging.L.Debug().Err(err).Msg("skipping record, shared secret failed")
		return nil, false
	}

	// cheap pre-filter: one hash instead of a full re-derivation
	if !utils.HexEqual(stealth.ViewTagFromSecret(sharedSecret), record.ViewTag) {
		return nil, false
	}

	address, err := stealth.AddressFromSharedSecret(sharedSecret, keys.viewPub)
	if err != nil {
		logging.L.Debug().Err(err).Msg("skipping record, address derivation failed")
		return nil, false
	}

	if !utils.HexEqual(address, record.StealthAddress) {
		// tag collision with someone else's payment, expected ~1/256
		return nil, false
	}

	return &types.StealthAddress{
		Address:            address,
		EphemeralPublicKey: utils.EncodeHex(ephPub[:]),
		ViewTag:            utils.NormalizeHex(record.ViewTag),
	}, true
}
