package scanning

import (
	"context"
	"time"

	"github.com/zkAsterDex/zkaster-stealth-sdk/logging"
	"github.com/zkAsterDex/zkaster-stealth-sdk/networking"
	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
)

// announcementPageSize is the ID range requested per registry call.
const announcementPageSize = 500

// Scanner pulls announcement pages from a registry and pushes the records
// addressed to its viewing keys through a channel. It holds no persistent
// state beyond the last scanned announcement ID; scans over disjoint ID
// ranges are independent.
type Scanner struct {
	client         networking.RegistryConnector
	viewingPrivKey string
	viewingPubKey  string
	network        types.Network

	lastScanID        uint64
	scanning          bool
	stopChan          chan struct{}
	foundChan         chan []types.StealthAddress
	chanCalledAlready bool
}

func NewScanner(
	client networking.RegistryConnector,
	viewingPrivKey, viewingPubKey string,
	network types.Network,
) *Scanner {
	return &Scanner{
		client:         client,
		viewingPrivKey: viewingPrivKey,
		viewingPubKey:  viewingPubKey,
		network:        network,
		stopChan:       make(chan struct{}),
		foundChan:      make(chan []types.StealthAddress),
	}
}

// Scan scans the announcements with startID <= id <= endID.
// is blocking
func (s *Scanner) Scan(ctx context.Context, startID, endID uint64) error {
	if s.scanning {
		return ErrAlreadyScanning
	}
	s.scanning = true
	defer s.setScanFalse()

	for pageStart := startID; pageStart <= endID; pageStart += announcementPageSize {
		select {
		case <-ctx.Done():
			logging.L.Err(ctx.Err()).Msg("context done")
			return ctx.Err()
		case <-s.stopChan:
			logging.L.Info().Msg("scanner stopped")
			return nil
		default:
		}

		pageEnd := pageStart + announcementPageSize - 1
		if pageEnd > endID {
			pageEnd = endID
		}

		records, err := s.client.GetAnnouncements(s.network, pageStart, pageEnd)
		if err != nil {
			logging.L.Err(err).
				Uint64("start_id", pageStart).
				Uint64("end_id", pageEnd).
				Msg("failed to fetch announcements")
			return err
		}

		matches, err := ScanStealthAddressesParallel(s.viewingPrivKey, s.viewingPubKey, records, 0)
		if err != nil {
			logging.L.Err(err).Msg("failed to scan announcements")
			return err
		}
		if len(matches) > 0 {
			s.foundChan <- matches
		}
		s.lastScanID = pageEnd
	}

	return nil
}

// Watch polls the registry for new announcements and scans everything past
// the last scanned ID. Blocks until the context ends or Stop is called.
func (s *Scanner) Watch(ctx context.Context, pollInterval time.Duration, lastID uint64) error {
	if s.scanning {
		return ErrAlreadyScanning
	}

	s.lastScanID = lastID

	logging.L.Info().Msg("started watching")
	for {
		select {
		case <-time.After(pollInterval):
			latestID, err := s.client.GetLatestID()
			if err != nil {
				// transient registry errors are retried on the next tick
				logging.L.Err(err).Msg("error pulling latest announcement id")
				continue
			}

			if s.lastScanID < latestID {
				err = s.Scan(ctx, s.lastScanID+1, latestID)
				if err != nil {
					logging.L.Err(err).
						Uint64("last_scan_id", s.lastScanID).
						Uint64("latest_id", latestID).
						Msg("error scanning to latest announcement")
					return err
				}
			}
		case <-ctx.Done():
			err := ctx.Err()
			logging.L.Err(err).Msg("context ended")
			return err
		case <-s.stopChan:
			logging.L.Info().Msg("stop signal triggered")
			return nil
		}
	}
}

// Stop the scanner
func (s *Scanner) Stop() {
	s.stopChan <- struct{}{}
}

// LastScanID returns the highest announcement ID processed so far.
func (s *Scanner) LastScanID() uint64 {
	return s.lastScanID
}

// FoundAddresses can only have one caller.
// Matches are only pushed through once.
func (s *Scanner) FoundAddresses() <-chan []types.StealthAddress {
	if s.chanCalledAlready {
		panic("FoundAddresses can only have one caller")
	}
	s.chanCalledAlready = true
	return s.foundChan
}

func (s *Scanner) setScanFalse() { s.scanning = false }
