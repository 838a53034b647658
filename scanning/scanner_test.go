package scanning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zkAsterDex/zkaster-stealth-sdk/api"
	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
)

// fakeRegistry serves announcements from memory, keyed by ID.
type fakeRegistry struct {
	records map[uint64]types.StealthMetadata
	latest  uint64
	calls   int
}

func (f *fakeRegistry) GetInfo() (*api.InfoResponseRegistry, error) {
	return &api.InfoResponseRegistry{
		Network:         string(types.NetworkSepolia),
		LatestID:        f.latest,
		ViewTagsEnabled: true,
	}, nil
}

func (f *fakeRegistry) GetLatestID() (uint64, error) {
	return f.latest, nil
}

func (f *fakeRegistry) GetAnnouncements(_ types.Network, startID, endID uint64) ([]types.StealthMetadata, error) {
	f.calls++
	var out []types.StealthMetadata
	for id := startID; id <= endID; id++ {
		if record, ok := f.records[id]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

func TestScannerScanFindsOwnedRecords(t *testing.T) {
	receiver := newTestReceiver(t)
	stranger := newTestReceiver(t)

	registry := &fakeRegistry{records: map[uint64]types.StealthMetadata{
		1: stranger.recordFor(t),
		2: receiver.recordFor(t),
		3: stranger.recordFor(t),
		4: receiver.recordFor(t),
	}, latest: 4}

	scanner := NewScanner(registry, receiver.viewingPriv, receiver.viewingPub, types.NetworkSepolia)

	var found []types.StealthAddress
	done := make(chan struct{})
	go func() {
		defer close(done)
		for batch := range scanner.FoundAddresses() {
			found = append(found, batch...)
			if len(found) == 2 {
				return
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := scanner.Scan(ctx, 1, 4)
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for found addresses")
	}

	require.Len(t, found, 2)
	require.Equal(t, registry.records[2].StealthAddress, found[0].Address)
	require.Equal(t, registry.records[4].StealthAddress, found[1].Address)
	require.Equal(t, uint64(4), scanner.LastScanID())
}

func TestScannerScanPagesThroughLargeRanges(t *testing.T) {
	receiver := newTestReceiver(t)

	match := receiver.recordFor(t)
	registry := &fakeRegistry{records: map[uint64]types.StealthMetadata{
		announcementPageSize + 10: match,
	}, latest: announcementPageSize + 20}

	scanner := NewScanner(registry, receiver.viewingPriv, receiver.viewingPub, types.NetworkSepolia)

	var found []types.StealthAddress
	done := make(chan struct{})
	go func() {
		defer close(done)
		found = append(found, <-scanner.FoundAddresses()...)
	}()

	err := scanner.Scan(context.Background(), 1, announcementPageSize+20)
	require.NoError(t, err)
	<-done

	require.Equal(t, 2, registry.calls, "range should be fetched in pages")
	require.Len(t, found, 1)
	require.Equal(t, match.StealthAddress, found[0].Address)
}

func TestScannerFoundAddressesSingleConsumer(t *testing.T) {
	receiver := newTestReceiver(t)
	scanner := NewScanner(&fakeRegistry{}, receiver.viewingPriv, receiver.viewingPub, types.NetworkSepolia)

	scanner.FoundAddresses()
	require.Panics(t, func() { scanner.FoundAddresses() })
}
