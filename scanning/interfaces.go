package scanning

import (
	"context"
	"time"

	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
)

// RegistryScanner is the behaviour wallet frontends program against when
// they drive a scan without caring how announcements are sourced.
type RegistryScanner interface {
	// Scan checks the announcement ID range [start, end].
	// Blocks until the range is done, the context ends or Stop is called.
	Scan(ctx context.Context, start, end uint64) error

	// Watch keeps the scanner at the registry tip by polling.
	Watch(ctx context.Context, pollInterval time.Duration, lastID uint64) error

	// Stop aborts a running Scan or Watch.
	Stop()

	// LastScanID reports the highest announcement ID processed.
	// Scanners hold no other state, so callers persist this themselves if
	// they want to resume.
	LastScanID() uint64

	// FoundAddresses pushes through batches of addresses owned by the
	// scanner's viewing keys. Single-consumer.
	FoundAddresses() <-chan []types.StealthAddress
}

var _ RegistryScanner = (*Scanner)(nil)
