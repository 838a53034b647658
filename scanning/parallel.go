package scanning

import (
	"runtime"
	"sync"

	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
)

// ScanStealthAddressesParallel is ScanStealthAddresses spread over a worker
// pool. Records are independent of each other, so they are handed out by
// index and matches land in per-index slots; the compacted result keeps
// input order and is identical to the sequential scan.
//
// workers <= 0 selects runtime.NumCPU().
func ScanStealthAddressesParallel(viewingPrivKey, viewingPubKey string, records []types.StealthMetadata, workers int) ([]types.StealthAddress, error) {
	scanKeys, err := newScanKeys(viewingPrivKey, viewingPubKey)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}

	slots := make([]*types.StealthAddress, len(records))
	workChan := make(chan int, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workChan {
				if match, ok := scanRecord(scanKeys, &records[i]); ok {
					slots[i] = match
				}
			}
		}()
	}

	for i := range records {
		workChan <- i
	}
	close(workChan)
	wg.Wait()

	matches := make([]types.StealthAddress, 0)
	for _, match := range slots {
		if match != nil {
			matches = append(matches, *match)
		}
	}
	return matches, nil
}
