// Bench measures colormph build and lookup performance over synthetic
// palettes.
//
// Usage:
//
//	go run ./cmd/bench -keys 100000 -lookups 10000000
//
// Flags:
//
//	-keys      Number of synthetic palette entries (default: 100,000)
//	-lookups   Number of lookups per measured phase (default: 10,000,000)
//	-bloom     Prefilter false-positive rate, 0 to disable (default: 0)
//	-workers   Concurrent lookup goroutines (default: GOMAXPROCS)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"runtime"
	"syscall"
	"time"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/colormph"
)

// getMaxRSS returns the maximum resident set size in bytes.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024 // Linux reports KB
	}
	return maxRSS
}

// syntheticName derives a deterministic pseudo-random palette name from a
// counter. Murmur3 gives uniform key hashes, so bucket populations follow
// the same distribution as real palettes.
func syntheticName(i uint64) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	return fmt.Sprintf("color-%016x", murmur3.Sum64(buf[:]))
}

// missQuery derives a query that is never a member: the synthetic
// namespace is disjoint ("miss-" prefix) and the value comes from a
// different hash family (xxh3) so misses don't accidentally share bucket
// structure with the member keys. Returned as bytes to drive the byte
// query path, the shape a scanner rejecting unknown names would use.
func missQuery(i uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	return fmt.Appendf(nil, "miss-%016x", xxh3.Hash(buf[:]))
}

func main() {
	keysFlag := flag.Int("keys", 100_000, "number of synthetic palette entries")
	lookupsFlag := flag.Int("lookups", 10_000_000, "lookups per measured phase")
	bloomFlag := flag.Float64("bloom", 0, "prefilter false-positive rate (0 disables)")
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "concurrent lookup goroutines")
	flag.Parse()

	n := *keysFlag
	entries := make([]colormph.Entry, n)
	for i := range entries {
		h := murmur3.Sum64([]byte(syntheticName(uint64(i))))
		entries[i] = colormph.Entry{
			Name: syntheticName(uint64(i)),
			RGBA: [4]uint8{uint8(h), uint8(h >> 8), uint8(h >> 16), 255},
		}
	}

	var opts []colormph.BuildOption
	if *bloomFlag > 0 {
		opts = append(opts, colormph.WithPrefilter(*bloomFlag))
	}

	start := time.Now()
	table, err := colormph.Build(entries, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bench: build failed: %v\n", err)
		os.Exit(1)
	}
	buildTime := time.Since(start)

	fmt.Printf("build: %d keys in %v (%.0f keys/s), max salt %d\n",
		n, buildTime, float64(n)/buildTime.Seconds(), table.MaxSalt())

	hitRate := measureLookups(table, *lookupsFlag, *workersFlag, func(i uint64) string {
		return entries[i%uint64(n)].Name
	})
	fmt.Printf("hits:   %s\n", hitRate)

	missRate := measureByteLookups(table, *lookupsFlag, *workersFlag, missQuery)
	fmt.Printf("misses: %s\n", missRate)

	fmt.Printf("max RSS: %.1f MiB\n", float64(getMaxRSS())/(1<<20))
}

// measureLookups runs count lookups across workers goroutines and returns a
// formatted throughput summary.
func measureLookups(table *colormph.Table, count, workers int, query func(uint64) string) string {
	start := time.Now()
	var g errgroup.Group
	per := count / workers
	for w := 0; w < workers; w++ {
		base := uint64(w) * uint64(per)
		g.Go(func() error {
			found := 0
			for i := uint64(0); i < uint64(per); i++ {
				if _, ok := table.Lookup(query(base + i)); ok {
					found++
				}
			}
			// Keep the loop from being optimized away.
			runtime.KeepAlive(found)
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)
	total := per * workers
	return fmt.Sprintf("%d lookups in %v (%.1f M/s, %d workers)",
		total, elapsed, float64(total)/elapsed.Seconds()/1e6, workers)
}

// measureByteLookups is measureLookups over the byte query path.
func measureByteLookups(table *colormph.Table, count, workers int, query func(uint64) []byte) string {
	start := time.Now()
	var g errgroup.Group
	per := count / workers
	for w := 0; w < workers; w++ {
		base := uint64(w) * uint64(per)
		g.Go(func() error {
			found := 0
			for i := uint64(0); i < uint64(per); i++ {
				if _, ok := table.LookupBytes(query(base + i)); ok {
					found++
				}
			}
			runtime.KeepAlive(found)
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)
	total := per * workers
	return fmt.Sprintf("%d lookups in %v (%.1f M/s, %d workers)",
		total, elapsed, float64(total)/elapsed.Seconds()/1e6, workers)
}
