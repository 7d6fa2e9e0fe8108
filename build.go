package colormph

import (
	"fmt"
	"math"
	"sort"

	"github.com/bits-and-blooms/bloom/v3"

	cmpherrors "github.com/tamirms/colormph/errors"
	"github.com/tamirms/colormph/internal/weakhash"
)

// maxEntries is the maximum palette size. The limit comes from the 32-bit
// fastrange scaling in weakhash.Reduce, which maps into [0, n) for n up to
// 2^32 - 1.
const maxEntries = math.MaxUint32

// Build constructs a minimal perfect hash table over the given palette.
//
// Each entry's name must be unique; names are hashed, distributed into
// len(entries) buckets, and every non-empty bucket is assigned a salt such
// that re-hashing its keys with that salt yields a distinct free slot per
// key. The result is a bijection from names onto [0, len(entries)).
//
// Construction is deterministic: the same ordered palette always produces
// the same salts and slot assignment, so the output can be treated as
// permanent static data. There is no fallback when the salt search range is
// exhausted - the palette or the salt limit must change, not the retry
// count, since retrying identical input yields identical failure.
func Build(entries []Entry, opts ...BuildOption) (*Table, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	n := len(entries)
	if n == 0 {
		return nil, cmpherrors.ErrEmptyPalette
	}
	if uint64(n) > maxEntries {
		return nil, cmpherrors.ErrTooManyKeys
	}
	if cfg.saltLimit < 2 {
		return nil, fmt.Errorf("%w: got %d", cmpherrors.ErrInvalidSaltLimit, cfg.saltLimit)
	}
	if cfg.prefilterFP < 0 || cfg.prefilterFP >= 1 {
		return nil, fmt.Errorf("%w: got %g", cmpherrors.ErrInvalidPrefilterFP, cfg.prefilterFP)
	}

	// Hash every name once; the salt search below only re-runs the cheap
	// Reduce step, never the string hash.
	hashes := make([]uint32, n)
	for i, e := range entries {
		hashes[i] = weakhash.String(e.Name)
	}

	// Unsalted distribution into n buckets. Buckets hold entry indices.
	buckets := make([][]int, n)
	for i := range entries {
		b := weakhash.Reduce(hashes[i], 0, uint32(n))
		buckets[b] = append(buckets[b], i)
	}

	// Resolve the largest buckets first, while slots are still mostly
	// free; singletons fall into whatever remains. Ties break on ascending
	// bucket index so the output is deterministic.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ba, bb := order[a], order[b]
		if len(buckets[ba]) != len(buckets[bb]) {
			return len(buckets[ba]) > len(buckets[bb])
		}
		return ba < bb
	})

	// claimed is local single-pass state: construction is a one-shot,
	// non-reentrant operation, so a plain bool slice per invocation is all
	// the bookkeeping needed.
	claimed := make([]bool, n)
	salts := make([]uint32, n)
	names := make([]string, n)
	colors := make([][4]uint8, n)

	slots := make([]uint32, 0, 8) // reused per salt attempt
	maxBucket := 0
	var maxSalt uint32

	for _, b := range order {
		bucket := buckets[b]
		if len(bucket) == 0 {
			// The order is descending by population, so every bucket from
			// here on is empty. They keep salt 0 and consume no slots.
			break
		}
		if len(bucket) > maxBucket {
			maxBucket = len(bucket)
		}

		salt, ok := findSalt(bucket, hashes, claimed, uint32(n), cfg.saltLimit, &slots)
		if !ok {
			if dup, found := duplicateName(bucket, entries); found {
				return nil, fmt.Errorf("%w: %q", cmpherrors.ErrDuplicateKey, dup)
			}
			return nil, fmt.Errorf("%w: bucket=%d size=%d saltLimit=%d",
				cmpherrors.ErrSaltSearchExhausted, b, len(bucket), cfg.saltLimit)
		}

		salts[b] = salt
		if salt > maxSalt {
			maxSalt = salt
		}
		for _, ei := range bucket {
			slot := weakhash.Reduce(hashes[ei], salt, uint32(n))
			claimed[slot] = true
			names[slot] = entries[ei].Name
			colors[slot] = entries[ei].RGBA
		}
	}

	t := &Table{
		salts:  salts,
		names:  names,
		colors: colors,
	}

	if cfg.prefilterFP > 0 {
		filter := bloom.NewWithEstimates(uint(n), cfg.prefilterFP)
		for _, name := range names {
			filter.AddString(name)
		}
		t.filter = filter
	}

	cfg.logger.V(1).Info("built minimal perfect hash table",
		"entries", n, "maxBucket", maxBucket, "maxSalt", maxSalt,
		"prefilter", cfg.prefilterFP > 0)

	return t, nil
}

// findSalt searches [1, limit) for a salt that places every key of the
// bucket on a distinct unclaimed slot. A salt that maps two keys of the
// bucket to the same slot is rejected even when that slot is free; accepting
// it would silently lose one key.
func findSalt(bucket []int, hashes []uint32, claimed []bool, n, limit uint32, slots *[]uint32) (uint32, bool) {
trySalt:
	for salt := uint32(1); salt < limit; salt++ {
		*slots = (*slots)[:0]
		for _, ei := range bucket {
			slot := weakhash.Reduce(hashes[ei], salt, n)
			if claimed[slot] {
				continue trySalt
			}
			for _, prev := range *slots {
				if prev == slot {
					continue trySalt
				}
			}
			*slots = append(*slots, slot)
		}
		return salt, true
	}
	return 0, false
}

// duplicateName reports a byte-identical name appearing twice in the bucket.
// Duplicate names hash identically, land in the same bucket, and collide
// under every salt, so an exhausted search is the guaranteed symptom.
func duplicateName(bucket []int, entries []Entry) (string, bool) {
	for i := 1; i < len(bucket); i++ {
		for j := 0; j < i; j++ {
			if entries[bucket[i]].Name == entries[bucket[j]].Name {
				return entries[bucket[i]].Name, true
			}
		}
	}
	return "", false
}
