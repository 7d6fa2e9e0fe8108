package colormph

import "github.com/go-logr/logr"

// defaultSaltLimit is the exclusive upper bound of the salt search range.
// Salts are tried in [1, limit); salt 0 is reserved to mark empty buckets,
// since lookup cannot distinguish "empty bucket" from "assigned salt 0".
const defaultSaltLimit = 32768

// BuildOption is a functional option for configuring builds.
type BuildOption func(*buildConfig)

type buildConfig struct {
	saltLimit   uint32
	prefilterFP float64 // 0 disables the prefilter
	logger      logr.Logger
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		saltLimit: defaultSaltLimit,
		logger:    logr.Discard(),
	}
}

// WithSaltLimit sets the exclusive upper bound of the per-bucket salt
// search. The search tries salts 1, 2, ... limit-1 in order; if none
// resolves a bucket, Build fails with ErrSaltSearchExhausted. The limit
// must be at least 2 so the search tries at least one salt.
func WithSaltLimit(limit uint32) BuildOption {
	return func(c *buildConfig) {
		c.saltLimit = limit
	}
}

// WithPrefilter attaches a bloom filter sized for the given false-positive
// rate. Lookups of names outside the palette then usually return without
// hashing or comparing at all. Worth it only for miss-heavy workloads; the
// perfect hash itself already rejects non-members exactly.
func WithPrefilter(fpRate float64) BuildOption {
	return func(c *buildConfig) {
		c.prefilterFP = fpRate
	}
}

// WithLogger sets the logger used for construction diagnostics.
// Bucket statistics are logged at V(1). Defaults to logr.Discard.
func WithLogger(logger logr.Logger) BuildOption {
	return func(c *buildConfig) {
		c.logger = logger
	}
}
