//go:build !linux

package colormph

// prefaultRegion is a no-op on non-Linux platforms.
func prefaultRegion(data []byte) {
}
