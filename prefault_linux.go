//go:build linux

package colormph

import "golang.org/x/sys/unix"

// prefaultRegion asks the kernel to fault in pages ahead of the sequential
// parse in Open. Best-effort: errors are silently ignored.
func prefaultRegion(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_WILLNEED)
}
