package colormph

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"

	cmpherrors "github.com/tamirms/colormph/errors"
)

const (
	// magic number for serialized tables, "CMPH" in little-endian.
	magic = uint32(0x48504D43)

	// version is the current format version.
	version = uint16(0x0001)

	// flagPrefilter marks a table serialized with a bloom prefilter.
	flagPrefilter = uint16(1 << 0)

	// headerSize is the fixed-size prefix: magic(4) + version(2) +
	// flags(2) + numEntries(4).
	headerSize = 12

	// checksumSize is the xxhash64 trailer.
	checksumSize = 8
)

// Serialized layout (all integers little-endian):
//
//	Offset  Size       Field
//	0       4          Magic        0x48504D43 ("CMPH")
//	4       2          Version      0x0001
//	6       2          Flags        bit 0: prefilter present
//	8       4          NumEntries   uint32 (n)
//	12      n*4        Salts        uint32 per bucket
//	...     per entry  Names        uint16 length + bytes
//	...     n*4        Colors       RGBA, 4 bytes per entry
//	...     4 + len    Prefilter    uint32 length + bloom filter bytes (flag bit 0)
//	last 8  8          Checksum     xxhash64 of all preceding bytes

// MarshalBinary serializes the table, ending with an xxhash64 checksum of
// everything before it.
func (t *Table) MarshalBinary() ([]byte, error) {
	n := len(t.names)

	var buf bytes.Buffer
	var scratch [8]byte

	binary.LittleEndian.PutUint32(scratch[0:4], magic)
	binary.LittleEndian.PutUint16(scratch[4:6], version)
	flags := uint16(0)
	if t.filter != nil {
		flags |= flagPrefilter
	}
	binary.LittleEndian.PutUint16(scratch[6:8], flags)
	buf.Write(scratch[:8])
	binary.LittleEndian.PutUint32(scratch[0:4], uint32(n))
	buf.Write(scratch[:4])

	for _, s := range t.salts {
		binary.LittleEndian.PutUint32(scratch[0:4], s)
		buf.Write(scratch[:4])
	}
	for _, name := range t.names {
		if len(name) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: name length %d exceeds uint16", cmpherrors.ErrCorruptedTable, len(name))
		}
		binary.LittleEndian.PutUint16(scratch[0:2], uint16(len(name)))
		buf.Write(scratch[:2])
		buf.WriteString(name)
	}
	for _, c := range t.colors {
		buf.Write(c[:])
	}

	if t.filter != nil {
		var fb bytes.Buffer
		if _, err := t.filter.WriteTo(&fb); err != nil {
			return nil, fmt.Errorf("serialize prefilter: %w", err)
		}
		binary.LittleEndian.PutUint32(scratch[0:4], uint32(fb.Len()))
		buf.Write(scratch[:4])
		buf.Write(fb.Bytes())
	}

	binary.LittleEndian.PutUint64(scratch[0:8], xxhash.Sum64(buf.Bytes()))
	buf.Write(scratch[:8])
	return buf.Bytes(), nil
}

// UnmarshalBinary deserializes a table produced by MarshalBinary.
// The checksum is verified before any field is trusted; data is copied, so
// the caller may reuse the slice after the call.
func (t *Table) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize+checksumSize {
		return cmpherrors.ErrTruncatedTable
	}

	body := data[:len(data)-checksumSize]
	want := binary.LittleEndian.Uint64(data[len(data)-checksumSize:])
	if got := xxhash.Sum64(body); got != want {
		return fmt.Errorf("%w: got %016x, want %016x", cmpherrors.ErrChecksumFailed, got, want)
	}

	if binary.LittleEndian.Uint32(body[0:4]) != magic {
		return cmpherrors.ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint16(body[4:6]); v != version {
		return fmt.Errorf("%w: got %d, want %d", cmpherrors.ErrInvalidVersion, v, version)
	}
	flags := binary.LittleEndian.Uint16(body[6:8])
	n := int(binary.LittleEndian.Uint32(body[8:12]))
	// Build refuses empty palettes, so no well-formed table has zero
	// entries; accepting one would leave Lookup indexing empty slices.
	if n == 0 {
		return fmt.Errorf("%w: zero entries", cmpherrors.ErrCorruptedTable)
	}

	r := body[headerSize:]
	take := func(size int) ([]byte, error) {
		if len(r) < size {
			return nil, cmpherrors.ErrTruncatedTable
		}
		out := r[:size]
		r = r[size:]
		return out, nil
	}

	saltBytes, err := take(n * 4)
	if err != nil {
		return err
	}
	salts := make([]uint32, n)
	for i := range salts {
		salts[i] = binary.LittleEndian.Uint32(saltBytes[i*4:])
	}

	names := make([]string, n)
	for i := range names {
		lenBytes, err := take(2)
		if err != nil {
			return err
		}
		nameBytes, err := take(int(binary.LittleEndian.Uint16(lenBytes)))
		if err != nil {
			return err
		}
		names[i] = string(nameBytes)
	}

	colorBytes, err := take(n * 4)
	if err != nil {
		return err
	}
	colors := make([][4]uint8, n)
	for i := range colors {
		copy(colors[i][:], colorBytes[i*4:i*4+4])
	}

	var filter *bloom.BloomFilter
	if flags&flagPrefilter != 0 {
		lenBytes, err := take(4)
		if err != nil {
			return err
		}
		blob, err := take(int(binary.LittleEndian.Uint32(lenBytes)))
		if err != nil {
			return err
		}
		filter = &bloom.BloomFilter{}
		if _, err := filter.ReadFrom(bytes.NewReader(blob)); err != nil {
			return fmt.Errorf("%w: prefilter: %v", cmpherrors.ErrCorruptedTable, err)
		}
	}

	if len(r) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", cmpherrors.ErrCorruptedTable, len(r))
	}

	t.salts = salts
	t.names = names
	t.colors = colors
	t.filter = filter
	return nil
}
