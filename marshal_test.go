package colormph

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/cespare/xxhash/v2"

	cmpherrors "github.com/tamirms/colormph/errors"
)

// reseal recomputes the trailer checksum after a test has tampered with the
// body, so the tampered field is what fails validation rather than the
// checksum.
func reseal(data []byte) {
	body := data[:len(data)-checksumSize]
	binary.LittleEndian.PutUint64(data[len(data)-checksumSize:], xxhash.Sum64(body))
}

func tablesEqual(t *testing.T, a, b *Table) {
	t.Helper()
	if a.Len() != b.Len() {
		t.Fatalf("Len = %d vs %d", a.Len(), b.Len())
	}
	sa, sb := a.Salts(), b.Salts()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("salts differ at bucket %d: %d vs %d", i, sa[i], sb[i])
		}
	}
	for i := 0; i < a.Len(); i++ {
		if a.Name(i) != b.Name(i) {
			t.Fatalf("names differ at slot %d: %q vs %q", i, a.Name(i), b.Name(i))
		}
		if a.RGBA(i) != b.RGBA(i) {
			t.Fatalf("colors differ at slot %d", i)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		opts []BuildOption
	}{
		{"plain", nil},
		{"prefilter", []BuildOption{WithPrefilter(0.01)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orig := mustBuild(t, testEntries(500), tc.opts...)

			data, err := orig.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary failed: %v", err)
			}

			var got Table
			if err := got.UnmarshalBinary(data); err != nil {
				t.Fatalf("UnmarshalBinary failed: %v", err)
			}
			tablesEqual(t, orig, &got)

			for _, e := range testEntries(500) {
				idx, ok := got.Lookup(e.Name)
				if !ok {
					t.Fatalf("Lookup(%q) missed after round trip", e.Name)
				}
				if got.RGBA(idx) != e.RGBA {
					t.Fatalf("Lookup(%q) payload mismatch after round trip", e.Name)
				}
			}
			if _, ok := got.Lookup("notakey"); ok {
				t.Error("Lookup(\"notakey\") = member after round trip")
			}
		})
	}
}

func TestMarshalDeterministic(t *testing.T) {
	table := mustBuild(t, testEntries(100))

	d1, err := table.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	d2, err := table.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if string(d1) != string(d2) {
		t.Error("MarshalBinary output differs between calls")
	}
}

func TestUnmarshalChecksum(t *testing.T) {
	table := mustBuild(t, testEntries(50))
	data, err := table.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	// Flip one bit in each region of the body; every flip must be caught.
	for _, offset := range []int{0, 5, headerSize, len(data) / 2, len(data) - checksumSize - 1} {
		corrupted := append([]byte(nil), data...)
		corrupted[offset] ^= 0x01

		var got Table
		if err := got.UnmarshalBinary(corrupted); !errors.Is(err, cmpherrors.ErrChecksumFailed) {
			t.Errorf("offset %d: error = %v, want ErrChecksumFailed", offset, err)
		}
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	table := mustBuild(t, testEntries(50))
	data, err := table.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	for _, size := range []int{0, 5, headerSize + checksumSize - 1} {
		var got Table
		if err := got.UnmarshalBinary(data[:size]); !errors.Is(err, cmpherrors.ErrTruncatedTable) {
			t.Errorf("size %d: error = %v, want ErrTruncatedTable", size, err)
		}
	}
}

func TestUnmarshalBadMagic(t *testing.T) {
	table := mustBuild(t, testEntries(10))
	data, err := table.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	data[0] ^= 0xff
	reseal(data)

	var got Table
	if err := got.UnmarshalBinary(data); !errors.Is(err, cmpherrors.ErrInvalidMagic) {
		t.Errorf("error = %v, want ErrInvalidMagic", err)
	}
}

func TestUnmarshalBadVersion(t *testing.T) {
	table := mustBuild(t, testEntries(10))
	data, err := table.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	binary.LittleEndian.PutUint16(data[4:6], version+1)
	reseal(data)

	var got Table
	if err := got.UnmarshalBinary(data); !errors.Is(err, cmpherrors.ErrInvalidVersion) {
		t.Errorf("error = %v, want ErrInvalidVersion", err)
	}
}

func TestUnmarshalZeroEntries(t *testing.T) {
	// A checksum-valid header announcing zero entries never comes out of
	// MarshalBinary, so it must be rejected rather than produce a table
	// whose Lookup indexes empty slices.
	data := make([]byte, headerSize+checksumSize)
	binary.LittleEndian.PutUint32(data[0:4], magic)
	binary.LittleEndian.PutUint16(data[4:6], version)
	reseal(data)

	var got Table
	if err := got.UnmarshalBinary(data); !errors.Is(err, cmpherrors.ErrCorruptedTable) {
		t.Fatalf("error = %v, want ErrCorruptedTable", err)
	}
}

func TestUnmarshalTrailingBytes(t *testing.T) {
	table := mustBuild(t, testEntries(10))
	data, err := table.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	// Splice garbage between body and checksum, then reseal.
	body := data[:len(data)-checksumSize]
	tampered := append(append([]byte(nil), body...), 0xde, 0xad)
	tampered = append(tampered, make([]byte, checksumSize)...)
	reseal(tampered)

	var got Table
	if err := got.UnmarshalBinary(tampered); !errors.Is(err, cmpherrors.ErrCorruptedTable) {
		t.Errorf("error = %v, want ErrCorruptedTable", err)
	}
}
