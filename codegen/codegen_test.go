package codegen

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/tamirms/colormph"
)

func buildRGB(t *testing.T) *colormph.Table {
	t.Helper()
	table, err := colormph.Build([]colormph.Entry{
		{Name: "red", RGBA: [4]uint8{255, 0, 0, 255}},
		{Name: "green", RGBA: [4]uint8{0, 128, 0, 255}},
		{Name: "blue", RGBA: [4]uint8{0, 0, 255, 255}},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return table
}

const rgbGolden = `// Code generated by colormph-gen. DO NOT EDIT.
// Palette digest: xxh64:4aa1f1ce43cec187

package paldata

// palSalts maps each hash bucket to its salt. Zero marks a bucket that
// received no names.
var palSalts = [3]uint8{
	2, 1, 0,
}

// palNames holds the palette names permuted into slot order.
var palNames = [3]string{
	"red",
	"green",
	"blue",
}

// palColors holds RGBA components in the same order as palNames.
var palColors = [3][4]uint8{
	{255, 0, 0, 255},
	{0, 128, 0, 255},
	{0, 0, 255, 255},
}

// palReduce hashes a 32-bit key into a value less than n, adding salt.
// It must stay bit-identical to the hash used when the table was built.
func palReduce(key, salt uint32, n int) int {
	y := (key + salt) * 2654435769
	y ^= key
	return int((uint64(y) * uint64(n)) >> 32)
}

// palIndex returns the slot of the named color, or false if the name is
// not in the palette.
func palIndex(name string) (int, bool) {
	var key uint32
	for i := 0; i < len(name); i++ {
		key = key*9 + uint32(name[i])
	}
	n := len(palNames)
	salt := uint32(palSalts[palReduce(key, 0, n)])
	i := palReduce(key, salt, n)
	if palNames[i] != name {
		return 0, false
	}
	return i, true
}
`

func TestEmitGoGolden(t *testing.T) {
	var buf bytes.Buffer
	err := EmitGo(&buf, Config{Package: "paldata", Prefix: "pal"}, buildRGB(t))
	if err != nil {
		t.Fatalf("EmitGo failed: %v", err)
	}
	if buf.String() != rgbGolden {
		t.Errorf("EmitGo output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), rgbGolden)
	}
}

func TestEmitGoSaltWidth(t *testing.T) {
	// 1000 spread-out keys need salts above 255, pushing the emitted
	// array to uint16.
	entries := make([]colormph.Entry, 1000)
	for i := range entries {
		v := uint32(i) * 2654435761
		entries[i] = colormph.Entry{Name: fmt.Sprintf("c%08x", v)}
	}
	table, err := colormph.Build(entries)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if table.MaxSalt() < 256 || table.MaxSalt() > 65535 {
		t.Fatalf("max salt %d outside the uint16 range this test assumes", table.MaxSalt())
	}

	var buf bytes.Buffer
	if err := EmitGo(&buf, Config{Package: "p", Prefix: "w"}, table); err != nil {
		t.Fatalf("EmitGo failed: %v", err)
	}
	if !strings.Contains(buf.String(), "var wSalts = [1000]uint16{") {
		t.Error("emitted salts array is not uint16")
	}
}

func TestEmitGoConfigValidation(t *testing.T) {
	table := buildRGB(t)
	var buf bytes.Buffer
	if err := EmitGo(&buf, Config{Package: "", Prefix: "x"}, table); err == nil {
		t.Error("EmitGo accepted empty package name")
	}
	if err := EmitGo(&buf, Config{Package: "x", Prefix: ""}, table); err == nil {
		t.Error("EmitGo accepted empty identifier prefix")
	}
}

func TestDigest(t *testing.T) {
	t1 := buildRGB(t)
	t2 := buildRGB(t)
	if Digest(t1) != Digest(t2) {
		t.Error("Digest differs between identical tables")
	}

	other, err := colormph.Build([]colormph.Entry{
		{Name: "red", RGBA: [4]uint8{255, 0, 0, 255}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if Digest(t1) == Digest(other) {
		t.Error("Digest identical for different palettes")
	}
}
