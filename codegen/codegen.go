// Package codegen emits a constructed table as a self-contained Go source
// file: the salt, name, and color arrays plus the lookup routine, with no
// imports. The output is meant to be checked in and regenerated whenever
// the source palette changes; the digest line in the header makes stale
// output detectable.
package codegen

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/tamirms/colormph"
)

// saltsPerLine is how many salt values are placed on one line of the
// emitted array literal.
const saltsPerLine = 16

// Config controls the emitted file.
type Config struct {
	// Package is the package clause of the emitted file.
	Package string

	// Prefix is prepended to every emitted identifier, e.g. prefix "x11"
	// yields x11Salts, x11Names, x11Colors, x11Reduce, x11Index.
	Prefix string
}

func (c Config) validate() error {
	if c.Package == "" {
		return fmt.Errorf("codegen: empty package name")
	}
	if c.Prefix == "" {
		return fmt.Errorf("codegen: empty identifier prefix")
	}
	return nil
}

// Digest returns the change-detection fingerprint written into the emitted
// file header: xxhash64 over each slot's name, a zero byte, and its RGBA
// components, in slot order.
func Digest(t *colormph.Table) uint64 {
	d := xxhash.New()
	for i := 0; i < t.Len(); i++ {
		d.WriteString(t.Name(i))
		rgba := t.RGBA(i)
		d.Write([]byte{0})
		d.Write(rgba[:])
	}
	return d.Sum64()
}

// saltType returns the narrowest unsigned integer type that holds every
// salt in the table. Small palettes almost always fit in uint8.
func saltType(t *colormph.Table) string {
	switch max := t.MaxSalt(); {
	case max < 1<<8:
		return "uint8"
	case max < 1<<16:
		return "uint16"
	default:
		return "uint32"
	}
}

// EmitGo writes the table as gofmt-formatted Go source.
func EmitGo(w io.Writer, cfg Config, t *colormph.Table) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	n := t.Len()
	salts := t.Salts()
	p := cfg.Prefix

	var err error
	pf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	pf("// Code generated by colormph-gen. DO NOT EDIT.\n")
	pf("// Palette digest: xxh64:%016x\n\n", Digest(t))
	pf("package %s\n\n", cfg.Package)

	pf("// %sSalts maps each hash bucket to its salt. Zero marks a bucket that\n", p)
	pf("// received no names.\n")
	pf("var %sSalts = [%d]%s{\n", p, n, saltType(t))
	for i := 0; i < len(salts); i += saltsPerLine {
		end := i + saltsPerLine
		if end > len(salts) {
			end = len(salts)
		}
		pf("\t")
		for j := i; j < end; j++ {
			if j > i {
				pf(" ")
			}
			pf("%d,", salts[j])
		}
		pf("\n")
	}
	pf("}\n\n")

	pf("// %sNames holds the palette names permuted into slot order.\n", p)
	pf("var %sNames = [%d]string{\n", p, n)
	for i := 0; i < n; i++ {
		pf("\t%s,\n", strconv.Quote(t.Name(i)))
	}
	pf("}\n\n")

	pf("// %sColors holds RGBA components in the same order as %sNames.\n", p, p)
	pf("var %sColors = [%d][4]uint8{\n", p, n)
	for i := 0; i < n; i++ {
		rgba := t.RGBA(i)
		pf("\t{%d, %d, %d, %d},\n", rgba[0], rgba[1], rgba[2], rgba[3])
	}
	pf("}\n\n")

	pf("// %sReduce hashes a 32-bit key into a value less than n, adding salt.\n", p)
	pf("// It must stay bit-identical to the hash used when the table was built.\n")
	pf("func %sReduce(key, salt uint32, n int) int {\n", p)
	pf("\ty := (key + salt) * 2654435769\n")
	pf("\ty ^= key\n")
	pf("\treturn int((uint64(y) * uint64(n)) >> 32)\n")
	pf("}\n\n")

	pf("// %sIndex returns the slot of the named color, or false if the name is\n", p)
	pf("// not in the palette.\n")
	pf("func %sIndex(name string) (int, bool) {\n", p)
	pf("\tvar key uint32\n")
	pf("\tfor i := 0; i < len(name); i++ {\n")
	pf("\t\tkey = key*9 + uint32(name[i])\n")
	pf("\t}\n")
	pf("\tn := len(%sNames)\n", p)
	pf("\tsalt := uint32(%sSalts[%sReduce(key, 0, n)])\n", p, p)
	pf("\ti := %sReduce(key, salt, n)\n", p)
	pf("\tif %sNames[i] != name {\n", p)
	pf("\t\treturn 0, false\n")
	pf("\t}\n")
	pf("\treturn i, true\n")
	pf("}\n")

	return err
}
