// Colormph-gen builds a minimal perfect hash table from a palette CSV and
// emits it either as a self-contained Go source file or as a binary table.
//
// Usage:
//
//	go run ./cmd/colormph-gen -in palette/x11.csv -pkg palette -prefix x11 -o palette/x11_gen.go
//
// Flags:
//
//	-in        Input palette CSV with a name,r,g,b,a header (required)
//	-o         Output Go source path ("-" for stdout)
//	-pkg       Package clause of the emitted Go file (default: palette)
//	-prefix    Identifier prefix of the emitted Go file (default: palette)
//	-bin       Output binary table path (alternative to -o)
//	-bloom     Prefilter false-positive rate, 0 to disable (default: 0)
//	-max-salt  Exclusive upper bound of the salt search (default: 32768)
//	-verify    Re-resolve every key concurrently after building (default: true)
//	-v         Log verbosity, 0-2 (default: 0)
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/colormph"
	"github.com/tamirms/colormph/codegen"
)

func main() {
	inFlag := flag.String("in", "", "input palette CSV (name,r,g,b,a with header)")
	outFlag := flag.String("o", "", "output Go source path (\"-\" for stdout)")
	pkgFlag := flag.String("pkg", "palette", "package clause of the emitted Go file")
	prefixFlag := flag.String("prefix", "palette", "identifier prefix of the emitted Go file")
	binFlag := flag.String("bin", "", "output binary table path")
	bloomFlag := flag.Float64("bloom", 0, "prefilter false-positive rate (0 disables)")
	maxSaltFlag := flag.Uint("max-salt", 32768, "exclusive upper bound of the salt search")
	verifyFlag := flag.Bool("verify", true, "re-resolve every key after building")
	vFlag := flag.Int("v", 0, "log verbosity (0-2)")
	flag.Parse()

	stdr.SetVerbosity(*vFlag)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("colormph-gen")

	if *inFlag == "" {
		fmt.Fprintln(os.Stderr, "colormph-gen: -in is required")
		flag.Usage()
		os.Exit(2)
	}
	if *outFlag == "" && *binFlag == "" {
		fmt.Fprintln(os.Stderr, "colormph-gen: one of -o or -bin is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger, *inFlag, *outFlag, *pkgFlag, *prefixFlag, *binFlag,
		*bloomFlag, uint32(*maxSaltFlag), *verifyFlag); err != nil {
		logger.Error(err, "generation failed")
		os.Exit(1)
	}
}

func run(logger logr.Logger, in, out, pkg, prefix, bin string, bloomFP float64, maxSalt uint32, verify bool) error {
	entries, err := readPalette(in)
	if err != nil {
		return err
	}
	logger.V(1).Info("read palette", "path", in, "entries", len(entries))

	opts := []colormph.BuildOption{
		colormph.WithSaltLimit(maxSalt),
		colormph.WithLogger(logger),
	}
	if bloomFP > 0 {
		opts = append(opts, colormph.WithPrefilter(bloomFP))
	}

	table, err := colormph.Build(entries, opts...)
	if err != nil {
		return fmt.Errorf("build table: %w", err)
	}
	logger.Info("built table",
		"entries", table.Len(), "maxSalt", table.MaxSalt(),
		"digest", fmt.Sprintf("xxh64:%016x", codegen.Digest(table)))

	if verify {
		if err := verifyTable(table, entries); err != nil {
			return err
		}
		logger.V(1).Info("verified table", "workers", runtime.GOMAXPROCS(0))
	}

	if out != "" {
		if err := emitGo(table, out, pkg, prefix); err != nil {
			return err
		}
		logger.Info("emitted Go source", "path", out)
	}
	if bin != "" {
		if err := colormph.WriteFile(table, bin); err != nil {
			return fmt.Errorf("write binary table: %w", err)
		}
		logger.Info("wrote binary table", "path", bin)
	}
	return nil
}

// readPalette parses a name,r,g,b,a CSV with a header row.
func readPalette(path string) ([]colormph.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open palette: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 5

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read palette header: %w", err)
	}
	if header[0] != "name" {
		return nil, fmt.Errorf("palette %s: first column must be \"name\", got %q", path, header[0])
	}

	var entries []colormph.Entry
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read palette: %w", err)
		}
		var rgba [4]uint8
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseUint(record[i+1], 10, 8)
			if err != nil {
				return nil, fmt.Errorf("palette %s line %d: component %q: %w", path, line, record[i+1], err)
			}
			rgba[i] = uint8(v)
		}
		entries = append(entries, colormph.Entry{Name: record[0], RGBA: rgba})
	}
	return entries, nil
}

// verifyTable re-resolves every key across GOMAXPROCS workers and checks
// the result set is a bijection onto [0, n).
func verifyTable(table *colormph.Table, entries []colormph.Entry) error {
	workers := runtime.GOMAXPROCS(0)
	slots := make([]int, len(entries))

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (len(entries) + workers - 1) / workers
	for start := 0; start < len(entries); start += chunk {
		end := start + chunk
		if end > len(entries) {
			end = len(entries)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				idx, ok := table.Lookup(entries[i].Name)
				if !ok {
					return fmt.Errorf("verify: %q not found in built table", entries[i].Name)
				}
				if table.RGBA(idx) != entries[i].RGBA {
					return fmt.Errorf("verify: %q mapped to wrong payload", entries[i].Name)
				}
				slots[i] = idx
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	seen := make([]bool, len(entries))
	for i, slot := range slots {
		if seen[slot] {
			return fmt.Errorf("verify: slot %d assigned twice (key %q)", slot, entries[i].Name)
		}
		seen[slot] = true
	}
	return nil
}

func emitGo(table *colormph.Table, out, pkg, prefix string) error {
	cfg := codegen.Config{Package: pkg, Prefix: prefix}
	if out == "-" {
		return codegen.EmitGo(os.Stdout, cfg, table)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := codegen.EmitGo(f, cfg, table); err != nil {
		f.Close()
		return fmt.Errorf("emit Go source: %w", err)
	}
	return f.Close()
}
