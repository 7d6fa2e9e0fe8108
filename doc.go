// Package colormph builds minimal perfect hash tables over fixed palettes
// of named colors and resolves names to dense indices in constant time.
//
// A table is constructed once, offline, from the full key set and is
// immutable afterwards. Lookup costs two hash evaluations, two array
// indexes, and one string comparison, with no probing and no allocation.
//
// # Basic Usage
//
// Building a table:
//
//	table, err := colormph.Build(entries)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	idx, ok := table.Lookup("mediumorchid")
//	if ok {
//	    rgba := table.RGBA(idx)
//	    ...
//	}
//
// Tables can be serialized (MarshalBinary/UnmarshalBinary, WriteFile/Open)
// or emitted as static Go source via the codegen package; the palette
// package ships a pre-generated table for the X11 color names.
//
// # Package Structure
//
//   - Public API: table.go (Table, Lookup), build.go (Build)
//   - Configuration: build_options.go (BuildOption, With* functions)
//   - Serialization: marshal.go (binary format), file.go (WriteFile, Open)
//   - Hash primitives: internal/weakhash (shared by build and lookup)
//   - Code emission: codegen/ (static Go source output)
//   - Platform: prefault_*.go (OS-specific mmap hints)
package colormph
