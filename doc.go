// Package lvtype is the runtime type-descriptor layer of a numerical
// library: the minimal metadata its generic save/load, RTTI and parameter
// reflection need to size, compare and name stored values.
//
// What is inside?
//
//	A small, pure-Go toolkit:
//		• Descriptors: container × structure × primitive, plus borrowed lengths
//		• Sizes: fixed primitive widths and the packed sparse-entry layout
//		• Tags: bounded rendering and exact parsing ("matrix<sparse<float64>>")
//		• Catalog: named schemas in SQLite with strict or loose checking
//		• CLI: dtype names | size | render | catalog
//
// Under the hood, everything is organized under these packages:
//
//	datatype/          — Descriptor, enums, sizes, renderers, parsers, validators
//	catalog/           — SQLite-backed schema catalog (uuid IDs, blake3 fingerprints)
//	internal/logging/  — slog setup shared by catalog and CLI
//	cmd/dtype/         — cobra/viper command-line front end
//
// Quick example:
//
//	rows, cols := datatype.Index(3), datatype.Index(4)
//	d := datatype.NewWithLengths(datatype.Matrix, datatype.Dense, datatype.Float64, &rows, &cols)
//	n, _ := d.NumElements() // 12
//	fmt.Println(d, n*int64(d.Size())) // matrix<float64> 96
//
//	go get github.com/katalvlaran/lvtype/datatype
package lvtype
