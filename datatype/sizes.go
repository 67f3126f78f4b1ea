// SPDX-License-Identifier: MIT
// Package: datatype
//
// Purpose:
//   - Single source of truth for per-primitive byte widths and for the packed
//     sparse-entry layout shared with every storage or wire reader.
//
// Sparse entry layout (packed, no padding):
//
//	offset 0                     offset SparseEntryIndexSize
//	┌──────────────────────────┬──────────────────────────────┐
//	│ index  (Index, 4 bytes)  │ value  (SizeOfPrimitive(p))  │
//	└──────────────────────────┴──────────────────────────────┘
//
// The value offset is the same for every primitive because the index field
// precedes the value and its width never depends on the primitive.
//
// Unsized convention:
//   - 0 means "no fixed byte width" (PrimitiveUndefined, StructureUndefined).
//   - Object reports the width of one handle, not the size of the object.

package datatype

import "strconv"

// SparseEntryIndexSize is the byte width of the index field of a sparse entry.
const SparseEntryIndexSize = 4

// handleSize is the width of one opaque object handle on this platform.
const handleSize = strconv.IntSize / 8

// primitiveSizes is indexed by Primitive. FloatMax is float64 because that is
// the widest native float type; readers of foreign data must agree on this.
var primitiveSizes = [...]int{
	Bool:               1,
	Char:               1,
	Int8:               1,
	Uint8:              1,
	Int16:              2,
	Uint16:             2,
	Int32:              4,
	Uint32:             4,
	Int64:              8,
	Uint64:             8,
	Float32:            4,
	Float64:            8,
	FloatMax:           8,
	Object:             handleSize,
	Complex128:         16,
	PrimitiveUndefined: 0,
}

// SizeOfPrimitive returns the fixed byte width of p.
// Returns 0 for PrimitiveUndefined and out-of-range values.
// Complexity: O(1).
func SizeOfPrimitive(p Primitive) int {
	if int(p) >= len(primitiveSizes) {
		return 0
	}

	return primitiveSizes[p]
}

// ContentSizeOf returns the byte width of the element content of p.
//
// Unlike SizeOfPrimitive it refuses primitives whose content has no fixed
// width: Object (only the handle is sized) and PrimitiveUndefined.
// Errors: ErrUnsizedPrimitive.
func ContentSizeOf(p Primitive) (int, error) {
	if p == Object || !p.IsValid() {
		return 0, ErrUnsizedPrimitive
	}

	return primitiveSizes[p], nil
}

// OffsetSparseEntry returns the byte offset of the value field inside a
// sparse entry holding p. The result is constant across primitives.
func OffsetSparseEntry(_ Primitive) int {
	return SparseEntryIndexSize
}

// SizeOfSparseEntry returns the packed size of one sparse entry holding p:
// OffsetSparseEntry(p) + SizeOfPrimitive(p).
func SizeOfSparseEntry(p Primitive) int {
	return OffsetSparseEntry(p) + SizeOfPrimitive(p)
}

// SizeOfStructure returns the byte size of one stored element of structure s
// holding primitive p.
//
//   - Dense:  SizeOfPrimitive(p)
//   - Sparse: SizeOfSparseEntry(p)
//   - otherwise 0 (unsized).
func SizeOfStructure(s Structure, p Primitive) int {
	switch s {
	case Dense:
		return SizeOfPrimitive(p)
	case Sparse:
		return SizeOfSparseEntry(p)
	default:
		return 0
	}
}
