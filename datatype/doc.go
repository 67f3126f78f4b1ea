// SPDX-License-Identifier: MIT

// Package datatype provides runtime type descriptors for values flowing
// through generic storage and serialization layers.
//
// Overview:
//
//   - A Descriptor answers three questions about a stored value: its
//     Container shape (scalar, vector, matrix, n-d array, library vector or
//     matrix), its Structure (dense or sparse) and its Primitive element type
//     (bool, fixed-width integers, floats, complex128 or an opaque object).
//   - Up to two borrowed dimension-length references let the descriptor count
//     elements. They are never owned, copied or written; every descriptor
//     sharing a length variable observes its live value.
//
// Sizes:
//
//   - SizeOfPrimitive gives fixed byte widths; 0 means unsized.
//   - Sparse elements use a packed entry: a 4-byte Index followed by the
//     value at OffsetSparseEntry, so SizeOfSparseEntry(p) ==
//     OffsetSparseEntry(p) + SizeOfPrimitive(p) for every p.
//   - Descriptor.Size is the per-element size, NumElements the element count
//     and ByteSize their product.
//
// Tags:
//
//	matrix<float64>          dense float64 matrix
//	vector<sparse<int32>>    sparse int32 vector
//	undefined                container not yet known
//
// Render, RenderStructure and RenderPrimitive write into caller buffers and
// report truncation instead of overflowing. Parse, ParseStructure and
// ParsePrimitive are their exact, case-sensitive inverses. Parsing is purely
// syntactic: use Validate to reject combinations such as a sparse scalar.
//
// Equality:
//
//   - Equal: tags match and each length is absent on both sides or present on
//     both sides with equal values.
//   - Matches: tags match and absent lengths act as wildcards.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrUnknownName, ErrMalformedTag       parsing
//   - ErrMissingDimension, ErrNegativeLength element counting
//   - ErrUnsizedPrimitive                   content size of Object/Undefined
//   - ErrUndefined*, ErrInvalidCombination  validation
//   - ErrSizeOverflow                       ByteSize beyond int64
//
// Concurrency:
//
//	All operations are pure and lock-free. A Descriptor may be read from many
//	goroutines as long as the referenced length variables are not mutated
//	concurrently without external synchronization.
package datatype
