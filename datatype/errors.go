// SPDX-License-Identifier: MIT
// Package datatype: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation that
// can fail returns one of these (possibly wrapped with a call-site tag), and
// tests MUST match them via errors.Is. No operation panics on user input.

package datatype

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "datatype: ..." for easy grepping. Sentinels
// are returned either directly or wrapped once with fmt.Errorf("tag: %w", ErrX);
// callers always use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// undefined tag -> invalid combination -> missing dimension -> negative length
// -> unsized primitive -> size overflow.

var (
	// ErrUnknownName is returned when a textual name does not map to any
	// defined container, structure or primitive. Recovered locally by callers.
	ErrUnknownName = errors.New("datatype: unknown type name")

	// ErrMalformedTag indicates that a full descriptor tag does not follow
	// the "<container><<element>>" grammar.
	ErrMalformedTag = errors.New("datatype: malformed type tag")

	// ErrUnsizedPrimitive signals that a fixed content size was requested for
	// a primitive that has none (Object handles or Undefined).
	ErrUnsizedPrimitive = errors.New("datatype: primitive has no fixed content size")

	// ErrMissingDimension signals that an element count was requested while a
	// length reference required by the container is absent.
	ErrMissingDimension = errors.New("datatype: required dimension length is missing")

	// ErrNegativeLength signals that a referenced dimension variable holds a
	// negative value at the time of the query.
	ErrNegativeLength = errors.New("datatype: dimension length is negative")

	// ErrUndefinedContainer is returned when the container tag is Undefined
	// or out of range.
	ErrUndefinedContainer = errors.New("datatype: undefined container type")

	// ErrUndefinedStructure is returned when the structure tag is Undefined
	// or out of range.
	ErrUndefinedStructure = errors.New("datatype: undefined structure type")

	// ErrUndefinedPrimitive is returned when the primitive tag is Undefined
	// or out of range.
	ErrUndefinedPrimitive = errors.New("datatype: undefined primitive type")

	// ErrInvalidCombination signals that individually valid tags do not form
	// a legal descriptor (e.g. a sparse scalar).
	ErrInvalidCombination = errors.New("datatype: invalid type combination")

	// ErrSizeOverflow signals that a byte size does not fit in int64.
	ErrSizeOverflow = errors.New("datatype: byte size overflows int64")
)
