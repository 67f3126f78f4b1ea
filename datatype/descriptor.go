// SPDX-License-Identifier: MIT

package datatype

import (
	"fmt"
	"math"
)

// Descriptor tags a stored value with its container shape, structure and
// primitive element type, plus up to two borrowed dimension-length references.
//
// Ownership:
//   - lengthY/lengthX point at caller-owned variables. The descriptor never
//     writes through them and never copies their values into itself, so every
//     descriptor sharing a variable observes its live value.
//   - The caller keeps the variables alive and serializes their mutation
//     against concurrent readers of the descriptor.
//
// A Descriptor is immutable after construction. Compare descriptors with
// Equal or Matches, never with ==, which would compare pointer identity.
type Descriptor struct {
	container Container
	structure Structure
	primitive Primitive

	lengthY *Index // rows (matrix-like only)
	lengthX *Index // columns, or the single stored length
}

// New builds a descriptor without length references.
func New(c Container, s Structure, p Primitive) Descriptor {
	return Descriptor{container: c, structure: s, primitive: p}
}

// NewWithLength builds a descriptor with one borrowed length reference, the
// single stored length of vector-like containers. The reference is stored in
// the X slot, so the result is Equal to NewWithLengths(c, s, p, nil, length)
// and not to NewWithLengths(c, s, p, length, nil).
func NewWithLength(c Container, s Structure, p Primitive, length *Index) Descriptor {
	return Descriptor{container: c, structure: s, primitive: p, lengthX: length}
}

// NewWithLengths builds a descriptor with two borrowed length references.
// Arity is not checked against c: callers may wire lengths that are filled
// in later.
func NewWithLengths(c Container, s Structure, p Primitive, lengthY, lengthX *Index) Descriptor {
	return Descriptor{container: c, structure: s, primitive: p, lengthY: lengthY, lengthX: lengthX}
}

// Container returns the container tag.
func (d Descriptor) Container() Container { return d.container }

// Structure returns the structure tag.
func (d Descriptor) Structure() Structure { return d.structure }

// Primitive returns the primitive tag.
func (d Descriptor) Primitive() Primitive { return d.primitive }

// LengthY returns the borrowed row-length reference (may be nil).
func (d Descriptor) LengthY() *Index { return d.lengthY }

// LengthX returns the borrowed column / single length reference (may be nil).
func (d Descriptor) LengthX() *Index { return d.lengthX }

// Arity returns the number of present length references (0, 1 or 2).
func (d Descriptor) Arity() int {
	n := 0
	if d.lengthY != nil {
		n++
	}
	if d.lengthX != nil {
		n++
	}

	return n
}

// sameTags reports whether the three type axes match.
func (d Descriptor) sameTags(o Descriptor) bool {
	return d.container == o.container && d.structure == o.structure && d.primitive == o.primitive
}

// Equal reports whether d and o describe the same value layout.
//
// Rule: all three tags match AND each length reference is either absent on
// both sides, or present on both sides with equal dereferenced values.
// Pointer identity is irrelevant. Lengths compare slot by slot: a length in
// the Y slot never equals one in the X slot, even when NumElements agrees.
func (d Descriptor) Equal(o Descriptor) bool {
	return d.sameTags(o) && strictLengthEq(d.lengthY, o.lengthY) && strictLengthEq(d.lengthX, o.lengthX)
}

// NotEqual is the negation of Equal.
func (d Descriptor) NotEqual(o Descriptor) bool { return !d.Equal(o) }

// Matches is the wildcard variant of Equal: an absent length reference on
// either side is unconstrained, so only lengths present on both sides are
// compared. Matches is reflexive and symmetric but, unlike Equal, not
// transitive.
func (d Descriptor) Matches(o Descriptor) bool {
	return d.sameTags(o) && looseLengthEq(d.lengthY, o.lengthY) && looseLengthEq(d.lengthX, o.lengthX)
}

func strictLengthEq(a, b *Index) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func looseLengthEq(a, b *Index) bool {
	if a == nil || b == nil {
		return true
	}

	return *a == *b
}

// Size returns the byte size of one stored element:
// SizeOfStructure(d.Structure(), d.Primitive()).
func (d Descriptor) Size() int {
	return SizeOfStructure(d.structure, d.primitive)
}

// NumElements returns the number of elements described by d, dereferencing
// only the lengths its container needs:
//
//   - Scalar                     → 1
//   - Vector, LibVector          → the single stored length (lengthX, or
//     lengthY when it is the only one set)
//   - Matrix, LibMatrix, NDArray → lengthY × lengthX
//
// Errors: ErrUndefinedContainer, ErrMissingDimension, ErrNegativeLength.
// A missing dimension is never read as 0 or 1.
func (d Descriptor) NumElements() (int64, error) {
	switch d.container {
	case Scalar:
		return 1, nil

	case Vector, LibVector:
		ref := d.lengthX
		if ref == nil {
			ref = d.lengthY
		}
		n, err := deref(ref, "x")
		if err != nil {
			return 0, fmt.Errorf("NumElements(%s): %w", d.container, err)
		}

		return n, nil

	case Matrix, LibMatrix, NDArray:
		rows, err := deref(d.lengthY, "y")
		if err != nil {
			return 0, fmt.Errorf("NumElements(%s): %w", d.container, err)
		}
		cols, err := deref(d.lengthX, "x")
		if err != nil {
			return 0, fmt.Errorf("NumElements(%s): %w", d.container, err)
		}

		return rows * cols, nil

	default:
		return 0, fmt.Errorf("NumElements: %w", ErrUndefinedContainer)
	}
}

// deref reads a borrowed length. axis is used only in error messages.
func deref(ref *Index, axis string) (int64, error) {
	if ref == nil {
		return 0, fmt.Errorf("length %s: %w", axis, ErrMissingDimension)
	}
	if *ref < 0 {
		return 0, fmt.Errorf("length %s=%d: %w", axis, *ref, ErrNegativeLength)
	}

	return int64(*ref), nil
}

// ByteSize returns NumElements() × Size(), the number of bytes a storage
// collaborator reads or writes for the tagged value.
// Errors: ErrUndefinedStructure, ErrUnsizedPrimitive for an undefined
// primitive or a zero element size, those of NumElements, and ErrSizeOverflow
// when the product does not fit in int64.
func (d Descriptor) ByteSize() (int64, error) {
	if !d.structure.IsValid() {
		return 0, fmt.Errorf("ByteSize(%s): %w", d, ErrUndefinedStructure)
	}
	size := d.Size()
	if !d.primitive.IsValid() || size == 0 {
		return 0, fmt.Errorf("ByteSize(%s): %w", d, ErrUnsizedPrimitive)
	}
	n, err := d.NumElements()
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64/int64(size) {
		return 0, fmt.Errorf("ByteSize(%s): %d elements × %d bytes: %w", d, n, size, ErrSizeOverflow)
	}

	return n * int64(size), nil
}
