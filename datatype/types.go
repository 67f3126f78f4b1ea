// SPDX-License-Identifier: MIT

// Package datatype: the three independent type axes of a descriptor.
// This file contains ONLY the enumerations, their canonical names and the
// enum-keyed lookup tables. Ordinals are stable because encoded headers may
// carry them; do not reorder enumerators.
package datatype

// Index is the integer type of a dimension-length variable. It is also the
// type of the index field that prefixes every sparse entry.
type Index = int32

// Container describes the dimensional arrangement of stored elements.
type Container uint8

// Container enumerators.
const (
	Scalar             Container = iota // single element
	Vector                              // 1-D, one length
	Matrix                              // 2-D, lengthY × lengthX
	NDArray                             // n-D, counted as lengthY × lengthX
	LibVector                           // library vector wrapper, one length
	LibMatrix                           // library matrix wrapper, two lengths
	ContainerUndefined                  // sentinel: not yet known / invalid
)

// Structure describes the storage discipline of the elements.
type Structure uint8

// Structure enumerators.
const (
	Dense              Structure = iota // plain contiguous elements ("none")
	Sparse                              // packed (index, value) entries
	StructureUndefined                  // sentinel
)

// Primitive is the scalar element type stored per cell.
type Primitive uint8

// Primitive enumerators.
const (
	Bool Primitive = iota
	Char
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	FloatMax   // widest native float
	Object     // opaque managed-object handle
	Complex128 // two float64 parts
	PrimitiveUndefined
)

// undefinedName is rendered for every Undefined sentinel. It is never
// accepted by the parsers.
const undefinedName = "undefined"

// sparseName is the structure marker wrapped around sparse element tags.
const sparseName = "sparse"

// containerNames is indexed by Container; ContainerUndefined is excluded.
var containerNames = [...]string{
	Scalar:    "scalar",
	Vector:    "vector",
	Matrix:    "matrix",
	NDArray:   "ndarray",
	LibVector: "libvector",
	LibMatrix: "libmatrix",
}

// primitiveNames is indexed by Primitive; the mapping is exhaustive for every
// enumerator except PrimitiveUndefined.
var primitiveNames = [...]string{
	Bool:       "bool",
	Char:       "char",
	Int8:       "int8",
	Uint8:      "uint8",
	Int16:      "int16",
	Uint16:     "uint16",
	Int32:      "int32",
	Uint32:     "uint32",
	Int64:      "int64",
	Uint64:     "uint64",
	Float32:    "float32",
	Float64:    "float64",
	FloatMax:   "floatmax",
	Object:     "object",
	Complex128: "complex128",
}

// IsValid reports whether c is a defined, non-sentinel container.
func (c Container) IsValid() bool { return c < ContainerUndefined }

// String returns the canonical container name, or "undefined".
func (c Container) String() string {
	if !c.IsValid() {
		return undefinedName
	}

	return containerNames[c]
}

// Arity returns how many length references the container consumes when
// counting elements: 0 for Scalar, 1 for vector-like, 2 for matrix-like,
// and -1 for Undefined.
func (c Container) Arity() int {
	switch c {
	case Scalar:
		return 0
	case Vector, LibVector:
		return 1
	case Matrix, LibMatrix, NDArray:
		return 2
	default:
		return -1
	}
}

// IsValid reports whether s is a defined, non-sentinel structure.
func (s Structure) IsValid() bool { return s < StructureUndefined }

// String returns "dense", "sparse" or "undefined". This is the name of the
// axis alone; use StructureString for the combined element tag.
func (s Structure) String() string {
	switch s {
	case Dense:
		return "dense"
	case Sparse:
		return sparseName
	default:
		return undefinedName
	}
}

// IsValid reports whether p is a defined, non-sentinel primitive.
func (p Primitive) IsValid() bool { return p < PrimitiveUndefined }

// String returns the canonical lowercase primitive name, or "undefined".
// The result is never empty.
func (p Primitive) String() string {
	if !p.IsValid() {
		return undefinedName
	}

	return primitiveNames[p]
}

// Primitives returns every defined primitive in ordinal order.
func Primitives() []Primitive {
	out := make([]Primitive, 0, int(PrimitiveUndefined))
	for p := Bool; p < PrimitiveUndefined; p++ {
		out = append(out, p)
	}

	return out
}

// Containers returns every defined container in ordinal order.
func Containers() []Container {
	out := make([]Container, 0, int(ContainerUndefined))
	for c := Scalar; c < ContainerUndefined; c++ {
		out = append(out, c)
	}

	return out
}
