// SPDX-License-Identifier: MIT

package datatype

// Tag grammar (rendered by this file, parsed by parse.go and grammar.go):
//
//	tag       = container "<" element ">" | "undefined"
//	element   = primitive | "sparse" "<" primitive ">" | "undefined"
//	primitive = "bool" | "char" | ... | "complex128" | "undefined"
//
// All names are lowercase ASCII and matched case-sensitively.

// boundedWriter copies into a fixed buffer and remembers whether anything
// was dropped. It never grows or reslices past len(buf).
type boundedWriter struct {
	buf       []byte
	n         int
	truncated bool
}

func (w *boundedWriter) writeString(s string) {
	room := len(w.buf) - w.n
	if len(s) > room {
		s = s[:room]
		w.truncated = true
	}
	w.n += copy(w.buf[w.n:], s)
}

func (w *boundedWriter) result() (int, bool) { return w.n, w.truncated }

// appendStructure is the shared composition of the structure+primitive tag.
func appendStructure(w *boundedWriter, s Structure, p Primitive) {
	switch s {
	case Dense:
		w.writeString(p.String())
	case Sparse:
		w.writeString(sparseName)
		w.writeString("<")
		w.writeString(p.String())
		w.writeString(">")
	default:
		w.writeString(undefinedName)
	}
}

func appendDescriptor(w *boundedWriter, d Descriptor) {
	if !d.container.IsValid() {
		w.writeString(undefinedName)
		return
	}
	w.writeString(d.container.String())
	w.writeString("<")
	appendStructure(w, d.structure, d.primitive)
	w.writeString(">")
}

// RenderPrimitive writes the canonical name of p into dst.
//
// Capacity is len(dst); at most len(dst) bytes are written. n is the number
// of bytes written, truncated reports that the name did not fit. A nil or
// empty dst is allowed.
func RenderPrimitive(dst []byte, p Primitive) (n int, truncated bool) {
	w := boundedWriter{buf: dst}
	w.writeString(p.String())

	return w.result()
}

// RenderStructure writes the combined structure+primitive tag into dst:
// the bare primitive name for Dense, "sparse<name>" for Sparse and
// "undefined" otherwise. Same capacity contract as RenderPrimitive.
func RenderStructure(dst []byte, s Structure, p Primitive) (n int, truncated bool) {
	w := boundedWriter{buf: dst}
	appendStructure(&w, s, p)

	return w.result()
}

// Render writes the canonical tag of d into dst, e.g. "matrix<float64>" or
// "vector<sparse<int32>>". Length references are not part of the tag.
// Same capacity contract as RenderPrimitive.
func (d Descriptor) Render(dst []byte) (n int, truncated bool) {
	w := boundedWriter{buf: dst}
	appendDescriptor(&w, d)

	return w.result()
}

// maxTagLen bounds every tag this package renders:
// "libmatrix<sparse<complex128>>" is the longest.
const maxTagLen = 32

// StructureString returns the unbounded structure+primitive tag.
func StructureString(s Structure, p Primitive) string {
	var buf [maxTagLen]byte
	n, _ := RenderStructure(buf[:], s, p)

	return string(buf[:n])
}

// String returns the canonical tag of d.
func (d Descriptor) String() string {
	var buf [maxTagLen]byte
	n, _ := d.Render(buf[:])

	return string(buf[:n])
}
