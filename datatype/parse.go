// SPDX-License-Identifier: MIT

package datatype

// Reverse lookup tables, derived once from the forward name tables so the
// two directions can never drift apart.
var (
	primitiveByName = func() map[string]Primitive {
		m := make(map[string]Primitive, len(primitiveNames))
		for i, name := range primitiveNames {
			m[name] = Primitive(i)
		}
		return m
	}()

	containerByName = func() map[string]Container {
		m := make(map[string]Container, len(containerNames))
		for i, name := range containerNames {
			m[name] = Container(i)
		}
		return m
	}()
)

// ParsePrimitive returns the primitive whose canonical name is exactly name.
// Matching is case-sensitive, like rendering. "undefined" is not accepted.
// It is the left inverse of Primitive.String for every defined primitive.
func ParsePrimitive(name string) (Primitive, bool) {
	p, ok := primitiveByName[name]
	if !ok {
		return PrimitiveUndefined, false
	}

	return p, true
}

// StringToPrimitive stores the primitive named name into *out and reports
// success. On failure *out is left untouched and must not be trusted.
// A nil out only reports whether name is known.
func StringToPrimitive(out *Primitive, name string) bool {
	p, ok := ParsePrimitive(name)
	if !ok {
		return false
	}
	if out != nil {
		*out = p
	}

	return true
}

// ParseContainer returns the container whose canonical name is exactly name.
func ParseContainer(name string) (Container, bool) {
	c, ok := containerByName[name]
	if !ok {
		return ContainerUndefined, false
	}

	return c, true
}
