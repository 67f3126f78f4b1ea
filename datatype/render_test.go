// SPDX-License-Identifier: MIT
package datatype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtype/datatype"
)

// TestPrimitiveNames checks the name table is exhaustive, non-empty and unique.
func TestPrimitiveNames(t *testing.T) {
	t.Parallel()

	seen := make(map[string]datatype.Primitive)
	for _, p := range datatype.Primitives() {
		name := p.String()
		require.NotEmpty(t, name)
		require.NotEqual(t, "undefined", name)
		prev, dup := seen[name]
		require.Falsef(t, dup, "%v and %v share name %q", prev, p, name)
		seen[name] = p
	}

	require.Equal(t, "undefined", datatype.PrimitiveUndefined.String())
	require.Equal(t, "undefined", datatype.Primitive(99).String())
	require.NotEqual(t, datatype.Float32.String(), datatype.Float64.String())
}

// TestStructureString covers dense, sparse and undefined element tags.
func TestStructureString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "float64", datatype.StructureString(datatype.Dense, datatype.Float64))
	require.Equal(t, "sparse<int32>", datatype.StructureString(datatype.Sparse, datatype.Int32))
	require.Equal(t, "undefined", datatype.StructureString(datatype.StructureUndefined, datatype.Int32))
	require.Equal(t, "sparse<undefined>", datatype.StructureString(datatype.Sparse, datatype.PrimitiveUndefined))
}

// TestDescriptorString checks tags are distinct for distinct tag triples.
func TestDescriptorString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "matrix<float64>", datatype.New(datatype.Matrix, datatype.Dense, datatype.Float64).String())
	require.Equal(t, "vector<sparse<int32>>", datatype.New(datatype.Vector, datatype.Sparse, datatype.Int32).String())
	require.Equal(t, "undefined", datatype.New(datatype.ContainerUndefined, datatype.Sparse, datatype.Int32).String())
	require.Equal(t, "libmatrix<sparse<complex128>>",
		datatype.New(datatype.LibMatrix, datatype.Sparse, datatype.Complex128).String())

	seen := make(map[string]bool)
	for _, c := range datatype.Containers() {
		for _, s := range []datatype.Structure{datatype.Dense, datatype.Sparse} {
			for _, p := range datatype.Primitives() {
				tag := datatype.New(c, s, p).String()
				require.Falsef(t, seen[tag], "duplicate tag %q", tag)
				seen[tag] = true
			}
		}
	}
}

// TestRenderBounds checks truncation is safe and observable.
func TestRenderBounds(t *testing.T) {
	t.Parallel()

	d := datatype.New(datatype.Vector, datatype.Sparse, datatype.Int32)
	full := d.String()

	for capacity := 0; capacity <= len(full)+2; capacity++ {
		// Guard bytes after the window must survive untouched.
		buf := make([]byte, capacity+4)
		for i := range buf {
			buf[i] = '#'
		}
		n, truncated := d.Render(buf[:capacity])

		require.LessOrEqual(t, n, capacity)
		require.Equal(t, capacity < len(full), truncated, "capacity=%d", capacity)
		require.Equal(t, full[:n], string(buf[:n]))
		require.Equal(t, "####", string(buf[capacity:]))
	}

	n, truncated := d.Render(nil)
	require.Zero(t, n)
	require.True(t, truncated)
}

// TestRenderPrimitiveAndStructure covers the two static sub-renderers.
func TestRenderPrimitiveAndStructure(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 4)
	n, truncated := datatype.RenderPrimitive(buf, datatype.Float64)
	require.True(t, truncated)
	require.Equal(t, "floa", string(buf[:n]))

	buf = make([]byte, 64)
	n, truncated = datatype.RenderPrimitive(buf, datatype.Complex128)
	require.False(t, truncated)
	require.Equal(t, "complex128", string(buf[:n]))

	n, truncated = datatype.RenderStructure(buf, datatype.Sparse, datatype.Uint8)
	require.False(t, truncated)
	require.Equal(t, "sparse<uint8>", string(buf[:n]))

	n, truncated = datatype.RenderStructure(buf[:7], datatype.Sparse, datatype.Uint8)
	require.True(t, truncated)
	require.Equal(t, "sparse<", string(buf[:n]))

	n, truncated = datatype.RenderPrimitive(buf, datatype.PrimitiveUndefined)
	require.False(t, truncated)
	require.Equal(t, "undefined", string(buf[:n]))
}
