// SPDX-License-Identifier: MIT
package datatype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtype/datatype"
)

// TestPrimitiveRoundTrip checks ParsePrimitive(p.String()) == p for all defined p.
func TestPrimitiveRoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range datatype.Primitives() {
		got, ok := datatype.ParsePrimitive(p.String())
		require.True(t, ok, p.String())
		require.Equal(t, p, got)

		buf := make([]byte, 16)
		n, _ := datatype.RenderPrimitive(buf, p)
		var out datatype.Primitive
		require.True(t, datatype.StringToPrimitive(&out, string(buf[:n])))
		require.Equal(t, p, out)
	}
}

// TestStringToPrimitiveFailure checks the output is left untouched on failure.
func TestStringToPrimitiveFailure(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"not_a_type", "", "Float64", "FLOAT64", "undefined", " float64", "sparse"} {
		out := datatype.Char
		require.False(t, datatype.StringToPrimitive(&out, name), name)
		require.Equal(t, datatype.Char, out, name)

		_, ok := datatype.ParsePrimitive(name)
		require.False(t, ok, name)
	}

	require.True(t, datatype.StringToPrimitive(nil, "int16"))
}

// TestParseContainer covers known, unknown and case-mismatched names.
func TestParseContainer(t *testing.T) {
	t.Parallel()

	for _, c := range datatype.Containers() {
		got, ok := datatype.ParseContainer(c.String())
		require.True(t, ok)
		require.Equal(t, c, got)
	}

	_, ok := datatype.ParseContainer("Matrix")
	require.False(t, ok)
	_, ok = datatype.ParseContainer("undefined")
	require.False(t, ok)
}

// TestParseRoundTrip checks Parse is the inverse of String for every legal triple.
func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range datatype.Containers() {
		for _, s := range []datatype.Structure{datatype.Dense, datatype.Sparse} {
			for _, p := range datatype.Primitives() {
				want := datatype.New(c, s, p)
				got, err := datatype.Parse(want.String())
				require.NoError(t, err, want.String())
				require.True(t, want.Equal(got), want.String())
			}
		}
	}
}

// TestParseStructure covers the element-only grammar.
func TestParseStructure(t *testing.T) {
	t.Parallel()

	s, p, err := datatype.ParseStructure("sparse<float32>")
	require.NoError(t, err)
	require.Equal(t, datatype.Sparse, s)
	require.Equal(t, datatype.Float32, p)

	s, p, err = datatype.ParseStructure("bool")
	require.NoError(t, err)
	require.Equal(t, datatype.Dense, s)
	require.Equal(t, datatype.Bool, p)

	_, _, err = datatype.ParseStructure("sparse<nope>")
	require.ErrorIs(t, err, datatype.ErrUnknownName)

	_, _, err = datatype.ParseStructure("sparse<")
	require.ErrorIs(t, err, datatype.ErrMalformedTag)
}

// TestParseErrors covers syntax and name failures.
func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want error
	}{
		{"", datatype.ErrMalformedTag},
		{"matrix", datatype.ErrMalformedTag},
		{"matrix<float64", datatype.ErrMalformedTag},
		{"matrix<float64>>", datatype.ErrMalformedTag},
		{"matrix< float64>", datatype.ErrMalformedTag},
		{"Matrix<float64>", datatype.ErrMalformedTag},
		{"undefined", datatype.ErrMalformedTag},
		{"tensor<float64>", datatype.ErrUnknownName},
		{"matrix<float128>", datatype.ErrUnknownName},
		{"vector<sparse<undefined>>", datatype.ErrUnknownName},
		{"vector<undefined>", datatype.ErrUnknownName},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.tag, func(t *testing.T) {
			_, err := datatype.Parse(tc.tag)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
