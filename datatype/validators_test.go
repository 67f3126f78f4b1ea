// SPDX-License-Identifier: MIT
package datatype_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtype/datatype"
)

// TestValidate covers the combinatorial rules and their priority.
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		d       datatype.Descriptor
		wantErr error
	}{
		{"dense matrix", datatype.New(datatype.Matrix, datatype.Dense, datatype.Float64), nil},
		{"sparse vector", datatype.New(datatype.Vector, datatype.Sparse, datatype.Int32), nil},
		{"object scalar", datatype.New(datatype.Scalar, datatype.Dense, datatype.Object), nil},
		{"object vector", datatype.New(datatype.LibVector, datatype.Dense, datatype.Object), nil},
		{"undefined container", datatype.New(datatype.ContainerUndefined, datatype.Dense, datatype.Bool), datatype.ErrUndefinedContainer},
		{"undefined structure", datatype.New(datatype.Vector, datatype.StructureUndefined, datatype.Bool), datatype.ErrUndefinedStructure},
		{"undefined primitive", datatype.New(datatype.Vector, datatype.Dense, datatype.PrimitiveUndefined), datatype.ErrUndefinedPrimitive},
		{"out of range primitive", datatype.New(datatype.Vector, datatype.Dense, datatype.Primitive(42)), datatype.ErrUndefinedPrimitive},
		{"sparse scalar", datatype.New(datatype.Scalar, datatype.Sparse, datatype.Int32), datatype.ErrInvalidCombination},
		{"sparse object", datatype.New(datatype.Matrix, datatype.Sparse, datatype.Object), datatype.ErrInvalidCombination},
		{"container before primitive", datatype.New(datatype.ContainerUndefined, datatype.Dense, datatype.PrimitiveUndefined), datatype.ErrUndefinedContainer},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.d.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.True(t, tc.d.IsValid())
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
			require.False(t, tc.d.IsValid())
		})
	}
}

// TestContainerArity pins the number of lengths each container consumes.
func TestContainerArity(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, datatype.Scalar.Arity())
	require.Equal(t, 1, datatype.Vector.Arity())
	require.Equal(t, 1, datatype.LibVector.Arity())
	require.Equal(t, 2, datatype.Matrix.Arity())
	require.Equal(t, 2, datatype.LibMatrix.Arity())
	require.Equal(t, 2, datatype.NDArray.Arity())
	require.Equal(t, -1, datatype.ContainerUndefined.Arity())
}
