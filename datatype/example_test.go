// Package datatype_test provides runnable examples for type descriptors.
// Each example is runnable via “go test -run Example”.
package datatype_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtype/datatype"
)

// ExampleDescriptor_NumElements describes a 3×4 dense float64 matrix whose
// dimensions live in caller-owned variables.
func ExampleDescriptor_NumElements() {
	rows, cols := datatype.Index(3), datatype.Index(4)
	d := datatype.NewWithLengths(datatype.Matrix, datatype.Dense, datatype.Float64, &rows, &cols)

	n, _ := d.NumElements()
	fmt.Println(d, n, d.Size())

	// Growing the caller's variable is observed immediately.
	rows = 5
	n, _ = d.NumElements()
	fmt.Println(n)
	// Output:
	// matrix<float64> 12 8
	// 20
}

// ExampleSizeOfSparseEntry shows the packed (index, value) layout.
func ExampleSizeOfSparseEntry() {
	for _, p := range []datatype.Primitive{datatype.Int8, datatype.Int32, datatype.Float64} {
		fmt.Printf("%s: offset=%d size=%d\n", p, datatype.OffsetSparseEntry(p), datatype.SizeOfSparseEntry(p))
	}
	// Output:
	// int8: offset=4 size=5
	// int32: offset=4 size=8
	// float64: offset=4 size=12
}

// ExampleParse round-trips a sparse vector tag.
func ExampleParse() {
	d, err := datatype.Parse("vector<sparse<int32>>")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d.Container(), d.Structure(), d.Primitive())

	_, err = datatype.Parse("vector<int128>")
	fmt.Println(errors.Is(err, datatype.ErrUnknownName))
	// Output:
	// vector sparse int32
	// true
}

// ExampleDescriptor_Render writes into a buffer that is too small.
func ExampleDescriptor_Render() {
	d := datatype.New(datatype.LibMatrix, datatype.Dense, datatype.Complex128)
	buf := make([]byte, 10)
	n, truncated := d.Render(buf)
	fmt.Printf("%q %v\n", buf[:n], truncated)
	// Output:
	// "libmatrix<" true
}
