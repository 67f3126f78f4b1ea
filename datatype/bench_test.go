package datatype_test

import (
	"testing"

	"github.com/katalvlaran/lvtype/datatype"
)

// BenchmarkRender measures bounded rendering into a reused buffer.
func BenchmarkRender(b *testing.B) {
	d := datatype.New(datatype.LibMatrix, datatype.Sparse, datatype.Complex128)
	buf := make([]byte, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Render(buf)
	}
}

// BenchmarkParse measures the participle-backed tag parser.
func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := datatype.Parse("matrix<sparse<float64>>"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNumElements measures the element count on a matrix descriptor.
func BenchmarkNumElements(b *testing.B) {
	rows, cols := datatype.Index(1024), datatype.Index(768)
	d := datatype.NewWithLengths(datatype.Matrix, datatype.Dense, datatype.Float32, &rows, &cols)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.NumElements(); err != nil {
			b.Fatal(err)
		}
	}
}
