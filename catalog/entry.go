// SPDX-License-Identifier: MIT

package catalog

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/zeebo/blake3"

	"github.com/katalvlaran/lvtype/datatype"
)

// Entry is one stored schema record.
//
// LengthY and LengthX are owned by the entry: they hold the values the
// caller's dimension variables had at Put time (nil when absent), and the
// descriptor returned by Descriptor borrows them.
type Entry struct {
	ID          string
	Name        string
	Tag         string
	LengthY     *datatype.Index
	LengthX     *datatype.Index
	Fingerprint string
	CreatedAt   time.Time
}

// Descriptor rebuilds the stored descriptor. Its length references point at
// e.LengthY / e.LengthX.
func (e Entry) Descriptor() (datatype.Descriptor, error) {
	d, err := datatype.Parse(e.Tag)
	if err != nil {
		return datatype.Descriptor{}, fmt.Errorf("entry %q: %w", e.Name, err)
	}

	return datatype.NewWithLengths(d.Container(), d.Structure(), d.Primitive(), e.LengthY, e.LengthX), nil
}

// snapshot copies the current value of a borrowed length.
func snapshot(ref *datatype.Index) *datatype.Index {
	if ref == nil {
		return nil
	}
	v := *ref
	return &v
}

// Fingerprint returns the hex blake3 digest of a tag and its snapshotted
// lengths. Absent lengths hash as "-", so "no length" and "length 0" differ.
func Fingerprint(tag string, lengthY, lengthX *datatype.Index) string {
	sum := blake3.Sum256([]byte(tag + "|" + lengthText(lengthY) + "|" + lengthText(lengthX)))
	return hex.EncodeToString(sum[:])
}

func lengthText(ref *datatype.Index) string {
	if ref == nil {
		return "-"
	}
	return strconv.FormatInt(int64(*ref), 10)
}
