// SPDX-License-Identifier: MIT

package catalog

import "errors"

// Sentinel errors returned by the catalog. Every message is prefixed with
// "catalog: ..."; callers match them with errors.Is.
var (
	// ErrNotFound indicates that no descriptor is stored under the name.
	ErrNotFound = errors.New("catalog: descriptor not found")

	// ErrIncompatible indicates that a descriptor does not match the stored
	// schema under the active comparison rule.
	ErrIncompatible = errors.New("catalog: descriptor incompatible with stored schema")

	// ErrClosed indicates use of a catalog after Close.
	ErrClosed = errors.New("catalog: closed")

	// ErrEmptyName indicates that an entry name is empty.
	ErrEmptyName = errors.New("catalog: entry name is empty")
)
