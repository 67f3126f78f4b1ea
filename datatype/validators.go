// SPDX-License-Identifier: MIT
// Package: datatype
//
// Purpose:
//   - Canonical combinatorial validity rules across the three type axes.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match them with errors.Is.
//
// Rules (checked in this order, first failure wins):
//  1. container, structure and primitive are each defined (not Undefined);
//  2. Sparse storage needs an indexed container (not Scalar);
//  3. Sparse storage holds fixed-width values, so Object is rejected.
//
// Length references are NOT validated here: arity is the caller's business
// and is only enforced lazily by NumElements.

package datatype

import "fmt"

// validatorErrorf wraps err with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateTags checks the three type axes of a would-be descriptor.
//
// Errors: ErrUndefinedContainer, ErrUndefinedStructure, ErrUndefinedPrimitive,
// ErrInvalidCombination.
// Complexity: O(1).
func ValidateTags(c Container, s Structure, p Primitive) error {
	if !c.IsValid() {
		return validatorErrorf("ValidateTags", ErrUndefinedContainer)
	}
	if !s.IsValid() {
		return validatorErrorf("ValidateTags", ErrUndefinedStructure)
	}
	if !p.IsValid() {
		return validatorErrorf("ValidateTags", ErrUndefinedPrimitive)
	}
	if s == Sparse && c == Scalar {
		return validatorErrorf("ValidateTags: sparse scalar", ErrInvalidCombination)
	}
	if s == Sparse && p == Object {
		return validatorErrorf("ValidateTags: sparse object", ErrInvalidCombination)
	}

	return nil
}

// Validate checks the tags of d with ValidateTags.
func (d Descriptor) Validate() error {
	if err := ValidateTags(d.container, d.structure, d.primitive); err != nil {
		return validatorErrorf("Validate", err)
	}

	return nil
}

// IsValid reports whether Validate succeeds.
func (d Descriptor) IsValid() bool { return d.Validate() == nil }
