// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package xcom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ABIVersion is a four-component version value used to parameterize
// interface families. It is an immutable value: copy it freely, never
// hold it by reference.
type ABIVersion struct {
	Major    uint32
	Minor    uint32
	Build    uint32
	Revision uint32
}

func cmpOrdered[T constraints.Ordered](lhs, rhs T) int {
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Compare orders version values lexicographically over
// (Major, Minor, Build, Revision). It returns -1 when v is older than
// other, 0 when equal, and 1 when newer.
func (v ABIVersion) Compare(other ABIVersion) int {
	if c := cmpOrdered(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmpOrdered(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := cmpOrdered(v.Build, other.Build); c != 0 {
		return c
	}
	return cmpOrdered(v.Revision, other.Revision)
}

// IsZero returns true when v is the default, all-zero version.
func (v ABIVersion) IsZero() bool {
	return v == ABIVersion{}
}

func (v ABIVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// ABIMarker is implemented by marker types that select one ABI version
// of a version-parameterized interface family. Markers carry no state;
// the version is a property of the type.
type ABIMarker interface {
	ABIVersion() ABIVersion
}

// ABIZero is the default version marker. Interface families resolve
// their identity at this version.
type ABIZero struct{}

// ABIVersion implements ABIMarker.
func (ABIZero) ABIVersion() ABIVersion {
	return ABIVersion{}
}
