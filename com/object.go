// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package com

// Object is the interface that every type declared in the interface
// identity table must implement. Implementing Object is the
// declaration: a type with no GetIID has no identity, and asking for
// one is a compile-time error, never a runtime one.
type Object interface {
	// GetIID returns the interface ID for the object. This method may be
	// called on Objects containing the zero value, so its return value must
	// not depend on the value of the method's receiver.
	GetIID() *IID
}

// IIDOf returns the interface ID declared for T. The result is stable:
// repeated calls return the same identity.
//
// A version-parameterized interface family F[V xcom.ABIMarker] declares
// a single GetIID on the generic type, so every instantiation of F
// shares one identity and IIDOf[F[V]] collapses to
// IIDOf[F[xcom.ABIZero]] for all V. Identity is per family; version
// negotiation happens elsewhere.
//
// Declaring two different types with the same identifier value is a
// correctness hazard this lookup cannot detect. The iidlint tool
// (cmd/iidlint) checks a source tree for such collisions at build time.
func IIDOf[T Object]() *IID {
	var t T
	return t.GetIID()
}
