// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package com

import (
	"unsafe"

	"github.com/dblohm7/xcom"
)

// IID is a GUID that represents an interface ID.
type IID xcom.GUID

func (iid IID) String() string {
	return xcom.GUID(iid).String()
}

// IUnknown is the negotiation surface exposed by every opaque interface
// reference. This package consumes it but does not implement it; the
// reference-counting protocol behind AddRef and Release is the
// implementer's contract.
//
// Whether an implementation tolerates concurrent invocation is also the
// implementer's contract; this package adds no locking of its own.
type IUnknown interface {
	// QueryInterface asks the object for the capability named by iid.
	// On success it writes a new owned reference into *ppv and returns
	// a success code; the caller must eventually release that
	// reference. On failure it leaves *ppv nil and returns a failure
	// code, typically xcom.E_NOINTERFACE.
	QueryInterface(iid *IID, ppv *unsafe.Pointer) xcom.HRESULT

	// AddRef increments the object's reference count and returns the
	// new count.
	AddRef() uint32

	// Release decrements the object's reference count, destroying the
	// object when it reaches zero, and returns the new count.
	Release() uint32
}
