// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package com

import (
	"unsafe"

	"github.com/dblohm7/xcom"
)

// IID_UnwrapInterface is the reserved interface ID meaning "give me
// your canonical underlying object pointer." It names no real
// interface; it is used exclusively by UnwrapInterface.
//
// {7E93844E-159A-4D07-9910-87E9D65ECE00}
var IID_UnwrapInterface = &IID{0x7E93844E, 0x159A, 0x4D07, [8]byte{0x99, 0x10, 0x87, 0xE9, 0xD6, 0x5E, 0xCE, 0x00}}

// UnwrapInterface recovers the canonical underlying object pointer from
// unk by querying it with IID_UnwrapInterface.
//
// A nil ppv yields xcom.E_POINTER with no further action. A nil unk
// writes nil into *ppv and returns xcom.S_FALSE: there was nothing to
// unwrap, which is distinct from a successful unwrap. Otherwise the
// negotiation result propagates unchanged; on success *ppv holds a
// reference the caller owns and must eventually release, and on failure
// *ppv is nil.
//
// *ppv is always left either nil or holding a valid owned reference,
// regardless of the failure path taken.
func UnwrapInterface(unk IUnknown, ppv *unsafe.Pointer) xcom.HRESULT {
	if ppv == nil {
		return xcom.E_POINTER
	}

	if unk == nil {
		*ppv = nil
		return xcom.S_FALSE
	}

	hr := unk.QueryInterface(IID_UnwrapInterface, ppv)
	if hr.Succeeded() {
		return hr
	}

	*ppv = nil
	return hr
}

// UnwrapAs recovers the canonical underlying object of unk as a *T.
// It returns (nil, xcom.S_FALSE) when unk is nil. On ordinary success
// the caller owns the obtained reference.
func UnwrapAs[T any](unk IUnknown) (*T, xcom.HRESULT) {
	var pv unsafe.Pointer
	hr := UnwrapInterface(unk, &pv)
	if pv == nil {
		return nil, hr
	}
	return (*T)(pv), hr
}
