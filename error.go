// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package xcom

import (
	"fmt"
)

// HRESULT is the status value returned by every runtime-detectable
// operation in the interface layer. Failures are returned to the
// immediate caller as HRESULTs; they never propagate as panics across
// an interface boundary.
type HRESULT int32

type hrCode uint16
type hrFacility uint16

const (
	hrFailBit       = HRESULT(-((0x80000000 ^ 0xFFFFFFFF) + 1))
	hrCustomerBit   = HRESULT(0x20000000)
	hrFacilityNTBit = HRESULT(0x10000000)
	hrFacilityMask  = 0x7FF
	hrCodeMask      = 0xFFFF
)

const (
	// S_OK is ordinary success.
	S_OK = HRESULT(0)
	// S_FALSE is the distinguished "vacuous success" status: the
	// operation had nothing to do and did it.
	S_FALSE = HRESULT(1)
	// E_NOTIMPL indicates a method with no implementation behind it.
	E_NOTIMPL = HRESULT(-((0x80004001 ^ 0xFFFFFFFF) + 1))
	// E_NOINTERFACE is the negotiation failure code: the target object
	// does not support the requested interface identity.
	E_NOINTERFACE = HRESULT(-((0x80004002 ^ 0xFFFFFFFF) + 1))
	// E_POINTER indicates a required output location was unusable.
	E_POINTER = HRESULT(-((0x80004003 ^ 0xFFFFFFFF) + 1))
	// E_FAIL is an unspecified failure.
	E_FAIL = HRESULT(-((0x80004005 ^ 0xFFFFFFFF) + 1))
	// E_UNEXPECTED is a catastrophic, should-not-happen failure.
	E_UNEXPECTED = HRESULT(-((0x8000FFFF ^ 0xFFFFFFFF) + 1))
	// E_INVALIDARG indicates an argument was malformed.
	E_INVALIDARG = HRESULT(-((0x80070057 ^ 0xFFFFFFFF) + 1))
)

// Succeeded returns true when hr is a success status, including
// distinguished successes such as S_FALSE.
func (hr HRESULT) Succeeded() bool {
	return hr >= 0
}

// Failed returns true when hr is a failure status.
func (hr HRESULT) Failed() bool {
	return hr < 0
}

func (hr HRESULT) isCustomer() bool {
	return (hr & hrCustomerBit) != 0
}

func (hr HRESULT) isNT() bool {
	return !hr.isCustomer() && (hr&hrFacilityNTBit) != 0
}

// facility is only meaningful when hr is neither an NT status nor a
// customer-defined value.
func (hr HRESULT) facility() hrFacility {
	return hrFacility((uint32(hr) >> 16) & hrFacilityMask)
}

// code is only meaningful when hr is neither an NT status nor a
// customer-defined value.
func (hr HRESULT) code() hrCode {
	return hrCode(uint32(hr) & hrCodeMask)
}

func (hr HRESULT) String() string {
	return fmt.Sprintf("0x%08X", uint32(hr))
}

// Error represents a runtime failure status from the interface layer.
// Every Error is available as an HRESULT.
type Error HRESULT

// ErrorFromHRESULT converts hr to an Error.
func ErrorFromHRESULT(hr HRESULT) Error {
	return Error(hr)
}

// NewError creates an Error from code when code is a type convertible
// to an Error. Its second return value indicates whether the
// conversion was successful.
func NewError(code any) (Error, bool) {
	switch v := code.(type) {
	case Error:
		return v, true
	case HRESULT:
		return ErrorFromHRESULT(v), true
	default:
		return ErrorFromHRESULT(E_UNEXPECTED), false
	}
}

// Succeeded returns true when e represents a success status.
func (e Error) Succeeded() bool {
	return HRESULT(e).Succeeded()
}

// Failed returns true when e represents a failure status.
func (e Error) Failed() bool {
	return HRESULT(e).Failed()
}

// AsHRESULT returns e's underlying status value.
func (e Error) AsHRESULT() HRESULT {
	return HRESULT(e)
}

func (e Error) Error() string {
	return fmt.Sprintf("HRESULT %v", HRESULT(e))
}
