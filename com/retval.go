// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package com

import (
	"reflect"
	"unsafe"
)

// RegisterWidth is the size in bytes of one native return register.
const RegisterWidth = unsafe.Sizeof(uintptr(0))

// ReturnsInRegister reports whether values of type T must be adapted
// before crossing a vtable boundary as a function return: T is a struct
// no larger than one register. Foreign callers expect such values
// packed into an integer register rather than returned through a hidden
// output pointer.
//
// When ReturnsInRegister is false the adapted representation of T is T
// itself; scalars (uintptr included) and oversized structs cross the
// boundary unchanged.
func ReturnsInRegister[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.Kind() == reflect.Struct && t.Size() <= RegisterWidth
}

// PackRegisterReturn reinterprets value's storage as a register value.
// The register starts zeroed and only value's bytes are written, so any
// unused high bytes are zero. This is a bit-for-bit reinterpretation,
// not a numeric conversion.
//
// PackRegisterReturn panics if value does not fit in a register; use
// ReturnsInRegister to decide whether adaptation applies at all.
func PackRegisterReturn[T any](value T) uintptr {
	if unsafe.Sizeof(value) > RegisterWidth {
		panic("com: register return value exceeds register width")
	}

	var reg uintptr
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&reg)), RegisterWidth)
	src := unsafe.Slice((*byte)(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	copy(dst, src)
	return reg
}

// UnpackRegisterReturn is the inverse of PackRegisterReturn: it
// reconstitutes a T from the low bytes of reg. It panics if T does not
// fit in a register.
func UnpackRegisterReturn[T any](reg uintptr) T {
	var value T
	if unsafe.Sizeof(value) > RegisterWidth {
		panic("com: register return value exceeds register width")
	}

	dst := unsafe.Slice((*byte)(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	src := unsafe.Slice((*byte)(unsafe.Pointer(&reg)), RegisterWidth)
	copy(dst, src)
	return value
}
