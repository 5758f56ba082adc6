// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package diag

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	moduser32       = windows.NewLazySystemDLL("user32.dll")
	procMessageBoxW = moduser32.NewProc("MessageBoxW")
)

const mbIconError = 0x00000010

func presentModal(name, typeName string) {
	text, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return
	}
	caption, err := windows.UTF16PtrFromString(typeName)
	if err != nil {
		return
	}
	procMessageBoxW.Call(0,
		uintptr(unsafe.Pointer(text)),
		uintptr(unsafe.Pointer(caption)),
		uintptr(mbIconError))
}

func exitProcess() {
	windows.ExitProcess(0)
}
