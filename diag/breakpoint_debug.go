// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build diagdebug

package diag

import (
	"runtime"
)

// breakpoint traps to an attached debugger before the fatal stub
// terminates the process.
func breakpoint() {
	runtime.Breakpoint()
}
