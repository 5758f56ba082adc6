// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package diag

import (
	"fmt"
	"os"
)

// There is no modal facility off Windows; the diagnostic goes to stderr
// synchronously instead.
func presentModal(name, typeName string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", typeName, name)
}

func exitProcess() {
	os.Exit(0)
}
