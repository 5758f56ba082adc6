// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !diagdebug

package diag

func breakpoint() {}
