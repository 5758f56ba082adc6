// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package diag

import (
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type widgetImpl struct {
	enabled bool
}

// stubExit is the sentinel our fake exit sink panics with so that tests
// can observe the no-return property in-process.
type stubExit struct{}

func TestTodoTraceLines(t *testing.T) {
	var lines []string
	SetTraceSink(func(line string) { lines = append(lines, line) })
	defer SetTraceSink(nil)

	Todo("Foo", nil)
	require.Equal(t, []string{"TODO: Foo"}, lines)

	lines = nil
	Todo("Foo", &widgetImpl{})
	require.Equal(t, []string{"TODO: Foo(from widgetImpl)"}, lines)

	// A value receiver resolves the same as a pointer receiver.
	lines = nil
	Todo("Bar", widgetImpl{enabled: true})
	require.Equal(t, []string{"TODO: Bar(from widgetImpl)"}, lines)
}

func TestTodoWithoutTypeInformation(t *testing.T) {
	var lines []string
	SetTraceSink(func(line string) { lines = append(lines, line) })
	defer SetTraceSink(nil)

	// Builds without runtime type information resolve no name at all;
	// the parenthetical must disappear entirely.
	SetTypeNamer(func(any) string { return "" })
	defer SetTypeNamer(nil)

	Todo("Foo", &widgetImpl{})
	require.Equal(t, []string{"TODO: Foo"}, lines)
}

func TestTodoReturnsToCaller(t *testing.T) {
	SetTraceSink(func(string) {})
	defer SetTraceSink(nil)

	returned := false
	func() {
		Todo("Foo", nil)
		returned = true
	}()
	require.True(t, returned)
}

func TestTraceLoggerBridge(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := traceLogger
	SetTraceLogger(zap.New(core))
	defer SetTraceLogger(prev)

	Todo("Frobnicate", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "TODO: Frobnicate", entries[0].Message)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
}

func TestStubPresentsDiagnostic(t *testing.T) {
	var gotName, gotType string
	SetModalSink(func(name, typeName string) { gotName, gotType = name, typeName })
	defer SetModalSink(nil)

	prevExit := exitSink
	exitSink = func() { panic(stubExit{}) }
	defer func() { exitSink = prevExit }()

	func() {
		defer func() {
			if _, ok := recover().(stubExit); !ok {
				t.Fatal("Stub did not reach the exit sink")
			}
		}()
		Stub("MustNotBeCalled", &widgetImpl{})
		t.Fatal("Stub returned")
	}()
	require.Equal(t, "MustNotBeCalled", gotName)
	require.Equal(t, "widgetImpl", gotType)
}

func TestStubPlaceholderTypeName(t *testing.T) {
	var gotType string
	SetModalSink(func(name, typeName string) { gotType = typeName })
	defer SetModalSink(nil)

	prevExit := exitSink
	exitSink = func() { panic(stubExit{}) }
	defer func() { exitSink = prevExit }()

	func() {
		defer func() { recover() }()
		Stub("MustNotBeCalled", nil)
	}()
	require.Equal(t, "STUB", gotType)

	SetTypeNamer(func(any) string { return "" })
	defer SetTypeNamer(nil)

	func() {
		defer func() { recover() }()
		Stub("MustNotBeCalled", &widgetImpl{})
	}()
	require.Equal(t, "STUB", gotType)
}

// The exit path needs its own process; everything after Stub must be
// unreachable there.
func TestStubTerminatesProcess(t *testing.T) {
	if os.Getenv("XCOM_DIAG_STUB_CRASHER") == "1" {
		SetModalSink(func(name, typeName string) {})
		Stub("CrashMe", nil)
		fmt.Println("stub returned")
		os.Exit(2)
	}

	exe, err := os.Executable()
	require.NoError(t, err)

	cmd := exec.Command(exe, "-test.run=TestStubTerminatesProcess$", "-test.v")
	cmd.Env = append(os.Environ(), "XCOM_DIAG_STUB_CRASHER=1")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "stub subprocess: %s", out)
	require.NotContains(t, string(out), "stub returned")
}
