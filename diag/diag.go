// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package diag provides dispatch helpers for interface methods that are
// intentionally unimplemented or intentionally incomplete. Stub bodies
// call Stub or Todo instead of performing real work.
package diag

import (
	"os"
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The diagnostic sinks are process-wide collaborators. They are
// expected to remain available for the life of the process; there is no
// teardown.
var (
	modalSink = presentModal
	traceSink = defaultTrace
	typeNamer = runtimeTypeName
	exitSink  = exitProcess

	traceLogger = newTraceLogger()
)

func newTraceLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.DebugLevel))
}

func defaultTrace(line string) {
	traceLogger.Debug(line)
}

// runtimeTypeName resolves the dynamic type of object, best effort. It
// returns "" when no useful name is available.
func runtimeTypeName(object any) string {
	if object == nil {
		return ""
	}

	t := reflect.TypeOf(object)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// SetModalSink replaces the synchronous, user-visible diagnostic sink
// used by Stub. Passing nil restores the platform default.
func SetModalSink(f func(name, typeName string)) {
	if f == nil {
		f = presentModal
	}
	modalSink = f
}

// SetTraceSink replaces the sink that receives Todo trace lines, one
// line per call. Passing nil restores the default, which logs each line
// through the trace logger at debug level.
func SetTraceSink(f func(line string)) {
	if f == nil {
		f = defaultTrace
	}
	traceSink = f
}

// SetTraceLogger routes the default trace sink through l.
func SetTraceLogger(l *zap.Logger) {
	traceLogger = l
}

// SetTypeNamer replaces the hook that resolves a human-readable name
// for the object invoking a stub. A namer that always returns "" is a
// supported configuration for builds without useful type information.
// Passing nil restores the default reflection-based namer.
func SetTypeNamer(f func(object any) string) {
	if f == nil {
		f = runtimeTypeName
	}
	typeNamer = f
}

// Stub reports a method that must never be called: it presents a modal
// diagnostic pairing name with the invoking object's type, then
// terminates the process. It never returns. In builds with the
// diagdebug tag it traps to an attached debugger first.
//
// object should be the receiver of the calling method, or nil when the
// stub has no receiver.
func Stub(name string, object any) {
	typeName := "STUB"
	if object != nil {
		if n := typeNamer(object); n != "" {
			typeName = n
		}
	}

	modalSink(name, typeName)
	breakpoint()
	exitSink()
	panic("diag: exit sink returned")
}

// Todo reports a method whose implementation is incomplete. It emits
// one trace line of the form "TODO: name(from type)", omitting the
// parenthetical when no type name resolves, then returns to the caller.
// Todo only logs; the caller is expected to go on to a degraded or
// partial implementation, e.g. returning xcom.E_NOTIMPL.
func Todo(name string, object any) {
	line := "TODO: " + name
	if object != nil {
		if typeName := typeNamer(object); typeName != "" {
			line += "(from " + typeName + ")"
		}
	}

	traceSink(line)
}
