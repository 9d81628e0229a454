// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log exports logging primitives that log to stderr and optionally
// to an external destination registered by the caller.
package log

// We call this log instead of logging for two reasons:
// 1) It's shorter to type;
// 2) it mimics Go's log package and can be used as a drop-in replacement for it.

import (
	"fmt"
	"io"
	"io/ioutil"
	goLog "log"
	"os"
	"sync"
)

// Logger is the interface for logging messages.
type Logger interface {
	// Printf writes a formated message to the log.
	Printf(format string, v ...interface{})

	// Print writes a message to the log.
	Print(v ...interface{})

	// Println writes a line to the log.
	Println(v ...interface{})

	// Fatal writes a message to the log and aborts.
	Fatal(v ...interface{})

	// Fatalf writes a formated message to the log and aborts.
	Fatalf(format string, v ...interface{})
}

// Level represents the level of logging.
type Level int

// Different levels of logging.
const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
	DisabledLevel
)

// ExternalLogger describes a service that processes logs.
type ExternalLogger interface {
	Log(Level, string)
	Flush()
}

// Pre-allocated Loggers at each logging level.
var (
	Debug = &logger{DebugLevel}
	Info  = &logger{InfoLevel}
	Error = &logger{ErrorLevel}
)

type globalState struct {
	currentLevel  Level
	defaultLogger Logger
	external      ExternalLogger
}

var (
	mu    sync.Mutex // protects state
	state = globalState{
		currentLevel:  InfoLevel,
		defaultLogger: newDefaultLogger(os.Stderr),
	}
)

// globals returns a snapshot of the package state under the lock.
func globals() globalState {
	mu.Lock()
	defer mu.Unlock()
	return state
}

func newDefaultLogger(w io.Writer) Logger {
	return goLog.New(w, "", goLog.Ldate|goLog.Ltime|goLog.LUTC|goLog.Lmicroseconds)
}

// Register connects an ExternalLogger to the default loggers. This may only
// be called once.
func Register(e ExternalLogger) {
	mu.Lock()
	defer mu.Unlock()
	if state.external != nil {
		panic("log.Register called more than once")
	}
	state.external = e
}

// SetOutput sets the default loggers to write to w.
// If w is nil, the default loggers are disabled.
func SetOutput(w io.Writer) {
	if w == nil {
		w = ioutil.Discard
	}
	mu.Lock()
	defer mu.Unlock()
	state.defaultLogger = newDefaultLogger(w)
}

type logger struct {
	level Level
}

var _ Logger = (*logger)(nil)

// Printf writes a formated message to the log.
func (l *logger) Printf(format string, v ...interface{}) {
	g := globals()
	if l.level < g.currentLevel {
		return // Don't log at lower levels.
	}
	if g.external != nil {
		g.external.Log(l.level, fmt.Sprintf(format, v...))
	}
	g.defaultLogger.Printf(format, v...)
}

// Print writes a message to the log.
func (l *logger) Print(v ...interface{}) {
	g := globals()
	if l.level < g.currentLevel {
		return // Don't log at lower levels.
	}
	if g.external != nil {
		g.external.Log(l.level, fmt.Sprint(v...))
	}
	g.defaultLogger.Print(v...)
}

// Println writes a line to the log.
func (l *logger) Println(v ...interface{}) {
	g := globals()
	if l.level < g.currentLevel {
		return // Don't log at lower levels.
	}
	if g.external != nil {
		g.external.Log(l.level, fmt.Sprintln(v...))
	}
	g.defaultLogger.Println(v...)
}

// Fatal writes a message to the log and aborts, regardless of the current log level.
func (l *logger) Fatal(v ...interface{}) {
	g := globals()
	if g.external != nil {
		g.external.Log(l.level, fmt.Sprint(v...))
		g.external.Flush()
	}
	g.defaultLogger.Fatal(v...)
}

// Fatalf writes a formated message to the log and aborts, regardless of the current log level.
func (l *logger) Fatalf(format string, v ...interface{}) {
	g := globals()
	if g.external != nil {
		g.external.Log(l.level, fmt.Sprintf(format, v...))
		g.external.Flush()
	}
	g.defaultLogger.Fatalf(format, v...)
}

// String returns the name of the logger.
func (l *logger) String() string {
	return l.level.String()
}

// String returns the name of the level.
func (lv Level) String() string {
	switch lv {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case ErrorLevel:
		return "error"
	case DisabledLevel:
		return "disabled"
	}
	return "unknown"
}

func toLevel(level string) (Level, error) {
	switch level {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "error":
		return ErrorLevel, nil
	case "disabled":
		return DisabledLevel, nil
	}
	return DisabledLevel, fmt.Errorf("invalid log level %q", level)
}

// GetLevel returns the current logging level.
func GetLevel() string {
	return globals().currentLevel.String()
}

// SetLevel sets the current level of logging.
func SetLevel(level string) error {
	l, err := toLevel(level)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	state.currentLevel = l
	return nil
}

// At returns whether the level will be logged currently.
func At(level string) bool {
	l, err := toLevel(level)
	if err != nil {
		return false
	}
	return globals().currentLevel <= l
}

// Printf writes a formated message to the log.
func Printf(format string, v ...interface{}) {
	Info.Printf(format, v...)
}

// Print writes a message to the log.
func Print(v ...interface{}) {
	Info.Print(v...)
}

// Println writes a line to the log.
func Println(v ...interface{}) {
	Info.Println(v...)
}

// Fatal writes a message to the log and aborts.
func Fatal(v ...interface{}) {
	Info.Fatal(v...)
}

// Fatalf writes a formated message to the log and aborts.
func Fatalf(format string, v ...interface{}) {
	Info.Fatalf(format, v...)
}

// Flush flushes the external logger, if any.
func Flush() {
	g := globals()
	if g.external != nil {
		g.external.Flush()
	}
}
