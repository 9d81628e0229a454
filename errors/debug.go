// Copyright 2020 The Babble Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build debug

package errors

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
)

// stack holds the program counters recorded when an Error was built.
// It is embedded in Error only under the debug build tag.
type stack struct {
	callers []uintptr
}

// populateStack records the call stack of the E invocation creating e.
// When e wraps another *Error the two stacks share every frame below
// the point where the inner error was made; the inner error's unique
// frames are grafted onto e and its own copy cleared, so a chain of
// errors prints one combined trace.
func (e *Error) populateStack() {
	e.callers = callers()

	inner, ok := e.Err.(*Error)
	if !ok {
		return
	}

	// Count the frames the two stacks share, starting from the
	// bottom; main is the last entry of both.
	shared := 0
	for shared < len(e.callers) && shared < len(inner.callers) {
		if e.callers[len(e.callers)-1-shared] != inner.callers[len(inner.callers)-1-shared] {
			break
		}
		shared++
	}
	if shared == 0 {
		// Unrelated stacks; leave both alone.
		return
	}

	unique := inner.callers[:len(inner.callers)-shared]
	merged := make([]uintptr, 0, len(unique)+len(e.callers))
	merged = append(merged, unique...)
	merged = append(merged, e.callers...)
	e.callers = merged
	inner.callers = nil
}

// frame returns the nth frame, with the frame at the top of the stack
// being 0.
func frame(callers []uintptr, n int) *runtime.Frame {
	frames := runtime.CallersFrames(callers)
	var f runtime.Frame
	for i := len(callers) - 1; i >= n; i-- {
		var ok bool
		if f, ok = frames.Next(); !ok {
			break // Cannot happen with an intact stack.
		}
	}
	return &f
}

// printStack writes e's recorded stack to b, one frame per line,
// oldest first. Frames the recorded stack shares with the stack of
// this call itself are left out, as are consecutive repeats of one
// function, and each name keeps only the suffix it does not share
// with the name above it.
func (e *Error) printStack(b *bytes.Buffer) {
	here := callers()

	var prev string // name of the last function printed
	diverged := false
	for i := 0; i < len(e.callers); i++ {
		f := frame(e.callers, i)
		name := f.Func.Name()

		if !diverged && i < len(here) {
			if name == frame(here, i).Func.Name() {
				continue
			}
			diverged = true
		}

		// Coalesced stacks can hold one function several times over.
		if name == prev {
			continue
		}

		trim := trimCommon(prev, name)
		pad(b, Separator)
		fmt.Fprintf(b, "%v:%d: ", f.File, f.Line)
		if trim > 0 {
			b.WriteString("...")
		}
		b.WriteString(name[trim:])
		prev = name
	}
}

// trimCommon returns the length of the leading portion of name,
// cut at dots and slashes, that prev also starts with.
func trimCommon(prev, name string) int {
	trim := 0
	for {
		j := strings.IndexAny(name[trim:], "./")
		if j < 0 {
			break
		}
		if !strings.HasPrefix(prev, name[:trim+j]) {
			break
		}
		trim += j + 1 // absorb the separator too
	}
	return trim
}

// callers records the current stack, skipping the frames of the
// errors package itself.
func callers() []uintptr {
	var pcs [64]uintptr
	const skip = 4 // Callers, callers, populateStack or printStack, E or Error.
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}
