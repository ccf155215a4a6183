// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package throw

import (
	"bytes"
	"io"
	"runtime/debug"
)

const StackTracePrefix = "Stack trace:"
const stackTracePrintPrefix = StackTracePrefix + "\n"

type StackTrace interface {
	StackTraceAsText() string
	WriteStackTraceTo(writer io.Writer) error
	IsFullStack() bool
}

// CaptureStack captures whole stack
// When (skipFrames) are more than stack depth then the whole stack is returned
func CaptureStack(skipFrames int) StackTrace {
	return stackTrace{captureStack(skipFrames+1, false), false}
}

// CaptureStackTop is an optimized version to capture a limited info about top-level stack entry only
func CaptureStackTop(skipFrames int) StackTrace {
	return stackTrace{captureStack(skipFrames+1, true), true}
}

type stackTrace struct {
	data  []byte
	limit bool
}

func (v stackTrace) IsFullStack() bool {
	return !v.limit
}

func (v stackTrace) StackTraceAsText() string {
	return string(v.data)
}

func (v stackTrace) WriteStackTraceTo(w io.Writer) error {
	_, err := w.Write(v.data)
	return err
}

func (v stackTrace) String() string {
	return stackTracePrintPrefix + string(v.data)
}

func joinStack(s0 string, s1 StackTrace) string {
	if s1 == nil {
		return s0
	}
	return s0 + "\t" + StackTracePrefix + s1.StackTraceAsText()
}

const topFrameLimit = 1 // MUST be 1, otherwise comparison of stack vs stack top may not work properly

func captureStack(skipFrames int, limitFrames bool) []byte {
	stackBytes := debug.Stack()
	if i := bytes.IndexByte(stackBytes, '\n'); i > 0 {
		// drops "goroutine N [running]:"
		stackBytes = stackBytes[i+1:]
	} else {
		// strange result, let be safe
		return stackBytes
	}

	const serviceFrames = 2 //  debug.Stack() + captureStack()
	if i := indexOfFrame(stackBytes, skipFrames+serviceFrames); i > 0 {
		stackBytes = stackBytes[i:]

		if limitFrames {
			if i := indexOfFrame(stackBytes, topFrameLimit); i > 0 {
				stackBytes = stackBytes[:i]
			}
		}
	}

	return append([]byte(nil), bytes.TrimSpace(stackBytes)...)
}

var frameFileSep = []byte("\n\t")

func indexOfFrame(stackBytes []byte, skipFrames int) int {
	offset := 0
	for ; skipFrames > 0; skipFrames-- {
		if i := bytes.Index(stackBytes[offset:], frameFileSep); i > 0 {
			offset += i + len(frameFileSep)
			if j := bytes.IndexByte(stackBytes[offset:], '\n'); j > 0 {
				offset += j + 1
				if offset < len(stackBytes) {
					continue
				}
			}
		}
		return -1
	}
	return offset
}
