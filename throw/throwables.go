// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package throw

// E creates an error with the given message text.
// This error captures the topmost entry of caller's stack.
func E(msg string) error {
	return newMsg(msg, 0)
}

// FailHere creates an error that captures the topmost stack entry after skipping (skipFrames).
func FailHere(msg string, skipFrames int) error {
	return newMsg(msg, skipFrames)
}

// IllegalValue is to indicate that an argument provided to a calling function is incorrect
// This error captures the topmost entry of caller's stack.
func IllegalValue() error {
	return newMsg("illegal value", 0)
}

// IllegalState is to indicate that an internal state of a function/object is incorrect or unexpected
// This error captures the topmost entry of caller's stack.
func IllegalState() error {
	return newMsg("illegal state", 0)
}

// Impossible is to indicate a point that can only be reached when a documented protocol was breached.
// This error captures the topmost entry of caller's stack.
func Impossible() error {
	return newMsg("impossible", 0)
}

func newMsg(msg string, skipFrames int) msgWrap {
	return msgWrap{st: CaptureStackTop(skipFrames + 2), msg: msg}
}

type msgWrap struct {
	st  StackTrace
	msg string
}

func (v msgWrap) StackTrace() StackTrace {
	return v.st
}

func (v msgWrap) LogString() string {
	return v.msg
}

func (v msgWrap) Error() string {
	return joinStack(v.msg, v.st)
}
