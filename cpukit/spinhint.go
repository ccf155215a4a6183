// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package cpukit

import "runtime"

// SpinHint relieves the processor between polls of a busy-wait loop. It takes the
// place of a dedicated spin-wait instruction; under a Go runtime it yields the
// current P, which also keeps single-P configurations live.
func SpinHint() {
	runtime.Gosched()
}
