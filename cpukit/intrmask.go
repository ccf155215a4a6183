// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package cpukit

import (
	"github.com/insolar/vanilla/atomickit"
	"github.com/insolar/vanilla/throw"
)

// IntrMask is the global interrupt enable/disable capability of a single-core
// target. Implementations are supplied by the platform layer.
type IntrMask interface {
	Disable()
	Enable()
}

var intrMaskInit atomickit.ReadyFlag
var intrMask IntrMask

// SetIntrMask registers the process-wide interrupt controller. Must be called at
// most once, during platform bring-up, before any interrupt-masking lock is used.
// There is no deregistration.
func SetIntrMask(m IntrMask) {
	if m == nil {
		panic(throw.IllegalValue())
	}
	if !intrMaskInit.Step(atomickit.NotReady) {
		panic(throw.IllegalState())
	}
	intrMask = m
	if !intrMaskInit.Step(atomickit.InTransit) {
		panic(throw.Impossible())
	}
}

// ActiveIntrMask returns the registered interrupt controller and panics when
// there is none.
func ActiveIntrMask() IntrMask {
	if !intrMaskInit.IsReady() {
		panic(throw.IllegalState())
	}
	return intrMask
}
