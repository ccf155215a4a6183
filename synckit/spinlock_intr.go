// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package synckit

import (
	"github.com/insolar/vanilla/cpukit"
	"github.com/insolar/vanilla/throw"
)

var _ Locker = &IntrSpinLock{}

// NewIntrSpinLock creates a lock bound to the given interrupt controller.
func NewIntrSpinLock(m cpukit.IntrMask) IntrSpinLock {
	if m == nil {
		panic(throw.IllegalValue())
	}
	return IntrSpinLock{mask: m}
}

// IntrSpinLock is mutual exclusion for a single core without atomic CAS. With
// interrupts masked there is no other runnable code, hence acquisition cannot be
// contended. Zero value uses the controller registered with cpukit.SetIntrMask.
//
// The critical section must never wait on an interrupt while the lock is held.
type IntrSpinLock struct {
	mask cpukit.IntrMask
}

// Lock masks interrupts. Never waits.
func (p *IntrSpinLock) Lock() {
	p.controller().Disable()
}

// TryLock masks interrupts and always succeeds, as masking removes the only
// source of contention.
func (p *IntrSpinLock) TryLock() bool {
	p.controller().Disable()
	return true
}

// Unlock unmasks interrupts.
// Precondition: the lock is held by the caller.
func (p *IntrSpinLock) Unlock() {
	p.controller().Enable()
}

func (p *IntrSpinLock) controller() cpukit.IntrMask {
	if p.mask != nil {
		return p.mask
	}
	return cpukit.ActiveIntrMask()
}
