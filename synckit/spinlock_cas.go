// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package synckit

import (
	"github.com/insolar/vanilla/atomickit"
	"github.com/insolar/vanilla/cpukit"
)

var _ Locker = &CASSpinLock{}

// CASSpinLock is busy-wait mutual exclusion for targets with a single-word atomic
// compare-and-swap. Zero value is an unlocked lock.
type CASSpinLock struct {
	locked atomickit.Uint32
}

// Lock spins until the lock is acquired. Never fails, but may spin indefinitely
// under permanent contention.
func (p *CASSpinLock) Lock() {
	for !p.locked.CompareAndSwap(0, 1) {
		cpukit.SpinHint()
	}
}

// TryLock makes a single acquisition attempt. Success means the previous state
// was unlocked.
func (p *CASSpinLock) TryLock() bool {
	return p.locked.Swap(1) == 0
}

// Unlock releases the lock.
// Precondition: the lock is held by the caller.
func (p *CASSpinLock) Unlock() {
	p.locked.Store(0)
}
