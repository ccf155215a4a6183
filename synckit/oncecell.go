// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package synckit

import (
	"github.com/insolar/vanilla/atomickit"
	"github.com/insolar/vanilla/cpukit"
	"github.com/insolar/vanilla/throw"
)

// OnceCell is a slot of T that is initialized at most once and is immutable
// afterwards. Zero value is a valid empty cell.
//
// The slot is written only by the unique caller that claimed the transit window
// of the owned ReadyFlag, and is read without further synchronization only after
// the flag reports ready. Callers must not write through pointers returned by
// this type.
type OnceCell[T any] struct {
	init  atomickit.ReadyFlag
	value T
}

// Get returns the published value, or nil while the cell is not initialized.
// A nil result is not an error.
func (p *OnceCell[T]) Get() *T {
	if p.init.IsReady() {
		return &p.value
	}
	return nil
}

// Set publishes (value) when the cell is empty and no other caller claimed it
// first, and returns the published slot. Otherwise (value) is discarded, the
// slot stays untouched, and nil is returned.
func (p *OnceCell[T]) Set(value T) *T {
	if p.init.IsReady() {
		return nil
	}
	if !p.init.Step(atomickit.NotReady) {
		return nil
	}

	p.value = value

	if !p.init.Step(atomickit.InTransit) {
		// only the claimant of the transit window can be here, so the flag was
		// mutated outside of the publication protocol
		panic(throw.Impossible())
	}
	return &p.value
}

// SetOrGet publishes (value) when the cell is empty, otherwise discards it and
// returns the already published slot, spinning out a concurrent initialization
// when it has to.
func (p *OnceCell[T]) SetOrGet(value T) *T {
	if v := p.Set(value); v != nil {
		return v
	}
	for !p.init.IsReady() {
		cpukit.SpinHint()
	}
	return &p.value
}

// DoOrGet is SetOrGet(fn()). Every caller invokes (fn) before racing for
// publication, so a caller that loses still pays for its candidate value and the
// result is discarded. This is a contract, not an implementation accident.
func (p *OnceCell[T]) DoOrGet(fn func() T) *T {
	if fn == nil {
		panic(throw.IllegalValue())
	}
	return p.SetOrGet(fn())
}
