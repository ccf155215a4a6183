// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package cpukit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/insolar/vanilla/atomickit"
)

type stubMask struct{}

func (stubMask) Disable() {}
func (stubMask) Enable()  {}

// registration is process-wide and permanent, so the whole lifecycle is covered
// by one test
func TestSetIntrMask(t *testing.T) {
	require.Panics(t, func() { ActiveIntrMask() })
	require.Panics(t, func() { SetIntrMask(nil) })
	require.Panics(t, func() { ActiveIntrMask() })

	m := &stubMask{}
	SetIntrMask(m)
	require.Same(t, m, ActiveIntrMask())

	require.Panics(t, func() { SetIntrMask(&stubMask{}) })
	require.Same(t, m, ActiveIntrMask())
}

func TestSpinHintLiveness(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := atomickit.ReadyFlag{}
	go func() {
		f.Step(atomickit.NotReady)
		f.Step(atomickit.InTransit)
	}()

	for !f.IsReady() {
		SpinHint()
	}
}
