// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package atomickit

type ReadyState uint32

const (
	NotReady ReadyState = iota
	InTransit
	Ready
)

func (v ReadyState) String() string {
	switch v {
	case NotReady:
		return "notReady"
	case InTransit:
		return "inTransit"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// ReadyFlag is a monotonic, forward-only progress flag for one-time publication.
// Zero value is a valid flag in NotReady.
//
// Publication protocol:
// 1. A caller invokes Step(NotReady) to claim the transit window.
// 2. The claimant applies the guarded side effect.
// 3. The claimant invokes Step(InTransit) to publish completion.
// A caller that loses (1) must not apply the side effect and has to poll IsReady()
// instead. Only the claimant of (1) is allowed to do (3), and the flag must not be
// mutated in any other way.
type ReadyFlag struct {
	state Uint32
}

// Step attempts the single forward transition out of (from) and returns true for
// the exactly-one caller that moved the flag.
func (p *ReadyFlag) Step(from ReadyState) bool {
	return p.forward(from, from+1)
}

func (p *ReadyFlag) forward(from, to ReadyState) bool {
	return p.state.CompareAndSwap(uint32(from), uint32(to))
}

// IsReady returns true when the flag has reached its terminal state. A true result
// happens-after everything the claimant did before completing Step(InTransit).
func (p *ReadyFlag) IsReady() bool {
	return p.State() == Ready
}

func (p *ReadyFlag) State() ReadyState {
	return ReadyState(p.state.Load())
}

func (p *ReadyFlag) String() string {
	return p.State().String()
}
