// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

//go:build !intronly

package synckit

// SpinLock is the lock strategy selected at build configuration: atomic CAS.
type SpinLock = CASSpinLock

func NewSpinLock() SpinLock {
	return SpinLock{}
}
