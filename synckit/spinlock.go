// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package synckit

import "sync"

// Locker is the mutual exclusion contract shared by both spinlock strategies.
// All waiting is busy-waiting; there is no parking, no fairness among waiters,
// no reentrancy and no timeout. Unlock of a lock that is not held by the caller
// is undefined behavior and is not detected.
type Locker interface {
	sync.Locker
	// TryLock attempts acquisition without waiting and returns whether it succeeded.
	TryLock() bool
}
