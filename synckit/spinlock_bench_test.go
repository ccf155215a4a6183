// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package synckit

import (
	"sync"
	"testing"
)

func BenchmarkCASSpinLock(b *testing.B) {
	lock := CASSpinLock{}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			lock.Lock()
			lock.Unlock()
		}
	})
}

func BenchmarkMutexBaseline(b *testing.B) {
	lock := sync.Mutex{}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			lock.Lock()
			lock.Unlock()
		}
	})
}

func BenchmarkOnceCellGet(b *testing.B) {
	cell := OnceCell[int]{}
	cell.Set(1)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if cell.Get() == nil {
				b.Fail()
			}
		}
	})
}
