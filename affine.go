// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loan

import (
	"sync/atomic"
)

// One-shot consumption guards for owned handles, husks, and references.
//
// The borrow protocol is move-based: every consuming operation (Extract,
// Divide, Split, Join, Reconstruct) must see each operand exactly once.
// Go has no move semantics, so consumption is tracked by an atomic guard
// and a second consume panics. The guard stays sound even when a handle is
// erroneously shared across goroutines: exactly one consumer wins.

type onceGate struct {
	used atomic.Uintptr
}

// consume claims the one-shot. Panics with msg if already claimed.
func (g *onceGate) consume(msg string) {
	if g.used.Add(1) != 1 {
		panic(msg)
	}
}

// tryConsume attempts to claim the one-shot.
func (g *onceGate) tryConsume() bool {
	return g.used.Add(1) == 1
}

// live panics with msg if the one-shot has already been claimed.
func (g *onceGate) live(msg string) {
	if g.used.Load() != 0 {
		panic(msg)
	}
}

// discard claims the one-shot without invoking anything.
func (g *onceGate) discard() {
	g.used.Store(1)
}
