// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loan

// Owned represents whole, undivided ownership of a value held by a storage
// strategy. An owned handle is one-shot: it is consumed either by Extract,
// ending the protocol, or by Divide, beginning a borrow. While it is live,
// no reference or husk for its value exists.
type Owned[T, C, H any] struct {
	gate  onceGate
	kind  Storage[T, C, H]
	inner C
}

// Wrap constructs an owned handle directly from a container.
//
// Caller contract when used outside initial construction: the container
// must come from Storage.Rejoin of a matching husk, with no outstanding
// references to the value. Reconstruct is the sanctioned composition.
func Wrap[T, C, H any](kind Storage[T, C, H], inner C) *Owned[T, C, H] {
	return &Owned[T, C, H]{kind: kind, inner: inner}
}

// Extract consumes the handle and moves the value out, ending the protocol.
// Panics if the handle was already consumed.
func (o *Owned[T, C, H]) Extract() T {
	o.gate.consume("loan: owned handle consumed twice")
	return o.kind.Extract(o.inner)
}

// Divide consumes the handle, yielding the husk and the value's location.
//
// Caller contract: the initial reference must be minted with the duplicate
// sibling of b, and no other reference from this division may be created.
// BorrowAs is the sanctioned composition of Divide and NewRef.
func Divide[T, C, H, B any](o *Owned[T, C, H], b Brand[B]) (*Husk[T, B, C, H], *T) {
	o.gate.consume("loan: owned handle consumed twice")
	residual, ptr := o.kind.Divide(o.inner)
	return &Husk[T, B, C, H]{kind: o.kind, residual: residual, brand: b}, ptr
}

// Husk is the residual storage metadata left behind when ownership is
// divided into a reference tree. It is inert until Reconstruct pairs it
// with the level-zero reference of the same borrow. A husk whose references
// are dropped rather than rejoined is stranded, not broken: the outcome is
// a resource leak, never unsoundness.
type Husk[T, B, C, H any] struct {
	gate     onceGate
	kind     Storage[T, C, H]
	residual H
	brand    Brand[B]
}
