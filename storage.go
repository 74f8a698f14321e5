// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loan

// Storage abstracts how a value's backing store is allocated, divided into
// residual metadata plus a location, and later reassembled. C is the
// container type owning the value's storage; H is the residual left behind
// while the value is out on loan. The two ride as type parameters because
// Go has no associated types; the Heap aliases in borrow.go keep the common
// instantiation readable.
//
// All three operations are infallible once they type-check. Storage
// implementations hold no per-operation error paths: allocation exhaustion
// is a platform abort, not a value.
type Storage[T, C, H any] interface {
	// Divide splits a container into its residual and the value's location.
	Divide(C) (H, *T)

	// Rejoin reassembles a container from a residual and a location.
	// Caller contract: the location came from Divide on this strategy and
	// no reference to it is live at the call or until the next Divide.
	Rejoin(H, *T) C

	// Extract consumes a container and moves the value out.
	Extract(C) T
}

// Heap is the storage strategy placing the value on the garbage-collected
// heap. The container is the location itself and the residual is empty.
type Heap[T any] struct{}

func (Heap[T]) Divide(c *T) (struct{}, *T) {
	return struct{}{}, c
}

func (Heap[T]) Rejoin(_ struct{}, ptr *T) *T {
	return ptr
}

func (Heap[T]) Extract(c *T) T {
	return *c
}
