// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loan

// Fused entry points composing the primitives in the only sanctioned
// order: generate a brand, duplicate it, divide the owned handle, and mint
// the initial reference. User code has no reason to call Divide or NewRef
// directly; these do it in one step, the way the primitives' caller
// contracts require.

// HeapOwned is an owned handle on the Heap storage strategy.
type HeapOwned[T any] = Owned[T, *T, struct{}]

// HeapHusk is the husk of a divided HeapOwned.
type HeapHusk[T, B any] = Husk[T, B, *T, struct{}]

// New allocates v on the heap and wraps it in an owned handle.
func New[T any](v T) *HeapOwned[T] {
	return Wrap[T, *T, struct{}](Heap[T]{}, &v)
}

// BorrowAs divides an owned handle into a husk and the initial exclusive
// reference, branded in family B. Declare an empty marker type per borrow
// site and pass it as B to make cross-site pairing a compile error:
//
//	type draft struct{}
//	husk, ref := loan.BorrowAs[draft](owned)
func BorrowAs[B, T, C, H any](o *Owned[T, C, H]) (*Husk[T, B, C, H], *RefMut[T, B]) {
	huskBrand, refBrand := NewBrand[B]().duplicate()
	husk, ptr := Divide(o, huskBrand)
	return husk, NewRef(ptr, refBrand)
}

// Borrow is BorrowAs in the Anon family. Convenient when a single borrow
// is in flight; pairing mistakes across concurrent anonymous borrows are
// caught by the origin check at runtime rather than by the compiler.
func Borrow[T, C, H any](o *Owned[T, C, H]) (*Husk[T, Anon, C, H], *RefMut[T, Anon]) {
	return BorrowAs[Anon](o)
}
