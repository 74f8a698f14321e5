// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package loan provides branded exclusive/shared access to a single
// heap-resident value without a lifetime-tracking borrow checker.
//
// Ownership of a value is divided into a residual [Husk] plus a level-zero
// [Ref]; references split into read-only views and join back into a single
// writable view; the original [Owned] handle is reconstructed once the
// split tree is fully rejoined. Provenance and access level are encoded as
// type identities — a brand family and a Peano level — so most illegal
// aliasing is a type error, settled before the program runs.
//
// # Design Philosophy
//
// loan provides:
//   - A compile-time level calculus: mutability is a property of the
//     reference's type, never of a runtime flag or lock
//   - Brand families: pairing references or husks across families is a
//     compile error
//   - Affine handles: every consuming operation sees its operand exactly
//     once, enforced by atomic one-shot guards that panic on reuse
//
// # Brands
//
// [Brand] carries a marker type parameter naming its family plus a
// process-unique origin generated by [NewBrand]. Pairing checks have two
// arms:
//
//   - Compile-time: operands must share one brand family. Declare a fresh
//     marker type per borrow site ([BorrowAs]) and cross-site pairing does
//     not compile.
//   - Runtime: within one family, origins are compared at [Join] and
//     [Reconstruct]; a mismatch panics.
//
// The runtime arm is a reduced-safety fallback: Go cannot synthesize a
// fresh nominal type per call expression, so two borrows sharing a family
// (everything under [Anon] included) are indistinguishable to the compiler
// and are told apart by origin instead. It is not equivalent to a
// per-call-site fresh type; it is the documented fallback for hosts
// without that expressiveness.
//
// # Levels
//
// Levels are types: [Excl] is level zero, [Shared][L] is one split above
// L. [Split] takes Ref[T, B, L] to two Ref[T, B, Shared[L]]; [Join] takes
// two Ref[T, B, Shared[L]] back to Ref[T, B, L]. Write operations accept
// only [RefMut] (level zero), so none of the following compiles:
//
//	a, b := loan.Split(r0)
//	loan.Set(a, 1)        // does not compile: a is not level zero
//	loan.Join(a, r0)      // does not compile: levels differ
//	loan.Join(r0, r0)     // does not compile: no level below Excl
//
// Nor does pairing across brand families:
//
//	type left struct{}
//	type right struct{}
//	_, r1 := loan.BorrowAs[left](loan.New(1))
//	h2, _ := loan.BorrowAs[right](loan.New(2))
//	loan.Reconstruct(r1, h2) // does not compile: left vs right
//
// # Storage Strategies
//
// [Storage] abstracts the backing store as divide/rejoin/extract over a
// container type C and a residual type H. [Heap] is the built-in strategy
// (C = *T, H = empty); [HeapOwned] and [HeapHusk] alias its
// instantiations. Strategies are infallible: allocator exhaustion is a
// platform abort, not a value.
//
// # Handles and Consumption
//
//   - [Owned]: whole ownership; consumed by [Owned.Extract] or [Divide]
//   - [Husk]: residual of a division; consumed by [Reconstruct]
//   - [Ref]: location + brand + level; consumed by [Split], [Join],
//     [Reconstruct], or [Ref.Discard]
//
// Consuming a handle twice panics with a "loan:"-prefixed message.
// [TryJoin] and [TryReconstruct] return false instead of panicking.
// [Ref.Get] reads at every level and returns the value by copy; [Set] and
// [Update] write at level zero. No pointer crosses the public API, so a
// read view cannot be retained past reconstruction.
//
// # Leaks
//
// Dropping a reference while its sibling subtree is live strands the husk:
// the borrow can never be rejoined and the owned handle is never
// reconstructed. This is a resource leak, permitted by design — the analog
// of forgetting to free — never an unsoundness. [Ref.Discard] makes the
// drop explicit; it is offered, not required.
//
// # Entry Points
//
//   - [New]: allocate a value on the heap, wrap it in an owned handle
//   - [Borrow] / [BorrowAs]: divide an owned handle into husk + exclusive
//     reference (the single sanctioned composition of brand generation,
//     duplication, [Divide], and [NewRef])
//   - [NewBrand]: generate one fresh brand, for advanced compositions
//
// # Example
//
//	owned := loan.New(0)
//	husk, r0 := loan.Borrow(owned)
//
//	loan.Set(r0, 40)
//	a, b := loan.Split(r0)   // two read-only views
//	sum := a.Get() + b.Get() // 80
//
//	r0 = loan.Join(a, b)     // exclusive again
//	loan.Set(r0, sum+4)
//
//	owned = loan.Reconstruct(r0, husk)
//	result := owned.Extract() // 84
//
// The protocol is single-threaded and synchronous: no operation blocks,
// suspends, or fails once it type-checks. What a concurrent design would
// enforce with locks, this design enforces with the level and brand
// calculus alone.
package loan
