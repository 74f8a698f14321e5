// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loan

// Ref is a borrowed view of a value: a location, a brand, and a type-level
// access level L. At Excl the reference is the sole live view and permits
// mutation; at any Shared level it is read-only. The live references
// descended from one division always form a binary split tree, and Split
// and Join walk that tree one level at a time.
//
// Operations that change the level or the shape of the tree are free
// functions, not methods: they introduce or eliminate the level parameter,
// which Go methods cannot do.
type Ref[T, B, L any] struct {
	gate  onceGate
	ptr   *T
	brand Brand[B]
}

// RefMut is the exclusive, mutable reference at level zero.
type RefMut[T, B any] = Ref[T, B, Excl]

// NewRef mints the initial level-zero reference for a divided owned handle.
//
// Caller contract: ptr and b came from a single Divide call (b being the
// duplicate sibling of the husk's brand), and no other reference from that
// division exists. BorrowAs is the sanctioned composition.
func NewRef[T, B any](ptr *T, b Brand[B]) *RefMut[T, B] {
	return &Ref[T, B, Excl]{ptr: ptr, brand: b}
}

// Split consumes a reference and yields two read-only references one level
// up. Splitting never touches the value and always succeeds.
func Split[T, B, L any](r *Ref[T, B, L]) (*Ref[T, B, Shared[L]], *Ref[T, B, Shared[L]]) {
	r.gate.consume("loan: reference consumed twice")
	b1, b2 := r.brand.duplicate()
	return &Ref[T, B, Shared[L]]{ptr: r.ptr, brand: b1},
		&Ref[T, B, Shared[L]]{ptr: r.ptr, brand: b2}
}

// Join consumes two sibling references and yields one reference one level
// down; joining back to Excl restores mutability. Operands at different
// levels, at level zero, or in different brand families fail to compile.
// Operands from different borrows within one family panic.
func Join[T, B, L any](a, b *Ref[T, B, Shared[L]]) *Ref[T, B, L] {
	if !sameOrigin(a.brand, b.brand) {
		panic("loan: join of references from different borrows")
	}
	a.gate.consume("loan: reference consumed twice")
	b.gate.consume("loan: reference consumed twice")
	return &Ref[T, B, L]{ptr: a.ptr, brand: a.brand}
}

// TryJoin attempts Join. Returns (nil, false) instead of panicking when the
// operands come from different borrows or either operand was already
// consumed. A false return from the consumed case may leave the other
// operand consumed; misuse has no rollback.
func TryJoin[T, B, L any](a, b *Ref[T, B, Shared[L]]) (*Ref[T, B, L], bool) {
	if !sameOrigin(a.brand, b.brand) {
		return nil, false
	}
	if !a.gate.tryConsume() {
		return nil, false
	}
	if !b.gate.tryConsume() {
		return nil, false
	}
	return &Ref[T, B, L]{ptr: a.ptr, brand: a.brand}, true
}

// Get reads the value. Legal at every level. The value is returned by
// copy, so no view can be retained past Reconstruct.
func (r *Ref[T, B, L]) Get() T {
	r.gate.live("loan: reference used after consume")
	return *r.ptr
}

// Discard consumes the reference without using it. Dropping a reference
// without calling Discard is equally legal; either way the husk is
// stranded once a sibling subtree is gone, which is a leak, not an error.
func (r *Ref[T, B, L]) Discard() {
	r.gate.discard()
}

// Set writes the value through the exclusive reference. Shared references
// have no write operation: passing one fails to compile.
func Set[T, B any](r *RefMut[T, B], v T) {
	r.gate.live("loan: reference used after consume")
	*r.ptr = v
}

// Update applies f to the current value through the exclusive reference,
// stores the result, and returns it.
func Update[T, B any](r *RefMut[T, B], f func(T) T) T {
	r.gate.live("loan: reference used after consume")
	v := f(*r.ptr)
	*r.ptr = v
	return v
}

// Reconstruct consumes the level-zero reference and the husk of the same
// borrow, reassembling the owned handle. A husk from a different brand
// family fails to compile; one from a different borrow within the same
// family panics. Legal only at level zero: a reference with siblings still
// out does not type-check here.
func Reconstruct[T, B, C, H any](r *RefMut[T, B], h *Husk[T, B, C, H]) *Owned[T, C, H] {
	if !sameOrigin(r.brand, h.brand) {
		panic("loan: reconstruct with husk from a different borrow")
	}
	r.gate.consume("loan: reference consumed twice")
	h.gate.consume("loan: husk consumed twice")
	return Wrap(h.kind, h.kind.Rejoin(h.residual, r.ptr))
}

// TryReconstruct attempts Reconstruct. Returns (nil, false) instead of
// panicking when the husk comes from a different borrow or either operand
// was already consumed; as with TryJoin, the consumed case has no rollback.
func TryReconstruct[T, B, C, H any](r *RefMut[T, B], h *Husk[T, B, C, H]) (*Owned[T, C, H], bool) {
	if !sameOrigin(r.brand, h.brand) {
		return nil, false
	}
	if !r.gate.tryConsume() {
		return nil, false
	}
	if !h.gate.tryConsume() {
		return nil, false
	}
	return Wrap(h.kind, h.kind.Rejoin(h.residual, r.ptr)), true
}
