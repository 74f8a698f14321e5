// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loan

import (
	"sync/atomic"
)

// brandSeq issues process-unique origin identifiers for brands.
var brandSeq atomic.Uint64

// Brand is a token tying references and husks to the borrow that created
// them. The marker type B names a brand family: operations that pair two
// branded values (Join, Reconstruct) require both to carry the same family,
// so pairing across families is a compile error.
//
// Within one family, origins are distinguished by a process-unique
// identifier generated per NewBrand call and checked at pairing time.
// This is the runtime arm of the compatibility check: Go cannot mint a
// fresh nominal type per call expression, so intra-family misuse panics
// instead of failing to compile. Declare a fresh marker type per borrow
// site to get the compile-time arm everywhere it matters.
type Brand[B any] struct {
	origin uint64
}

// NewBrand generates a fresh brand in family B. Each call yields a distinct
// origin; two brands pair in Join or Reconstruct only if one descends from
// the other via duplicate.
//
// Allocation note: Brand is a plain value; NewBrand performs no heap
// allocation.
func NewBrand[B any]() Brand[B] {
	return Brand[B]{origin: brandSeq.Add(1)}
}

// duplicate produces two brands of the same origin, subsequently treated as
// siblings by the pairing checks while traveling independently.
//
// Each result must be used exactly once. The only legal call sites are:
//  1. Split, dividing a reference into two higher-level references
//  2. BorrowAs, dividing an owned handle into a husk and a reference
func (b Brand[B]) duplicate() (Brand[B], Brand[B]) {
	return b, Brand[B]{origin: b.origin}
}

// sameOrigin reports whether two brands descend from one NewBrand call.
func sameOrigin[B any](a, b Brand[B]) bool {
	return a.origin == b.origin
}

// Anon is the default brand family used by Borrow. All anonymous borrows
// share this one Go type, so cross-borrow misuse within Anon is caught by
// the origin check at runtime, not by the compiler.
type Anon struct{}
