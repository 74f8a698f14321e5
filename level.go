// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loan

// Access levels are tracked in the type system as nested markers rather
// than as runtime state. Split moves a reference one level up, Join moves
// it one level down, and operations that need exclusivity accept only the
// level-zero instantiation, so level arithmetic is settled entirely at
// compile time.

// Excl marks the exclusive access level (level zero). A reference at Excl
// is the sole live view of its value and permits mutation.
type Excl struct{}

// Shared marks the read-only access level one split above L. Two sibling
// references at Shared[L] join back to a single reference at L.
type Shared[L any] struct{}
