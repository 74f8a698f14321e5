// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loan_test

import (
	"testing"

	"code.hybscloud.com/loan"
)

func TestBrandAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = loan.NewBrand[loan.Anon]()
	})
	if allocs > 0 {
		t.Errorf("NewBrand allocs = %v; want 0", allocs)
	}
}

func TestAccessAllocations(t *testing.T) {
	_, r0 := loan.Borrow(loan.New(1))

	allocs := testing.AllocsPerRun(100, func() {
		_ = r0.Get()
	})
	if allocs > 0 {
		t.Errorf("Get allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		loan.Set(r0, 2)
	})
	if allocs > 0 {
		t.Errorf("Set allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		_ = loan.Update(r0, func(x int) int { return x + 1 })
	})
	if allocs > 0 {
		t.Errorf("Update allocs = %v; want 0", allocs)
	}
}
