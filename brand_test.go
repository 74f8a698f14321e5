// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loan

import (
	"sync"
	"testing"
)

func TestNewBrandOriginsDistinct(t *testing.T) {
	const n = 1000
	seen := make(map[uint64]bool, n)
	for range n {
		b := NewBrand[Anon]()
		if seen[b.origin] {
			t.Fatalf("origin %d issued twice", b.origin)
		}
		seen[b.origin] = true
	}
}

func TestDuplicateSharesOrigin(t *testing.T) {
	b := NewBrand[Anon]()
	b1, b2 := b.duplicate()
	if !sameOrigin(b1, b2) {
		t.Fatal("duplicate siblings must share an origin")
	}
	if !sameOrigin(b, b1) {
		t.Fatal("duplicate must preserve the parent origin")
	}
}

func TestUnrelatedBrandsDiffer(t *testing.T) {
	a := NewBrand[Anon]()
	b := NewBrand[Anon]()
	if sameOrigin(a, b) {
		t.Fatal("independent NewBrand calls must not share an origin")
	}
}

func TestNewBrandConcurrent(t *testing.T) {
	const goroutines = 64
	const perG = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	origins := make(chan uint64, goroutines*perG)

	for range goroutines {
		go func() {
			defer wg.Done()
			for range perG {
				origins <- NewBrand[Anon]().origin
			}
		}()
	}
	wg.Wait()
	close(origins)

	seen := make(map[uint64]bool, goroutines*perG)
	for o := range origins {
		if seen[o] {
			t.Fatalf("origin %d issued twice under concurrency", o)
		}
		seen[o] = true
	}
}
