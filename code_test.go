package mih

import "testing"

func TestWidth(t *testing.T) {
	if got := width[uint8](); got != 8 {
		t.Fatalf("width[uint8]()=%d", got)
	}
	if got := width[uint16](); got != 16 {
		t.Fatalf("width[uint16]()=%d", got)
	}
	if got := width[uint32](); got != 32 {
		t.Fatalf("width[uint32]()=%d", got)
	}
	if got := width[uint64](); got != 64 {
		t.Fatalf("width[uint64]()=%d", got)
	}
}

func TestPopcountAndHamming(t *testing.T) {
	if popcount(uint8(0)) != 0 {
		t.Fatalf("popcount(0) != 0")
	}
	if popcount(uint8(0xFF)) != 8 {
		t.Fatalf("popcount(0xFF) != 8")
	}
	if hamming(uint64(0), ^uint64(0)) != 64 {
		t.Fatalf("hamming(0, all-ones) != 64")
	}
	if hamming(uint8(0b1010), uint8(0b1001)) != 2 {
		t.Fatalf("hamming mismatch")
	}
}

func TestOnesMask(t *testing.T) {
	if onesMask(0) != 0 {
		t.Fatalf("onesMask(0) != 0")
	}
	if onesMask(8) != 0xFF {
		t.Fatalf("onesMask(8) != 0xFF")
	}
	if onesMask(64) != ^uint64(0) {
		t.Fatalf("onesMask(64) != all-ones")
	}
}

func TestIsValidWidth(t *testing.T) {
	for _, w := range []int{8, 16, 32, 64} {
		if !isValidWidth(w) {
			t.Fatalf("isValidWidth(%d) should be true", w)
		}
	}
	for _, w := range []int{0, 7, 24, 128} {
		if isValidWidth(w) {
			t.Fatalf("isValidWidth(%d) should be false", w)
		}
	}
}
