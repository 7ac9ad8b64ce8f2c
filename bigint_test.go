package glvmul

import "testing"

func TestBigInt256AddSub(t *testing.T) {
	a := BigInt256{d: [4]uint64{1, 0, 0, 0}}
	b := BigInt256{d: [4]uint64{2, 0, 0, 0}}
	sum := a.add(b)
	if sum.d[0] != 3 {
		t.Errorf("1+2 = %v, want 3", sum.d[0])
	}
	diff := b.sub(a)
	if diff.d[0] != 1 {
		t.Errorf("2-1 = %v, want 1", diff.d[0])
	}
}

func TestBigInt256WrapAround(t *testing.T) {
	var zero BigInt256
	one := BigInt256{d: [4]uint64{1, 0, 0, 0}}
	wrapped := zero.sub(one)
	if wrapped.d[0] != ^uint64(0) || wrapped.d[1] != ^uint64(0) || wrapped.d[2] != ^uint64(0) || wrapped.d[3] != ^uint64(0) {
		t.Errorf("0-1 did not wrap to all-ones: %v", wrapped)
	}
	back := wrapped.add(one)
	if !back.IsZero() {
		t.Errorf("(0-1)+1 != 0: %v", back)
	}
}

func TestBigInt256BytesRoundTrip(t *testing.T) {
	a := BigInt256{d: [4]uint64{0x1122334455667788, 0xaabbccddeeff0011, 0x1, 0x2}}
	b := a.Bytes()
	var recovered BigInt256
	recovered.SetBytes(b[:])
	if recovered.cmp(a) != 0 {
		t.Errorf("round trip mismatch: got %v, want %v", recovered, a)
	}
}

func TestMulShiftRight(t *testing.T) {
	// 2^255 * 1 has no bits at or above 2^256, so high_words (a right
	// shift by 256 bits) of that product must be 0.
	one := BigInt256{d: [4]uint64{1, 0, 0, 0}}
	hi := BigInt256{d: [4]uint64{0, 0, 0, 0x8000000000000000}} // 2^255
	result := mulShiftRight(hi, one)
	if result.d[0] != 0 || result.msb() != 0 {
		// 2^255 * 1 = 2^255, high_words(2^255, 4) truncated at bit 256 = 0
		t.Errorf("unexpected high words result: %v", result)
	}
}

func TestDecLimbsMatchesKnownValue(t *testing.T) {
	got := decLimbs("18446744073709551616") // 2^64
	want := BigInt256{d: [4]uint64{0, 1, 0, 0}}
	if got.cmp(want) != 0 {
		t.Errorf("decLimbs(2^64) = %v, want %v", got, want)
	}
}
