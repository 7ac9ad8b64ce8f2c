package glvmul

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// BigInt256 is a fixed-width 256-bit unsigned integer stored as four
// 64-bit limbs, little-endian by limb index (d[0] is the least
// significant word). It is the sole width used throughout the package:
// curve order, field modulus, decomposition accumulators and mini-scalars
// for both M=2 (L=128) and M=4 (L=65) all fit comfortably inside 256 bits,
// so a single monomorphized type stands in for spec's generic BigInt(N) —
// Go has no const-generic array length to parameterize by N directly.
//
// Arithmetic on BigInt256 wraps modulo 2^256, matching a fixed-width
// hardware register. The decomposer relies on this: intermediate terms
// can exceed 256 bits, but the final result is always within headroom
// (spec §7), so truncation mod 2^256 never loses information.
type BigInt256 struct {
	d [4]uint64
}

func (a BigInt256) IsZero() bool {
	return a.d[0]|a.d[1]|a.d[2]|a.d[3] == 0
}

// Bit returns bit i (0 = LSB) as 0 or 1.
func (a BigInt256) Bit(i uint) uint64 {
	return (a.d[i/64] >> (i % 64)) & 1
}

// msb returns 1 if the top bit (bit 255) is set.
func (a BigInt256) msb() uint64 {
	return a.d[3] >> 63
}

func (a BigInt256) add(b BigInt256) BigInt256 {
	var r BigInt256
	var c uint64
	r.d[0], c = bits.Add64(a.d[0], b.d[0], 0)
	r.d[1], c = bits.Add64(a.d[1], b.d[1], c)
	r.d[2], c = bits.Add64(a.d[2], b.d[2], c)
	r.d[3], _ = bits.Add64(a.d[3], b.d[3], c)
	return r
}

func (a BigInt256) sub(b BigInt256) BigInt256 {
	var r BigInt256
	var c uint64
	r.d[0], c = bits.Sub64(a.d[0], b.d[0], 0)
	r.d[1], c = bits.Sub64(a.d[1], b.d[1], c)
	r.d[2], c = bits.Sub64(a.d[2], b.d[2], c)
	r.d[3], _ = bits.Sub64(a.d[3], b.d[3], c)
	return r
}

// negate256 computes the two's complement negation mod 2^256.
func (a BigInt256) negate256() BigInt256 {
	var zero BigInt256
	return zero.sub(a)
}

// subBorrow is sub with the final borrow-out exposed, letting callers
// branchlessly tell whether a < b (borrow == 1) from whether a >= b.
func (a BigInt256) subBorrow(b BigInt256) (BigInt256, uint64) {
	var r BigInt256
	var c uint64
	r.d[0], c = bits.Sub64(a.d[0], b.d[0], 0)
	r.d[1], c = bits.Sub64(a.d[1], b.d[1], c)
	r.d[2], c = bits.Sub64(a.d[2], b.d[2], c)
	r.d[3], c = bits.Sub64(a.d[3], b.d[3], c)
	return r, c
}

// mulLimb computes (a * v) mod 2^256 — a schoolbook multiply-accumulate
// with the overflow limb discarded, the fixed-width analogue of btcec's
// field_mul.go carry-chain helpers (bits.Mul64/bits.Add64).
func (a BigInt256) mulLimb(v uint64) BigInt256 {
	var r BigInt256
	var carry uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(a.d[i], v)
		s, c0 := bits.Add64(lo, carry, 0)
		r.d[i] = s
		carry = hi + c0
	}
	return r
}

// mulWide computes the full 512-bit product of two BigInt256, returned as
// 8 little-endian limbs, grounded on the teacher's uint128/carry-chain
// style in field_mul.go (there specialized to 5 limbs at base 2^52; here
// generalized to 4 limbs at base 2^64).
func mulWide(a, b BigInt256) [8]uint64 {
	var t [8]uint64
	for i := 0; i < 4; i++ {
		if a.d[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.d[i], b.d[j])
			s, c0 := bits.Add64(t[i+j], lo, 0)
			s, c1 := bits.Add64(s, carry, 0)
			t[i+j] = s
			carry = hi + c0 + c1
		}
		// propagate remaining carry
		k := i + 4
		for carry != 0 {
			s, c := bits.Add64(t[k], carry, 0)
			t[k] = s
			carry = c
			k++
		}
	}
	return t
}

// highWords returns the upper 4 limbs of a 512-bit value — spec §4.1's
// high_words(product, w) with w = 4 (the word width of the curve order),
// equivalent to a logical right shift by 256 bits.
func highWords(wide [8]uint64) BigInt256 {
	return BigInt256{d: [4]uint64{wide[4], wide[5], wide[6], wide[7]}}
}

// mulShiftRight computes high_words(a*b, 4): the upper half of the wide
// product of two BigInt256, i.e. round(a*b / 2^256) truncated toward zero.
// This is the decomposer's alpha_i = high_words(babai_i * k, w) primitive.
func mulShiftRight(a, b BigInt256) BigInt256 {
	return highWords(mulWide(a, b))
}

func (a BigInt256) addUint64(v uint64) BigInt256 {
	return a.add(BigInt256{d: [4]uint64{v, 0, 0, 0}})
}

// shiftRight1 shifts a right by one bit, the recoder's per-step "shift
// k[j] right by 1" (spec §4.2's column j>=1 recurrence).
func (a BigInt256) shiftRight1() BigInt256 {
	return BigInt256{d: [4]uint64{
		(a.d[0] >> 1) | (a.d[1] << 63),
		(a.d[1] >> 1) | (a.d[2] << 63),
		(a.d[2] >> 1) | (a.d[3] << 63),
		a.d[3] >> 1,
	}}
}

// Bytes renders the value as 32 big-endian bytes.
func (a BigInt256) Bytes() [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint64(out[0:8], a.d[3])
	binary.BigEndian.PutUint64(out[8:16], a.d[2])
	binary.BigEndian.PutUint64(out[16:24], a.d[1])
	binary.BigEndian.PutUint64(out[24:32], a.d[0])
	return out
}

// SetBytes loads the value from a big-endian byte slice of length <= 32.
func (a *BigInt256) SetBytes(b []byte) {
	var buf [32]byte
	copy(buf[32-len(b):], b)
	a.d[3] = binary.BigEndian.Uint64(buf[0:8])
	a.d[2] = binary.BigEndian.Uint64(buf[8:16])
	a.d[1] = binary.BigEndian.Uint64(buf[16:24])
	a.d[0] = binary.BigEndian.Uint64(buf[24:32])
}

// cmp is a variable-time comparison used only for public, non-secret
// values (curve constant setup, test assertions) — never on secret scalars.
func (a BigInt256) cmp(b BigInt256) int {
	for i := 3; i >= 0; i-- {
		if a.d[i] != b.d[i] {
			if a.d[i] > b.d[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// decLimbs parses a base-10 literal into big-endian-filled limbs. Used only
// at package-init time to materialize curve constants — mirrors gnark's
// fp.Element.SetString(decimalLiteral) idiom (ecc/bls377/bls377.go) rather
// than hand-transcribed hex limb arrays, which are error-prone to author by
// hand for 254-bit literals. Not used anywhere on the secret-data hot path.
func decLimbs(s string) BigInt256 {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("glvmul: invalid decimal constant " + s)
	}
	if v.Sign() < 0 || v.BitLen() > 256 {
		panic("glvmul: decimal constant out of range " + s)
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	var out BigInt256
	out.SetBytes(buf[:])
	return out
}
