package glvmul

import "math/bits"

// FieldParams describes a prime field Fp[C] for a registered curve C: its
// modulus and the Montgomery constants derived from it (spec §3's Fp[C]).
// The teacher's own FieldElement (field.go) hardwires secp256k1's
// 2^256-2^32-977 reduction trick into a 5-limb base-2^52 layout; that trick
// is specific to secp256k1's pseudo-Mersenne prime and does not generalize
// to BN254's prime, so this type instead implements the curve-parametric
// CIOS Montgomery multiplication the teacher's field_mul.go already reaches
// for (its carry-chain bits.Mul64/bits.Add64 style, generalized from a
// fixed 5x52 reduction into a standard 4x64-limb CIOS loop).
type FieldParams struct {
	Modulus BigInt256
	// R2 is R^2 mod p where R = 2^256, used to lift an integer into
	// Montgomery form: mont(a) = mul(a, R2).
	R2 BigInt256
	// Np0 is -p^-1 mod 2^64, the per-limb CIOS reduction constant.
	Np0 uint64
}

// Fp is a field element stored in Montgomery form (spec §3). Fp is always
// used together with its FieldParams; operations take the params
// explicitly rather than via an embedded pointer so Fp stays a plain value
// type, cheap to pass/copy on the hot path, the same flat-value style as
// the teacher's FieldElement.
type Fp struct {
	v BigInt256
}

func negModInverse64(p0 uint64) uint64 {
	// Newton's method for the inverse of an odd word mod 2^64, the
	// standard way to derive a CIOS np0 constant; p0 is odd since the
	// modulus is prime and > 2.
	x := p0
	for i := 0; i < 5; i++ {
		x = x * (2 - p0*x)
	}
	return -x
}

// NewFieldParams derives R2 and Np0 from a modulus, grounded on the same
// shape of setup the teacher performs once in glv.go's init() for its own
// curve constants.
func NewFieldParams(modulus BigInt256) FieldParams {
	fp := FieldParams{Modulus: modulus, Np0: negModInverse64(modulus.d[0])}
	// R mod p: 2^256 mod p, by repeated doubling-and-reduce of the plain
	// integer 1 (correct regardless of the value of p).
	r := BigInt256{d: [4]uint64{1, 0, 0, 0}}
	for i := 0; i < 256; i++ {
		r = addMod(r, r, modulus)
	}
	fp.R2 = mulMod(r, r, modulus)
	return fp
}

// addMod/subMod/mulMod are variable-time plain modular helpers used only
// to bootstrap FieldParams at init time (public curve constants, not
// secret data) — never called from the constant-time scalar-mult path.
func addMod(a, b, m BigInt256) BigInt256 {
	s := a.add(b)
	if s.cmp(a) < 0 || s.cmp(m) >= 0 {
		s = s.sub(m)
	}
	return s
}

func subMod(a, b, m BigInt256) BigInt256 {
	if a.cmp(b) >= 0 {
		return a.sub(b)
	}
	return a.add(m).sub(b)
}

func mulMod(a, b, m BigInt256) BigInt256 {
	wide := mulWide(a, b)
	// reduce the 512-bit product mod m via repeated binary long division;
	// variable-time, init-time only (see doc comment above).
	var rem BigInt256
	for i := 511; i >= 0; i-- {
		rem = rem.add(rem)
		if wide[i/64]>>(uint(i)%64)&1 == 1 {
			rem.d[0] |= 1
		}
		if rem.cmp(m) >= 0 {
			rem = rem.sub(m)
		}
	}
	return rem
}

// addModCT/subModCT are the constant-time counterparts of addMod/subMod
// above, used by Fp's Add/Sub/Neg: unlike the init-time bootstrap helpers,
// these sit on the secret-dependent point-arithmetic hot path (every
// point.go Double/Add touches them), so the modular correction is selected
// via subBorrow's branchless borrow-out rather than a data-dependent `cmp`
// comparison — spec §3's field-op list requires add/sub/neg "constant-time
// in inputs" alongside mul/sqr/inv.
func addModCT(a, b, m BigInt256) BigInt256 {
	s := a.add(b)
	diff, borrow := s.subBorrow(m)
	keepSum := NewSecretBool(borrow != 0)
	return diff.ccopyVal(s, keepSum)
}

func subModCT(a, b, m BigInt256) BigInt256 {
	diff, borrow := a.subBorrow(b)
	corrected := diff.add(m)
	keepCorrected := NewSecretBool(borrow != 0)
	return diff.ccopyVal(corrected, keepCorrected)
}

// montMul computes a*b*R^-1 mod p via CIOS Montgomery multiplication — the
// generic version of the carry-chain loop the teacher hand-specializes for
// secp256k1 in field_mul.go's montgomeryReduce.
func montMul(a, b BigInt256, fp *FieldParams) BigInt256 {
	var t [5]uint64 // t[4] is the overflow limb
	m := fp.Modulus
	for i := 0; i < 4; i++ {
		// t += a * b[i]
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.d[j], b.d[i])
			s, c0 := bits.Add64(t[j], lo, 0)
			s, c1 := bits.Add64(s, carry, 0)
			t[j] = s
			carry = hi + c0 + c1
		}
		s, c := bits.Add64(t[4], carry, 0)
		t[4] = s
		overflow := c

		// reduce: u = t[0] * np0 mod 2^64; t += u * modulus (low limb of
		// t cancels to zero by construction), then shift right one limb.
		u := t[0] * fp.Np0
		hi0, lo0 := bits.Mul64(u, m.d[0])
		_, c0 := bits.Add64(t[0], lo0, 0)
		carry2 := hi0 + c0
		for j := 1; j < 4; j++ {
			hi, lo := bits.Mul64(u, m.d[j])
			s, c0 := bits.Add64(t[j], lo, 0)
			s, c1 := bits.Add64(s, carry2, 0)
			t[j-1] = s
			carry2 = hi + c0 + c1
		}
		s3, c3 := bits.Add64(t[4], carry2, 0)
		t[3] = s3
		t[4] = overflow + c3
	}
	result := BigInt256{d: [4]uint64{t[0], t[1], t[2], t[3]}}
	if t[4] != 0 || result.cmp(m) >= 0 {
		result = result.sub(m)
	}
	return result
}

// FpFromUint64 lifts a small integer into Montgomery form.
func FpFromUint64(v uint64, fp *FieldParams) Fp {
	plain := BigInt256{d: [4]uint64{v, 0, 0, 0}}
	return Fp{v: montMul(plain, fp.R2, fp)}
}

// FpFromBytesReduced reduces a big-endian byte string mod p and lifts it
// into Montgomery form. Every caller in this package passes at most 32
// bytes; such a value is below 6p for BN254's p, so repeated subtraction
// reduces it in at most five steps.
func FpFromBytesReduced(b []byte, fp *FieldParams) Fp {
	var plain BigInt256
	plain.SetBytes(b)
	for plain.cmp(fp.Modulus) >= 0 {
		plain = plain.sub(fp.Modulus)
	}
	return Fp{v: montMul(plain, fp.R2, fp)}
}

// Bytes renders the element's plain (non-Montgomery) value as 32 big-endian
// bytes, converting out of Montgomery form via a multiply by 1.
func (a Fp) Bytes(fp *FieldParams) [32]byte {
	plain := montMul(a.v, BigInt256{d: [4]uint64{1, 0, 0, 0}}, fp)
	return plain.Bytes()
}

func (a Fp) Add(b Fp, fp *FieldParams) Fp {
	return Fp{v: addModCT(a.v, b.v, fp.Modulus)}
}

func (a Fp) Sub(b Fp, fp *FieldParams) Fp {
	return Fp{v: subModCT(a.v, b.v, fp.Modulus)}
}

func (a Fp) Neg(fp *FieldParams) Fp {
	return Fp{v: subModCT(BigInt256{}, a.v, fp.Modulus)}
}

func (a Fp) Mul(b Fp, fp *FieldParams) Fp {
	return Fp{v: montMul(a.v, b.v, fp)}
}

func (a Fp) Sqr(fp *FieldParams) Fp {
	return Fp{v: montMul(a.v, a.v, fp)}
}

func (a Fp) IsZero() bool {
	return a.v.IsZero()
}

// IsOdd reports whether the plain (non-Montgomery) integer is odd —
// mirrors field.go's isOdd contract.
func (a Fp) IsOdd(fp *FieldParams) bool {
	plain := montMul(a.v, BigInt256{d: [4]uint64{1, 0, 0, 0}}, fp)
	return plain.d[0]&1 == 1
}

func (a Fp) Equal(b Fp) bool {
	return a.v.cmp(b.v) == 0
}

// cmov is the constant-time conditional move contract of spec §4.6,
// grounded on field.go's cmov (there an XOR-mask over 5 limbs; here over
// the 4-limb Montgomery representation).
func (a *Fp) cmov(b Fp, flag SecretBool) {
	a.v = a.v.ccopyVal(b.v, flag)
}

// Inv computes the field inverse via Fermat's little theorem, a^(p-2),
// using the same square-and-multiply structure as the teacher's
// scalar.go inverse/exp (there over the scalar group order; here over the
// field modulus).
func (a Fp) Inv(fp *FieldParams) Fp {
	exp := fp.Modulus.sub(BigInt256{d: [4]uint64{2, 0, 0, 0}})
	result := FpFromUint64(1, fp)
	base := a
	for i := 0; i < 256; i++ {
		if exp.Bit(uint(i)) == 1 {
			result = result.Mul(base, fp)
		}
		base = base.Sqr(fp)
	}
	return result
}

// BatchInvert inverts every element of a in place using Montgomery's
// trick — a single field inversion regardless of len(a) — ported in
// structure from field.go's batchInverse (itself, per its own comment, "a
// direct port of the batch inversion routine from btcec").
func BatchInvert(a []Fp, fp *FieldParams) {
	n := len(a)
	if n == 0 {
		return
	}
	s := make([]Fp, n)
	s[0] = FpFromUint64(1, fp)
	for i := 1; i < n; i++ {
		s[i] = s[i-1].Mul(a[i-1], fp)
	}
	u := s[n-1].Mul(a[n-1], fp)
	u = u.Inv(fp)
	for i := n - 1; i >= 0; i-- {
		out := u.Mul(s[i], fp)
		u = u.Mul(a[i], fp)
		a[i] = out
	}
}
