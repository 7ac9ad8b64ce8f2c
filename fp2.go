package glvmul

// Fp2 represents a+bu in Fp[u]/(u^2-beta), the quadratic extension field
// backing G2 (spec §3's Fp2[C]). BN254 uses beta=-1, so Fp2 here is fixed
// to that choice rather than parameterized — the same specialization
// decision NewFieldParams makes for Fp, grounded on gnark's per-curve
// fp2.go template method list (ecc/.../fp2) which likewise hardcodes the
// curve's own non-residue rather than carrying it as a runtime parameter.
type Fp2 struct {
	A0, A1 Fp
}

func NewFp2(a0, a1 Fp) Fp2 { return Fp2{A0: a0, A1: a1} }

func (z Fp2) Add(x Fp2, fp *FieldParams) Fp2 {
	return Fp2{A0: z.A0.Add(x.A0, fp), A1: z.A1.Add(x.A1, fp)}
}

func (z Fp2) Sub(x Fp2, fp *FieldParams) Fp2 {
	return Fp2{A0: z.A0.Sub(x.A0, fp), A1: z.A1.Sub(x.A1, fp)}
}

func (z Fp2) Neg(fp *FieldParams) Fp2 {
	return Fp2{A0: z.A0.Neg(fp), A1: z.A1.Neg(fp)}
}

// Mul computes (a0+a1 u)(b0+b1 u) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) u,
// using the Karatsuba-style single-cross-multiply saving the teacher's
// own field_mul.go reaches for in its optimized sqr/mul — here applied at
// the Fp2 level rather than inside a single limb-multiply.
func (z Fp2) Mul(x Fp2, fp *FieldParams) Fp2 {
	v0 := z.A0.Mul(x.A0, fp)
	v1 := z.A1.Mul(x.A1, fp)
	t0 := z.A0.Add(z.A1, fp)
	t1 := x.A0.Add(x.A1, fp)
	c1 := t0.Mul(t1, fp).Sub(v0, fp).Sub(v1, fp)
	c0 := v0.Sub(v1, fp)
	return Fp2{A0: c0, A1: c1}
}

func (z Fp2) Sqr(fp *FieldParams) Fp2 {
	return z.Mul(z, fp)
}

// Conjugate returns a0 - a1 u, the Fp2 Frobenius-over-Fp automorphism.
func (z Fp2) Conjugate(fp *FieldParams) Fp2 {
	return Fp2{A0: z.A0, A1: z.A1.Neg(fp)}
}

func (z Fp2) IsZero() bool {
	return z.A0.IsZero() && z.A1.IsZero()
}

func (z Fp2) Equal(x Fp2) bool {
	return z.A0.Equal(x.A0) && z.A1.Equal(x.A1)
}

func (z *Fp2) cmov(x Fp2, flag SecretBool) {
	z.A0.cmov(x.A0, flag)
	z.A1.cmov(x.A1, flag)
}

// Inverse computes 1/(a0+a1 u) = (a0-a1 u) / (a0^2+a1^2), since
// beta=-1 makes the norm a0^2 - beta*a1^2 = a0^2+a1^2.
func (z Fp2) Inverse(fp *FieldParams) Fp2 {
	norm := z.A0.Sqr(fp).Add(z.A1.Sqr(fp), fp)
	normInv := norm.Inv(fp)
	return Fp2{A0: z.A0.Mul(normInv, fp), A1: z.A1.Neg(fp).Mul(normInv, fp)}
}
