package glvmul

// LUTG1 is the spec §4.3 combined lookup table: 2^(M-1) entries spanning
// every sign/magnitude combination of rows 1..M-1 against the (already
// sign-adjusted) row-0 base point. Grounded on the teacher's
// buildOddMultiplesTableWithGlobalZ/buildOddMultiplesTableSimple
// (glv.go) — both build a table by reusing a prior Jacobian entry and
// adding one new term, then batch-converting to affine in one shot via
// BatchInvert; this generalizes that "reuse the top-set-bit-cleared entry"
// trick from windowed odd multiples to the GLV-SAC combined index space.
type LUTG1 struct {
	Points []PointG1Affine
}

// log2Floor returns floor(log2(u)) for u >= 1. Variable-time: spec §4.3
// notes the table index u driving this is public (it is just the loop
// counter building the table, not a secret scalar digit), so branching on
// it leaks nothing.
func log2Floor(u int) int {
	n := -1
	for u != 0 {
		u >>= 1
		n++
	}
	return n
}

// signAdjustRowsG1 applies NormalizeSigns's NegateRow to each endomorphism
// row of the base point, via the constant-time Y-negate cmov (spec §4.6),
// producing the M points that feed the combined table: row 0 is P itself
// (or -P), row j is phi^j(P) (or its negation).
func signAdjustRowsG1(p PointG1Affine, params *CurveParams, negateRow []bool) []PointG1Affine {
	fp := &params.Fp
	rows := make([]PointG1Affine, params.GLV.M)
	rows[0] = p
	for j := 1; j < params.GLV.M; j++ {
		rows[j] = MulLambdaG1(rows[j-1], params)
	}
	for j := range rows {
		neg := PointG1Affine{X: rows[j].X, Y: rows[j].Y.Neg(fp), Infinity: rows[j].Infinity}
		rows[j].cmov(neg, NewSecretBool(negateRow[j]))
	}
	return rows
}

// BuildLUTG1 constructs the spec §4.3 combined table: tab[0] = rows[0];
// for u in [1, 2^(M-1)), tab[u] = tab[u with its top set bit cleared] +
// rows[msb(u)+1] — one mixed Jacobian+affine add per new entry, reusing
// the prior Jacobian accumulation rather than recomputing from scratch.
func BuildLUTG1(p PointG1Affine, params *CurveParams, negateRow []bool) *LUTG1 {
	rows := signAdjustRowsG1(p, params, negateRow)
	fp := &params.Fp
	size := 1 << (params.GLV.M - 1)
	jac := make([]PointG1Jacobian, size)
	jac[0] = rows[0].ToJacobian(fp)
	for u := 1; u < size; u++ {
		msb := log2Floor(u)
		prev := jac[u^(1<<msb)]
		jac[u] = prev.AddMixed(rows[msb+1], fp)
	}
	return &LUTG1{Points: BatchToAffine(jac, fp)}
}

// SecretLookup scans every table entry and selects index's entry via
// secretEqualU32 + cmov, spec §4.4/§4.6's secretLookup contract: the
// memory-access pattern (reading all 2^(M-1) entries every call) never
// depends on index.
func (t *LUTG1) SecretLookup(index uint32) PointG1Affine {
	var out PointG1Affine
	out.Infinity = true
	for i, pt := range t.Points {
		flag := secretEqualU32(uint32(i), index)
		out.cmov(pt, flag)
		out.Infinity = cmovBool(out.Infinity, pt.Infinity, flag)
	}
	return out
}

func (p *PointG1Affine) cmov(src PointG1Affine, flag SecretBool) {
	p.X.cmov(src.X, flag)
	p.Y.cmov(src.Y, flag)
}

// LUTG2 / BuildLUTG2 / SecretLookup mirror LUTG1 over Fp2 (spec §4.3
// applies identically to G2's combined table).
type LUTG2 struct {
	Points []PointG2Affine
}

func signAdjustRowsG2(p PointG2Affine, params *CurveParams, negateRow []bool) []PointG2Affine {
	fp := &params.Fp
	rows := make([]PointG2Affine, params.GLV.M)
	rows[0] = p
	for j := 1; j < params.GLV.M; j++ {
		rows[j] = MulLambdaG2(rows[j-1], params)
	}
	for j := range rows {
		neg := PointG2Affine{X: rows[j].X, Y: rows[j].Y.Neg(fp), Infinity: rows[j].Infinity}
		rows[j].cmov(neg, NewSecretBool(negateRow[j]))
	}
	return rows
}

func BuildLUTG2(p PointG2Affine, params *CurveParams, negateRow []bool) *LUTG2 {
	rows := signAdjustRowsG2(p, params, negateRow)
	fp := &params.Fp
	size := 1 << (params.GLV.M - 1)
	jac := make([]PointG2Jacobian, size)
	jac[0] = rows[0].ToJacobian(fp)
	for u := 1; u < size; u++ {
		msb := log2Floor(u)
		prev := jac[u^(1<<msb)]
		jac[u] = prev.AddMixed(rows[msb+1], fp)
	}
	return &LUTG2{Points: batchToAffineG2(jac, fp)}
}

func (t *LUTG2) SecretLookup(index uint32) PointG2Affine {
	var out PointG2Affine
	out.Infinity = true
	for i, pt := range t.Points {
		flag := secretEqualU32(uint32(i), index)
		out.cmov(pt, flag)
		out.Infinity = cmovBool(out.Infinity, pt.Infinity, flag)
	}
	return out
}

func (p *PointG2Affine) cmov(src PointG2Affine, flag SecretBool) {
	p.X.cmov(src.X, flag)
	p.Y.cmov(src.Y, flag)
}

// batchToAffineG2 is BatchToAffine's Fp2 counterpart. It converts each
// entry with its own ToAffine call, one Fp2 inversion per point; unlike
// BatchToAffine it does not share a single inversion across the entries.
func batchToAffineG2(pts []PointG2Jacobian, fp *FieldParams) []PointG2Affine {
	out := make([]PointG2Affine, len(pts))
	for i, p := range pts {
		out[i] = p.ToAffine(fp)
	}
	return out
}
