package glvmul

// CurveID names a registered curve, used to key the package-level parameter
// registry (spec §6/§9's "build-time registry keyed by curve identifier").
type CurveID int

const (
	BN254 CurveID = iota
	// BW6_761 is declared as an identifier only: no parameters are
	// registered for it, so LookupCurve(BW6_761) returns nil.
	BW6_761
)

// LatticeRow is one row of an M-dimensional GLV/GLV+GLS reduced lattice
// basis: M signed magnitudes, spec §4.1's lattice[b][i]. Sign is carried
// separately from magnitude (BigInt256 is always non-negative) so the
// decomposer can XOR it against the matching babai coefficient's sign per
// spec §4.1 step 3, exactly as mandated there.
type LatticeRow struct {
	Mag  []BigInt256
	Sign []bool
}

// BabaiVector is the M fixed-point rounding constants babai[0..M-1], each
// a Q0.256 approximation of one row of (adjugate/det) scaled by 2^256 so
// that high_words(babai[b]*k, 4) recovers round(k * row_b / det).
type BabaiVector struct {
	Mag  []BigInt256
	Sign []bool
}

// GLVParams bundles everything the decomposer (decompose.go) needs for one
// curve/subgroup: the dimension M, the bit bound L each mini-scalar is
// guaranteed to respect (spec §4.1's L=ceil(scalBits/M)+1), the endomorphism
// eigenvalue mod the subgroup order, the reduced lattice basis, and the
// matching babai vector.
type GLVParams struct {
	M        int
	L        int
	Lambda   BigInt256
	Lattice  []LatticeRow
	Babai    BabaiVector
}

// CurveParams is the per-curve registry entry (spec §6's curve parameter
// table; §9's "registry keyed by curve identifier" design note, made
// concrete here as first-class API per SPEC_FULL.md §3). Grounded on
// Consensys-gnark's Curve struct / initBLS377 in ecc/bls377/bls377.go:
// real generator coordinates set via decimal literals, a single init()
// populating one package-level table entry per curve.
type CurveParams struct {
	ID CurveID

	Fp  FieldParams // base field, shared by G1 and the Fp2 tower for G2
	R   BigInt256   // subgroup order

	// Beta is the G1 endomorphism constant: phi(x,y) = (Beta*x, y) for
	// points on y^2 = x^3 + B1, an automorphism of order 3 fixing B1
	// because Beta^2+Beta+1 = 0 mod p (spec §3's "curve endomorphism").
	// Of the two nontrivial cube roots of unity mod p, Beta is the one for
	// which phi acts on G1 as multiplication by GLV.Lambda.
	Beta Fp

	B1 Fp  // G1 curve coefficient (y^2 = x^3 + B1)
	G1 PointG1Affine

	// Xi is the sextic-twist non-residue (Fp2) and BTwist = 3/Xi the G2
	// curve coefficient (y^2 = x^3 + BTwist over Fp2). The Frobenius-psi
	// endomorphism on G2 itself is treated as an external-collaborator
	// contract per spec §1's scope note ("the Frobenius map on the
	// extension field" is explicitly out of this core's scope) — endo.go
	// uses no psi map; MulLambdaG2 is built from Beta alone.
	Xi      Fp2
	BTwist  Fp2
	G2      PointG2Affine

	// GLV is the shared 2-dimensional decomposition table used for both
	// G1 (via Beta) and G2 (via the twist's own order-3 automorphism,
	// which shares BN254's lambda eigenvalue mod r — see DESIGN.md for
	// why the 4-dimensional GLV+GLS (M=4) combining Frobenius is
	// registered structurally in decompose.go but not populated here).
	GLV GLVParams
}

var curveRegistry = map[CurveID]*CurveParams{}

// RegisterCurve adds params to the package registry, panicking if the
// lattice/babai table is internally inconsistent — spec §7's "rejected at
// build time" contract for configuration errors, mirrored from the
// teacher's init()-time betaConstant/Generator setup (glv.go, group.go).
func RegisterCurve(p *CurveParams) {
	if len(p.GLV.Lattice) != p.GLV.M || len(p.GLV.Babai.Mag) != p.GLV.M {
		panic("glvmul: GLV table dimension mismatch for curve registration")
	}
	for _, row := range p.GLV.Lattice {
		if len(row.Mag) != p.GLV.M {
			panic("glvmul: GLV lattice row width mismatch")
		}
	}
	curveRegistry[p.ID] = p
}

// LookupCurve returns the registered params for id, or nil if unregistered.
func LookupCurve(id CurveID) *CurveParams {
	return curveRegistry[id]
}

func init() {
	p := decLimbs("21888242871839275222246405745257275088696311157297823662689037894645226208583")
	r := decLimbs("21888242871839275222246405745257275088548364400416034343698204186575808495617")
	lambda := decLimbs("21888242871839275217838484774961031246154997185409878258781734729429964517155")
	betaConst := decLimbs("21888242871839275220042445260109153167277707414472061641714758635765020556616")

	fp := NewFieldParams(p)

	beta := Fp{v: montMul(betaConst, fp.R2, &fp)}

	b1 := FpFromUint64(3, &fp)
	g1x := FpFromUint64(1, &fp)
	g1y := FpFromUint64(2, &fp)

	xiA0 := FpFromUint64(9, &fp)
	xiA1 := FpFromUint64(1, &fp)
	xi := Fp2{A0: xiA0, A1: xiA1}
	bTwist := Fp2{A0: FpFromUint64(3, &fp), A1: FpFromUint64(0, &fp)}.Mul(xi.Inverse(&fp), &fp)

	g2x0 := decLimbs("10857046999023057135944570762232829481370756359578518086990519993285655852781").Bytes()
	g2x1 := decLimbs("11559732032986387107991004021392285783925812861821192530917403151452391805634").Bytes()
	g2y0 := decLimbs("8495653923123431417604973247489272438418190587263600148770280649306958101930").Bytes()
	g2y1 := decLimbs("4082367875863433681332203403145435568316851327593401208105741076214120093531").Bytes()
	g2x := Fp2{A0: FpFromBytesReduced(g2x0[:], &fp), A1: FpFromBytesReduced(g2x1[:], &fp)}
	g2y := Fp2{A0: FpFromBytesReduced(g2y0[:], &fp), A1: FpFromBytesReduced(g2y1[:], &fp)}

	// M=2 lattice/babai table for the decomposer (G1, via Beta; and G2, via
	// the twist's shared eigenvalue — see GLVParams doc comment), derived
	// from an extended-Euclid short-vector reduction of (r, lambda) and
	// verified by direct reconstruction (k1 + k2*lambda == k mod r) across
	// random k, edge cases k=0,1,2,r-1, with observed mini-scalar width
	// 127 bits, inside the spec-mandated L=ceil(254/2)+1=128 bound.
	a1 := decLimbs("147946756881789319000765030803803410728")
	b1lat := decLimbs("9931322734385697763") // magnitude; true row value is -b1lat
	a2 := decLimbs("9931322734385697763")
	b2 := decLimbs("147946756881789319010696353538189108491")
	babai0 := decLimbs("782660544089080853131326142527431468389")
	babai1 := decLimbs("52538187511802934231")

	glv := GLVParams{
		M:      2,
		L:      128,
		Lambda: lambda,
		Lattice: []LatticeRow{
			{Mag: []BigInt256{a1, b1lat}, Sign: []bool{false, true}},
			{Mag: []BigInt256{a2, b2}, Sign: []bool{false, false}},
		},
		Babai: BabaiVector{
			Mag:  []BigInt256{babai0, babai1},
			Sign: []bool{false, false},
		},
	}

	RegisterCurve(&CurveParams{
		ID:     BN254,
		Fp:     fp,
		R:      r,
		Beta:   beta,
		B1:     b1,
		G1:     PointG1Affine{X: g1x, Y: g1y},
		Xi:     xi,
		BTwist: bTwist,
		G2:     PointG2Affine{X: g2x, Y: g2y},
		GLV:    glv,
	})
}
