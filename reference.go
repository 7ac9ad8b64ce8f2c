package glvmul

// ReferenceScalarMulG1 is a plain variable-time double-and-add
// implementation, used only by the property tests in scalarmul_test.go
// as the independent oracle spec §8's P1 checks ScalarMulG1 against. Not
// part of the constant-time surface — grounded on ecdh.go's EcmultConst,
// the teacher's own simple binary-method reference loop.
func ReferenceScalarMulG1(k BigInt256, p PointG1Affine, params *CurveParams) PointG1Affine {
	fp := &params.Fp
	var acc PointG1Jacobian
	acc.Infinity = true
	base := p.ToJacobian(fp)
	for i := 255; i >= 0; i-- {
		acc = acc.Double(fp)
		if k.Bit(uint(i)) == 1 {
			acc = acc.Add(base, fp)
		}
	}
	return acc.ToAffine(fp)
}

// ReferenceScalarMulG2 is the G2 analogue of ReferenceScalarMulG1.
func ReferenceScalarMulG2(k BigInt256, p PointG2Affine, params *CurveParams) PointG2Affine {
	fp := &params.Fp
	var acc PointG2Jacobian
	acc.Infinity = true
	base := p.ToJacobian(fp)
	for i := 255; i >= 0; i-- {
		acc = acc.Double(fp)
		if k.Bit(uint(i)) == 1 {
			acc = acc.Add(base, fp)
		}
	}
	return acc.ToAffine(fp)
}
