package glvmul

import "testing"

func TestFieldElementBasics(t *testing.T) {
	params := LookupCurve(BN254)
	fp := &params.Fp

	zero := FpFromUint64(0, fp)
	if !zero.IsZero() {
		t.Error("zero field element should be zero")
	}

	one := FpFromUint64(1, fp)
	if one.IsZero() {
		t.Error("one field element should not be zero")
	}
	one2 := FpFromUint64(1, fp)
	if !one.Equal(one2) {
		t.Error("two instances of one should be equal")
	}
}

func TestFieldElementAddSubRoundTrip(t *testing.T) {
	params := LookupCurve(BN254)
	fp := &params.Fp
	a := FpFromUint64(12345, fp)
	b := FpFromUint64(6789, fp)
	sum := a.Add(b, fp)
	back := sum.Sub(b, fp)
	if !back.Equal(a) {
		t.Errorf("(a+b)-b != a")
	}
}

func TestFieldElementMulInverse(t *testing.T) {
	params := LookupCurve(BN254)
	fp := &params.Fp
	a := FpFromUint64(424242, fp)
	inv := a.Inv(fp)
	one := a.Mul(inv, fp)
	if !one.Equal(FpFromUint64(1, fp)) {
		t.Errorf("a * a^-1 != 1")
	}
}

func TestFieldElementBytesRoundTrip(t *testing.T) {
	params := LookupCurve(BN254)
	fp := &params.Fp
	a := FpFromUint64(0xdeadbeef, fp)
	b := a.Bytes(fp)
	recovered := FpFromBytesReduced(b[:], fp)
	if !recovered.Equal(a) {
		t.Errorf("Bytes/FromBytesReduced round trip failed")
	}
}

func TestBatchInvert(t *testing.T) {
	params := LookupCurve(BN254)
	fp := &params.Fp
	vals := []Fp{FpFromUint64(3, fp), FpFromUint64(5, fp), FpFromUint64(7, fp)}
	want := make([]Fp, len(vals))
	for i, v := range vals {
		want[i] = v.Inv(fp)
	}
	BatchInvert(vals, fp)
	for i := range vals {
		if !vals[i].Equal(want[i]) {
			t.Errorf("BatchInvert[%d] mismatch", i)
		}
	}
}

func TestFieldElementIsOdd(t *testing.T) {
	params := LookupCurve(BN254)
	fp := &params.Fp
	if FpFromUint64(4, fp).IsOdd(fp) {
		t.Errorf("4 should not be odd")
	}
	if !FpFromUint64(5, fp).IsOdd(fp) {
		t.Errorf("5 should be odd")
	}
}

func TestBetaIsCubeRootOfUnity(t *testing.T) {
	params := LookupCurve(BN254)
	fp := &params.Fp
	b2 := params.Beta.Sqr(fp)
	sum := b2.Add(params.Beta, fp).Add(FpFromUint64(1, fp), fp)
	if !sum.IsZero() {
		t.Errorf("beta^2+beta+1 != 0 mod p")
	}
}
