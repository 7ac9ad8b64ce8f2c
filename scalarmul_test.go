package glvmul

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// TestScalarMulG1MatchesReference is spec §8's P1: ScalarMulG1 must agree
// with a plain variable-time double-and-add reference across random
// scalars/points, expressed as a gopter property in the style
// Consensys-gnark uses its property suite (leanovate/gopter +
// stretchr/testify's require inside the property closure), rather than the
// teacher's own hand-rolled table-driven loop — spec §8 explicitly names
// universally-quantified algebraic properties, which gopter is built for.
func TestScalarMulG1MatchesReference(t *testing.T) {
	params := LookupCurve(BN254)
	properties := gopter.NewProperties(nil)

	properties.Property("ScalarMulG1 matches reference double-and-add", prop.ForAll(
		func(seedCounter uint64) bool {
			k := DeterministicScalar([]byte("p1-g1"), seedCounter, params)
			p := DeterministicPointG1([]byte("p1-g1-point"), seedCounter, params)
			got := ScalarMulG1(k, p, params)
			want := ReferenceScalarMulG1(k, p, params)
			return got.Infinity == want.Infinity &&
				(got.Infinity || (got.X.Equal(want.X) && got.Y.Equal(want.Y)))
		},
		gen.UInt64Range(0, 10000),
	))

	result := properties.Run(gopter.ConsoleReporter(false))
	require.True(t, result, "ScalarMulG1 property check failed")
}

func TestScalarMulG2MatchesReference(t *testing.T) {
	params := LookupCurve(BN254)
	properties := gopter.NewProperties(nil)

	properties.Property("ScalarMulG2 matches reference double-and-add", prop.ForAll(
		func(seedCounter uint64) bool {
			k := DeterministicScalar([]byte("p1-g2"), seedCounter, params)
			p := DeterministicPointG2([]byte("p1-g2-point"), seedCounter, params)
			got := ScalarMulG2(k, p, params)
			want := ReferenceScalarMulG2(k, p, params)
			return got.Infinity == want.Infinity &&
				(got.Infinity || (got.X.Equal(want.X) && got.Y.Equal(want.Y)))
		},
		gen.UInt64Range(0, 2000),
	))

	result := properties.Run(gopter.ConsoleReporter(false))
	require.True(t, result, "ScalarMulG2 property check failed")
}

// TestScalarMulG1Linearity is spec §8's P2-style check: (k1+k2)*P ==
// k1*P + k2*P mod r.
func TestScalarMulG1Linearity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("ScalarMulG1 is additive in the scalar", prop.ForAll(
		func(a, b uint64) bool {
			params := LookupCurve(BN254)
			k1 := DeterministicScalar([]byte("lin-k1"), a, params)
			k2 := DeterministicScalar([]byte("lin-k2"), b, params)
			p := DeterministicPointG1([]byte("lin-point"), a^b, params)

			sum := addMod(k1, k2, params.R)
			lhs := ScalarMulG1(sum, p, params)

			r1 := ScalarMulG1(k1, p, params).ToJacobian(&params.Fp)
			r2 := ScalarMulG1(k2, p, params)
			rhs := r1.AddMixed(r2, &params.Fp).ToAffine(&params.Fp)

			return lhs.Infinity == rhs.Infinity &&
				(lhs.Infinity || (lhs.X.Equal(rhs.X) && lhs.Y.Equal(rhs.Y)))
		},
		gen.UInt64Range(0, 5000),
		gen.UInt64Range(0, 5000),
	))

	result := properties.Run(gopter.ConsoleReporter(false))
	require.True(t, result, "ScalarMulG1 linearity property failed")
}

func TestScalarMulG1WindowedMatchesUnwindowed(t *testing.T) {
	params := LookupCurve(BN254)
	seed := []byte("windowed-vs-unwindowed")
	for i := uint64(0); i < 50; i++ {
		k := DeterministicScalar(seed, i, params)
		p := DeterministicPointG1(seed, i, params)
		a := ScalarMulG1(k, p, params)
		b := ScalarMulG1WindowedM2W2(k, p, params)
		if a.Infinity != b.Infinity || (!a.Infinity && (!a.X.Equal(b.X) || !a.Y.Equal(b.Y))) {
			t.Fatalf("windowed and unwindowed results diverge at i=%d", i)
		}
	}
}

func TestScalarMulG1ZeroAndIdentity(t *testing.T) {
	params := LookupCurve(BN254)
	zero := ScalarMulG1(BigInt256{}, params.G1, params)
	if !zero.Infinity {
		t.Errorf("0*G should be the identity")
	}
	one := ScalarMulG1(BigInt256{d: [4]uint64{1, 0, 0, 0}}, params.G1, params)
	if one.Infinity || !one.X.Equal(params.G1.X) || !one.Y.Equal(params.G1.Y) {
		t.Errorf("1*G should equal G")
	}
}
