package glvmul

import sha256simd "github.com/minio/sha256-simd"

// DeterministicScalar derives a reproducible pseudo-random scalar mod r
// from a seed and counter, using the same minio/sha256-simd dependency the
// teacher pulls in for its BIP-340 tagged-hash nonce derivation (hash.go),
// repurposed here to give the gopter property tests (scalarmul_test.go)
// reproducible random inputs without crypto/rand's non-determinism.
func DeterministicScalar(seed []byte, counter uint64, params *CurveParams) BigInt256 {
	h := sha256simd.New()
	h.Write(seed)
	var ctr [8]byte
	for i := 0; i < 8; i++ {
		ctr[i] = byte(counter >> (8 * i))
	}
	h.Write(ctr[:])
	digest := h.Sum(nil)

	var v BigInt256
	v.SetBytes(digest)
	for v.cmp(params.R) >= 0 {
		v = v.sub(params.R)
	}
	return v
}

// DeterministicPointG1 derives a reproducible pseudo-random G1 point by
// scalar-multiplying the registered generator with a deterministic scalar
// — every test point is therefore guaranteed to be a genuine subgroup
// member, avoiding the need for a hash-to-curve implementation (out of
// this spec's scope).
func DeterministicPointG1(seed []byte, counter uint64, params *CurveParams) PointG1Affine {
	k := DeterministicScalar(seed, counter, params)
	return ReferenceScalarMulG1(k, params.G1, params)
}

func DeterministicPointG2(seed []byte, counter uint64, params *CurveParams) PointG2Affine {
	k := DeterministicScalar(seed, counter, params)
	return ReferenceScalarMulG2(k, params.G2, params)
}
