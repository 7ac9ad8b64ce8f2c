package glvmul

// SignedScalar is a mini-scalar produced by the decomposer: a magnitude
// plus a sign bit, spec §4.1's output representation (mini-scalars may be
// negative; the recoder in recode.go consumes exactly this shape).
type SignedScalar struct {
	Mag BigInt256
	Neg bool
}

// Decompose splits scalar k into glv.M signed mini-scalars k[0..M-1] such
// that k = sum_i k[i] * lambda^i (mod r), each bounded to glv.L bits, via
// Babai-rounded lattice reduction (spec §4.1).
//
// Accumulation is carried out in two's-complement mod 2^256 (bigint.go's
// wraparound contract) rather than explicit sign-magnitude bookkeeping, so
// every add/subtract step is the same unconditional cadd/csub spec §4.6
// mandates; only the final sign readout (the top bit) is inspected, to
// convert the accumulator to the sign-magnitude SignedScalar the recoder
// expects.
//
// Step 3 of the algorithm requires adding or subtracting alpha_b*lattice[b][i]
// into k[i] according to the XOR of lattice[b][i]'s sign and babai[b]'s sign
// — an M=4 (GLV+GLS) decomposition built without that XOR silently produces
// mini-scalars far outside the L-bit bound even though the weaker "k
// reconstructs mod r" check still passes, since many non-canonical
// representations satisfy that congruence. The XOR is applied unconditionally
// below, including for the M=2 (G1/G2 shared) case where it happens to be a
// no-op because that table's babai signs are both positive.
func Decompose(k BigInt256, glv *GLVParams) []SignedScalar {
	m := glv.M
	kk := make([]BigInt256, m)
	kk[0] = k

	for b := 0; b < m; b++ {
		alpha := mulShiftRight(glv.Babai.Mag[b], k)
		babaiSign := NewSecretBool(glv.Babai.Sign[b])
		row := glv.Lattice[b]
		for i := 0; i < m; i++ {
			term := alpha.mulLimbWide(row.Mag[i])
			latticeSign := NewSecretBool(row.Sign[i])
			combined := SecretBool(uint64(latticeSign) ^ uint64(babaiSign))
			cadd(&kk[i], term, combined)
			csub(&kk[i], term, SecretBool(^uint64(combined)))
		}
	}

	out := make([]SignedScalar, m)
	for i := 0; i < m; i++ {
		neg := kk[i].msb() == 1
		mag := kk[i].cnegMod2to256(NewSecretBool(neg))
		out[i] = SignedScalar{Mag: mag, Neg: neg}
	}
	return out
}

// NormalizedScalars is the output of the sign normalizer (spec §2 step 3):
// M non-negative magnitudes ready for GLV-SAC recoding, with row 0 forced
// odd (the recoder's precondition), plus the per-row flags the caller needs
// to pre-negate each row's companion point and to undo the oddness bump at
// the end of the main loop.
type NormalizedScalars struct {
	Mag []BigInt256
	// NegateRow[i] reports whether row i's companion point (P itself for
	// row 0) must be negated before it enters the lookup-table builder,
	// carrying forward Decompose's own per-row sign.
	NegateRow []bool
	// Row0WasEven records whether Mag[0] was even before being bumped to
	// odd, so the main loop's final correction (spec §4.4 step 3) knows
	// whether to undo the bump.
	Row0WasEven bool
}

// NormalizeSigns implements spec §2 step 3: the recoder requires mini[0]
// to be odd, and treats every row's magnitude as non-negative, so a row's
// own sign (Decompose's SignedScalar.Neg) is absorbed into which point
// (P or -P, phi_i(P) or -phi_i(P)) gets fed into the lookup table instead
// of being carried through the recoding itself.
func NormalizeSigns(mini []SignedScalar) NormalizedScalars {
	m := len(mini)
	out := NormalizedScalars{
		Mag:       make([]BigInt256, m),
		NegateRow: make([]bool, m),
	}
	for i, ms := range mini {
		out.Mag[i] = ms.Mag
		out.NegateRow[i] = ms.Neg
	}
	wasEven := out.Mag[0].Bit(0) == 0
	out.Row0WasEven = wasEven
	cadd(&out.Mag[0], BigInt256{d: [4]uint64{1, 0, 0, 0}}, NewSecretBool(wasEven))
	return out
}

// mulLimbWide computes the low 256 bits of a*b — the decomposer only ever
// needs alpha*latticeEntry truncated to 256 bits since the final mini-scalar
// is guaranteed (spec §7) to fit the configured bit width even though this
// intermediate product can nominally exceed it.
func (a BigInt256) mulLimbWide(b BigInt256) BigInt256 {
	wide := mulWide(a, b)
	return BigInt256{d: [4]uint64{wide[0], wide[1], wide[2], wide[3]}}
}
