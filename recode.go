package glvmul

import "github.com/bits-and-blooms/bitset"

// Recoded is an L-digit packed bitstring, spec §9's "dedicated bitvector
// abstraction with explicit getBit/setBit" design note, concretely
// satisfied by github.com/bits-and-blooms/bitset (pulled from
// Consensys-gnark's go.mod; see DESIGN.md) rather than a raw byte slice.
type Recoded struct {
	bits *bitset.BitSet
	l    int
}

func newRecoded(l int) Recoded {
	return Recoded{bits: bitset.New(uint(l)), l: l}
}

func (r Recoded) GetBit(i int) bool { return r.bits.Test(uint(i)) }

func (r *Recoded) SetBit(i int, v bool) {
	if v {
		r.bits.Set(uint(i))
	} else {
		r.bits.Clear(uint(i))
	}
}

// GLVSAC holds the M recoded digit columns for one decomposed scalar,
// spec §4.2's GLV_SAC[M,L]: column 0 carries the sign digit at each
// position (0 => +1, 1 => -1); columns 1..M-1 carry the absolute-value bit,
// whose sign at a given position is shared with column 0 at that same
// position (spec §2 step 4, §3's GLV_SAC data model).
type GLVSAC struct {
	Cols []Recoded
	M, L int
}

// RecodeUnwindowed implements spec §4.2's GLV-SAC recoding (Faz-Hernández
// 2013, Algorithm 1, binary-digit variant). Precondition: mag[0] is odd
// (NormalizeSigns's job, called before this).
//
// Column 0: position L-1 is fixed to the sign digit 0 (+1); each lower
// position i derives its sign digit from the next-higher bit of mag[0]:
// b[0][i] = 1 - mag[0].bit(i+1).
//
// Columns 1..M-1: a shift-carry recurrence over each row's own magnitude,
// processed in ascending position order since it is sequential (shifting
// the working copy right by one bit per step): b[j][i] = k[j].bit0; shift
// k[j] right by 1; if b[j][i] and the column-0 sign bit at the same
// position i are both set, add 1 back into k[j]. This is what aligns
// row j's carry propagation with column 0's sign so the two can later be
// combined in the main loop via a single conditional negate per column.
func RecodeUnwindowed(mag []BigInt256, l int) *GLVSAC {
	m := len(mag)
	sac := &GLVSAC{Cols: make([]Recoded, m), M: m, L: l}
	for row := range sac.Cols {
		sac.Cols[row] = newRecoded(l)
	}

	sac.Cols[0].SetBit(l-1, false)
	k0 := mag[0]
	for i := 0; i <= l-2; i++ {
		bit := k0.Bit(uint(i + 1))
		sac.Cols[0].SetBit(i, bit == 0)
	}

	kj := make([]BigInt256, m)
	copy(kj, mag)
	for i := 0; i < l; i++ {
		signBit := sac.Cols[0].GetBit(i)
		for j := 1; j < m; j++ {
			bji := kj[j].Bit(0) == 1
			sac.Cols[j].SetBit(i, bji)
			kj[j] = kj[j].shiftRight1()
			if bji && signBit {
				kj[j] = kj[j].addUint64(1)
			}
		}
	}
	return sac
}

// TableIndex composes spec §4.4 step 1's secret table index for position i:
// OR together bit (b[j][i] AND 1) << (j-1) for every column j in [1, M).
func (g *GLVSAC) TableIndex(i int) uint32 {
	var idx uint32
	for j := 1; j < g.M; j++ {
		bit := uint32(uint64(NewSecretBool(g.Cols[j].GetBit(i))) & 1)
		idx |= bit << uint(j-1)
	}
	return idx
}

// SignNegative reports column 0's sign digit at position i (true => -1),
// spec §4.4 step 2c's "conditionally negate tmp if glv[0][i] = 1".
func (g *GLVSAC) SignNegative(i int) bool {
	return g.Cols[0].GetBit(i)
}
