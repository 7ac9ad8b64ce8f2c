package glvmul

// PointG1Affine / PointG1Jacobian mirror the teacher's
// GroupElementAffine/GroupElementJacobian split (group.go) but over the
// generic Fp of the registered curve rather than a hardwired secp256k1
// FieldElement, and specialized to the a=0 short-Weierstrass form BN254
// uses (y^2 = x^3 + B1) rather than secp256k1's a=0,b=7.
type PointG1Affine struct {
	X, Y     Fp
	Infinity bool
}

type PointG1Jacobian struct {
	X, Y, Z  Fp
	Infinity bool
}

func (a PointG1Affine) ToJacobian(fp *FieldParams) PointG1Jacobian {
	if a.Infinity {
		return PointG1Jacobian{Y: FpFromUint64(1, fp), Infinity: true}
	}
	return PointG1Jacobian{X: a.X, Y: a.Y, Z: FpFromUint64(1, fp), Infinity: false}
}

// ToAffine converts out of Jacobian coordinates. Not constant-time (one
// field inversion, data-dependent on Z==0) — used only at boundaries
// (test assertions, final output), matching spec §4.6's scope for cmov
// contracts (the affine conversion at the very end of the main loop is
// explicitly allowed to be a normal, non-secret-dependent step once the
// scalar has already been fully consumed).
func (j PointG1Jacobian) ToAffine(fp *FieldParams) PointG1Affine {
	if j.Infinity || j.Z.IsZero() {
		return PointG1Affine{Infinity: true}
	}
	zInv := j.Z.Inv(fp)
	zInv2 := zInv.Sqr(fp)
	zInv3 := zInv2.Mul(zInv, fp)
	return PointG1Affine{X: j.X.Mul(zInv2, fp), Y: j.Y.Mul(zInv3, fp)}
}

func (j PointG1Jacobian) Neg(fp *FieldParams) PointG1Jacobian {
	return PointG1Jacobian{X: j.X, Y: j.Y.Neg(fp), Z: j.Z, Infinity: j.Infinity}
}

// Double implements the standard a=0 Jacobian doubling formula (dbl-2009-l),
// the same operation count shape as the teacher's group.go doubleJacobian
// generalized off secp256k1's a=0 special case (BN254 also has a=0, so the
// same simplified formula applies without change).
func (j PointG1Jacobian) Double(fp *FieldParams) PointG1Jacobian {
	if j.Infinity || j.Y.IsZero() {
		return PointG1Jacobian{Infinity: true}
	}
	a := j.X.Sqr(fp)
	b := j.Y.Sqr(fp)
	c := b.Sqr(fp)
	xb := j.X.Add(b, fp).Sqr(fp)
	d := xb.Sub(a, fp).Sub(c, fp)
	d = d.Add(d, fp)
	e := a.Add(a, fp).Add(a, fp)
	f := e.Sqr(fp)
	x3 := f.Sub(d.Add(d, fp), fp)
	eightC := c.Add(c, fp).Add(c, fp).Add(c, fp).Add(c, fp).Add(c, fp).Add(c, fp).Add(c, fp)
	y3 := e.Mul(d.Sub(x3, fp), fp).Sub(eightC, fp)
	z3 := j.Y.Mul(j.Z, fp)
	z3 = z3.Add(z3, fp)
	return PointG1Jacobian{X: x3, Y: y3, Z: z3}
}

// AddMixed adds an affine point q into Jacobian p (madd-2007-bl shape),
// grounded on group.go's addJacobianAffine.
func (p PointG1Jacobian) AddMixed(q PointG1Affine, fp *FieldParams) PointG1Jacobian {
	if p.Infinity {
		return q.ToJacobian(fp)
	}
	if q.Infinity {
		return p
	}
	z1z1 := p.Z.Sqr(fp)
	u2 := q.X.Mul(z1z1, fp)
	s2 := q.Y.Mul(p.Z, fp).Mul(z1z1, fp)
	h := u2.Sub(p.X, fp)
	if h.IsZero() {
		if s2.Equal(p.Y) {
			return p.Double(fp)
		}
		return PointG1Jacobian{Infinity: true}
	}
	hh := h.Sqr(fp)
	i := hh.Add(hh, fp).Add(hh, fp).Add(hh, fp)
	j := h.Mul(i, fp)
	r := s2.Sub(p.Y, fp).Add(s2.Sub(p.Y, fp), fp)
	v := p.X.Mul(i, fp)
	x3 := r.Sqr(fp).Sub(j, fp).Sub(v.Add(v, fp), fp)
	y3 := r.Mul(v.Sub(x3, fp), fp).Sub(p.Y.Mul(j, fp).Add(p.Y.Mul(j, fp), fp), fp)
	z3 := p.Z.Add(h, fp).Sqr(fp).Sub(z1z1, fp).Sub(hh, fp)
	return PointG1Jacobian{X: x3, Y: y3, Z: z3}
}

func (p PointG1Jacobian) Add(q PointG1Jacobian, fp *FieldParams) PointG1Jacobian {
	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}
	z1z1 := p.Z.Sqr(fp)
	z2z2 := q.Z.Sqr(fp)
	u1 := p.X.Mul(z2z2, fp)
	u2 := q.X.Mul(z1z1, fp)
	s1 := p.Y.Mul(q.Z, fp).Mul(z2z2, fp)
	s2 := q.Y.Mul(p.Z, fp).Mul(z1z1, fp)
	h := u2.Sub(u1, fp)
	rr := s2.Sub(s1, fp)
	if h.IsZero() {
		if rr.IsZero() {
			return p.Double(fp)
		}
		return PointG1Jacobian{Infinity: true}
	}
	hh := h.Sqr(fp)
	hhh := h.Mul(hh, fp)
	v := u1.Mul(hh, fp)
	x3 := rr.Sqr(fp).Sub(hhh, fp).Sub(v.Add(v, fp), fp)
	y3 := rr.Mul(v.Sub(x3, fp), fp).Sub(s1.Mul(hhh, fp), fp)
	z3 := p.Z.Mul(q.Z, fp).Mul(h, fp)
	return PointG1Jacobian{X: x3, Y: y3, Z: z3}
}

// BatchToAffine converts a slice of Jacobian points to affine using a
// single shared inversion via BatchInvert — the LUT builder's main use
// (spec §4.3 calls for exactly this shape of batch conversion).
func BatchToAffine(pts []PointG1Jacobian, fp *FieldParams) []PointG1Affine {
	out := make([]PointG1Affine, len(pts))
	zs := make([]Fp, len(pts))
	for i, p := range pts {
		if p.Infinity || p.Z.IsZero() {
			zs[i] = FpFromUint64(1, fp)
		} else {
			zs[i] = p.Z
		}
	}
	BatchInvert(zs, fp)
	for i, p := range pts {
		if p.Infinity || p.Z.IsZero() {
			out[i] = PointG1Affine{Infinity: true}
			continue
		}
		zInv2 := zs[i].Sqr(fp)
		zInv3 := zInv2.Mul(zs[i], fp)
		out[i] = PointG1Affine{X: p.X.Mul(zInv2, fp), Y: p.Y.Mul(zInv3, fp)}
	}
	return out
}

// PointG2Affine / PointG2Jacobian are the Fp2 analogues, backing the
// sextic-twist G2 group. Arithmetic mirrors PointG1Jacobian's structure
// exactly (Fp2 is a drop-in ring here), grounded on the same group.go
// doubling/addition shapes generalized one field-extension level up.
type PointG2Affine struct {
	X, Y     Fp2
	Infinity bool
}

type PointG2Jacobian struct {
	X, Y, Z  Fp2
	Infinity bool
}

func (a PointG2Affine) ToJacobian(fp *FieldParams) PointG2Jacobian {
	one := Fp2{A0: FpFromUint64(1, fp), A1: FpFromUint64(0, fp)}
	if a.Infinity {
		return PointG2Jacobian{Y: one, Infinity: true}
	}
	return PointG2Jacobian{X: a.X, Y: a.Y, Z: one, Infinity: false}
}

func (j PointG2Jacobian) ToAffine(fp *FieldParams) PointG2Affine {
	if j.Infinity || j.Z.IsZero() {
		return PointG2Affine{Infinity: true}
	}
	zInv := j.Z.Inverse(fp)
	zInv2 := zInv.Sqr(fp)
	zInv3 := zInv2.Mul(zInv, fp)
	return PointG2Affine{X: j.X.Mul(zInv2, fp), Y: j.Y.Mul(zInv3, fp)}
}

func (j PointG2Jacobian) Neg(fp *FieldParams) PointG2Jacobian {
	return PointG2Jacobian{X: j.X, Y: j.Y.Neg(fp), Z: j.Z, Infinity: j.Infinity}
}

func (j PointG2Jacobian) Double(fp *FieldParams) PointG2Jacobian {
	if j.Infinity || j.Y.IsZero() {
		return PointG2Jacobian{Infinity: true}
	}
	a := j.X.Sqr(fp)
	b := j.Y.Sqr(fp)
	c := b.Sqr(fp)
	xb := j.X.Add(b, fp).Sqr(fp)
	d := xb.Sub(a, fp).Sub(c, fp)
	d = d.Add(d, fp)
	e := a.Add(a, fp).Add(a, fp)
	f := e.Sqr(fp)
	x3 := f.Sub(d.Add(d, fp), fp)
	eightC := c.Add(c, fp).Add(c, fp).Add(c, fp).Add(c, fp).Add(c, fp).Add(c, fp).Add(c, fp)
	y3 := e.Mul(d.Sub(x3, fp), fp).Sub(eightC, fp)
	z3 := j.Y.Mul(j.Z, fp)
	z3 = z3.Add(z3, fp)
	return PointG2Jacobian{X: x3, Y: y3, Z: z3}
}

func (p PointG2Jacobian) AddMixed(q PointG2Affine, fp *FieldParams) PointG2Jacobian {
	if p.Infinity {
		return q.ToJacobian(fp)
	}
	if q.Infinity {
		return p
	}
	z1z1 := p.Z.Sqr(fp)
	u2 := q.X.Mul(z1z1, fp)
	s2 := q.Y.Mul(p.Z, fp).Mul(z1z1, fp)
	h := u2.Sub(p.X, fp)
	if h.IsZero() {
		if s2.Equal(p.Y) {
			return p.Double(fp)
		}
		return PointG2Jacobian{Infinity: true}
	}
	hh := h.Sqr(fp)
	i := hh.Add(hh, fp).Add(hh, fp).Add(hh, fp)
	j := h.Mul(i, fp)
	r := s2.Sub(p.Y, fp).Add(s2.Sub(p.Y, fp), fp)
	v := p.X.Mul(i, fp)
	x3 := r.Sqr(fp).Sub(j, fp).Sub(v.Add(v, fp), fp)
	y3 := r.Mul(v.Sub(x3, fp), fp).Sub(p.Y.Mul(j, fp).Add(p.Y.Mul(j, fp), fp), fp)
	z3 := p.Z.Add(h, fp).Sqr(fp).Sub(z1z1, fp).Sub(hh, fp)
	return PointG2Jacobian{X: x3, Y: y3, Z: z3}
}

func (p PointG2Jacobian) Add(q PointG2Jacobian, fp *FieldParams) PointG2Jacobian {
	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}
	z1z1 := p.Z.Sqr(fp)
	z2z2 := q.Z.Sqr(fp)
	u1 := p.X.Mul(z2z2, fp)
	u2 := q.X.Mul(z1z1, fp)
	s1 := p.Y.Mul(q.Z, fp).Mul(z2z2, fp)
	s2 := q.Y.Mul(p.Z, fp).Mul(z1z1, fp)
	h := u2.Sub(u1, fp)
	rr := s2.Sub(s1, fp)
	if h.IsZero() {
		if rr.IsZero() {
			return p.Double(fp)
		}
		return PointG2Jacobian{Infinity: true}
	}
	hh := h.Sqr(fp)
	hhh := h.Mul(hh, fp)
	v := u1.Mul(hh, fp)
	x3 := rr.Sqr(fp).Sub(hhh, fp).Sub(v.Add(v, fp), fp)
	y3 := rr.Mul(v.Sub(x3, fp), fp).Sub(s1.Mul(hhh, fp), fp)
	z3 := p.Z.Mul(q.Z, fp).Mul(h, fp)
	return PointG2Jacobian{X: x3, Y: y3, Z: z3}
}
