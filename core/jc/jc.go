// core/jc/jc.go

// Package jc back-calculates 3J-HNHA couplings from backbone phi torsions.
package jc

import (
	"fmt"
	"math"

	"spycipdb-core/geom"
	"spycipdb-core/structure"
)

// theta is the fixed offset between phi and the H-N-CA-HA dihedral.
const theta = math.Pi / 3

// MissingAtomError reports a residue lacking the backbone atoms needed for
// its phi torsion.
type MissingAtomError struct {
	Res  int
	Atom string
}

func (e *MissingAtomError) Error() string {
	return fmt.Sprintf("residue %d: missing backbone atom %q", e.Res, e.Atom)
}

// Phi returns the backbone phi dihedral of residue res, defined by
// C(res-1), N(res), CA(res), C(res), in radians.
func Phi(st *structure.Structure, res int) (float64, error) {
	cPrev, ok := st.FindAtom(res-1, "C")
	if !ok {
		return 0, &MissingAtomError{Res: res - 1, Atom: "C"}
	}
	n, ok := st.FindAtom(res, "N")
	if !ok {
		return 0, &MissingAtomError{Res: res, Atom: "N"}
	}
	ca, ok := st.FindAtom(res, "CA")
	if !ok {
		return 0, &MissingAtomError{Res: res, Atom: "CA"}
	}
	c, ok := st.FindAtom(res, "C")
	if !ok {
		return 0, &MissingAtomError{Res: res, Atom: "C"}
	}
	return geom.Dihedral(coord(cPrev), coord(n), coord(ca), coord(c)), nil
}

// Compute back-calculates one value per requested residue, in order:
// cos(phi - 60deg). Any residue whose phi cannot be formed (first residue,
// missing backbone atoms) fails the whole structure, keeping positional
// alignment with the template.
func Compute(resnums []int, st *structure.Structure) ([]float64, error) {
	vals := make([]float64, 0, len(resnums))
	for _, rn := range resnums {
		phi, err := Phi(st, rn)
		if err != nil {
			return nil, fmt.Errorf("resnum %d: %w", rn, err)
		}
		vals = append(vals, math.Cos(phi-theta))
	}
	return vals, nil
}

func coord(a structure.Atom) geom.Vec3 {
	return geom.Vec3{X: a.X, Y: a.Y, Z: a.Z}
}
