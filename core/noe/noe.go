// core/noe/noe.go

// Package noe back-calculates NOE distances from a parsed structure and an
// experimental atom-pair template.
//
// Each experimental record names two atoms, either of which may carry a
// multiple-assignments flag (methyl protons, degenerate pseudoatoms). The
// resolver turns each side into a candidate set of one or two atoms; the
// candidate pairs are then combined with the NMR-standard r^-6 ensemble
// average into a single effective distance per record.
package noe

import (
	"fmt"
	"math"
	"strings"

	"spycipdb-core/geom"
	"spycipdb-core/structure"
	"spycipdb-core/template"
)

// Resolve selects the candidate atoms for one side of an experimental
// record. Atoms are scanned in file order, filtered to res:
//
//   - name "H" (the amide proton) takes the first atom of the residue and
//     stops, regardless of the ambiguity flag;
//   - otherwise any atom whose name contains name as a substring is a
//     candidate ("HB" matches HB2/HB3);
//   - scanning stops at two candidates, or at one when ambiguous is false.
//
// An empty candidate set is a *ResolutionError, never a silent skip.
func Resolve(st *structure.Structure, res int, name string, ambiguous bool) ([]structure.Atom, error) {
	var set []structure.Atom
	for _, at := range st.Atoms {
		if at.ResSeq != res {
			continue
		}
		if name == "H" {
			set = append(set, at)
			break
		}
		if strings.Contains(at.Name, name) {
			set = append(set, at)
		}
		if len(set) == 2 {
			break
		}
		if !ambiguous && len(set) == 1 {
			break
		}
	}
	if len(set) == 0 {
		return nil, &ResolutionError{Res: res, Atom: name}
	}
	return set, nil
}

// Average combines two candidate sets into one effective distance: the
// arithmetic mean of r^-6 over the Cartesian product of the sets, raised
// to -1/6. With singleton sets this reduces to the plain Euclidean
// distance.
func Average(a, b []structure.Atom) (float64, error) {
	var sum float64
	n := 0
	for _, p := range a {
		for _, q := range b {
			d := geom.Dist(coord(p), coord(q))
			if d == 0 {
				return 0, &DegenerateError{
					Res1: p.ResSeq, Atom1: p.Name,
					Res2: q.ResSeq, Atom2: q.Name,
				}
			}
			sum += math.Pow(d, -6)
			n++
		}
	}
	return math.Pow(sum/float64(n), -1.0/6.0), nil
}

// Compute back-calculates one distance per experimental record, in record
// order. It is a pure function of its inputs; the caller may invoke it
// concurrently for different structures.
//
// The first record that fails aborts the structure: a partial prediction
// list cannot keep the positional alignment the output format promises.
// The returned error names the failing record.
func Compute(recs []template.Record, st *structure.Structure) ([]float64, error) {
	dist := make([]float64, 0, len(recs))
	for i, r := range recs {
		a, err := Resolve(st, r.Res1, r.Atom1, r.Multi1)
		if err != nil {
			return nil, recordErr(i, r, err)
		}
		b, err := Resolve(st, r.Res2, r.Atom2, r.Multi2)
		if err != nil {
			return nil, recordErr(i, r, err)
		}
		d, err := Average(a, b)
		if err != nil {
			return nil, recordErr(i, r, err)
		}
		dist = append(dist, d)
	}
	return dist, nil
}

func recordErr(i int, r template.Record, err error) error {
	return fmt.Errorf("record %d (%d/%s - %d/%s): %w",
		i, r.Res1, r.Atom1, r.Res2, r.Atom2, err)
}

func coord(a structure.Atom) geom.Vec3 {
	return geom.Vec3{X: a.X, Y: a.Y, Z: a.Z}
}
