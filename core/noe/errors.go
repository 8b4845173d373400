// core/noe/errors.go
package noe

import "fmt"

// ResolutionError reports an atom reference that selected no atoms in the
// structure: the residue is absent, or no atom name matched.
type ResolutionError struct {
	Res  int
	Atom string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no atom matching %q in residue %d", e.Atom, e.Res)
}

// DegenerateError reports a candidate pair at identical coordinates, for
// which the r^-6 average is undefined.
type DegenerateError struct {
	Res1  int
	Atom1 string
	Res2  int
	Atom2 string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("zero distance between %d/%s and %d/%s",
		e.Res1, e.Atom1, e.Res2, e.Atom2)
}
