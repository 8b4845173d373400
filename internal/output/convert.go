// internal/output/convert.go
package output

import (
	"spycipdb-core/cs"
	"spycipdb-core/template"

	"github.com/menoliu/SPyCi-PDB/pkg/api"
)

// ToNOEFormatV1 converts the template projection to the stable wire schema.
func ToNOEFormatV1(f template.Format) api.NOEFormatV1 {
	return api.NOEFormatV1{
		Res1:       f.Res1,
		Atom1:      f.Atom1,
		Atom1Multi: f.Multi1,
		Res2:       f.Res2,
		Atom2:      f.Atom2,
		Atom2Multi: f.Multi2,
	}
}

// ToCSFormatV1 extracts the residue columns of a prediction.
func ToCSFormatV1(p *cs.Prediction) api.CSFormatV1 {
	return api.CSFormatV1{Res: p.Res, Resname: p.Resname}
}

// ToCSShiftsV1 extracts the per-nucleus columns of a prediction.
func ToCSShiftsV1(p *cs.Prediction) api.CSShiftsV1 {
	return api.CSShiftsV1{
		H:  p.Shifts["H"],
		HA: p.Shifts["HA"],
		C:  p.Shifts["C"],
		CA: p.Shifts["CA"],
		CB: p.Shifts["CB"],
		N:  p.Shifts["N"],
	}
}
