// pkg/api/format_v1.go
package api

// NOEFormatV1 is the stable JSON schema for the NOE template projection
// written under the "format" key. Keep fields, names, and types stable.
type NOEFormatV1 struct {
	Res1       []int    `json:"res1"`
	Atom1      []string `json:"atom1"`
	Atom1Multi []bool   `json:"atom1_multiple_assignments"`
	Res2       []int    `json:"res2"`
	Atom2      []string `json:"atom2"`
	Atom2Multi []bool   `json:"atom2_multiple_assignments"`
}

// CSFormatV1 is the stable schema for the chemical-shift "format" key.
type CSFormatV1 struct {
	Res     []int    `json:"res"`
	Resname []string `json:"resname"`
}

// CSShiftsV1 is one structure's predicted shifts, aligned with CSFormatV1.
type CSShiftsV1 struct {
	H  []float64 `json:"H"`
	HA []float64 `json:"HA"`
	C  []float64 `json:"C"`
	CA []float64 `json:"CA"`
	CB []float64 `json:"CB"`
	N  []float64 `json:"N"`
}
