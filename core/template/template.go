// core/template/template.go
package template

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one row of the experimental NOE template: an atom-pair
// reference with per-side ambiguity flags.
type Record struct {
	Res1   int
	Atom1  string
	Multi1 bool
	Res2   int
	Atom2  string
	Multi2 bool
}

// Format is the column projection of the template, emitted once per batch
// under the "format" key so downstream consumers can align predictions
// positionally.
type Format struct {
	Res1   []int
	Atom1  []string
	Multi1 []bool
	Res2   []int
	Atom2  []string
	Multi2 []bool
}

// FormatError reports a template that cannot define the batch output
// format. It is always fatal: every structure in the batch shares the
// template's row order.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// Columns required in an NOE template, in canonical order.
var noeColumns = []string{
	"res1", "atom1", "atom1_multiple_assignments",
	"res2", "atom2", "atom2_multiple_assignments",
}

// LoadCSV reads the comma-delimited experimental template. The header must
// contain the six required columns; extra columns are tolerated. Residue
// numbers are not validated against any structure here.
func LoadCSV(path string) ([]Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	cr := newReader(fh)
	header, err := cr.Read()
	if err != nil {
		return nil, &FormatError{Path: path, Line: 1, Msg: "missing header row"}
	}
	idx, err := columnIndex(path, header, noeColumns)
	if err != nil {
		return nil, err
	}

	var recs []Record
	ln := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &FormatError{Path: path, Line: ln + 1, Msg: err.Error()}
		}
		ln++
		if err := checkWidth(path, ln, row, idx); err != nil {
			return nil, err
		}
		var r Record
		if r.Res1, err = strconv.Atoi(strings.TrimSpace(row[idx[0]])); err != nil {
			return nil, &FormatError{Path: path, Line: ln, Msg: "bad res1: " + err.Error()}
		}
		r.Atom1 = strings.TrimSpace(row[idx[1]])
		if r.Multi1, err = parseBool(row[idx[2]]); err != nil {
			return nil, &FormatError{Path: path, Line: ln, Msg: "bad atom1_multiple_assignments: " + err.Error()}
		}
		if r.Res2, err = strconv.Atoi(strings.TrimSpace(row[idx[3]])); err != nil {
			return nil, &FormatError{Path: path, Line: ln, Msg: "bad res2: " + err.Error()}
		}
		r.Atom2 = strings.TrimSpace(row[idx[4]])
		if r.Multi2, err = parseBool(row[idx[5]]); err != nil {
			return nil, &FormatError{Path: path, Line: ln, Msg: "bad atom2_multiple_assignments: " + err.Error()}
		}
		recs = append(recs, r)
	}
	if len(recs) == 0 {
		return nil, &FormatError{Path: path, Msg: "no records"}
	}
	return recs, nil
}

// LoadResnums reads a template carrying only a resnum column (J-coupling).
func LoadResnums(path string) ([]int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	cr := newReader(fh)
	header, err := cr.Read()
	if err != nil {
		return nil, &FormatError{Path: path, Line: 1, Msg: "missing header row"}
	}
	idx, err := columnIndex(path, header, []string{"resnum"})
	if err != nil {
		return nil, err
	}

	var nums []int
	ln := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &FormatError{Path: path, Line: ln + 1, Msg: err.Error()}
		}
		ln++
		if err := checkWidth(path, ln, row, idx); err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(row[idx[0]]))
		if err != nil {
			return nil, &FormatError{Path: path, Line: ln, Msg: "bad resnum: " + err.Error()}
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil, &FormatError{Path: path, Msg: "no records"}
	}
	return nums, nil
}

// Project builds the format projection from the ordered records.
func Project(recs []Record) Format {
	f := Format{
		Res1:   make([]int, len(recs)),
		Atom1:  make([]string, len(recs)),
		Multi1: make([]bool, len(recs)),
		Res2:   make([]int, len(recs)),
		Atom2:  make([]string, len(recs)),
		Multi2: make([]bool, len(recs)),
	}
	for i, r := range recs {
		f.Res1[i], f.Atom1[i], f.Multi1[i] = r.Res1, r.Atom1, r.Multi1
		f.Res2[i], f.Atom2[i], f.Multi2[i] = r.Res2, r.Atom2, r.Multi2
	}
	return f
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// columnIndex maps the required column names to their header positions.
// All required columns must be present.
func columnIndex(path string, header, required []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	idx := make([]int, len(required))
	var missing []string
	for i, name := range required {
		j, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		idx[i] = j
	}
	if len(missing) > 0 {
		return nil, &FormatError{
			Path: path,
			Line: 1,
			Msg:  "missing required column(s): " + strings.Join(missing, ", "),
		}
	}
	return idx, nil
}

// checkWidth rejects rows too short to hold every required column.
func checkWidth(path string, line int, row []string, idx []int) error {
	for _, j := range idx {
		if j >= len(row) {
			return &FormatError{Path: path, Line: line, Msg: "wrong field count"}
		}
	}
	return nil
}

// parseBool accepts the spellings pandas writes for boolean columns.
func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}
