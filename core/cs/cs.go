// core/cs/cs.go

// Package cs delegates chemical-shift prediction to an external predictor
// (UCBShift by default) and parses its per-residue prediction table.
package cs

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// Nuclei are the backbone nuclei reported per residue, in output order.
var Nuclei = []string{"H", "HA", "C", "CA", "CB", "N"}

// Prediction is one structure's predicted shifts, column-aligned with
// Res/Resname.
type Prediction struct {
	Res     []int
	Resname []string
	Shifts  map[string][]float64 // keyed by nucleus
}

// Predictor produces chemical shifts for one structure file.
type Predictor interface {
	Predict(ctx context.Context, pdbPath string, ph float64) (*Prediction, error)
}

// ExecPredictor runs an external prediction command. Command is a template
// whose fields are split on whitespace after substituting {pdb} and {ph};
// the command must write its prediction table as CSV on stdout.
type ExecPredictor struct {
	Command string
}

func (p ExecPredictor) Predict(ctx context.Context, pdbPath string, ph float64) (*Prediction, error) {
	tmpl := strings.ReplaceAll(p.Command, "{pdb}", pdbPath)
	tmpl = strings.ReplaceAll(tmpl, "{ph}", strconv.FormatFloat(ph, 'g', -1, 64))
	argv := strings.Fields(tmpl)
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty predictor command")
	}

	var out, errb bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("predictor %s: %w: %s", argv[0], err, strings.TrimSpace(errb.String()))
	}
	pred, err := ParsePrediction(&out)
	if err != nil {
		return nil, fmt.Errorf("predictor %s: %w", argv[0], err)
	}
	return pred, nil
}

// ParsePrediction reads a predictor CSV table. The header must carry
// RESNUM, RESNAME and one column per nucleus; UCBShift-style suffixed
// headers (H_UCBShift, ...) are accepted.
func ParsePrediction(r io.Reader) (*Prediction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("missing header row")
	}
	resIdx, nameIdx := -1, -1
	nucIdx := make(map[string]int, len(Nuclei))
	for i, h := range header {
		col := strings.TrimSpace(h)
		switch col {
		case "RESNUM":
			resIdx = i
			continue
		case "RESNAME":
			nameIdx = i
			continue
		}
		for _, nuc := range Nuclei {
			if col == nuc || col == nuc+"_UCBShift" {
				nucIdx[nuc] = i
			}
		}
	}
	if resIdx == -1 || nameIdx == -1 {
		return nil, fmt.Errorf("header lacks RESNUM/RESNAME columns")
	}
	for _, nuc := range Nuclei {
		if _, ok := nucIdx[nuc]; !ok {
			return nil, fmt.Errorf("header lacks %s column", nuc)
		}
	}

	pred := &Prediction{Shifts: make(map[string][]float64, len(Nuclei))}
	ln := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln+1, err)
		}
		ln++
		if len(row) <= maxIndex(resIdx, nameIdx, nucIdx) {
			return nil, fmt.Errorf("line %d: wrong field count", ln)
		}
		n, err := strconv.Atoi(strings.TrimSpace(row[resIdx]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad RESNUM: %w", ln, err)
		}
		pred.Res = append(pred.Res, n)
		pred.Resname = append(pred.Resname, strings.TrimSpace(row[nameIdx]))
		for _, nuc := range Nuclei {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[nucIdx[nuc]]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad %s value: %w", ln, nuc, err)
			}
			pred.Shifts[nuc] = append(pred.Shifts[nuc], v)
		}
	}
	if len(pred.Res) == 0 {
		return nil, fmt.Errorf("no prediction rows")
	}
	return pred, nil
}

func maxIndex(resIdx, nameIdx int, nucIdx map[string]int) int {
	max := resIdx
	if nameIdx > max {
		max = nameIdx
	}
	for _, i := range nucIdx {
		if i > max {
			max = i
		}
	}
	return max
}
