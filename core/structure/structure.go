// core/structure/structure.go
package structure

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// Atom is one ATOM record from a PDB file. Coordinates are in Angstrom,
// exactly as written in the file.
type Atom struct {
	ResSeq  int
	Name    string
	X, Y, Z float64
}

// Structure is the flat, file-ordered atom table of one PDB file.
//
// The table is deliberately not indexed: residue numbers are not guaranteed
// contiguous or sorted, and the NOE resolver depends on scanning atoms in
// file order.
type Structure struct {
	Path  string
	Atoms []Atom
}

// ParseError reports a malformed structure file.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// ReadPDB parses the ATOM records of a PDB file into a Structure.
// Gzipped input is detected by magic number or a .gz suffix.
func ReadPDB(path string) (*Structure, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return parse(path, rc)
}

func parse(path string, r io.Reader) (*Structure, error) {
	st := &Structure{Path: path}

	br := bufio.NewReaderSize(r, 1024)
	ln := 0
	for {
		line, _, err := br.ReadLine()
		if err == io.EOF && len(line) == 0 {
			break
		} else if err != nil && err != io.EOF {
			return nil, &ParseError{Path: path, Line: ln + 1, Msg: err.Error()}
		}
		ln++

		if cols(line, 1, 6) != "ATOM" {
			continue
		}
		if len(line) < 54 {
			return nil, &ParseError{Path: path, Line: ln, Msg: "truncated ATOM record"}
		}
		at := Atom{Name: cols(line, 13, 16)}
		if at.ResSeq, err = atoi(line, 23, 26); err != nil {
			return nil, &ParseError{Path: path, Line: ln, Msg: "bad residue number: " + err.Error()}
		}
		if at.X, err = atof(line, 31, 38); err != nil {
			return nil, &ParseError{Path: path, Line: ln, Msg: "bad x coordinate: " + err.Error()}
		}
		if at.Y, err = atof(line, 39, 46); err != nil {
			return nil, &ParseError{Path: path, Line: ln, Msg: "bad y coordinate: " + err.Error()}
		}
		if at.Z, err = atof(line, 47, 54); err != nil {
			return nil, &ParseError{Path: path, Line: ln, Msg: "bad z coordinate: " + err.Error()}
		}
		st.Atoms = append(st.Atoms, at)
	}

	if len(st.Atoms) == 0 {
		return nil, &ParseError{Path: path, Msg: "no ATOM records"}
	}
	return st, nil
}

// FindAtom returns the first atom of residue res whose name equals name
// exactly. It is the lookup used for backbone atoms, where substring
// matching would confuse C with CA.
func (st *Structure) FindAtom(res int, name string) (Atom, bool) {
	for _, at := range st.Atoms {
		if at.ResSeq == res && at.Name == name {
			return at, true
		}
	}
	return Atom{}, false
}

// Stem returns the structure identifier used in output documents:
// the base file name without .pdb/.gz extensions.
func Stem(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, ".pdb")
}

// cols returns the trimmed text in PDB columns start..end (1-based,
// inclusive), or "" when the line is too short.
func cols(line []byte, start, end int) string {
	rs, re := start-1, end
	if rs < 0 || rs >= len(line) {
		return ""
	}
	if re > len(line) {
		re = len(line)
	}
	return string(bytes.TrimSpace(line[rs:re]))
}

func atoi(line []byte, start, end int) (int, error) {
	return strconv.Atoi(cols(line, start, end))
}

func atof(line []byte, start, end int) (float64, error) {
	return strconv.ParseFloat(cols(line, start, end), 64)
}
