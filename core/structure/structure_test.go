// core/structure/structure_test.go
package structure

import (
	"compress/gzip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func atomLine(serial int, name, res string, resSeq int, x, y, z float64) string {
	return fmt.Sprintf("ATOM  %5d %-4s %3s A%4d    %8.3f%8.3f%8.3f  1.00  0.00",
		serial, name, res, resSeq, x, y, z)
}

func writePDB(t *testing.T, lines ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "test.pdb")
	if err := os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestReadPDB(t *testing.T) {
	p := writePDB(t,
		"HEADER    DISORDERED PROTEIN",
		atomLine(1, "N", "ALA", 1, 1.5, -2.25, 0),
		atomLine(2, "CA", "ALA", 1, 2.5, -1.0, 0.125),
		"TER",
		atomLine(3, "HB2", "LEU", 5, 0, 0, 3),
	)
	st, err := ReadPDB(p)
	if err != nil {
		t.Fatalf("ReadPDB: %v", err)
	}
	if len(st.Atoms) != 3 {
		t.Fatalf("want 3 atoms, got %d", len(st.Atoms))
	}
	first := st.Atoms[0]
	if first.Name != "N" || first.ResSeq != 1 || first.X != 1.5 || first.Y != -2.25 {
		t.Errorf("bad first atom: %+v", first)
	}
	last := st.Atoms[2]
	if last.Name != "HB2" || last.ResSeq != 5 || last.Z != 3 {
		t.Errorf("bad last atom: %+v", last)
	}
}

func TestReadPDBGzip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "test.pdb.gz")
	fh, err := os.Create(p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(atomLine(1, "H", "ALA", 1, 0, 0, 0) + "\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	st, err := ReadPDB(p)
	if err != nil {
		t.Fatalf("ReadPDB gz: %v", err)
	}
	if len(st.Atoms) != 1 || st.Atoms[0].Name != "H" {
		t.Fatalf("bad gz parse: %+v", st.Atoms)
	}
}

func TestReadPDBMalformed(t *testing.T) {
	p := writePDB(t, "ATOM      1  N   ALA A")
	_, err := ReadPDB(p)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want *ParseError, got %v", err)
	}
	if perr.Line != 1 {
		t.Errorf("want line 1, got %d", perr.Line)
	}
}

func TestReadPDBNoAtoms(t *testing.T) {
	p := writePDB(t, "HEADER    EMPTY", "END")
	_, err := ReadPDB(p)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want *ParseError for atom-free file, got %v", err)
	}
}

func TestFindAtomExactName(t *testing.T) {
	p := writePDB(t,
		atomLine(1, "CA", "ALA", 2, 0, 0, 0),
		atomLine(2, "C", "ALA", 2, 1, 0, 0),
	)
	st, err := ReadPDB(p)
	if err != nil {
		t.Fatalf("ReadPDB: %v", err)
	}
	// "C" must not match "CA".
	at, ok := st.FindAtom(2, "C")
	if !ok || at.X != 1 {
		t.Fatalf("FindAtom(2, C) = %+v, %v", at, ok)
	}
	if _, ok := st.FindAtom(3, "C"); ok {
		t.Error("FindAtom found atom in absent residue")
	}
}

func TestStem(t *testing.T) {
	for in, want := range map[string]string{
		"/tmp/conf_001.pdb":    "conf_001",
		"/tmp/conf_001.pdb.gz": "conf_001",
		"model.pdb":            "model",
	} {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}
