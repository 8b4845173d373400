// core/template/template_test.go
package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "exp.csv")
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadCSV(t *testing.T) {
	p := writeCSV(t, `res1,atom1,atom1_multiple_assignments,res2,atom2,atom2_multiple_assignments
1,H,False,5,HA,False
2,HB,True,7,H,False
`)
	recs, err := LoadCSV(p)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	want := Record{Res1: 2, Atom1: "HB", Multi1: true, Res2: 7, Atom2: "H"}
	if recs[1] != want {
		t.Errorf("record 1 = %+v, want %+v", recs[1], want)
	}
}

func TestLoadCSVExtraColumnsTolerated(t *testing.T) {
	p := writeCSV(t, `dist_value,res1,atom1,atom1_multiple_assignments,res2,atom2,atom2_multiple_assignments
3.2,1,H,False,5,HA,False
`)
	recs, err := LoadCSV(p)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if recs[0].Res1 != 1 || recs[0].Atom2 != "HA" {
		t.Errorf("bad record with extra column: %+v", recs[0])
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	p := writeCSV(t, `res1,atom1,res2,atom2
1,H,5,HA
`)
	_, err := LoadCSV(p)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("want *FormatError, got %v", err)
	}
}

func TestLoadCSVBadValue(t *testing.T) {
	p := writeCSV(t, `res1,atom1,atom1_multiple_assignments,res2,atom2,atom2_multiple_assignments
one,H,False,5,HA,False
`)
	_, err := LoadCSV(p)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("want *FormatError, got %v", err)
	}
	if ferr.Line != 2 {
		t.Errorf("want line 2, got %d", ferr.Line)
	}
}

func TestProjectPreservesOrder(t *testing.T) {
	recs := []Record{
		{Res1: 3, Atom1: "HG", Multi1: true, Res2: 9, Atom2: "H"},
		{Res1: 1, Atom1: "H", Res2: 5, Atom2: "HA"},
	}
	f := Project(recs)
	if len(f.Res1) != 2 || f.Res1[0] != 3 || f.Res1[1] != 1 {
		t.Fatalf("bad res1 projection: %v", f.Res1)
	}
	if !f.Multi1[0] || f.Multi1[1] {
		t.Fatalf("bad multi1 projection: %v", f.Multi1)
	}
	if f.Atom2[0] != "H" || f.Atom2[1] != "HA" {
		t.Fatalf("bad atom2 projection: %v", f.Atom2)
	}
}

func TestLoadResnums(t *testing.T) {
	p := writeCSV(t, "resnum\n2\n3\n7\n")
	nums, err := LoadResnums(p)
	if err != nil {
		t.Fatalf("LoadResnums: %v", err)
	}
	if len(nums) != 3 || nums[0] != 2 || nums[2] != 7 {
		t.Fatalf("bad resnums: %v", nums)
	}
}

func TestLoadResnumsMissingColumn(t *testing.T) {
	p := writeCSV(t, "residue\n2\n")
	_, err := LoadResnums(p)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("want *FormatError, got %v", err)
	}
}
