// internal/jccli/options.go
package jccli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/menoliu/SPyCi-PDB/internal/version"
)

// Options holds all flags and arguments of the J-coupling back-calculator.
type Options struct {
	ExpFile string
	Output  string
	Ncores  int
	Tmpdir  string
	Quiet   bool
	Version bool

	PDBs []string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: 3J-HNHA coupling back-calculator for PDB ensembles

Computes cos(phi - 60 deg) from the backbone phi torsion of each residue
named in the experimental template.

Version: %s

Usage: %s [flags] <pdb files, folders, or tar archive>
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ExpFile, "exp-file", "", "experimental template CSV with a resnum column [*]")
	fs.StringVar(&opt.Output, "output", "", "output JSON path (default: stdout)")
	fs.IntVar(&opt.Ncores, "ncores", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.StringVar(&opt.Tmpdir, "tmpdir", "__tmpjc__", "temporary directory for tar extraction")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.PDBs = fs.Args()

	if opt.ExpFile == "" {
		return opt, errors.New("--exp-file is required")
	}
	if len(opt.PDBs) == 0 {
		return opt, errors.New("at least one PDB file, folder, or tar archive is required")
	}
	if opt.Ncores < 0 {
		return opt, errors.New("--ncores must be >= 0")
	}
	return opt, nil
}
