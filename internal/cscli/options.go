// internal/cscli/options.go
package cscli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/menoliu/SPyCi-PDB/internal/version"
)

// Options holds all flags and arguments of the chemical-shift runner.
type Options struct {
	Cmd     string
	PH      float64
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
			`%s: chemical-shift back-calculator (external predictor)

Runs a UCBShift-style predictor once per structure and collects its
per-residue H/HA/C/CA/CB/N predictions into one JSON document.

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

	fs.StringVar(&opt.Cmd, "cmd", "", "predictor command; {pdb} and {ph} are substituted [*]")
	fs.Float64Var(&opt.PH, "ph", 5, "pH considered during prediction [5]")
	fs.StringVar(&opt.Output, "output", "", "output JSON path (default: stdout)")
	fs.IntVar(&opt.Ncores, "ncores", 1, "number of predictor processes (0 = all CPUs) [1]")
	fs.StringVar(&opt.Tmpdir, "tmpdir", "__tmpcs__", "temporary directory for tar extraction")
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

	if opt.Cmd == "" {
		return opt, errors.New("--cmd is required")
	}
	if len(opt.PDBs) == 0 {
		return opt, errors.New("at least one PDB file, folder, or tar archive is required")
	}
	if opt.Ncores < 0 {
		return opt, errors.New("--ncores must be >= 0")
	}
	return opt, nil
}
