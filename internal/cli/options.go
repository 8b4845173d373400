// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/menoliu/SPyCi-PDB/internal/version"
)

// Options holds all flags and arguments of the NOE back-calculator.
type Options struct {
	ExpFile string
	Output  string
	Ncores  int
	Tmpdir  string
	Quiet   bool
	Version bool

	PDBs []string // positional: PDB files, folders, or a tar archive
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: NOE distance back-calculator for PDB ensembles

Back-calculates one effective distance per experimental atom pair using
r^-6 ensemble averaging, for every structure given. Output is a single
JSON document keyed by structure name, aligned to the template order.

Version: %s

Usage: %s [flags] <pdb files, folders, or tar archive>
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ExpFile, "exp-file", "", "experimental template CSV (res1,atom1,... columns) [*]")
	fs.StringVar(&opt.Output, "output", "", "output JSON path (default: stdout)")
	fs.IntVar(&opt.Ncores, "ncores", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.StringVar(&opt.Tmpdir, "tmpdir", "__tmpnoe__", "temporary directory for tar extraction")
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
