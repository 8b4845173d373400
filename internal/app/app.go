// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"spycipdb-core/noe"
	"spycipdb-core/structure"
	"spycipdb-core/template"

	"github.com/menoliu/SPyCi-PDB/internal/appcore"
	"github.com/menoliu/SPyCi-PDB/internal/cli"
	"github.com/menoliu/SPyCi-PDB/internal/output"
	"github.com/menoliu/SPyCi-PDB/internal/paths"
	"github.com/menoliu/SPyCi-PDB/internal/pipeline"
	"github.com/menoliu/SPyCi-PDB/internal/version"
)

// RunContext is the NOE back-calculator entrypoint. Exit codes follow the
// house convention: 0 ok, 2 usage/input error, 3 runtime failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("spycipdb-noe")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "spycipdb-noe version %s\n", version.Version)
		return 0
	}

	// The template is parsed once, before any structure work: a broken
	// template invalidates the whole batch's output format.
	recs, err := template.LoadCSV(opts.ExpFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	set, err := paths.Resolve(opts.PDBs, opts.Tmpdir)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	defer func() { _ = set.Cleanup() }()

	results := pipeline.Map(parent, pipeline.Config{Workers: opts.Ncores}, set.Paths,
		func(_ context.Context, path string) ([]float64, error) {
			st, err := structure.ReadPDB(path)
			if err != nil {
				return nil, err
			}
			return noe.Compute(recs, st)
		})

	doc, err := output.NewDocument(output.ToNOEFormatV1(template.Project(recs)))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", structure.Stem(r.Path), r.Err)
			continue
		}
		if err := doc.Set(structure.Stem(r.Path), r.Output); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 3
		}
	}

	if err := appcore.Emit(doc, opts.Output, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}
	return appcore.ExitCode(len(results), failed)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
