// internal/jcapp/app.go
package jcapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"spycipdb-core/jc"
	"spycipdb-core/structure"
	"spycipdb-core/template"

	"github.com/menoliu/SPyCi-PDB/internal/appcore"
	"github.com/menoliu/SPyCi-PDB/internal/jccli"
	"github.com/menoliu/SPyCi-PDB/internal/output"
	"github.com/menoliu/SPyCi-PDB/internal/paths"
	"github.com/menoliu/SPyCi-PDB/internal/pipeline"
	"github.com/menoliu/SPyCi-PDB/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := jccli.NewFlagSet("spycipdb-jc")
	fs.SetOutput(io.Discard)

	opts, err := jccli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "spycipdb-jc version %s\n", version.Version)
		return 0
	}

	resnums, err := template.LoadResnums(opts.ExpFile)
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
			return jc.Compute(resnums, st)
		})

	doc, err := output.NewDocument(resnums)
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
