// internal/csapp/app.go
package csapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"spycipdb-core/cs"
	"spycipdb-core/structure"

	"github.com/menoliu/SPyCi-PDB/internal/appcore"
	"github.com/menoliu/SPyCi-PDB/internal/cscli"
	"github.com/menoliu/SPyCi-PDB/internal/output"
	"github.com/menoliu/SPyCi-PDB/internal/paths"
	"github.com/menoliu/SPyCi-PDB/internal/pipeline"
	"github.com/menoliu/SPyCi-PDB/internal/version"
	"github.com/menoliu/SPyCi-PDB/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cscli.NewFlagSet("spycipdb-cs")
	fs.SetOutput(io.Discard)

	opts, err := cscli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "spycipdb-cs version %s\n", version.Version)
		return 0
	}

	if opts.PH < 2 || opts.PH > 12 {
		appcore.Warnf(stderr, opts.Quiet,
			"predictions at extreme pH (%g) are likely erroneous", opts.PH)
	}

	set, err := paths.Resolve(opts.PDBs, opts.Tmpdir)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	defer func() { _ = set.Cleanup() }()

	pred := cs.ExecPredictor{Command: opts.Cmd}
	results := pipeline.Map(parent, pipeline.Config{Workers: opts.Ncores}, set.Paths,
		func(ctx context.Context, path string) (*cs.Prediction, error) {
			return pred.Predict(ctx, path, opts.PH)
		})

	// The residue columns come from the predictor, so the format key is
	// taken from the first structure that succeeded.
	format := api.CSFormatV1{Res: []int{}, Resname: []string{}}
	for _, r := range results {
		if r.Err == nil {
			format = output.ToCSFormatV1(r.Output)
			break
		}
	}
	doc, err := output.NewDocument(format)
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
		if err := doc.Set(structure.Stem(r.Path), output.ToCSShiftsV1(r.Output)); err != nil {
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
