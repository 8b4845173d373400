// internal/appcore/core.go

// Package appcore carries the run scaffolding shared by the three
// back-calculator apps: document emission and batch exit codes.
package appcore

import (
	"fmt"
	"io"
	"os"

	"github.com/menoliu/SPyCi-PDB/internal/output"
)

// Emit writes the document to outPath, or to stdout when outPath is empty.
func Emit(doc *output.Document, outPath string, stdout io.Writer) error {
	if outPath == "" {
		return doc.Encode(stdout)
	}
	fh, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := doc.Encode(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// ExitCode maps batch outcomes to the process exit code: per-structure
// failures are reported but only a fully failed batch is fatal.
func ExitCode(total, failed int) int {
	if total > 0 && failed == total {
		return 3
	}
	return 0
}

// Warnf prints a warning to dst unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
