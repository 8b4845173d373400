// internal/paths/paths.go

// Package paths turns the CLI's structure inputs (files, directories, tar
// archives) into an ordered, deduplicated list of PDB paths.
package paths

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Set is a resolved batch of structure paths. When an archive was
// extracted, Cleanup removes the extraction directory; it is safe to call
// on all exit paths.
type Set struct {
	Paths []string

	tmpdir    string
	extracted bool
}

// Cleanup removes the temporary extraction directory, if one was created.
func (s *Set) Cleanup() error {
	if !s.extracted {
		return nil
	}
	s.extracted = false
	return os.RemoveAll(s.tmpdir)
}

// Resolve expands each input into PDB file paths: directories contribute
// their *.pdb/*.pdb.gz entries (sorted), tar archives are extracted into
// tmpdir, plain files pass through. Order follows the inputs; duplicates
// are dropped, first occurrence wins.
func Resolve(inputs []string, tmpdir string) (*Set, error) {
	set := &Set{tmpdir: tmpdir}
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		set.Paths = append(set.Paths, p)
	}

	for _, in := range inputs {
		fi, err := os.Stat(in)
		switch {
		case err == nil && fi.IsDir():
			entries, err := listPDBs(in)
			if err != nil {
				set.cleanupOnErr()
				return nil, err
			}
			for _, p := range entries {
				add(p)
			}
		case err == nil && isArchive(in):
			extracted, err := set.extractTar(in)
			if err != nil {
				set.cleanupOnErr()
				return nil, err
			}
			for _, p := range extracted {
				add(p)
			}
		case err == nil:
			add(in)
		default:
			// Not a path on disk; try it as a glob pattern.
			matches, gerr := filepath.Glob(in)
			if gerr != nil || len(matches) == 0 {
				set.cleanupOnErr()
				return nil, fmt.Errorf("no structures at %q: %w", in, err)
			}
			for _, p := range matches {
				add(p)
			}
		}
	}

	if len(set.Paths) == 0 {
		set.cleanupOnErr()
		return nil, fmt.Errorf("no PDB files found in %v", inputs)
	}
	return set, nil
}

func (s *Set) cleanupOnErr() { _ = s.Cleanup() }

func listPDBs(dir string) ([]string, error) {
	var out []string
	for _, pat := range []string{"*.pdb", "*.pdb.gz"} {
		matches, err := filepath.Glob(filepath.Join(dir, pat))
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out, nil
}

func isArchive(path string) bool {
	return strings.HasSuffix(path, ".tar") ||
		strings.HasSuffix(path, ".tar.gz") ||
		strings.HasSuffix(path, ".tgz")
}

// extractTar writes the archive's PDB entries into the Set's tmpdir.
// Entry names are flattened to their base name; nested archive layouts do
// not leak outside the extraction directory.
func (s *Set) extractTar(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var r io.Reader = fh
	if strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".tgz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer func() { _ = gr.Close() }()
		r = gr
	}

	if err := os.MkdirAll(s.tmpdir, 0o755); err != nil {
		return nil, err
	}
	s.extracted = true

	var out []string
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		name := filepath.Base(hdr.Name)
		if !strings.HasSuffix(name, ".pdb") && !strings.HasSuffix(name, ".pdb.gz") {
			continue
		}
		dst := filepath.Join(s.tmpdir, name)
		fw, err := os.Create(dst)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(fw, tr); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("%s: extract %s: %w", path, name, err)
		}
		if err := fw.Close(); err != nil {
			return nil, err
		}
		out = append(out, dst)
	}
	sort.Strings(out)
	return out, nil
}
