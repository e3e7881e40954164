// Package materialize writes a catalog onto the filesystem under a base
// directory. This is the core of scaffgen: a single, ordered, synchronous
// pass that resolves each entry, creates missing parent directories and
// writes the entry's content verbatim.
//
// The run assumes exclusive ownership of the subtree under the base
// directory; it does not coordinate with concurrent external writers.
package materialize

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/scafflab/scaffgen/pkg/catalog"
	"github.com/scafflab/scaffgen/pkg/errors"
	"github.com/scafflab/scaffgen/pkg/logging"
	"github.com/scafflab/scaffgen/pkg/paths"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Materializer maps catalog entries onto a filesystem. The zero value is not
// usable; construct with New.
type Materializer struct {
	fs       afero.Fs
	reporter Reporter
}

// New creates a Materializer writing through fsys and narrating progress to
// rep. A nil fsys means the OS filesystem; a nil rep means no reporting.
// Reporting is purely observational: swapping rep never changes what ends up
// on disk.
func New(fsys afero.Fs, rep Reporter) *Materializer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if rep == nil {
		rep = NoopReporter{}
	}
	return &Materializer{fs: fsys, reporter: rep}
}

// Materialize writes every catalog entry under baseDir, in catalog order,
// and returns a report with one result per entry. Per-entry errors (path
// escape, directory creation, write) are recorded and the run continues, so
// a caller sees every problem in one pass; the run counts as failed when any
// entry errored. When two entries normalize to the same path the later one
// determines the final content (last-write-wins), surfaced as a warning.
//
// baseDir need not exist; it is created by the first entry that needs it.
// Nothing outside baseDir is ever written, and nothing is ever deleted.
func (m *Materializer) Materialize(baseDir string, cat *catalog.Catalog) (*Report, error) {
	if baseDir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "base directory is required")
	}

	logger := logging.GetLogger("materialize")
	logger.Info().Str("baseDir", baseDir).Int("entries", cat.Size()).Msg("Starting materialization")

	report := &Report{Results: make([]EntryResult, 0, cat.Size())}
	for _, dup := range cat.Duplicates() {
		report.Warnings = append(report.Warnings,
			"duplicate catalog path "+dup+": the later entry wins")
	}

	m.reporter.Start(cat.Size())

	for _, entry := range cat.Entries() {
		res := m.materializeEntry(baseDir, entry)
		report.Results = append(report.Results, res)

		if res.Err != nil {
			logger.Warn().Str("path", entry.Path).Err(res.Err).Msg("Entry failed")
		} else {
			logger.Debug().Str("path", entry.Path).Str("target", res.ResolvedPath).Msg("Entry written")
		}
		m.reporter.Entry(res)
	}

	logger.Info().
		Int("succeeded", report.Successes()).
		Int("failed", report.Failures()).
		Msg("Materialization finished")
	m.reporter.Done(report)

	return report, nil
}

// materializeEntry writes one entry: resolve, ensure parent chain, write.
// Errors abort this entry only.
func (m *Materializer) materializeEntry(baseDir string, entry catalog.Entry) EntryResult {
	target, err := paths.SafeJoin(baseDir, entry.Path)
	if err != nil {
		return EntryResult{Path: entry.Path, Err: err}
	}

	res := EntryResult{Path: entry.Path, ResolvedPath: target}

	parent := filepath.Dir(target)
	if err := m.fs.MkdirAll(parent, dirPerm); err != nil {
		res.Err = errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", parent)
		return res
	}

	// Content goes out as UTF-8 bytes in one bounded write, truncating any
	// previous file at this path.
	if err := afero.WriteFile(m.fs, target, []byte(entry.Content), filePerm); err != nil {
		res.Err = errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", entry.Path)
		return res
	}

	return res
}
