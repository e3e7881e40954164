package materialize

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scafflab/scaffgen/pkg/errors"
)

func TestPlainReporterStart(t *testing.T) {
	var buf bytes.Buffer
	NewPlainReporter(&buf).Start(7)

	assert.Equal(t, "Materializing 7 files...\n", buf.String())
}

func TestPlainReporterEntry(t *testing.T) {
	var buf bytes.Buffer
	rep := NewPlainReporter(&buf)

	rep.Entry(EntryResult{Path: "a/b.txt", ResolvedPath: "/base/a/b.txt"})
	rep.Entry(EntryResult{Path: "../bad.txt", Err: errors.New(errors.ErrPathEscape, "path escapes base directory")})

	out := buf.String()
	assert.Contains(t, out, "created: a/b.txt")
	assert.Contains(t, out, "failed: ../bad.txt")
	assert.Contains(t, out, "PATH_ESCAPE")
}

func TestPlainReporterDoneSuccess(t *testing.T) {
	var buf bytes.Buffer
	report := &Report{Results: []EntryResult{
		{Path: "a.txt"},
		{Path: "b.txt"},
	}}

	NewPlainReporter(&buf).Done(report)

	assert.Contains(t, buf.String(), "Done: 2 files written")
}

func TestPlainReporterDoneWithFailures(t *testing.T) {
	var buf bytes.Buffer
	report := &Report{
		Results: []EntryResult{
			{Path: "a.txt"},
			{Path: "bad.txt", Err: errors.New(errors.ErrFileWrite, "disk full")},
		},
		Warnings: []string{"duplicate catalog path a.txt: the later entry wins"},
	}

	NewPlainReporter(&buf).Done(report)

	out := buf.String()
	assert.Contains(t, out, "warning: duplicate catalog path a.txt")
	assert.Contains(t, out, "Done with errors: 1 of 2 files failed")
}

func TestReportCounts(t *testing.T) {
	report := &Report{Results: []EntryResult{
		{Path: "a.txt"},
		{Path: "b.txt", Err: errors.New(errors.ErrDirCreate, "mkdir failed")},
		{Path: "c.txt"},
	}}

	assert.Equal(t, 3, report.Total())
	assert.Equal(t, 2, report.Successes())
	assert.Equal(t, 1, report.Failures())
	assert.True(t, report.Failed())
	assert.Equal(t, report.Total(), report.Successes()+report.Failures())
}
