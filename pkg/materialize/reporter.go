package materialize

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Reporter narrates a materialization run. It is strictly observational:
// the materializer never changes behavior based on what a reporter does,
// and a NoopReporter run produces identical files on disk.
type Reporter interface {
	// Start is called once, before any entry, with the catalog size.
	Start(total int)
	// Entry is called once per catalog entry, in catalog order.
	Entry(result EntryResult)
	// Done is called once, after all entries, with the finished report.
	Done(report *Report)
}

// NoopReporter discards all progress.
type NoopReporter struct{}

func (NoopReporter) Start(int)         {}
func (NoopReporter) Entry(EntryResult) {}
func (NoopReporter) Done(*Report)      {}

// ConsoleReporter writes line-oriented progress: a startup line with the
// total count, one confirmation or error line per file, and a completion
// summary. Styling is dropped when the output is not a terminal.
type ConsoleReporter struct {
	out   io.Writer
	color bool
}

// NewConsoleReporter creates a reporter writing styled lines to stdout.
func NewConsoleReporter() *ConsoleReporter {
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return &ConsoleReporter{out: os.Stdout, color: color}
}

// NewPlainReporter creates a reporter writing unstyled lines to w.
func NewPlainReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: w, color: false}
}

func (c *ConsoleReporter) Start(total int) {
	fmt.Fprintf(c.out, "Materializing %d files...\n", total)
}

func (c *ConsoleReporter) Entry(result EntryResult) {
	if result.OK() {
		fmt.Fprintf(c.out, "  %s %s\n", c.styled("created:", pterm.FgGreen), result.Path)
		return
	}
	fmt.Fprintf(c.out, "  %s %s: %v\n", c.styled("failed:", pterm.FgRed), result.Path, result.Err)
}

func (c *ConsoleReporter) Done(report *Report) {
	for _, w := range report.Warnings {
		fmt.Fprintf(c.out, "%s %s\n", c.styled("warning:", pterm.FgYellow), w)
	}

	if report.Failed() {
		fmt.Fprintf(c.out, "%s %d of %d files failed\n",
			c.styled("Done with errors:", pterm.FgRed, pterm.Bold),
			report.Failures(), report.Total())
		return
	}
	fmt.Fprintf(c.out, "%s %d files written\n",
		c.styled("Done:", pterm.FgGreen, pterm.Bold), report.Successes())
}

// styled applies pterm styling only when writing to a terminal.
func (c *ConsoleReporter) styled(s string, colors ...pterm.Color) string {
	if !c.color {
		return s
	}
	return pterm.NewStyle(colors...).Sprint(s)
}
