package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Console writes user-facing output with optional color.
//
// All toolkit commands share one Console so that skip lines, error
// lines and summary tables look the same everywhere. Color is
// disabled by the --no-color flag or the MIXCLOUD_BACKUP_NO_COLOR
// environment variable; MIXCLOUD_BACKUP_COLOR forces it back on for
// piped output.
type Console struct {
	out     io.Writer
	err     io.Writer
	verbose bool

	info    *color.Color
	warn    *color.Color
	fail    *color.Color
	success *color.Color
}

// New creates a Console writing to stdout and stderr.
func New(noColor, verbose bool) *Console {
	switch {
	case os.Getenv("MIXCLOUD_BACKUP_COLOR") != "":
		color.NoColor = false
	case noColor || os.Getenv("MIXCLOUD_BACKUP_NO_COLOR") != "":
		color.NoColor = true
	}

	return &Console{
		out:     os.Stdout,
		err:     os.Stderr,
		verbose: verbose,
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		success: color.New(color.FgGreen),
	}
}

// Print writes a plain line.
func (c *Console) Print(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Verbose writes a plain line only when verbose output is enabled.
func (c *Console) Verbose(format string, args ...any) {
	if c.verbose {
		fmt.Fprintf(c.out, format+"\n", args...)
	}
}

// Info writes an informational line.
func (c *Console) Info(format string, args ...any) {
	c.info.Fprintf(c.out, format+"\n", args...)
}

// Warn writes a warning line. Skip reasons go here: they are expected
// outcomes, not failures.
func (c *Console) Warn(format string, args ...any) {
	c.warn.Fprintf(c.out, format+"\n", args...)
}

// Error writes an error line to stderr.
func (c *Console) Error(format string, args ...any) {
	c.fail.Fprintf(c.err, format+"\n", args...)
}

// Success writes a success line.
func (c *Console) Success(format string, args ...any) {
	c.success.Fprintf(c.out, format+"\n", args...)
}

// Table renders rows under a header.
func (c *Console) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetRowLine(false)
	table.AppendBulk(rows)
	table.Render()
}

// Summary renders the end-of-run counts table.
func (c *Console) Summary(embedded, sidecars, skipped, failed int) {
	c.Table(
		[]string{"Embedded", "Sidecars", "Skipped", "Failed"},
		[][]string{{
			fmt.Sprint(embedded),
			fmt.Sprint(sidecars),
			fmt.Sprint(skipped),
			fmt.Sprint(failed),
		}},
	)
}
