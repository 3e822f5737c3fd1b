package cli

import (
	"fmt"
	"io"
	"os"
)

// Printer separates command results from everything meant for the user.
// Results go to STDOUT so they can be piped, and diagnostics and usage go to STDERR.
type Printer struct {
	out  io.Writer
	diag io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stdout, diag: os.Stderr}
}

// Redirect replaces the result and diagnostic writers. A nil writer leaves the current one in place.
func (p *Printer) Redirect(out, diag io.Writer) {
	if out != nil {
		p.out = out
	}
	if diag != nil {
		p.diag = diag
	}
}

// Diagnostics returns the writer used for user-facing messages, which is useful for building a logger.
func (p *Printer) Diagnostics() io.Writer {
	return p.diag
}

// Result writes one value per line to the result writer.
func (p *Printer) Result(val any) {
	_, _ = fmt.Fprintln(p.out, val)
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.diag, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.diag, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.diag, msg...)
}
