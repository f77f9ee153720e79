// Package ui implements the interactive console surface: the presenter
// that renders records and notices, and the driver that runs the
// prompt/validate/retry loop.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisakh/Branching-Out/internal/types"

	"github.com/fatih/color"
)

const frameWidth = 40

// Presenter renders records and notices to a single io.Writer.
// All output is a pure side effect — nothing is returned, and the
// presenter holds no state about what it has printed.
//
// Colours are per-presenter rather than process-global so tests can
// build a colourless presenter against a buffer without touching the
// fatih/color package globals.
type Presenter struct {
	out io.Writer

	label  *color.Color // field labels inside a record block
	head   *color.Color // headings above result sets
	notice *color.Color // "no matches" style informational lines
	errc   *color.Color // load / input error lines
}

// NewPresenter builds a presenter writing to out. When noColor is true
// every colour is disabled and the output is plain text — used when the
// output is piped or the operator sets no_color in the config.
func NewPresenter(out io.Writer, noColor bool) *Presenter {
	p := &Presenter{
		out:    out,
		label:  color.New(color.FgCyan, color.Bold),
		head:   color.New(color.FgGreen, color.Bold),
		notice: color.New(color.FgYellow),
		errc:   color.New(color.FgRed, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{p.label, p.head, p.notice, p.errc} {
			c.DisableColor()
		}
	}
	return p
}

// Banner prints the welcome header shown once per session.
func (p *Presenter) Banner() {
	line := strings.Repeat("=", frameWidth)
	fmt.Fprintln(p.out, line)
	p.head.Fprintln(p.out, "        Welcome to the User Filter Tool")
	fmt.Fprintln(p.out, line)
	fmt.Fprintln(p.out)
}

// Prompt prints an inline prompt, no trailing newline, so the cursor
// stays on the same line as the question.
func (p *Presenter) Prompt(label string) {
	p.label.Fprint(p.out, label)
}

// PrintUsers prints a heading followed by one framed block per record.
// An empty result set is the caller's case to handle (NoMatches) — the
// presenter never decides what "nothing" means for a given filter.
func (p *Presenter) PrintUsers(heading string, users []types.User) {
	fmt.Fprintln(p.out)
	p.head.Fprintln(p.out, heading)
	for _, u := range users {
		p.printUser(u)
	}
}

// printUser renders one record block:
//
//	────────────────────────────────────────
//	ID   : 1
//	Name : Alice
//	Age  : 25
//	Email: alice@example.com
//	────────────────────────────────────────
//
// The id line is omitted for records that never had one, and a missing
// email renders as N/A.
func (p *Presenter) printUser(u types.User) {
	sep := strings.Repeat("─", frameWidth)

	fmt.Fprintln(p.out, sep)
	if u.ID != 0 {
		p.label.Fprint(p.out, "ID   : ")
		fmt.Fprintln(p.out, u.ID)
	}
	p.label.Fprint(p.out, "Name : ")
	fmt.Fprintln(p.out, u.Name)
	p.label.Fprint(p.out, "Age  : ")
	fmt.Fprintln(p.out, u.Age)
	p.label.Fprint(p.out, "Email: ")
	if u.HasEmail() {
		fmt.Fprintln(p.out, u.Email)
	} else {
		fmt.Fprintln(p.out, "N/A")
	}
	fmt.Fprintln(p.out, sep)
}

// NoMatches prints the informational empty-result notice. Not an error:
// an empty result is a normal outcome of a valid query.
func (p *Presenter) NoMatches(format string, args ...any) {
	fmt.Fprintln(p.out)
	p.notice.Fprintf(p.out, format+"\n", args...)
}

// Error prints a recoverable error line (missing dataset, invalid
// input). The session continues or re-prompts after it.
func (p *Presenter) Error(format string, args ...any) {
	p.errc.Fprintf(p.out, format+"\n", args...)
}
