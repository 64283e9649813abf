package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// progressBar renders a single-line progress bar on stderr. It is only
// created when stderr is a terminal, so piped and redirected runs stay
// clean.
type progressBar struct {
	w     io.Writer
	width int
	last  int
}

// newProgressBar returns a bar writing to w, or nil when quiet is set or w
// is not a terminal. A nil bar is safe to use; its methods do nothing.
func newProgressBar(w io.Writer, quiet bool) *progressBar {
	if quiet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	width := 40
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 20 {
		width = min(cols-10, 60)
	}
	return &progressBar{w: w, width: width, last: -1}
}

// update redraws the bar for the given percentage. Repeated values are
// dropped so the engine's per-row cadence never floods the terminal.
func (p *progressBar) update(pct int) {
	if p == nil || pct == p.last {
		return
	}
	p.last = pct
	filled := p.width * pct / 100
	fmt.Fprintf(p.w, "\r[%s%s] %3d%%",
		strings.Repeat("#", filled),
		strings.Repeat(" ", p.width-filled),
		pct)
}

// close ends the bar line once rendering is finished.
func (p *progressBar) close() {
	if p == nil || p.last < 0 {
		return
	}
	fmt.Fprintln(p.w)
}
