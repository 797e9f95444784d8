package packrat

import (
	"fmt"
	"io"
	"strings"
)

// TraceListener returns a Listener that writes an indented trace of rule attempts to w.
func TraceListener(w io.Writer) Listener {
	return &trace{w: w}
}

type trace struct {
	NopListener
	w      io.Writer
	indent int
}

func (t *trace) EnterRule(e *Event) {
	fmt.Fprintf(t.w, "%s%s %q\n", strings.Repeat(" ", t.indent), e.Matcher, e.Token)
	t.indent += 2
}

func (t *trace) ExitRule(e *Event) {
	t.indent -= 2
	if e.Matched {
		fmt.Fprintf(t.w, "%s%s matched %d:%d\n", strings.Repeat(" ", t.indent), e.Matcher, e.Start, e.End)
	} else {
		fmt.Fprintf(t.w, "%s%s failed\n", strings.Repeat(" ", t.indent), e.Matcher)
	}
}
