package tslogger

import (
	"bytes"
	"fmt"
	"runtime/trace"
)

// leadStandard and leadOffTheRecord are the two wire-format lead
// characters from spec.md §4.5.5. This format is the only externally
// observable output of the facility and is considered stable.
const (
	leadStandard     = '|'
	leadOffTheRecord = '\\'
)

// formatLine builds "{lead}{lvl}| {extra}{body}" (no trailing newline)
// into a reused buffer, the way buildTextMessage in the grounding example
// assembles a line into a shared bytes.Buffer before handing it to
// writers. The caller decides whether to append '\n'.
func formatLine(buf *bytes.Buffer, msg LogMsg, extra string) []byte {
	buf.Reset()
	lead := byte(leadStandard)
	if msg.otr {
		lead = leadOffTheRecord
	}
	buf.WriteByte(lead)
	fmt.Fprintf(buf, "%d", msg.Lvl)
	buf.WriteString("| ")
	buf.WriteString(extra)
	buf.WriteString(msg.Body)
	return buf.Bytes()
}

// pickPrefix builds the "#{pos} of {n}: " contextual prefix used by
// pick-and-proceed (spec.md §4.5.3 step 4).
func pickPrefix(pos, n int) string {
	return fmt.Sprintf("#%d of %d: ", pos, n)
}

// dispatch writes the formatted line for msg (with the given contextual
// prefix, empty for shutdown/off-the-record prints) to every destination.
// The coordinator is the sole caller, so no locking is needed here beyond
// what each destination itself requires (memoryBuffer's own mutex).
func (l *Logger) dispatch(buf *bytes.Buffer, msg LogMsg, extra string) {
	line := formatLine(buf, msg, extra)
	for _, d := range l.destinations {
		switch d.kind {
		case outEvents:
			trace.Log(l.traceCtx, "tslogger", string(line))
		case outHandle:
			d.w.Write(line)
			d.w.Write([]byte{'\n'})
		case outMemory:
			l.appendMemory(string(line))
		}
	}
}
