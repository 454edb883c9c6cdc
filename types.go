package tslogger

import (
	"io"
)

// LogMsg is the payload a producer hands to the coordinator. A message is
// either Standard (it participates in scheduling) or OffTheRecord (it logs
// but never gates a round).
type LogMsg struct {
	Lvl  int
	Body string
	otr  bool
}

// StandardMsg builds a message that participates in scheduling.
func StandardMsg(lvl int, body string) LogMsg {
	return LogMsg{Lvl: lvl, Body: body}
}

// OffTheRecordMsg builds a message that logs immediately and never parks
// its producer or competes for a pick-and-proceed slot.
func OffTheRecordMsg(lvl int, body string) LogMsg {
	return LogMsg{Lvl: lvl, Body: body, otr: true}
}

// IsOffTheRecord reports whether m is the off-the-record variant.
func (m LogMsg) IsOffTheRecord() bool {
	return m.otr
}

// OutDest is a terminal for formatted lines. Exactly one of the three
// constructors below should be used to build a value of this type.
type OutDest struct {
	kind outKind
	w    io.Writer
}

type outKind int

const (
	outEvents outKind = iota
	outHandle
	outMemory
)

// EventsSink emits every formatted line as a runtime/trace event.
func EventsSink() OutDest { return OutDest{kind: outEvents} }

// HandleSink writes formatted lines, newline-terminated, to w.
func HandleSink(w io.Writer) OutDest { return OutDest{kind: outHandle, w: w} }

// MemorySink appends formatted lines (no trailing newline) to the Logger's
// in-memory buffer, retrievable via FlushLogs.
func MemorySink() OutDest { return OutDest{kind: outMemory} }

// WaitMode selects the coordinator's top-level behavior.
type WaitMode struct {
	kind      waitKind
	target    int
	extraIdle func() int
}

type waitKind int

const (
	waitDontWait waitKind = iota
	waitFixed
	waitDynamic
)

// DontWait is non-blocking logging: producers never park, the coordinator
// never gates on a schedule.
func DontWait() WaitMode { return WaitMode{kind: waitDontWait} }

// WaitFixedMode is the scheduling mode: a round completes once
// parked + extraIdle() >= target. extraIdle may be nil, treated as
// always-zero.
func WaitFixedMode(target int, extraIdle func() int) WaitMode {
	return WaitMode{kind: waitFixed, target: target, extraIdle: extraIdle}
}

// WaitDynamicMode is reserved and unimplemented: submitting under it is a
// fatal error (spec.md §4.5, Open Questions).
func WaitDynamicMode() WaitMode { return WaitMode{kind: waitDynamic} }

func (m WaitMode) idle() int {
	if m.extraIdle == nil {
		return 0
	}
	return m.extraIdle()
}

// DefaultMemDbgRange is the (min, max) level window callers use to select
// the slice of messages exercised by schedule fuzz testing.
var DefaultMemDbgRange = [2]int{0, 10}
