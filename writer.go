package tslogger

import (
	"sync"

	"github.com/google/uuid"
)

// latch is a single-shot release gate: wait blocks until signal is called
// exactly once, with no spurious wakeups. signal is safe to call more than
// once (sync.Once absorbs it), matching the coordinator's own discipline of
// releasing each Writer exactly once.
type latch struct {
	once sync.Once
	ch   chan struct{}
}

func newLatch() *latch {
	return &latch{ch: make(chan struct{})}
}

func (l *latch) signal() {
	l.once.Do(func() { close(l.ch) })
}

func (l *latch) wait() {
	<-l.ch
}

// dummyLatch is the process-wide, never-signaled placeholder used in
// DontWait Writers. It must never be waited on.
var dummyLatch = newLatch()

// Writer is the per-call record carried from a producer's submit through
// to the coordinator: the message, the originator's identity, and the
// release handle the producer parks on (unless the Logger runs DontWait).
type Writer struct {
	Who     string
	release *latch
	Msg     LogMsg
}

// newWriter builds a Writer, defaulting Who to a fresh UUID when the
// caller didn't name the check-in site.
func newWriter(who string, msg LogMsg, release *latch) *Writer {
	if who == "" {
		who = uuid.NewString()
	}
	return &Writer{Who: who, release: release, Msg: msg}
}
