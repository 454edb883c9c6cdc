package tslogger

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Logger is the public façade described in spec.md §4.4: construction,
// level filtering, the four message-submission entry points, buffer
// flushing, and shutdown. Apart from memBuf, the shutdown flag, the Stats
// counters and the RNG (replaced by SeedSchedule), every field is
// immutable after NewLogger returns.
type Logger struct {
	minLvl, maxLvl int
	destinations   []OutDest
	waitMode       WaitMode

	queue      *checkinQueue
	memBuf     memoryBuffer
	shutdown   atomic.Bool
	closeOnce  sync.Once
	coordDone  chan struct{}
	traceCtx   context.Context
	diag       zerolog.Logger
	rngMu      sync.Mutex
	rng        *rand.Rand

	checkedIn atomic.Int64
	released  atomic.Int64
	filtered  atomic.Int64
	dropped   atomic.Int64
}

// NewLogger allocates a Logger and spawns its coordinator goroutine. When
// built with -tags nodebug, the coordinator is never spawned and every
// submission collapses to a no-op (see toggle_disabled.go).
func NewLogger(minLvl, maxLvl int, destinations []OutDest, waitMode WaitMode) *Logger {
	l := &Logger{
		minLvl:       minLvl,
		maxLvl:       maxLvl,
		destinations: destinations,
		waitMode:     waitMode,
		queue:        newCheckinQueue(),
		coordDone:    make(chan struct{}),
		traceCtx:     context.Background(),
		diag:         zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).With().Timestamp().Logger(),
		rng:          rand.New(rand.NewSource(1)),
	}

	if !facilityCompiledIn {
		close(l.coordDone)
		return l
	}

	go l.run()
	return l
}

// SeedSchedule fixes the RNG pick-and-proceed draws from, so that repeated
// runs with the same seed and the same set of concurrent check-ins pick
// the same winner (spec.md §8, scenario 3; §2's "fuzz-testing of
// schedules").
func (l *Logger) SeedSchedule(seed int64) {
	l.rngMu.Lock()
	defer l.rngMu.Unlock()
	l.rng = rand.New(rand.NewSource(seed))
}

func (l *Logger) randIntn(n int) int {
	l.rngMu.Lock()
	defer l.rngMu.Unlock()
	return l.rng.Intn(n)
}

// accepts reports whether lvl falls in [minLvl, maxLvl].
func (l *Logger) accepts(lvl int) bool {
	return lvl >= l.minLvl && lvl <= l.maxLvl
}

// submit is the core entry point every public Log*Ln/LogOn funnels into,
// per spec.md §4.4.
func (l *Logger) submit(msg LogMsg) {
	if !facilityCompiledIn {
		return
	}

	if !l.accepts(msg.Lvl) {
		l.filtered.Add(1)
		return
	}

	if l.waitMode.kind == waitDynamic {
		panic(newCoordinatorError("submit", ErrWaitDynamicUnimplemented))
	}

	if l.shutdown.Load() {
		// Drop silently: the preferred choice per spec.md §4.6.
		l.dropped.Add(1)
		return
	}

	l.checkedIn.Add(1)

	if l.waitMode.kind == waitDontWait {
		l.queue.push(newWriter("", msg, dummyLatch))
		return
	}

	rel := newLatch()
	l.queue.push(newWriter("", msg, rel))
	rel.wait()
}

// LogStrLn submits a Standard message built directly from a string.
func (l *Logger) LogStrLn(lvl int, body string) {
	l.submit(StandardMsg(lvl, body))
}

// LogByteStringLn submits a Standard message after decoding b as UTF-8.
func (l *Logger) LogByteStringLn(lvl int, b []byte) {
	l.submit(StandardMsg(lvl, string(b)))
}

// Stringer is the minimal interface LogTextLn accepts, mirroring the
// byte-string/text distinction of spec.md §6 while staying idiomatic Go:
// any text-like type that can render itself decodes the same way a plain
// string does.
type Stringer interface {
	String() string
}

// LogTextLn submits a Standard message after decoding t to a string.
func (l *Logger) LogTextLn(lvl int, t Stringer) {
	l.submit(StandardMsg(lvl, t.String()))
}

// LogOn submits a full LogMsg, the only entry point that can carry an
// off-the-record message.
func (l *Logger) LogOn(msg LogMsg) {
	l.submit(msg)
}

// FlushLogs atomically swaps out the memory buffer and returns its
// contents in chronological order.
func (l *Logger) FlushLogs() []string {
	return l.memBuf.drain()
}

// CloseIt raises the shutdown flag and joins the coordinator goroutine.
// Idempotent: a second call observes the same terminal state.
func (l *Logger) CloseIt() {
	l.closeOnce.Do(func() {
		l.shutdown.Store(true)
	})
	<-l.coordDone
}

// Stats is a read-only operational snapshot: check-ins received, Writers
// released, messages filtered by level, and messages dropped after
// CloseIt. Purely observational — it describes the facility's own
// counters and queue depth, not message content.
type Stats struct {
	CheckedIn    int64
	Released     int64
	Filtered     int64
	DroppedAfter int64
	QueueDepth   int
}

// Stats returns a snapshot of the Logger's operational counters.
func (l *Logger) Stats() Stats {
	return Stats{
		CheckedIn:    l.checkedIn.Load(),
		Released:     l.released.Load(),
		Filtered:     l.filtered.Load(),
		DroppedAfter: l.dropped.Load(),
		QueueDepth:   l.queue.len(),
	}
}

// reportCrash is the reporting half of the coordinator's exception guard
// (spec.md §4.4/§4.6): it prints the cause to stderr. run re-raises the
// panic afterwards so the owning process terminates, since subsequent
// submissions may now fail or block indefinitely.
func (l *Logger) reportCrash(r any) {
	fmt.Fprintf(os.Stderr, "tslogger: coordinator panic: %v\n", r)
	l.diag.Error().Interface("panic", r).Msg("tslogger coordinator crashed")
}
