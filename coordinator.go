package tslogger

import (
	"bytes"
	"runtime"
	"sort"
)

// spinDiagnosticEvery is the number of fruitless iterations between the
// scheduling loop's "still spinning" diagnostic lines (spec.md §4.5.2
// step 6). Not load-bearing for correctness; tunable.
const spinDiagnosticEvery = 500

// run is the coordinator's top-level goroutine body, installed by
// NewLogger. It guards against any panic other than a cooperative
// shutdown: anything else is reported to stderr and re-raised, which
// crashes the process per spec.md §4.6 class 4.
func (l *Logger) run() {
	defer close(l.coordDone)
	defer func() {
		if r := recover(); r != nil {
			l.reportCrash(r)
			panic(r)
		}
	}()

	if l.waitMode.kind == waitDontWait {
		l.runDontWait()
	} else {
		l.runScheduling()
	}
}

// runDontWait is the print loop of spec.md §4.5.1: no Writer ever parks,
// so none is ever released here.
func (l *Logger) runDontWait() {
	b := newBackoff(defaultBackoffCap)
	buf := new(bytes.Buffer)

	for {
		if l.shutdown.Load() {
			l.flushDrain(buf, nil)
			return
		}

		w, ok := l.queue.tryPop()
		if !ok {
			b.step()
			continue
		}

		l.dispatch(buf, w.Msg, "")
		b.reset()
	}
}

// runScheduling is the WaitFixed scheduling loop of spec.md §4.5.2.
func (l *Logger) runScheduling() {
	iters := 0
	var waiting []*Writer
	b := newBackoff(defaultBackoffCap)
	buf := new(bytes.Buffer)

	for {
		// Go's os.Stdout is unbuffered (direct syscalls), so there is no
		// bufio.Writer to flush here; spec.md's "flush stdout" step has
		// nothing to do in this runtime and is a no-op by construction.

		if l.shutdown.Load() {
			l.flushDrain(buf, waiting)
			return
		}

		waiting = l.drainWithSideline(buf, waiting)

		parked := len(waiting)
		idle := l.waitMode.idle()
		target := l.waitMode.target

		if parked+idle >= target {
			if parked > 0 {
				waiting = l.pickAndProceed(buf, waiting)
				b.reset()
				iters = 0
				continue
			}
			// All workers idle and none parked: logically done, but this
			// is not shutdown — keep waiting (spec.md §9 Open Questions).
		}

		b.step()
		iters++
		if iters%spinDiagnosticEvery == 0 {
			l.diag.Info().Int("iterations", iters).Int("parked", parked).Int("idle", idle).
				Msg("logger is still spinning")
		}
	}
}

// drainWithSideline repeatedly pops the check-in queue, routing Standard
// Writers into waiting (prepended, so waiting stays in reverse-arrival
// order) and dispatching+releasing OffTheRecord Writers immediately
// (spec.md §4.5.2 step 3).
func (l *Logger) drainWithSideline(buf *bytes.Buffer, waiting []*Writer) []*Writer {
	for {
		w, ok := l.queue.tryPop()
		if !ok {
			return waiting
		}

		if w.Msg.IsOffTheRecord() {
			if !silenceOffTheRecord() {
				l.dispatch(buf, w.Msg, "")
			}
			w.release.signal()
			l.released.Add(1)
			continue
		}

		waiting = append([]*Writer{w}, waiting...)
	}
}

// pickAndProceed implements spec.md §4.5.3: sort by body, pick a uniformly
// random index, dispatch the winner with its contextual prefix, release
// it, and return the remainder.
func (l *Logger) pickAndProceed(buf *bytes.Buffer, waiting []*Writer) []*Writer {
	sort.Slice(waiting, func(i, j int) bool {
		return waiting[i].Msg.Body < waiting[j].Msg.Body
	})

	for i := 1; i < len(waiting); i++ {
		if waiting[i].Msg.Body == waiting[i-1].Msg.Body {
			panic(newCoordinatorError("pickAndProceed", ErrAmbiguousSchedule))
		}
	}

	n := len(waiting)
	pos := l.randIntn(n)
	winner := waiting[pos]
	remainder := make([]*Writer, 0, n-1)
	remainder = append(remainder, waiting[:pos]...)
	remainder = append(remainder, waiting[pos+1:]...)

	l.dispatch(buf, winner.Msg, pickPrefix(pos+1, n))
	winner.release.signal()
	l.released.Add(1)

	runtime.Gosched()
	return remainder
}

// flushDrain is the shutdown path of spec.md §4.5.4: it formats and
// dispatches every Writer still parked (those already sidelined into
// waiting, then whatever remains in the queue) with an empty contextual
// prefix. Latches are never signaled here — the process is already
// terminating the facility, and any producer still parked at this point
// is abandoned along with it, per spec.md §4.5.4's literal "do not
// signal latches".
func (l *Logger) flushDrain(buf *bytes.Buffer, waiting []*Writer) {
	for _, w := range waiting {
		l.dispatch(buf, w.Msg, "")
	}
	for {
		w, ok := l.queue.tryPop()
		if !ok {
			return
		}
		l.dispatch(buf, w.Msg, "")
	}
}
