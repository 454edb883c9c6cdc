package tslogger

import (
	"bytes"
	"sync"
)

// threadSafeBuffer is a race-free io.Writer used by tests as a HandleSink
// target, so assertions can read back accumulated output without racing
// against the coordinator goroutine.
type threadSafeBuffer struct {
	buf   bytes.Buffer
	mutex sync.Mutex
}

func (t *threadSafeBuffer) Write(p []byte) (n int, err error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.buf.Write(p)
}

func (t *threadSafeBuffer) String() string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.buf.String()
}

func (t *threadSafeBuffer) Lines() []string {
	s := t.String()
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}
