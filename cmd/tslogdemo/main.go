// Command tslogdemo exercises a Logger under concurrent check-ins, the way
// the library's own fuzz tests drive it, and prints the flushed log once
// the run quiesces.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/iu-parfunc/tslogger"
)

func main() {
	seed := flag.Int64("seed", 1, "schedule RNG seed")
	producers := flag.Int("producers", 8, "number of concurrent producers")
	dontWait := flag.Bool("dontwait", false, "use DontWait instead of WaitFixed scheduling")
	flag.Parse()

	var mode tslogger.WaitMode
	if *dontWait {
		mode = tslogger.DontWait()
	} else {
		mode = tslogger.WaitFixedMode(1, nil)
	}

	maxLvl := tslogger.DbgLvl()
	if maxLvl == 0 {
		maxLvl = 10
	}
	l := tslogger.NewLogger(0, maxLvl, []tslogger.OutDest{tslogger.MemorySink()}, mode)
	l.SeedSchedule(*seed)

	var wg sync.WaitGroup
	for i := 0; i < *producers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			l.LogStrLn(id%3, fmt.Sprintf("producer-%d checking in", id))
		}(i)
	}
	wg.Wait()

	l.CloseIt()
	for _, line := range l.FlushLogs() {
		fmt.Fprintln(os.Stdout, line)
	}

	st := l.Stats()
	fmt.Fprintf(os.Stderr, "checked in=%d released=%d filtered=%d dropped=%d\n",
		st.CheckedIn, st.Released, st.Filtered, st.DroppedAfter)
}
