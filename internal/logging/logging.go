// Package logging ports the source's startup-stage timing/counting banner
// ("N entries loaded to urlTable. Elapsed: Xs.") into the teacher's ambient
// logging idiom: plain fmt.Fprintln to the configured writer (cmd/root.go
// logs startup diagnostics the same way, via fmt.Fprintln(os.Stderr, ...)),
// enriched with github.com/dustin/go-humanize — carried over from the
// dolthub-dolt example's go.mod, which lists it for exactly this kind of
// human-readable count/byte/duration formatting — for readable entry
// counts. Elapsed durations are printed as a time.Duration rounded to the
// millisecond.
package logging

import (
	"fmt"
	"io"
	"time"

	humanize "github.com/dustin/go-humanize"
)

// Logger writes startup diagnostics to an underlying writer, typically
// os.Stderr.
type Logger struct {
	w io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Stage times fn and reports how many entries it loaded, in the source's
// own banner format.
func (l *Logger) Stage(name string, fn func() (count int, err error)) error {
	fmt.Fprintf(l.w, "Loading %s...\n", name)
	start := time.Now()
	count, err := fn()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	fmt.Fprintf(l.w, "%s entries loaded to %s. Elapsed: %s.\n", humanize.Comma(int64(count)), name, elapsed.Round(time.Millisecond))
	return nil
}

// Errorf reports a diagnostic to the underlying writer without exiting.
// The REPL does not route its query errors through it; it prints them
// with color.Red instead.
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\n", args...)
}
