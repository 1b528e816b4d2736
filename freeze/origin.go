package freeze

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Origin is a snapshot of the moment an instance froze: the call stack
// that computed the first hash and a dump of the value as it was frozen.
type Origin struct {
	Stack    string
	Snapshot string
}

const originMaxFrames = 32

// captureOrigin records the current call stack together with a spew dump
// of the frozen value. skip counts caller frames to drop beyond
// captureOrigin itself, so the trace starts at the user's hash call.
func captureOrigin(skip int, value any) *Origin {
	pc := make([]uintptr, originMaxFrames)
	n := runtime.Callers(skip+2, pc)

	var b strings.Builder
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)

		if !more {
			break
		}
	}

	return &Origin{
		Stack:    b.String(),
		Snapshot: spew.Sdump(value),
	}
}
