package logger

import (
	"runtime"
	"time"
)

var timeNow = time.Now

// callerPC skips runtime.Callers, callerPC, write and the exported level method.
func callerPC() uintptr {
	var pcs [1]uintptr
	runtime.Callers(4, pcs[:])
	return pcs[0]
}
