package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup is an injected hook that restores the terminal before the
// stack trace is printed. Set once from the main package during startup.
var crashCleanup atomic.Pointer[func()]

// SetCrashCleanup installs the terminal restore hook used by HandleCrash.
func SetCrashCleanup(fn func()) {
	crashCleanup.Store(&fn)
}

// HandleCrash is the unified panic handler: it resets the terminal and prints
// the stack trace. Raw mode needs \r\n to keep the trace readable.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashCleanup.Load(); fn != nil {
		(*fn)()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
