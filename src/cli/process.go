package cli

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	atexitHandlers []func()
	atexitMutex    sync.Mutex
)

func init() {
	go handleSignals()
}

// handleSignals waits until it receives a terminating signal from the OS, at which point it executes any
// functions previously registered with AtExit, and then exits the process.
func handleSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	sig := <-ch
	log.Info("Received signal %s", sig)
	// A second signal terminates us regardless of whether the handlers have finished.
	done := make(chan struct{})
	go func() {
		runAtExit()
		close(done)
	}()
	select {
	case <-done:
		exit(sig)
	case sig := <-ch:
		log.Warning("Received second signal %s, aborting", sig)
		exit(sig)
	}
}

// AtExit registers a function to be run when the process is killed by a signal.
// This is best-effort; a normal os.Exit does not run them.
func AtExit(f func()) {
	atexitMutex.Lock()
	defer atexitMutex.Unlock()
	atexitHandlers = append(atexitHandlers, f)
}

func runAtExit() {
	atexitMutex.Lock()
	handlers := append([]func(){}, atexitHandlers...)
	atexitMutex.Unlock()
	for _, h := range handlers {
		h()
	}
}

// exit kills the process with an exit code suitable for the given signal.
func exit(sig os.Signal) {
	if s, ok := sig.(syscall.Signal); ok {
		os.Exit(128 + int(s))
	}
	os.Exit(1)
}
