package panics

import (
	"testing"
	"time"

	"github.com/jbcoin/jbcd/infrastructure/logger"
)

func TestGoroutineWrapperFunc(t *testing.T) {
	spawn := GoroutineWrapperFunc(logger.RegisterSubSystem("TEST"))

	done := make(chan struct{})
	spawn(func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("TestGoroutineWrapperFunc: the wrapped function didn't run")
	}
}

func TestHandlePanicWithoutPanic(t *testing.T) {
	func() {
		defer HandlePanic(logger.RegisterSubSystem("TEST"), nil)
	}()
}
