package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type bufferCloser struct {
	sync.Mutex
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	return b.Buffer.Write(p)
}

func (b *bufferCloser) Close() error {
	b.Lock()
	defer b.Unlock()
	b.closed = true
	return nil
}

func (b *bufferCloser) String() string {
	b.Lock()
	defer b.Unlock()
	return b.Buffer.String()
}

func TestBackendLevels(t *testing.T) {
	backend := NewBackendWithFlags(0)
	all := &bufferCloser{}
	warnings := &bufferCloser{}
	err := backend.AddLogWriter(all, LevelTrace)
	if err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	err = backend.AddLogWriter(warnings, LevelWarn)
	if err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	err = backend.Run()
	if err != nil {
		t.Fatalf("Run: %s", err)
	}
	if err := backend.AddLogWriter(&bufferCloser{}, LevelInfo); err == nil {
		t.Fatalf("AddLogWriter unexpectedly succeeded on a running backend")
	}

	log := backend.Logger("TEST")
	log.Debugf("filtered while off")
	log.SetLevel(LevelDebug)
	log.Tracef("filtered below level")
	log.Debugf("debug %d", 1)
	log.Warnf("warn %d", 2)
	backend.Close()

	if !all.closed || !warnings.closed {
		t.Fatalf("Close didn't close the writers")
	}
	allOutput := all.String()
	if strings.Contains(allOutput, "filtered") {
		t.Errorf("filtered messages were written: %q", allOutput)
	}
	if !strings.Contains(allOutput, "[DBG] TEST: debug 1\n") || !strings.Contains(allOutput, "[WRN] TEST: warn 2\n") {
		t.Errorf("unexpected output: %q", allOutput)
	}
	warnOutput := warnings.String()
	if strings.Contains(warnOutput, "debug 1") || !strings.Contains(warnOutput, "warn 2") {
		t.Errorf("unexpected warn output: %q", warnOutput)
	}

	// Writing after Close is a no-op.
	log.Warnf("after close")
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
		ok       bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"banana", LevelInfo, false},
	}
	for _, test := range tests {
		level, ok := LevelFromString(test.in)
		if level != test.expected || ok != test.ok {
			t.Errorf("TestLevelFromString: %s: expected (%s, %t) but got (%s, %t)",
				test.in, test.expected, test.ok, level, ok)
		}
		_, err := ParseLevel(test.in)
		if (err == nil) != test.ok {
			t.Errorf("TestLevelFromString: %s: unexpected ParseLevel error: %v", test.in, err)
		}
	}
}

func TestRegisterSubSystem(t *testing.T) {
	first := RegisterSubSystem("TSTR")
	second := RegisterSubSystem("TSTR")
	if first != second {
		t.Fatalf("RegisterSubSystem returned different loggers for the same tag")
	}
	SetLogLevel("TSTR", LevelWarn)
	if first.Level() != LevelWarn {
		t.Errorf("expected level %s but got %s", LevelWarn, first.Level())
	}
	found := false
	for _, subsystem := range SupportedSubsystems() {
		if subsystem == "TSTR" {
			found = true
		}
	}
	if !found {
		t.Errorf("TSTR is missing from SupportedSubsystems")
	}
}
