package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

var timestampPrefix = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `)

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("generated", "display", 7)

	line := buf.String()
	if !timestampPrefix.MatchString(line) {
		t.Errorf("log line %q should start with an HH:MM:SS.cc timestamp", line)
	}
	for _, want := range []string{appName, "generated", "display=7"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q should contain %q", line, want)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug line missing after SetLogLevel(LogDebug): %q", buf.String())
	}
}

// Commands read their logger from the context set up by the root command.
func TestRootCommandInjectsLogger(t *testing.T) {
	var logs, out bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "details", "1"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("details error: %v", err)
	}
	if !strings.Contains(logs.String(), "loaded config") {
		t.Errorf("CLI logger did not receive the config line: %q", logs.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("a bare context should yield log.Default()")
	}

	custom := newLogger(&bytes.Buffer{}, LogInfo)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	if prog == nil {
		t.Fatal("newProgress() returned nil")
	}

	// Small delay to ensure measurable duration
	time.Sleep(10 * time.Millisecond)

	prog.done("generated", "display", 7)

	for _, want := range []string{"generated", "display=7", "elapsed="} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("progress.done() output %q should contain %q", buf.String(), want)
		}
	}
	if prog.elapsed() < 10*time.Millisecond {
		t.Errorf("elapsed() = %v, want at least 10ms", prog.elapsed())
	}
}

func TestProgressRate(t *testing.T) {
	prog := &progress{logger: log.Default(), start: time.Now().Add(-2 * time.Second)}
	got := prog.rate(10)
	if got <= 0 || got > 5 {
		t.Errorf("rate(10) over ~2s = %v, want about 5", got)
	}
	if prog.rate(0) != 0 {
		t.Error("rate(0) should be 0")
	}
}
