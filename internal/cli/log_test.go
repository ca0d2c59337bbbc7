package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvas2svg/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("Rendered board.canvas")

	out := buf.String()
	if !strings.Contains(out, "Rendered board.canvas (") {
		t.Errorf("output %q missing message with duration", out)
	}
	if !strings.Contains(out, "ms)") {
		t.Errorf("output %q missing millisecond duration", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without logger should return log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if got := loggerFromContext(ctx); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestSetLogLevelRegistersHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.SetLogLevel(LogInfo)
	if _, ok := observability.Render().(logHooks); ok {
		t.Fatal("log hooks registered at info level")
	}

	c.SetLogLevel(LogDebug)
	if _, ok := observability.Render().(logHooks); !ok {
		t.Fatalf("Render() = %T, want logHooks", observability.Render())
	}
	if _, ok := observability.Cache().(logHooks); !ok {
		t.Fatalf("Cache() = %T, want logHooks", observability.Cache())
	}

	ctx := context.Background()
	observability.Render().OnRenderStart(ctx, 3, 2)
	observability.Cache().OnCacheMiss(ctx, "svg")
	observability.Cache().OnCacheSet(ctx, "svg", 120)

	out := buf.String()
	for _, want := range []string{"render start", "nodes=3", "cache miss", "format=svg", "bytes=120"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}
