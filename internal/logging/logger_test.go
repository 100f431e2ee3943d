package logging

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		l, err := NewLogger(LogLevelInfo, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.level != LogLevelInfo {
			t.Errorf("level = %d, want %d", l.level, LogLevelInfo)
		}
		if l.file != nil {
			t.Error("file should be nil when no path given")
		}
	})

	t.Run("with file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.log")
		l, err := NewLogger(LogLevelDebug, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer l.Close()
		if l.file == nil {
			t.Error("file should not be nil")
		}
		if l.fileLog == nil {
			t.Error("fileLog should not be nil")
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := NewLogger(LogLevelInfo, filepath.Join(t.TempDir(), "missing", "test.log"))
		if err == nil {
			t.Error("expected error for invalid path")
		}
	})
}

// newBufferedLogger returns a logger whose stdout/stderr are captured.
func newBufferedLogger(level LogLevel) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	l, _ := NewLogger(level, "")
	var out, errOut bytes.Buffer
	l.stdout = log.New(&out, "", 0)
	l.stderr = log.New(&errOut, "", 0)
	return l, &out, &errOut
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      LogLevel
		logFn      func(l *Logger)
		wantStdout string
		wantStderr string
	}{
		{
			name:       "error at error level",
			level:      LogLevelError,
			logFn:      func(l *Logger) { l.Error("boom %d", 1) },
			wantStderr: "ERROR: boom 1",
		},
		{
			name:  "error at silent level",
			level: LogLevelSilent,
			logFn: func(l *Logger) { l.Error("boom") },
		},
		{
			name:       "warn goes to stderr",
			level:      LogLevelError,
			logFn:      func(l *Logger) { l.Warn("careful") },
			wantStderr: "WARNING: careful",
		},
		{
			name:  "info not printed below verbose",
			level: LogLevelInfo,
			logFn: func(l *Logger) { l.Info("hello") },
		},
		{
			name:       "info printed at verbose",
			level:      LogLevelVerbose,
			logFn:      func(l *Logger) { l.Info("hello") },
			wantStdout: "INFO: hello",
		},
		{
			name:       "verbose printed at verbose",
			level:      LogLevelVerbose,
			logFn:      func(l *Logger) { l.Verbose("detail") },
			wantStdout: "VERBOSE: detail",
		},
		{
			name:  "debug suppressed at verbose",
			level: LogLevelVerbose,
			logFn: func(l *Logger) { l.Debug("deep") },
		},
		{
			name:       "debug printed at debug",
			level:      LogLevelDebug,
			logFn:      func(l *Logger) { l.Debug("deep") },
			wantStdout: "DEBUG: deep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out, errOut := newBufferedLogger(tt.level)
			defer l.Close()
			tt.logFn(l)

			if tt.wantStdout == "" && out.Len() > 0 {
				t.Errorf("stdout = %q, want empty", out.String())
			}
			if tt.wantStdout != "" && !strings.Contains(out.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", out.String(), tt.wantStdout)
			}
			if tt.wantStderr == "" && errOut.Len() > 0 {
				t.Errorf("stderr = %q, want empty", errOut.String())
			}
			if tt.wantStderr != "" && !strings.Contains(errOut.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", errOut.String(), tt.wantStderr)
			}
		})
	}
}

func TestLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, err := NewLogger(LogLevelInfo, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.stdout = log.New(&bytes.Buffer{}, "", 0)
	l.stderr = log.New(&bytes.Buffer{}, "", 0)

	l.Info("written to file")
	l.Error("also written")
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "INFO: written to file") {
		t.Errorf("log file = %q, want info line", content)
	}
	if !strings.Contains(content, "ERROR: also written") {
		t.Errorf("log file = %q, want error line", content)
	}
}

func TestLogger_SetGetLevel(t *testing.T) {
	l, _ := NewLogger(LogLevelInfo, "")
	defer l.Close()

	l.SetLevel(LogLevelDebug)
	if got := l.GetLevel(); got != LogLevelDebug {
		t.Errorf("GetLevel() = %d, want %d", got, LogLevelDebug)
	}
}

func TestLogger_LogDispatch(t *testing.T) {
	t.Run("failure is a warning", func(t *testing.T) {
		l, _, errOut := newBufferedLogger(LogLevelError)
		defer l.Close()
		l.LogDispatch("failed", fmt.Errorf("exit status 1"))
		if !strings.Contains(errOut.String(), "WARNING:") {
			t.Errorf("stderr = %q, want warning", errOut.String())
		}
	})

	t.Run("unsupported is a warning", func(t *testing.T) {
		l, _, errOut := newBufferedLogger(LogLevelError)
		defer l.Close()
		l.LogDispatch("unsupported", nil)
		if !strings.Contains(errOut.String(), "unsupported") {
			t.Errorf("stderr = %q, want unsupported warning", errOut.String())
		}
	})

	t.Run("success is quiet by default", func(t *testing.T) {
		l, out, errOut := newBufferedLogger(LogLevelInfo)
		defer l.Close()
		l.LogDispatch("sent", nil)
		if out.Len() > 0 || errOut.Len() > 0 {
			t.Errorf("stdout = %q, stderr = %q, want no output", out.String(), errOut.String())
		}
	})
}

func TestLogger_LogDetection(t *testing.T) {
	l, out, _ := newBufferedLogger(LogLevelVerbose)
	defer l.Close()

	l.LogDetection("claude", true)
	l.LogDetection("claude", false)

	got := out.String()
	if !strings.Contains(got, "detected") || !strings.Contains(got, "not detected") {
		t.Errorf("stdout = %q, want both detection lines", got)
	}
}
