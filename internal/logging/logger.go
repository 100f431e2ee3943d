package logging

// Structured logging for autonudge

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// Logger provides structured logging
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	file    *os.File
	fileLog *log.Logger
	stdout  *log.Logger
	stderr  *log.Logger
}

// NewLogger creates a new logger
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	l := &Logger{
		level:  level,
		stdout: log.New(os.Stdout, "", 0),
		stderr: log.New(os.Stderr, "", 0),
	}

	// Open log file if specified
	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// Close closes the logger and flushes all data
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		msg := fmt.Sprintf("ERROR: "+format, v...)
		l.write(msg, true)
	}
}

// Warn logs a warning message; warnings go to stderr like errors
func (l *Logger) Warn(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		msg := fmt.Sprintf("WARNING: "+format, v...)
		l.write(msg, true)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LogLevelInfo {
		msg := fmt.Sprintf("INFO: "+format, v...)
		l.write(msg, false)
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.level >= LogLevelVerbose {
		msg := fmt.Sprintf("VERBOSE: "+format, v...)
		l.write(msg, false)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LogLevelDebug {
		msg := fmt.Sprintf("DEBUG: "+format, v...)
		l.write(msg, false)
	}
}

// write writes a message to the appropriate outputs
func (l *Logger) write(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Always write to log file if available
	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}

	// Write to stdout/stderr based on level and error status
	// Errors go to stderr, others to stdout (but only if verbose/debug)
	if isError {
		l.stderr.Println(msg)
	} else if l.level >= LogLevelVerbose {
		// Only print to stdout if verbose or debug
		l.stdout.Println(msg)
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogStartup logs the run configuration at startup
func (l *Logger) LogStartup(durationSec int, message, target string, autoOnly bool) {
	l.Info("Starting autonudge countdown")
	l.Verbose("  Duration: %d seconds", durationSec)
	l.Verbose("  Message: %s", message)
	l.Verbose("  Target: %s", target)
	l.Verbose("  Auto-only: %t", autoOnly)
}

// LogDetection logs a process-detection probe result
func (l *Logger) LogDetection(target string, present bool) {
	if present {
		l.Verbose("target process %q detected", target)
	} else {
		l.Verbose("target process %q not detected", target)
	}
}

// LogDispatch logs the outcome of a confirmation dispatch attempt
func (l *Logger) LogDispatch(result string, err error) {
	if err != nil {
		l.Warn("confirmation dispatch %s: %v", result, err)
		return
	}
	switch result {
	case "unsupported":
		l.Warn("confirmation dispatch unsupported on this platform")
	default:
		l.Verbose("confirmation dispatch %s", result)
	}
}
