package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogEntry is a single recorded event. Exactly one of the event fields is
// set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart   *SessionStart   `json:"session_start,omitempty"`
	SessionEnd     *SessionEnd     `json:"session_end,omitempty"`
	Invocation     *Invocation     `json:"invocation,omitempty"`
	UnknownCommand *UnknownCommand `json:"unknown_command,omitempty"`
}

// SessionStart is recorded when a shell session begins.
type SessionStart struct {
	// Frontend is the CLI entry point that started the session.
	Frontend string `json:"frontend"`
}

// SessionEnd is recorded when a shell session ends normally.
type SessionEnd struct {
	Reason string `json:"reason"`
}

// Invocation is recorded for every command that was resolved and run.
type Invocation struct {
	Command        string   `json:"command"`
	Args           []string `json:"args,omitempty"`
	DurationMicros int64    `json:"duration_micros"`
	ErrorTitle     string   `json:"error_title,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// UnknownCommand is recorded when a pipeline stage names no command.
type UnknownCommand struct {
	Command []string `json:"command"`
}

// LogType is one of the event types.
type LogType interface {
	setOn(le *LogEntry)
}

func (e *SessionStart) setOn(le *LogEntry)   { le.SessionStart = e }
func (e *SessionEnd) setOn(le *LogEntry)     { le.SessionEnd = e }
func (e *Invocation) setOn(le *LogEntry)     { le.Invocation = e }
func (e *UnknownCommand) setOn(le *LogEntry) { le.UnknownCommand = e }

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures events so usage and failures can be reviewed later.
type Logger struct {
	Record LogRecorder

	now func() time.Time
}

// NewJsonLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	var mu sync.Mutex
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// Rotation configures how the event log file is rotated.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewRotatingFile opens an append-only log file that rotates itself.
func NewRotatingFile(filename string, rot Rotation) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    rot.MaxSizeMB,
		MaxBackups: rot.MaxBackups,
		MaxAge:     rot.MaxAgeDays,
		Compress:   rot.Compress,
	}
}

func (l *Logger) recordLogType(sessionID string, event LogType) error {
	now := time.Now
	if l.now != nil {
		now = l.now
	}

	le := &LogEntry{}
	le.TimestampMicros = now().UnixNano() / int64(time.Microsecond)
	le.SessionID = sessionID
	event.setOn(le)

	return l.Record(le)
}

// NewSession creates a logger with a fresh session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: uuid.NewString()}
}

// SessionLogger logs messages with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// SessionID returns the ID attached to every event.
func (l *SessionLogger) SessionID() string {
	return l.sessionID
}

func (l *SessionLogger) Record(event LogType) error {
	return l.recordLogType(l.sessionID, event)
}
