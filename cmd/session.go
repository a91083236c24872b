package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/anomius/nushell/commands"
	"github.com/anomius/nushell/core/config"
	"github.com/anomius/nushell/core/engine"
	"github.com/anomius/nushell/core/history"
	"github.com/anomius/nushell/core/logger"
)

// session is an engine wired to the configured event log and history.
type session struct {
	cfg      *config.Configuration
	engine   *engine.Engine
	renderer *engine.Renderer
	history  *history.Store
}

// openSession loads the configuration and starts a session for the named
// frontend. Close must be called to flush the event log and history.
func openSession(frontend string, withHistory bool, opLog *log.Logger) (*session, error) {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:      cfg,
		renderer: &engine.Renderer{Color: cfg.ShouldColor(os.Stdout.Fd())},
	}

	s.engine = engine.New(commands.Builtins(), nil)

	if path := cfg.EventLogPath(); path != "" {
		rot := cfg.EventLogRotation
		logFd := logger.NewRotatingFile(path, logger.Rotation{
			MaxSizeMB:  rot.MaxSizeMB,
			MaxBackups: rot.MaxBackups,
			MaxAgeDays: rot.MaxAgeDays,
			Compress:   rot.Compress,
		})
		sessionLog := logger.NewJsonLinesLogRecorder(logFd).NewSession()
		if err := sessionLog.Record(&logger.SessionStart{Frontend: frontend}); err != nil {
			opLog.Printf("event log disabled: %v\n", err)
			logFd.Close()
		} else {
			s.engine.Events = sessionLog
			s.engine.AtExit(func() {
				sessionLog.Record(&logger.SessionEnd{Reason: "exit"})
				logFd.Close()
			})
		}
	}

	if path := cfg.HistoryPath(); withHistory && path != "" {
		store, err := history.Open(path)
		if err != nil {
			// Another shell may hold the lock.
			opLog.Printf("history disabled: %v\n", err)
		} else {
			s.history = store
			s.engine.AtExit(func() { store.Close() })
		}
	}

	return s, nil
}

// Close runs the exit hooks of the engine.
func (s *session) Close() {
	s.engine.RunExitHooks()
}

// eval runs source, printing its output to stdout or its error to stderr.
// It reports whether the pipeline succeeded.
func (s *session) eval(stdout, stderr io.Writer, source string) bool {
	out, err := s.engine.Eval(source)
	if err == nil {
		err = s.renderer.Render(stdout, out)
	}
	if err != nil {
		s.renderer.ShowError(stderr, err, s.engine.Name, source)
		return false
	}
	return true
}

func operationalLogger(w io.Writer) *log.Logger {
	return log.New(w, fmt.Sprintf("[%s] ", rootCmd.Name()), 0)
}
