package keeper

import (
	"fmt"
	stdlibLog "log"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a logging interface for Keeper.
type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})

	Info(...interface{})
	Infof(string, ...interface{})

	Error(...interface{})
	Errorf(string, ...interface{})

	Panic(...interface{})
	Panicf(string, ...interface{})

	// WithKey returns a Logger tagging every entry with a storage key.
	WithKey(key string) Logger
}

// NewJSONLogger uses the logrus JSON formatter.
// See https://github.com/sirupsen/logrus
func NewJSONLogger(label string, debug bool) Logger {
	return newLogrus(label, debug, &logrus.JSONFormatter{})
}

// NewTextLogger uses the logrus text formatter.
// See https://github.com/sirupsen/logrus
func NewTextLogger(label string, debug bool) Logger {
	return newLogrus(label, debug, &logrus.TextFormatter{})
}

func newLogrus(label string, debug bool, formatter logrus.Formatter) Logger {
	logger := logrus.New()
	logger.Formatter = formatter
	logger.Level = logrus.InfoLevel
	if debug {
		logger.Level = logrus.DebugLevel
	}
	return &logrusLogger{logger.WithFields(logrus.Fields{
		"type":  "keeper",
		"label": label,
	})}
}

// logrusLogger adapts a logrus entry; keys become a "key" field.
type logrusLogger struct {
	*logrus.Entry
}

func (l *logrusLogger) WithKey(key string) Logger {
	return &logrusLogger{l.Entry.WithField("key", key)}
}

// stdlibLogger prefixes lines with the level and, when set, the key.
type stdlibLogger struct {
	log   *stdlibLog.Logger
	debug bool
	key   string
}

func (l *stdlibLogger) print(level string, vs []interface{}) {
	l.log.Print(append([]interface{}{l.prefix(level)}, vs...)...)
}

func (l *stdlibLogger) printf(level string, format string, vs []interface{}) {
	l.log.Print(l.prefix(level) + fmt.Sprintf(format, vs...))
}

func (l *stdlibLogger) prefix(level string) string {
	if l.key == "" {
		return level + " "
	}
	return fmt.Sprintf("%s key=%s ", level, l.key)
}

func (l *stdlibLogger) Debug(vs ...interface{}) {
	if l.debug {
		l.print("DEBUG", vs)
	}
}

func (l *stdlibLogger) Debugf(format string, vs ...interface{}) {
	if l.debug {
		l.printf("DEBUG", format, vs)
	}
}

func (l *stdlibLogger) Info(vs ...interface{}) {
	l.print("INFO", vs)
}

func (l *stdlibLogger) Infof(format string, vs ...interface{}) {
	l.printf("INFO", format, vs)
}

func (l *stdlibLogger) Error(vs ...interface{}) {
	l.print("ERROR", vs)
}

func (l *stdlibLogger) Errorf(format string, vs ...interface{}) {
	l.printf("ERROR", format, vs)
}

func (l *stdlibLogger) Panic(vs ...interface{}) {
	l.log.Panic(append([]interface{}{l.prefix("PANIC")}, vs...)...)
}

func (l *stdlibLogger) Panicf(format string, vs ...interface{}) {
	l.log.Panic(l.prefix("PANIC") + fmt.Sprintf(format, vs...))
}

func (l *stdlibLogger) WithKey(key string) Logger {
	return &stdlibLogger{l.log, l.debug, key}
}

// NewBasicLogger uses the Go standard library logger.
// See https://golang.org/pkg/log/
func NewBasicLogger(debug bool) Logger {
	return &stdlibLogger{stdlibLog.New(os.Stderr, "(KEEPER) ", stdlibLog.LstdFlags), debug, ""}
}

type noopLogger struct{}

func (noopLogger) Debug(...interface{}) {}

func (noopLogger) Debugf(string, ...interface{}) {}

func (noopLogger) Info(...interface{}) {}

func (noopLogger) Infof(string, ...interface{}) {}

func (noopLogger) Error(...interface{}) {}

func (noopLogger) Errorf(string, ...interface{}) {}

func (noopLogger) Panic(...interface{}) { panic("panic") }

func (noopLogger) Panicf(string, ...interface{}) { panic("panic") }

func (l noopLogger) WithKey(string) Logger { return l }
