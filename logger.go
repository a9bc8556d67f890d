package lut3d

import (
	"log"
	"os"
)

// Logger is the ambient logging hook. It carries only informational notes —
// e.g. Compose logging which sampling domain it picked and both edge lengths
// on every call — never control flow; every failure still returns an error regardless of
// what is logged.
type Logger interface {
	Printf(format string, args ...any)
}

type stdLogger struct {
	l *log.Logger
}

func (s stdLogger) Printf(format string, args ...any) { s.l.Printf(format, args...) }

var activeLogger Logger = stdLogger{l: log.New(os.Stderr, "lut3d: ", 0)}

// SetLogger replaces the package-level logger. Passing nil restores the
// default stderr logger.
func SetLogger(l Logger) {
	if l == nil {
		activeLogger = stdLogger{l: log.New(os.Stderr, "lut3d: ", 0)}
		return
	}
	activeLogger = l
}
