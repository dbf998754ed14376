package mip

// Logger is the minimal logging interface used by this package.
// log.Logger of the standard library satisfies it.
type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}
