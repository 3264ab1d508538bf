package logprovider

// Facade over the global Provider.
// Usage: logprovider.Info("listening", logprovider.WithTag("http"))

func Log(t EntryType, value string, opts ...Option) { L().log(t, value, opts) }
func Debug(value string, opts ...Option)            { L().log(TypeDebug, value, opts) }
func Info(value string, opts ...Option)             { L().log(TypeInfo, value, opts) }
func Warn(value string, opts ...Option)             { L().log(TypeWarn, value, opts) }
func Error(value string, opts ...Option)            { L().log(TypeError, value, opts) }
func Fatal(value string, opts ...Option)            { L().log(TypeFatal, value, opts) }

// StackTrace logs through the global provider with the caller's stack attached.
//
//go:noinline
func StackTrace(t EntryType, value string, opts ...Option) {
	L().logStack(1, t, value, opts)
}
