package logprovider

import "strings"

// EntryType classifies an Entry. The zero value is TypeDebug.
type EntryType int

const (
	TypeDebug EntryType = iota
	TypeInfo
	TypeWarn
	TypeError
	TypeFatal
	TypeUnknown
)

var entryTypeNames = [...]string{
	TypeDebug:   "DEBUG",
	TypeInfo:    "INFO",
	TypeWarn:    "WARN",
	TypeError:   "ERROR",
	TypeFatal:   "FATAL",
	TypeUnknown: "UNKNOWN",
}

func (t EntryType) String() string {
	if t < 0 || int(t) >= len(entryTypeNames) {
		return "UNKNOWN"
	}
	return entryTypeNames[t]
}

// ParseEntryType maps a case-insensitive name ("warn", "WARNING", ...) to an EntryType.
// Unrecognized input yields TypeUnknown and false.
func ParseEntryType(s string) (EntryType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return TypeDebug, true
	case "info":
		return TypeInfo, true
	case "warn", "warning":
		return TypeWarn, true
	case "error":
		return TypeError, true
	case "fatal":
		return TypeFatal, true
	case "unknown":
		return TypeUnknown, true
	default:
		return TypeUnknown, false
	}
}
