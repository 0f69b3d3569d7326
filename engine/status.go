package engine

import "strconv"

// Status is the engine's sticky error flag. StatusSuccess means no error
// has occurred; any other value persists on the context and turns
// subsequent drawing calls into no-ops until the engine clears it.
type Status int

const (
	StatusSuccess Status = iota
	StatusNoMemory
	StatusInvalidRestore
	StatusInvalidMatrix
	StatusInvalidFormat
	StatusInvalidStride
	StatusSurfaceFinished
	StatusPatternTypeMismatch
	StatusFontError
)

var statusNames = map[Status]string{
	StatusSuccess:             "success",
	StatusNoMemory:            "no memory",
	StatusInvalidRestore:      "invalid restore",
	StatusInvalidMatrix:       "invalid matrix",
	StatusInvalidFormat:       "invalid format",
	StatusInvalidStride:       "invalid stride",
	StatusSurfaceFinished:     "surface finished",
	StatusPatternTypeMismatch: "pattern type mismatch",
	StatusFontError:           "font error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}
