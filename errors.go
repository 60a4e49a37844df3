package debugmenu

import (
	"errors"
	"fmt"
)

// Configuration errors
var (
	// ErrConfiguration indicates an option value New cannot work with.
	ErrConfiguration = errors.New("invalid configuration")
)

// Capacity errors
var (
	// ErrOutOfMemory indicates that the arena has no free item slots, text
	// bytes or value-title spans left. Size the arena generously upfront.
	ErrOutOfMemory = errors.New("arena exhausted")

	// ErrBufferTooSmall indicates that a save buffer could not hold every
	// override. The bytes written so far are complete records.
	ErrBufferTooSmall = errors.New("save buffer too small")

	// ErrQueueFull indicates that the creation queue has no free slot.
	ErrQueueFull = errors.New("creation queue full")
)

// Lookup errors
var (
	// ErrNotFound indicates that no item exists at a path.
	ErrNotFound = errors.New("item not found")

	// ErrStaleHandle indicates that a handle refers to a removed item, or to
	// an item from before the last Reset.
	ErrStaleHandle = errors.New("stale item handle")
)

// Argument errors
var (
	// ErrInvalidArgument indicates a malformed path, title or value set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFolder indicates that a folder was required but a leaf was found.
	ErrNotFolder = errors.New("item is not a folder")

	// ErrNotLeaf indicates that a leaf was required but a folder was found.
	ErrNotLeaf = errors.New("item is not a leaf")
)

// Codec errors
var (
	// ErrUnsupportedVersion indicates a saved buffer with an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported save format version")

	// ErrMalformed indicates a saved buffer that does not follow the format.
	ErrMalformed = errors.New("malformed save data")
)

// PathError records a failed tree operation and the path it was applied to.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func pathErrf(op, path string, err error) error {
	return &PathError{Op: op, Path: path, Err: err}
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies errors returned by the menu.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfiguration
	KindCapacityExceeded
	KindNotFound
	KindInvalidArgument
	KindStaleHandle
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "ConfigurationError"
	case KindCapacityExceeded:
		return "CapacityExceeded"
	case KindNotFound:
		return "NotFound"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindStaleHandle:
		return "StaleHandle"
	default:
		return "Unknown"
	}
}

// KindOf returns the ErrorKind of err, looking through wrapping.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrOutOfMemory), errors.Is(err, ErrBufferTooSmall), errors.Is(err, ErrQueueFull):
		return KindCapacityExceeded
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrStaleHandle):
		return KindStaleHandle
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrNotFolder), errors.Is(err, ErrNotLeaf),
		errors.Is(err, ErrMalformed), errors.Is(err, ErrUnsupportedVersion):
		return KindInvalidArgument
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	default:
		return KindUnknown
	}
}

// assert panics when an internal invariant is broken. It guards states the
// public API cannot produce.
func assert(cond bool, msg string) {
	if !cond {
		panic("debugmenu: invariant violated: " + msg)
	}
}
