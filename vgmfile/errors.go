package vgmfile

import (
	"errors"
	"fmt"
)

// Kind enumerates the error taxonomy surfaced to callers.
type Kind int

const (
	// NotVgm: magic missing even after gzip decode.
	NotVgm Kind = iota
	// Malformed: truncated header or GD3.
	Malformed
	// UnsupportedVersion: version outside the accepted set.
	UnsupportedVersion
	// NotPsgOnly: sn76489_clock == 0 or any other-chip clock != 0.
	NotPsgOnly
	// BadQuantizationRate: 44100 % rate != 0.
	BadQuantizationRate
	// StreamError: quantized wait not a multiple of the tick interval
	// when emitting the packet binary.
	StreamError
)

func (k Kind) String() string {
	switch k {
	case NotVgm:
		return "NotVgm"
	case Malformed:
		return "Malformed"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case NotPsgOnly:
		return "NotPsgOnly"
	case BadQuantizationRate:
		return "BadQuantizationRate"
	case StreamError:
		return "StreamError"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewNotVgm builds a NotVgm error.
func NewNotVgm(format string, args ...any) error { return newError(NotVgm, format, args...) }

// NewMalformed builds a Malformed error.
func NewMalformed(format string, args ...any) error { return newError(Malformed, format, args...) }

// NewUnsupportedVersion builds an UnsupportedVersion error.
func NewUnsupportedVersion(format string, args ...any) error {
	return newError(UnsupportedVersion, format, args...)
}

// NewNotPsgOnly builds a NotPsgOnly error.
func NewNotPsgOnly(format string, args ...any) error {
	return newError(NotPsgOnly, format, args...)
}

// NewBadQuantizationRate builds a BadQuantizationRate error.
func NewBadQuantizationRate(format string, args ...any) error {
	return newError(BadQuantizationRate, format, args...)
}

// NewStreamError builds a StreamError error.
func NewStreamError(format string, args ...any) error {
	return newError(StreamError, format, args...)
}

// KindOf extracts the Kind from err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
