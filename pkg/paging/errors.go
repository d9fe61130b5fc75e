package paging

import (
	"errors"
	"fmt"
)

// Error kinds returned by this package. Match them with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrOutOfRange        = errors.New("out of range")
	ErrOverflow          = errors.New("arithmetic overflow")
	ErrDeserialization   = errors.New("deserialization failed")
	ErrItemCountMismatch = errors.New("item count mismatch")
)

// Error describes a rejected input. Kind is one of the package sentinels;
// an out-of-range error also matches ErrInvalidArgument.
type Error struct {
	Op    string
	Field string
	Value int
	Kind  error
	Msg   string
}

func (e *Error) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("paging: %s: %v: %s", e.Op, e.Kind, e.Msg)
	case e.Kind == ErrDeserialization:
		return fmt.Sprintf("paging: %s: %v: %s %s", e.Op, e.Kind, e.Field, e.Msg)
	}
	return fmt.Sprintf("paging: %s: %v: %s %s (got %d)", e.Op, e.Kind, e.Field, e.Msg, e.Value)
}

func (e *Error) Unwrap() []error {
	if e.Kind == ErrOutOfRange {
		return []error{ErrOutOfRange, ErrInvalidArgument}
	}
	return []error{e.Kind}
}

func invalid(op, field string, value int, msg string) error {
	return &Error{Op: op, Field: field, Value: value, Kind: ErrInvalidArgument, Msg: msg}
}

func outOfRange(op, field string, value int, msg string) error {
	return &Error{Op: op, Field: field, Value: value, Kind: ErrOutOfRange, Msg: msg}
}

func overflow(op, field string, value int, msg string) error {
	return &Error{Op: op, Field: field, Value: value, Kind: ErrOverflow, Msg: msg}
}

func malformed(op, field, msg string) error {
	return &Error{Op: op, Field: field, Kind: ErrDeserialization, Msg: msg}
}

// FieldOf reports the offending field name carried by err, if any.
func FieldOf(err error) (string, bool) {
	var pe *Error
	if errors.As(err, &pe) && pe.Field != "" {
		return pe.Field, true
	}
	return "", false
}
