package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownPair       = errors.New("invalid opcode/subopcode pair")
	ErrSignatureMismatch = errors.New("invalid argument types")
	ErrUnknownStrategy   = errors.New("unknown dispatch strategy")
)

// UnknownPairError reports a key with no registered candidates.
type UnknownPairError struct {
	Key    Key
	Params string
}

func (e *UnknownPairError) Error() string {
	return fmt.Sprintf("opcode %d, subopcode %d, parameters %s: %v",
		e.Key.Opcode, e.Key.Subopcode, e.Params, ErrUnknownPair)
}

func (e *UnknownPairError) Unwrap() error { return ErrUnknownPair }

// SignatureMismatchError reports a key whose candidates all have a signature
// other than the one the caller used.
type SignatureMismatchError struct {
	Key         Key
	Params      string
	Passed      Signature
	PassedTypes string
	Expected    []Signature
}

func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf("opcode %d, subopcode %d, parameters %s: %v: passed %s, expected one of %s",
		e.Key.Opcode, e.Key.Subopcode, e.Params, ErrSignatureMismatch,
		e.PassedTypes, strings.Join(e.expectedNames(), ", "))
}

func (e *SignatureMismatchError) Unwrap() error { return ErrSignatureMismatch }

func (e *SignatureMismatchError) expectedNames() []string {
	names := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		names[i] = s.String()
	}
	return names
}
