package dispatch

import (
	"fmt"

	"opcode-map/internal/format"
)

// Signature is the closed set of parameter lists a handler may accept.
type Signature int

const (
	Void        Signature = iota // ()
	Int                          // (int)
	String                       // (*string)
	Ints                         // ([]int)
	Strings                      // ([]string)
	FloatString                  // (float64, string)
)

var signatureParams = [...][]string{
	Void:        nil,
	Int:         {"int"},
	String:      {"*string"},
	Ints:        {"[]int"},
	Strings:     {"[]string"},
	FloatString: {"float64", "string"},
}

// Params returns the parameter type names of s.
func (s Signature) Params() []string {
	if s < Void || int(s) >= len(signatureParams) {
		return nil
	}
	return signatureParams[s]
}

func (s Signature) String() string {
	if s < Void || int(s) >= len(signatureParams) {
		return fmt.Sprintf("Signature(%d)", int(s))
	}
	return format.SignatureName(s.Params()...)
}
