package format

import (
	"fmt"
	"strings"
)

// TypeName returns the Go type name of v, "nil" for an untyped nil.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// TypeNames joins the type names of args, Void when there are none.
func TypeNames(args ...any) string {
	if len(args) == 0 {
		return Void
	}
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = TypeName(arg)
	}
	return strings.Join(names, delimiter)
}

// SignatureName renders a parameter list as a func type: func(float64, string).
func SignatureName(params ...string) string {
	return "func(" + strings.Join(params, delimiter) + ")"
}
