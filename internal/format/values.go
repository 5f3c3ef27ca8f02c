// Package format renders argument values and type names for dispatch
// diagnostics.
package format

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	Null      = "nullptr"
	None      = "None"
	Void      = "void"
	delimiter = ", "
)

// Values renders args as a comma separated list. A nil pointer renders as
// Null and is never dereferenced; no arguments render as None.
func Values(args ...any) string {
	if len(args) == 0 {
		return None
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = Value(arg)
	}
	return strings.Join(parts, delimiter)
}

func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return Null
	case *string:
		if x == nil {
			return Null
		}
		return *x
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case []int:
		return List(x, strconv.Itoa)
	case []string:
		return List(x, func(s string) string { return s })
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return Null
		}
	}
	return fmt.Sprint(v)
}

// List renders xs in braces: {1, 2, 3}.
func List[T any](xs []T, render func(T) string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(delimiter)
		}
		sb.WriteString(render(x))
	}
	sb.WriteByte('}')
	return sb.String()
}
