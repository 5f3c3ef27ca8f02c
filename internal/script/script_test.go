package script_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"opcode-map/internal/parser"
	"opcode-map/internal/script"
)

type fakeTarget struct {
	calls []string
}

func (f *fakeTarget) add(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeTarget) Dispatch(a, b int)              { f.add("void %d %d", a, b) }
func (f *fakeTarget) DispatchInt(a, b int, i int)    { f.add("int %d %d %d", a, b, i) }
func (f *fakeTarget) DispatchInts(a, b int, v []int) { f.add("ints %d %d %v", a, b, v) }
func (f *fakeTarget) DispatchStrings(a, b int, v []string) {
	f.add("strings %d %d %v", a, b, v)
}
func (f *fakeTarget) DispatchFloatString(a, b int, x float64, s string) {
	f.add("float %d %d %v %s", a, b, x, s)
}
func (f *fakeTarget) DispatchString(a, b int, s *string) {
	if s == nil {
		f.add("string %d %d <nil>", a, b)
		return
	}
	f.add("string %d %d %s", a, b, *s)
}

func TestScript_RunSelectsEntryPoint(t *testing.T) {
	s, err := script.Parse([]byte(`
calls:
  - {opcode: 1, subopcode: 2, none: true}
  - {opcode: 1, subopcode: 2, int: 34}
  - {opcode: 2, subopcode: 4, string: Hello}
  - {opcode: 2, subopcode: 4, nullptr: true}
  - {opcode: 4, subopcode: 1, ints: [1, 2]}
  - {opcode: 5, subopcode: 3, strings: [a, b]}
  - {opcode: 6, subopcode: 1, float: 2.5, text: x}
`))
	require.NoError(t, err)

	var target fakeTarget
	require.NoError(t, s.Run(&target))
	assert.Equal(t, []string{
		"void 1 2",
		"int 1 2 34",
		"string 2 4 Hello",
		"string 2 4 <nil>",
		"ints 4 1 [1 2]",
		"strings 5 3 [a b]",
		"float 6 1 2.5 x",
	}, target.calls)
}

func TestScript_InvalidCallsRunNothing(t *testing.T) {
	cases := map[string]string{
		"no form":       "calls:\n  - {opcode: 1, subopcode: 2, int: 1}\n  - {opcode: 1, subopcode: 2}\n",
		"several forms": "calls:\n  - {opcode: 1, subopcode: 2, int: 1, none: true}\n",
		"float alone":   "calls:\n  - {opcode: 6, subopcode: 1, float: 1.5}\n",
		"text alone":    "calls:\n  - {opcode: 6, subopcode: 1, text: x}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := script.Parse([]byte(body))
			require.NoError(t, err)

			var target fakeTarget
			err = s.Run(&target)
			assert.ErrorIs(t, err, script.ErrInvalidCall)
			assert.Empty(t, target.calls)
		})
	}
}

func TestScript_ParseAndLoadErrors(t *testing.T) {
	_, err := script.Parse([]byte("calls: {"))
	assert.ErrorContains(t, err, "parse script")

	_, err = script.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read script")

	path := filepath.Join(t.TempDir(), "calls.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calls:\n  - {opcode: 3, subopcode: 2, none: true}\n"), 0o644))
	s, err := script.Load(path)
	require.NoError(t, err)
	require.Len(t, s.Calls, 1)
	assert.True(t, s.Calls[0].None)
}

func TestDemo_AgainstParser(t *testing.T) {
	s, err := script.Demo()
	require.NoError(t, err)
	require.Len(t, s.Calls, 16)

	core, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer
	require.NoError(t, s.Run(parser.New(&out, zap.New(core))))

	assert.Equal(t, []string{
		"memberFunction1(34)",
		"memberFunction8(34)",
		"memberFunction1(3)",
		"memberFunction8(3)",
		"memberFunction1(1)",
		"memberFunction8(1)",
		"memberFunction7()",
		"memberFunction9()",
		"memberFunction2(Hello)",
		"memberFunction2(nullptr)",
		"memberFunction3()",
		"memberFunction4({1, 2, 3, 5, 7})",
		"memberFunction5({H, e, l, l, o})",
		"memberFunction6(3.1415926, Hello)",
	}, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"))

	assert.Equal(t, 1, logs.FilterMessage("invalid opcode/subopcode pair").Len())
	assert.Equal(t, 5, logs.FilterMessage("invalid argument types").Len())
}
