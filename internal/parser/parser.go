// Package parser is the example opcode table: a Parser whose handler
// methods are registered once, process-wide, as method expressions and
// invoked through an embedded dispatch.Dispatcher.
package parser

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"opcode-map/internal/dispatch"
	"opcode-map/internal/format"
	"opcode-map/internal/protocol"
)

type Parser struct {
	*dispatch.Dispatcher[*Parser]

	out io.Writer
}

// New returns a Parser that writes handler output to out.
func New(out io.Writer, logger *zap.Logger, opts ...dispatch.OptionFunc) *Parser {
	p := &Parser{out: out}
	p.Dispatcher = dispatch.NewDispatcher(p, Table(), logger, opts...)
	return p
}

// Table returns the shared opcode table. It is built on first use and never
// modified afterwards.
var Table = sync.OnceValue(func() *dispatch.Registry[*Parser] {
	return dispatch.NewRegistry(
		dispatch.On(protocol.OpcodeMixed, protocol.SubopcodeMixed,
			dispatch.IntHandler("memberFunction1", (*Parser).memberFunction1)),
		dispatch.On(protocol.OpcodeMixed, protocol.SubopcodeMixed,
			dispatch.IntHandler("memberFunction8", (*Parser).memberFunction8)),
		dispatch.On(protocol.OpcodeMixed, protocol.SubopcodeMixed,
			dispatch.VoidHandler("memberFunction7", (*Parser).memberFunction7)),
		dispatch.On(protocol.OpcodeMixed, protocol.SubopcodeMixed,
			dispatch.VoidHandler("memberFunction9", (*Parser).memberFunction9)),
		dispatch.On(protocol.OpcodeText, protocol.SubopcodeText,
			dispatch.StringHandler("memberFunction2", (*Parser).memberFunction2)),
		dispatch.On(protocol.OpcodeNoArgs, protocol.SubopcodeNoArgs,
			dispatch.VoidHandler("memberFunction3", (*Parser).memberFunction3)),
		dispatch.On(protocol.OpcodeInts, protocol.SubopcodeInts,
			dispatch.IntsHandler("memberFunction4", (*Parser).memberFunction4)),
		dispatch.On(protocol.OpcodeStrings, protocol.SubopcodeStrings,
			dispatch.StringsHandler("memberFunction5", (*Parser).memberFunction5)),
		dispatch.On(protocol.OpcodeMeasure, protocol.SubopcodeMeasure,
			dispatch.FloatStringHandler("memberFunction6", (*Parser).memberFunction6)),
	)
})

func (p *Parser) memberFunction1(i int) { p.printf("memberFunction1(%d)", i) }
func (p *Parser) memberFunction8(i int) { p.printf("memberFunction8(%d)", i) }

// memberFunction2 must handle a nil s.
func (p *Parser) memberFunction2(s *string) {
	p.printf("memberFunction2(%s)", format.Value(s))
}

func (p *Parser) memberFunction3() { p.printf("memberFunction3()") }
func (p *Parser) memberFunction7() { p.printf("memberFunction7()") }
func (p *Parser) memberFunction9() { p.printf("memberFunction9()") }

func (p *Parser) memberFunction4(v []int) {
	p.printf("memberFunction4(%s)", format.Value(v))
}

func (p *Parser) memberFunction5(v []string) {
	p.printf("memberFunction5(%s)", format.Value(v))
}

func (p *Parser) memberFunction6(d float64, s string) {
	p.printf("memberFunction6(%s)", format.Values(d, s))
}

func (p *Parser) printf(f string, args ...any) {
	if p.out == nil {
		return
	}
	fmt.Fprintf(p.out, f+"\n", args...)
}
