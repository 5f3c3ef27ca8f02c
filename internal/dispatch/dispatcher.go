package dispatch

import (
	"errors"

	"go.uber.org/zap"

	"opcode-map/internal/format"
)

// Dispatcher resolves an (opcode, subopcode) pair plus the caller's
// signature to the registered handlers and invokes them on recv.
//
// The signature in play is chosen by which Dispatch method the caller uses;
// only the choice among registered candidates happens at runtime. Unknown
// pairs and signature mismatches are logged as warnings and never returned.
type Dispatcher[R any] struct {
	recv     R
	registry *Registry[R]
	logger   *zap.Logger
	opts     *Option
}

func NewDispatcher[R any](recv R, reg *Registry[R], logger *zap.Logger, opts ...OptionFunc) *Dispatcher[R] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher[R]{
		recv:     recv,
		registry: reg,
		logger:   logger,
		opts:     NewOption(opts...),
	}
}

func (d *Dispatcher[R]) Registry() *Registry[R] {
	return d.registry
}

func (d *Dispatcher[R]) Strategy() Strategy {
	return d.opts.strategy
}

func (d *Dispatcher[R]) Dispatch(opcode, subopcode int) {
	d.report(dispatch(d, Key{opcode, subopcode}, nil,
		func(fn VoidFunc[R]) { fn(d.recv) }))
}

func (d *Dispatcher[R]) DispatchInt(opcode, subopcode int, i int) {
	d.report(dispatch(d, Key{opcode, subopcode}, []any{i},
		func(fn IntFunc[R]) { fn(d.recv, i) }))
}

// DispatchString accepts a nil s; handlers of this shape must cope with it.
func (d *Dispatcher[R]) DispatchString(opcode, subopcode int, s *string) {
	d.report(dispatch(d, Key{opcode, subopcode}, []any{s},
		func(fn StringFunc[R]) { fn(d.recv, s) }))
}

func (d *Dispatcher[R]) DispatchInts(opcode, subopcode int, v []int) {
	d.report(dispatch(d, Key{opcode, subopcode}, []any{v},
		func(fn IntsFunc[R]) { fn(d.recv, v) }))
}

func (d *Dispatcher[R]) DispatchStrings(opcode, subopcode int, v []string) {
	d.report(dispatch(d, Key{opcode, subopcode}, []any{v},
		func(fn StringsFunc[R]) { fn(d.recv, v) }))
}

func (d *Dispatcher[R]) DispatchFloatString(opcode, subopcode int, f float64, s string) {
	d.report(dispatch(d, Key{opcode, subopcode}, []any{f, s},
		func(fn FloatStringFunc[R]) { fn(d.recv, f, s) }))
}

// dispatch scans the candidate set of key and calls invoke for every
// candidate whose Func has the caller's type F. It returns how many
// candidates were invoked.
func dispatch[R any, F Func[R]](d *Dispatcher[R], key Key, args []any, invoke func(F)) (int, error) {
	cands := d.registry.candidates(key)
	if len(cands) == 0 {
		return 0, &UnknownPairError{
			Key:    key,
			Params: format.Values(args...),
		}
	}

	invoked := 0
	for _, h := range cands {
		fn, ok := h.Fn.(F)
		if !ok {
			continue
		}
		d.logger.Debug("invoke handler",
			append(keyFields(key), zap.String("handler", h.Name))...)
		d.call(key, h.Name, func() { invoke(fn) })
		invoked++
		if d.opts.strategy == FirstMatch {
			break
		}
	}
	if invoked > 0 {
		return invoked, nil
	}

	var zero F
	return 0, &SignatureMismatchError{
		Key:         key,
		Params:      format.Values(args...),
		Passed:      zero.Signature(),
		PassedTypes: format.TypeNames(args...),
		Expected:    d.registry.Signatures(key),
	}
}

func (d *Dispatcher[R]) call(key Key, name string, fn func()) {
	defer func() {
		if err := recover(); err != nil {
			d.logger.Error("handler panic",
				append(keyFields(key),
					zap.String("handler", name),
					zap.Any("panic", err),
					zap.Stack("stack"),
				)...)
		}
	}()
	fn()
}

func (d *Dispatcher[R]) report(_ int, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ErrUnknownPair):
		d.logger.Warn("invalid opcode/subopcode pair", errorFields(err)...)
	case errors.Is(err, ErrSignatureMismatch):
		d.logger.Warn("invalid argument types", errorFields(err)...)
	default:
		d.logger.Warn("dispatch failed", errorFields(err)...)
	}
}
