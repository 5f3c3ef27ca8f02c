package dispatch

// Func is the sealed sum of handler shapes, one Go func type per Signature.
// R is the receiver the Dispatcher binds when it invokes the handler, so a
// table can hold method expressions such as (*Parser).memberFunction1.
type Func[R any] interface {
	Signature() Signature
	sealed()
}

type (
	VoidFunc[R any]        func(R)
	IntFunc[R any]         func(R, int)
	StringFunc[R any]      func(R, *string)
	IntsFunc[R any]        func(R, []int)
	StringsFunc[R any]     func(R, []string)
	FloatStringFunc[R any] func(R, float64, string)
)

func (VoidFunc[R]) Signature() Signature        { return Void }
func (IntFunc[R]) Signature() Signature         { return Int }
func (StringFunc[R]) Signature() Signature      { return String }
func (IntsFunc[R]) Signature() Signature        { return Ints }
func (StringsFunc[R]) Signature() Signature     { return Strings }
func (FloatStringFunc[R]) Signature() Signature { return FloatString }

func (VoidFunc[R]) sealed()        {}
func (IntFunc[R]) sealed()         {}
func (StringFunc[R]) sealed()      {}
func (IntsFunc[R]) sealed()        {}
func (StringsFunc[R]) sealed()     {}
func (FloatStringFunc[R]) sealed() {}

// Handler is a named Func.
type Handler[R any] struct {
	Name string
	Fn   Func[R]
}

func (h Handler[R]) Signature() Signature {
	return h.Fn.Signature()
}

func (h Handler[R]) String() string {
	return h.Name + " " + h.Signature().String()
}

func VoidHandler[R any](name string, fn func(R)) Handler[R] {
	return Handler[R]{Name: name, Fn: VoidFunc[R](fn)}
}

func IntHandler[R any](name string, fn func(R, int)) Handler[R] {
	return Handler[R]{Name: name, Fn: IntFunc[R](fn)}
}

func StringHandler[R any](name string, fn func(R, *string)) Handler[R] {
	return Handler[R]{Name: name, Fn: StringFunc[R](fn)}
}

func IntsHandler[R any](name string, fn func(R, []int)) Handler[R] {
	return Handler[R]{Name: name, Fn: IntsFunc[R](fn)}
}

func StringsHandler[R any](name string, fn func(R, []string)) Handler[R] {
	return Handler[R]{Name: name, Fn: StringsFunc[R](fn)}
}

func FloatStringHandler[R any](name string, fn func(R, float64, string)) Handler[R] {
	return Handler[R]{Name: name, Fn: FloatStringFunc[R](fn)}
}
