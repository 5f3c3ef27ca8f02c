package dispatch

import "fmt"

// Strategy decides how many matching candidates a call invokes.
type Strategy int

const (
	// AllMatches invokes every candidate whose signature matches, in
	// registration order.
	AllMatches Strategy = iota
	// FirstMatch stops after the first matching candidate.
	FirstMatch
)

func (s Strategy) String() string {
	switch s {
	case AllMatches:
		return "all"
	case FirstMatch:
		return "first"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts the names printed by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "all":
		return AllMatches, nil
	case "first":
		return FirstMatch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

type OptionFunc func(*Option)

type Option struct {
	strategy Strategy
}

func NewOption(opts ...OptionFunc) *Option {
	option := &Option{
		strategy: AllMatches,
	}

	for _, opt := range opts {
		opt(option)
	}

	return option
}

func WithStrategy(strategy Strategy) OptionFunc {
	return func(option *Option) {
		option.strategy = strategy
	}
}
