// Package script replays a YAML list of dispatch calls. The argument form
// written for each call picks the typed Dispatch method.
package script

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

var ErrInvalidCall = errors.New("invalid call")

// Target is the set of typed entry points a script drives.
type Target interface {
	Dispatch(opcode, subopcode int)
	DispatchInt(opcode, subopcode int, i int)
	DispatchString(opcode, subopcode int, s *string)
	DispatchInts(opcode, subopcode int, v []int)
	DispatchStrings(opcode, subopcode int, v []string)
	DispatchFloatString(opcode, subopcode int, f float64, s string)
}

type Script struct {
	Calls []Call `yaml:"calls"`
}

// Call is one dispatch. Exactly one argument form must be set: none, int,
// string or nullptr, ints, strings, or float together with text.
type Call struct {
	Opcode    int    `yaml:"opcode"`
	Subopcode int    `yaml:"subopcode"`
	Comment   string `yaml:"comment,omitempty"`

	None    bool     `yaml:"none,omitempty"`
	Int     *int     `yaml:"int,omitempty"`
	String  *string  `yaml:"string,omitempty"`
	Null    bool     `yaml:"nullptr,omitempty"`
	Ints    []int    `yaml:"ints,omitempty"`
	Strings []string `yaml:"strings,omitempty"`
	Float   *float64 `yaml:"float,omitempty"`
	Text    *string  `yaml:"text,omitempty"`
}

func (c Call) forms() []string {
	var forms []string
	if c.None {
		forms = append(forms, "none")
	}
	if c.Int != nil {
		forms = append(forms, "int")
	}
	if c.String != nil {
		forms = append(forms, "string")
	}
	if c.Null {
		forms = append(forms, "nullptr")
	}
	if c.Ints != nil {
		forms = append(forms, "ints")
	}
	if c.Strings != nil {
		forms = append(forms, "strings")
	}
	if c.Float != nil || c.Text != nil {
		forms = append(forms, "float")
	}
	return forms
}

func (c Call) Validate() error {
	forms := c.forms()
	switch len(forms) {
	case 0:
		return fmt.Errorf("%w: no argument form", ErrInvalidCall)
	case 1:
	default:
		return fmt.Errorf("%w: several argument forms: %s", ErrInvalidCall, strings.Join(forms, ", "))
	}
	if (c.Float == nil) != (c.Text == nil) {
		return fmt.Errorf("%w: float and text go together", ErrInvalidCall)
	}
	return nil
}

// Exec validates c and performs it on t.
func (c Call) Exec(t Target) error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch {
	case c.None:
		t.Dispatch(c.Opcode, c.Subopcode)
	case c.Int != nil:
		t.DispatchInt(c.Opcode, c.Subopcode, *c.Int)
	case c.String != nil:
		t.DispatchString(c.Opcode, c.Subopcode, c.String)
	case c.Null:
		t.DispatchString(c.Opcode, c.Subopcode, nil)
	case c.Ints != nil:
		t.DispatchInts(c.Opcode, c.Subopcode, c.Ints)
	case c.Strings != nil:
		t.DispatchStrings(c.Opcode, c.Subopcode, c.Strings)
	default:
		t.DispatchFloatString(c.Opcode, c.Subopcode, *c.Float, *c.Text)
	}
	return nil
}

// Run validates every call before performing any of them.
func (s *Script) Run(t Target) error {
	for i, c := range s.Calls {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("call %d (%d, %d): %w", i, c.Opcode, c.Subopcode, err)
		}
	}
	for _, c := range s.Calls {
		if err := c.Exec(t); err != nil {
			return err
		}
	}
	return nil
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Demo returns the built-in demonstration script.
func Demo() (*Script, error) {
	return Parse(demoYAML)
}
