package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"opcode-map/internal/parser"
	"opcode-map/internal/script"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "Replay a script of dispatch calls (the built-in demo when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   *script.Script
				err error
			)
			if len(args) == 1 {
				s, err = script.Load(args[0])
			} else {
				s, err = script.Demo()
			}
			if err != nil {
				return err
			}

			p, err := opts.newParser(cmd)
			if err != nil {
				return err
			}
			return s.Run(p)
		},
	}
}

var argFlags = []string{"int", "string", "nullptr", "ints", "strings", "float", "text"}

func newCallCmd(opts *rootOptions) *cobra.Command {
	var (
		call    script.Call
		intVal  int
		strVal  string
		fltVal  float64
		textVal string
	)

	cmd := &cobra.Command{
		Use:   "call OPCODE SUBOPCODE",
		Short: "Dispatch a single call",
		Example: `  opcodemap call 1 2
  opcodemap call 1 2 --int 34
  opcodemap call 2 4 --nullptr
  opcodemap call 4 1 --ints 1,2,3,5,7
  opcodemap call 6 1 --float 3.1415926 --text Hello`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if call.Opcode, err = strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("opcode %q: %w", args[0], err)
			}
			if call.Subopcode, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("subopcode %q: %w", args[1], err)
			}

			flags := cmd.Flags()
			if flags.Changed("int") {
				call.Int = &intVal
			}
			if flags.Changed("string") {
				call.String = &strVal
			}
			if flags.Changed("float") {
				call.Float = &fltVal
			}
			if flags.Changed("text") {
				call.Text = &textVal
			}
			if flags.Changed("ints") && call.Ints == nil {
				call.Ints = []int{}
			}
			if flags.Changed("strings") && call.Strings == nil {
				call.Strings = []string{}
			}
			call.None = true
			for _, name := range argFlags {
				if flags.Changed(name) {
					call.None = false
				}
			}

			p, err := opts.newParser(cmd)
			if err != nil {
				return err
			}
			return call.Exec(p)
		},
	}

	f := cmd.Flags()
	f.IntVar(&intVal, "int", 0, "dispatch with an int argument")
	f.StringVar(&strVal, "string", "", "dispatch with a string argument")
	f.BoolVar(&call.Null, "nullptr", false, "dispatch with a nil string argument")
	f.IntSliceVar(&call.Ints, "ints", nil, "dispatch with an int sequence")
	f.StringSliceVar(&call.Strings, "strings", nil, "dispatch with a string sequence")
	f.Float64Var(&fltVal, "float", 0, "float argument, used with --text")
	f.StringVar(&textVal, "text", "", "string argument, used with --float")
	return cmd
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the registered handlers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := parser.Table()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OPCODE\tSUBOPCODE\tHANDLER\tSIGNATURE")
			for _, key := range reg.Keys() {
				for _, h := range reg.Lookup(key) {
					fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", key.Opcode, key.Subopcode, h.Name, h.Signature())
				}
			}
			return w.Flush()
		},
	}
}
