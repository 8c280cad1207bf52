package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/zephyrtronium/calculator"
)

const (
	welcome      = "Welcome to calculator, type an action to do (type h for help)"
	prompt       = "Enter a operation: "
	unrecognized = "Unrecognized action, type h for help"
)

var (
	heading = color.New(color.Bold)
	result  = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	marker  = color.New(color.FgYellow)
)

// shell is the interactive read loop.
type shell struct {
	cfg *config
}

// run reads actions from in until q or EOF. Bad expressions are reported to
// out and never end the loop; the only errors returned are from reading.
func (sh *shell) run(in io.Reader, out io.Writer) error {
	scan := newLineScanner(in, sh.cfg.maxLength)
	fmt.Fprintln(out, welcome)
	for scan.Scan() {
		switch strings.TrimSpace(scan.Text()) {
		case "h":
			sh.help(out)
		case "q":
			sh.cfg.log.Info("quit")
			return nil
		case "o":
			fmt.Fprint(out, prompt)
			if !scan.Scan() {
				fmt.Fprintln(out)
				return scan.Err()
			}
			fmt.Fprintln(out)
			sh.operate(out, scan.Text())
		default:
			fmt.Fprintln(out, unrecognized)
		}
	}
	return scan.Err()
}

// operate evaluates one expression and prints the result or a diagnostic.
func (sh *shell) operate(out io.Writer, text string) {
	a, r, err := sh.cfg.evaluate(text)
	if sh.cfg.echo && a != nil {
		fmt.Fprintf(out, "%v : ", a)
	}
	if err != nil {
		diagnose(out, text, err)
		return
	}
	fmt.Fprintf(out, "%s = %s\n", text, result.Sprint(sh.cfg.format(r)))
}

func (sh *shell) help(out io.Writer) {
	heading.Fprintln(out, "Commands:")
	fmt.Fprintln(out, " - (h): prints the help to the console")
	fmt.Fprintln(out, " - (q): quits the program")
	fmt.Fprintln(out, " - (o): execute a operation")
	fmt.Fprintln(out)
	heading.Fprintln(out, "Available operations:")
	fmt.Fprintln(out, " - Addition (+)")
	fmt.Fprintln(out, " - Subtraction (-)")
	fmt.Fprintln(out, " - Multiplication (*)")
	fmt.Fprintln(out, " - Division (/)")
	fmt.Fprintln(out, " - Power (^)")
	fmt.Fprintln(out)
	heading.Fprintln(out, "Constants:")
	for _, name := range calculator.Constants() {
		v, _ := calculator.ConstantText(name, 20)
		fmt.Fprintf(out, " - %s = %s\n", name, v)
	}
}

// diagnose prints an evaluation error. Input errors get a marker under the
// column where the problem is.
func diagnose(out io.Writer, text string, err error) {
	var ie calculator.InputError
	if errors.As(err, &ie) && ie.Pos() >= 1 && ie.Pos() <= utf8.RuneCountInString(text)+1 {
		fmt.Fprintln(out, text)
		marker.Fprintln(out, strings.Repeat(" ", ie.Pos()-1)+"^")
	}
	failure.Fprintf(out, "error: %v\n", err)
}
