package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions and print their results",
		Long: `Evaluate each argument as a separate expression and print one result per
line. With no arguments, each line of standard input is an expression.

The exit status is non-zero if any expression fails.`,
		Example: `  calculator eval '3 + 4 * (2 - 1)' 'pi/2'
  calculator eval -- '-5 + 3'
  echo '2^3^2' | calculator eval --echo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ins []string
			if len(args) == 0 {
				lines, err := readLines(cmd.InOrStdin(), cfg.maxLength)
				if err != nil {
					return err
				}
				ins = lines
			} else {
				ins = args
			}
			failed := 0
			for _, text := range ins {
				if !evalOne(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, text) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(ins))
			}
			return nil
		},
	}
}

// evalOne prints the result of one expression to out, or a diagnostic to
// errout. It reports whether evaluation succeeded.
func evalOne(out, errout io.Writer, cfg *config, text string) bool {
	a, r, err := cfg.evaluate(text)
	if err != nil {
		diagnose(errout, text, err)
		return false
	}
	if cfg.echo {
		fmt.Fprintf(out, "%v : ", a)
	}
	fmt.Fprintln(out, result.Sprint(cfg.format(r)))
	return true
}

// readLines reads the non-blank lines of in. Lines too long for maxLength are
// cut short.
func readLines(in io.Reader, maxLength int) ([]string, error) {
	var lines []string
	scan := newLineScanner(in, maxLength)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		lines = append(lines, scan.Text())
	}
	return lines, scan.Err()
}
