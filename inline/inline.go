// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/util"
)

// Run parses a whole script from r and executes it in a fresh session.
// All stacks are freed before Run returns, whatever the outcome.
func Run(r io.Reader, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	instructions, err := script.Parse(r)
	if err != nil {
		if options.Json {
			if werr := writeJson(options.Out, &Output{Script: options.Name, Results: []*script.Result{}, Error: err.Error()}); werr != nil {
				return werr
			}
		}
		return err
	}

	session := script.NewSession(options.Session)
	results, runErr := execute(session, instructions, options)
	stacks := session.Snapshot()
	session.Close()

	log.Infof("ran %s: %s, %s", options.name(), util.Quantify(len(results), "instruction", "instructions"), session.Ledger())

	if options.Trace != nil {
		fmt.Fprintf(options.Trace, "ledger: %s\n", session.Ledger())
	}

	results = options.filter(results)

	if options.Json {
		output := &Output{
			Script:  options.Name,
			Results: results,
			Stacks:  stacks,
			Ledger:  session.Ledger(),
		}
		if runErr != nil {
			output.Error = runErr.Error()
		}

		if err := writeJson(options.Out, output); err != nil {
			return err
		}
		return runErr
	}

	for _, result := range results {
		if result.Quiet() {
			continue
		}
		fmt.Fprintln(options.Out, util.Truncate(result.String(), options.Width))
	}

	return runErr
}

func execute(session *script.Session, instructions []script.Instruction, options *Options) ([]*script.Result, error) {
	results := make([]*script.Result, 0, len(instructions))
	for _, ins := range instructions {
		if options.Trace != nil {
			fmt.Fprintf(options.Trace, "%d: %s\n", ins.Line, ins)
		}

		result, err := session.Execute(ins)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}
