package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/lifo-cli/lifo/script"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ResultFilter selects which results are reported.
type ResultFilter func(*script.Result) bool

type Options struct {
	Out io.Writer
	// Trace receives every instruction before it runs and the final ledger; nil disables tracing.
	Trace io.Writer
	Json  bool
	// Name labels the script in logs and JSON output.
	Name string
	// Width truncates each printed line; zero prints lines whole.
	Width   int
	Session script.Options
	Filter  mo.Option[ResultFilter]
}

func (o *Options) name() string {
	if o.Name == "" {
		return "script"
	}
	return o.Name
}

func (o *Options) filter(results []*script.Result) []*script.Result {
	keep, ok := o.Filter.Get()
	if !ok {
		return results
	}
	return lo.Filter(results, func(r *script.Result, _ int) bool {
		return keep(r)
	})
}

// ParseResultFilter parses a comma separated list of operation keywords,
// e.g. "pop,peek", into a filter keeping only the results of those operations.
func ParseResultFilter(description string) (ResultFilter, error) {
	var wanted []script.Op
	for _, name := range strings.Split(description, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}

		op, ok := script.LookupOp(name)
		if !ok {
			return nil, fmt.Errorf("invalid result filter: unknown operation %q", name)
		}
		wanted = append(wanted, op)
	}

	if len(wanted) == 0 {
		return nil, fmt.Errorf("invalid result filter: %q", description)
	}

	return func(r *script.Result) bool {
		op, _ := script.LookupOp(r.Op)
		return lo.Contains(wanted, op)
	}, nil
}
