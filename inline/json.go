package inline

import (
	"encoding/json"
	"io"

	"github.com/lifo-cli/lifo/element"
	"github.com/lifo-cli/lifo/script"
)

type Output struct {
	Script  string              `json:"script,omitempty" jsonschema:"description=Name of the executed script"`
	Results []*script.Result    `json:"results"`
	Stacks  map[string][]string `json:"stacks,omitempty" jsonschema:"description=Every stack left when the script ended, bottom to top"`
	Ledger  *element.Ledger     `json:"ledger,omitempty"`
	Error   string              `json:"error,omitempty" jsonschema:"description=Set when the script failed to parse or run"`
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
