package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/inline"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/util"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scriptExt is appended to bare operation script names looked up in the scripts directory.
const scriptExt = ".lifo"

func init() {
	rootCmd.AddCommand(runCmd)
	addInlineFlags(runCmd)
}

func addInlineFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	cmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	cmd.Flags().StringP("only", "O", "", "Report only the results of these operations, e.g. pop,peek")
	lo.Must0(cmd.RegisterFlagCompletionFunc("only", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return script.Ops(), cobra.ShellCompDirectiveNoFileComp
	}))

	cmd.Flags().BoolP("trace", "t", false, "Print every instruction and the final ledger to stderr")
}

// runCmd executes an operation script from a file or stdin.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute an operation script",
	Long: `Execute an operation script, one instruction per line or separated by semicolons.
Pass - to read the script from stdin. A bare name is looked up in the scripts directory.

Operations:
` + opsUsage(),
	Args:    cobra.ExactArgs(1),
	Example: "  lifo run ./numbers.lifo\n  echo 'push 1 2; pop' | lifo run -",
	Run: func(cmd *cobra.Command, args []string) {
		path := resolveScript(args[0], scriptExt)
		data, err := filesystem.ReadAll(path, os.Stdin)
		handleErr(err)

		name := path
		if path == filesystem.Stdin {
			name = "stdin"
		}

		runInline(cmd, name, bytes.NewReader(data))
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	addInlineFlags(evalCmd)
}

// evalCmd executes instructions given as arguments.
var evalCmd = &cobra.Command{
	Use:     "eval [instructions...]",
	Short: "Execute instructions given on the command line",
	Long: `Execute instructions given on the command line.
The arguments are joined with spaces into one line of script text, so shell quoting does not
group words: lifo eval push "a b" pushes two items. Quote inside the script to keep a word whole.`,
	Args:    cobra.MinimumNArgs(1),
	Example: "  lifo eval 'push 1 2 3; reverse; array'\n  lifo eval 'push \"a b\"'",
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, "eval", strings.NewReader(evalSource(args)))
	},
}

// evalSource joins eval arguments into the script line they stand for.
func evalSource(args []string) string {
	return strings.Join(args, " ")
}

func runInline(cmd *cobra.Command, name string, r io.Reader) {
	var (
		output = lo.Must(cmd.Flags().GetString("output"))
		only   = lo.Must(cmd.Flags().GetString("only"))
	)

	options := &inline.Options{
		Json:    lo.Must(cmd.Flags().GetBool("json")),
		Name:    name,
		Session: sessionOptions(),
		Filter:  mo.None[inline.ResultFilter](),
	}

	if only != "" {
		filter, err := inline.ParseResultFilter(only)
		handleErr(err)
		options.Filter = mo.Some(filter)
	}

	trace := viper.GetBool(key.ScriptTrace)
	if cmd.Flags().Changed("trace") {
		trace = lo.Must(cmd.Flags().GetBool("trace"))
	}
	if trace {
		options.Trace = cmd.ErrOrStderr()
	}

	if output != "" {
		file, err := filesystem.API().Create(output)
		handleErr(err)
		defer func(file afero.File) {
			_ = file.Close()
		}(file)
		options.Out = file
	} else {
		options.Out = cmd.OutOrStdout()
		if width, _, err := util.TerminalSize(); err == nil && !options.Json {
			options.Width = width
		}
	}

	handleErr(inline.Run(r, options))
}

// resolveScript maps a bare script name to a file in the scripts directory
// when no such file exists relative to the working directory.
func resolveScript(path, ext string) string {
	if path == filesystem.Stdin || strings.ContainsRune(path, filepath.Separator) {
		return path
	}

	if exists, _ := filesystem.API().Exists(path); exists {
		return path
	}

	candidate := filepath.Join(where.Scripts(), path)
	if filepath.Ext(candidate) == "" {
		candidate += ext
	}

	if exists, _ := filesystem.API().Exists(candidate); exists {
		return candidate
	}

	return path
}

func opsUsage() string {
	var b strings.Builder
	for _, name := range script.Ops() {
		op, _ := script.LookupOp(name)
		b.WriteString("  " + op.Usage() + "\n")
	}
	return b.String()
}

func init() {
	runCmd.AddCommand(runSchemaCmd)
}

// runSchemaCmd prints the JSON schema of the output produced with --json.
var runSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured script output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "result", "ledger":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
