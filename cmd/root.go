// Package cmd implements the command-line interface for lifo.
package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., plain, emoji, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().IntP("capacity", "C", 0, "Initial capacity of every stack")
	lo.Must0(viper.BindPFlag(key.StackInitialCapacity, rootCmd.PersistentFlags().Lookup("capacity")))

	rootCmd.PersistentFlags().BoolP("numeric", "N", true, "Order numeric items by value when comparing")
	lo.Must0(viper.BindPFlag(key.ScriptNumericCompare, rootCmd.PersistentFlags().Lookup("numeric")))

	rootCmd.Flags().StringP("preload", "p", "", "Run a script before the editor opens")
}

// rootCmd launches the interactive stack editor.
var rootCmd = &cobra.Command{
	Use:   constant.Lifo,
	Short: "An owning LIFO stack with an interactive editor",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - An owning LIFO stack with an interactive editor"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{Session: sessionOptions()}

		if path := lo.Must(cmd.Flags().GetString("preload")); path != "" {
			instructions, err := parseFile(path)
			handleErr(err)
			options.Preload = instructions
		}

		handleErr(tui.Run(&options))
	},
}

// sessionOptions builds the options for sessions started from the command line.
func sessionOptions() script.Options {
	return script.Options{
		Capacity: viper.GetInt(key.StackInitialCapacity),
		Numeric:  viper.GetBool(key.ScriptNumericCompare),
	}
}

func parseFile(path string) ([]script.Instruction, error) {
	data, err := filesystem.ReadAll(resolveScript(path, scriptExt), os.Stdin)
	if err != nil {
		return nil, err
	}

	return script.Parse(bytes.NewReader(data))
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
