package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lifo-cli/lifo/history"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/util"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is an artifact the clear command can remove.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
	// after runs once the location has been removed.
	after func() error
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache, nil},
	{"history file", "history", mo.Some("s"), where.History, history.Forget},
	{"log files", "logs", mo.Some("l"), where.Logs, nil},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// confirmClear asks before removing the named artifacts.
func confirmClear(names []string) (bool, error) {
	confirm := survey.Confirm{
		Message: fmt.Sprintf("Clear %s?", joinNames(names)),
		Default: false,
	}

	var response bool
	err := survey.AskOne(&confirm, &response)
	return response, err
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return fmt.Sprintf("%s and %s", joinList(names[:len(names)-1]), names[len(names)-1])
	}
}

func joinList(names []string) string {
	return lo.Reduce(names[1:], func(acc string, name string, _ int) string {
		return acc + ", " + name
	}, names[0])
}

// clearCmd removes cached and persisted application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and persisted application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(target clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(target.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			ok, err := confirmClear(lo.Map(selected, func(target clearTarget, _ int) string {
				return target.name
			}))
			handleErr(err)

			if !ok {
				return
			}
		}

		for _, target := range selected {
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.location())
			e()
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}

			if target.after != nil {
				handleErr(target.after())
			}

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
