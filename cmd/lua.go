package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/luastack"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const luaExt = ".lua"

func init() {
	rootCmd.AddCommand(luaCmd)
}

// luaCmd runs Lua scripts that use the stack module.
var luaCmd = &cobra.Command{
	Use:   "lua [file]",
	Short: "Execute a Lua script with the stack module preloaded",
	Long: fmt.Sprintf(`Initialize the Lua 5.1 virtual machine and execute a script.
The stack module is available through require(%q). A bare name is looked up in the scripts directory.`, constant.LuaModule),
	Args:    cobra.ExactArgs(1),
	Example: "  lifo lua ./numbers.lua",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return luaScripts(), cobra.ShellCompDirectiveDefault
	},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(luastack.Run(resolveScript(args[0], luaExt)))
	},
}

func luaScripts() []string {
	entries, err := filesystem.API().ReadDir(where.Scripts())
	if err != nil {
		return nil
	}

	return lo.FilterMap(entries, func(item os.FileInfo, _ int) (string, bool) {
		name := item.Name()
		if !strings.HasSuffix(name, luaExt) {
			return "", false
		}

		return util.FileStem(name), true
	})
}

func init() {
	luaCmd.AddCommand(luaListCmd)
}

// luaListCmd lists the Lua scripts in the scripts directory.
var luaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the Lua scripts in the scripts directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)
		scripts := luaScripts()
		if len(scripts) == 0 {
			cmd.Println(style.Faint("no scripts in " + where.Scripts()))
			return
		}

		for _, name := range scripts {
			cmd.Printf("%s %s\n", icon.Get(icon.Lua), name)
		}
	},
}

func init() {
	luaCmd.AddCommand(luaNewCmd)

	luaNewCmd.Flags().StringP("name", "n", "", "The name of the new script")
	lo.Must0(luaNewCmd.MarkFlagRequired("name"))
}

// luaNewCmd scaffolds a Lua script in the scripts directory.
var luaNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new Lua stack script from a template",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name   string
			Author string
			Module string
		}{
			Name:   lo.Must(cmd.Flags().GetString("name")),
			Author: author,
			Module: constant.LuaModule,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("script").Funcs(funcMap).Parse(constant.LuaTemplate)
		handleErr(err)

		target := filepath.Join(where.Scripts(), filepath.Base(s.Name)+luaExt)
		if exists, _ := filesystem.API().Exists(target); exists {
			handleErr(fmt.Errorf("script %s already exists", style.Fg(color.Yellow)(target)))
		}

		f, err := filesystem.API().Create(target)
		handleErr(err)
		defer func() {
			_ = f.Close()
		}()

		handleErr(tmpl.Execute(f, s))
		cmd.Printf("%s created %s\n", icon.Get(icon.Success), target)
	},
}
