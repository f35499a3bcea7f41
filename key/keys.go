// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Stack Construction - these keys govern stacks created by the application.
const (
	StackInitialCapacity = "stack.initial_capacity"
)

// Script Interpretation - these keys configure the operation script interpreter.
const (
	ScriptNumericCompare = "script.numeric_compare"
	ScriptTrace          = "script.trace"
)

// Command History - these keys configure the persistence of submitted TUI lines.
const (
	HistorySaveCommands    = "history.save_commands"
	HistoryShowSuggestions = "history.show_suggestions"
)

// Terminal Interface - these keys define the UI parameters of the interactive editor.
const (
	TUIShowCapacity = "tui.show_capacity"
	TUIPrompt       = "tui.prompt"
)

// Lua Scripting - these keys configure the embedded Lua virtual machine.
const (
	LuaPreloadLibs = "lua.preload_libs"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Diagnostic Logging - these keys configure the file-based logging subsystem.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Command Line Interface - these keys configure the presentation of CLI output.
const (
	CliColored = "cli.colored"
)
