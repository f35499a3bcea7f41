// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// LuaModule is the name under which the stack module is preloaded into Lua states.
const LuaModule = "stack"

// LuaTemplate is a Go text/template for scaffolding new Lua stack scripts.
const LuaTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


----- IMPORTS -----
local {{ .Module }} = require("{{ .Module }}")
--- END IMPORTS ---



----- MAIN -----

local s = {{ .Module }}.new()

s:push(1)
s:push(2)
s:push({ name = "three" })

print("size", s:size(), "capacity", s:capacity())
print("top", s:peek().name)

local copy = s:clone()
copy:reverse()
print("clone", tostring(copy))

while not s:empty() do
	print("pop", s:pop())
end

copy:free()

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
