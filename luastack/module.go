// Package luastack exposes the stack container to Lua scripts.
//
// Lua API:
//
//	local stack = require("stack")
//	local s = stack.new([capacity])
//	s:push(v, ...)   → size
//	s:pop()          → top or nil
//	s:peek()         → top or nil
//	s:contains(v)    → boolean, tables compare by content
//	s:clone()        → independent stack
//	s:totable()      → { bottom, ..., top }
//	s:size() s:capacity() s:empty() s:clear() s:reverse() s:free()
//	#s, tostring(s)
//
// Pushed tables are deep-copied, so later changes to the original do not reach the stack.
package luastack

import (
	"strings"

	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
)

const metatableName = "lifo.stack"

// Stack is the stack type backing Lua stack objects.
type Stack = stack.Stack[lua.LValue]

// handle is the userdata payload. A freed handle holds a nil stack, which behaves as empty.
type handle struct {
	s *Stack
}

var methods = map[string]lua.LGFunction{
	"push":     stackPush,
	"pop":      stackPop,
	"peek":     stackPeek,
	"clear":    stackClear,
	"size":     stackSize,
	"capacity": stackCapacity,
	"empty":    stackEmpty,
	"contains": stackContains,
	"clone":    stackClone,
	"reverse":  stackReverse,
	"totable":  stackToTable,
	"free":     stackFree,
}

// Preload makes the stack module available to require.
func Preload(L *lua.LState) {
	L.PreloadModule(constant.LuaModule, loader)
}

func loader(L *lua.LState) int {
	mt := L.NewTypeMetatable(metatableName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	L.SetField(mt, "__len", L.NewFunction(stackSize))
	L.SetField(mt, "__tostring", L.NewFunction(stackString))

	mod := L.NewTable()
	L.SetField(mod, "new", L.NewFunction(stackNew))
	L.Push(mod)
	return 1
}

// New returns an empty stack holding Lua values, copying tables through L.
func New(L *lua.LState, capacity int) *Stack {
	return stack.NewSized[lua.LValue](
		capacity,
		func(v lua.LValue) lua.LValue { return deepCopy(L, v) },
		stack.Discard[lua.LValue],
		compare,
	)
}

func wrap(L *lua.LState, s *Stack) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = &handle{s: s}
	L.SetMetatable(ud, L.GetTypeMetatable(metatableName))
	return ud
}

func check(L *lua.LState) *handle {
	ud := L.CheckUserData(1)
	if h, ok := ud.Value.(*handle); ok {
		return h
	}

	L.ArgError(1, "stack expected")
	return nil
}

func stackNew(L *lua.LState) int {
	capacity := viper.GetInt(key.StackInitialCapacity)
	if L.GetTop() >= 1 {
		capacity = L.CheckInt(1)
		if capacity < 0 {
			L.ArgError(1, "capacity must not be negative")
			return 0
		}
	}

	L.Push(wrap(L, New(L, capacity)))
	return 1
}

func stackPush(L *lua.LState) int {
	h := check(L)
	L.CheckAny(2)

	for i := 2; i <= L.GetTop(); i++ {
		v := L.Get(i)
		if v == lua.LNil {
			L.ArgError(i, "nil cannot be pushed")
			return 0
		}
		h.s.Push(v)
	}

	L.Push(lua.LNumber(h.s.Len()))
	return 1
}

func stackPop(L *lua.LState) int {
	h := check(L)
	L.Push(h.s.Pop().OrElse(lua.LNil))
	return 1
}

func stackPeek(L *lua.LState) int {
	h := check(L)
	L.Push(h.s.Peek().OrElse(lua.LNil))
	return 1
}

func stackClear(L *lua.LState) int {
	check(L).s.Clear()
	return 0
}

func stackSize(L *lua.LState) int {
	L.Push(lua.LNumber(check(L).s.Len()))
	return 1
}

func stackCapacity(L *lua.LState) int {
	L.Push(lua.LNumber(check(L).s.Cap()))
	return 1
}

func stackEmpty(L *lua.LState) int {
	L.Push(lua.LBool(check(L).s.IsEmpty()))
	return 1
}

func stackContains(L *lua.LState) int {
	h := check(L)
	L.Push(lua.LBool(h.s.Contains(L.CheckAny(2))))
	return 1
}

func stackClone(L *lua.LState) int {
	h := check(L)
	if h.s == nil {
		L.RaiseError("clone of a freed stack")
		return 0
	}

	L.Push(wrap(L, h.s.Clone()))
	return 1
}

func stackReverse(L *lua.LState) int {
	check(L).s.Reverse()
	return 0
}

func stackToTable(L *lua.LState) int {
	items := check(L).s.ToSlice()
	table := L.CreateTable(len(items), 0)
	for _, item := range items {
		table.Append(item)
	}

	L.Push(table)
	return 1
}

func stackFree(L *lua.LState) int {
	h := check(L)
	if h.s != nil {
		log.Debugf("lua: freeing stack of %d", h.s.Len())
	}

	h.s.Free()
	h.s = nil
	return 0
}

func stackString(L *lua.LState) int {
	items := check(L).s.ToSlice()
	words := make([]string, len(items))
	for i, item := range items {
		words[i] = display(item)
	}

	L.Push(lua.LString("stack[" + strings.Join(words, " ") + "]"))
	return 1
}
