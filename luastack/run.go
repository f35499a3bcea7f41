package luastack

import (
	"fmt"
	"io"
	"sync"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	libs "github.com/metafates/mangal-lua-libs"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// NewState returns a Lua state with the stack module preloaded, together with
// the standard extension libraries unless lua.preload_libs is off.
func NewState() *lua.LState {
	L := lua.NewState()
	if viper.GetBool(key.LuaPreloadLibs) {
		libs.Preload(L)
	}
	Preload(L)
	return L
}

// Run executes the Lua script at path in a fresh state.
func Run(path string) error {
	L := NewState()
	defer L.Close()

	log.Infof("lua: running %s", path)
	if err := Load(L, path); err != nil {
		return fmt.Errorf("lua: %w", err)
	}

	return nil
}

// Load executes the script at path within L. Compiled prototypes are cached by path.
func Load(L *lua.LState, path string) error {
	if cached, ok := bytecodeCache.Load(path); ok {
		return call(L, cached.(*lua.FunctionProto))
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	proto, err := compile(file, path)
	if err != nil {
		return err
	}

	bytecodeCache.Store(path, proto)
	return call(L, proto)
}

// Exec compiles and executes source within L without caching it.
func Exec(L *lua.LState, source io.Reader, name string) error {
	proto, err := compile(source, name)
	if err != nil {
		return err
	}

	return call(L, proto)
}

func compile(r io.Reader, name string) (*lua.FunctionProto, error) {
	chunk, err := parse.Parse(r, name)
	if err != nil {
		return nil, err
	}

	return lua.Compile(chunk, name)
}

func call(L *lua.LState, proto *lua.FunctionProto) error {
	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}
