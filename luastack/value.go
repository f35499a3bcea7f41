package luastack

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// deepCopy duplicates tables recursively, sharing nothing with the original.
// Metatables are shared. Other values are immutable in Lua and returned as is.
func deepCopy(L *lua.LState, v lua.LValue) lua.LValue {
	return copyValue(L, v, make(map[*lua.LTable]*lua.LTable))
}

func copyValue(L *lua.LState, v lua.LValue, seen map[*lua.LTable]*lua.LTable) lua.LValue {
	table, ok := v.(*lua.LTable)
	if !ok {
		return v
	}

	if dup, ok := seen[table]; ok {
		return dup
	}

	dup := L.CreateTable(table.Len(), 0)
	dup.Metatable = table.Metatable
	seen[table] = dup
	table.ForEach(func(key, value lua.LValue) {
		dup.RawSet(copyValue(L, key, seen), copyValue(L, value, seen))
	})

	return dup
}

// typeRank orders values of different types: nil, booleans, numbers, strings, tables, the rest.
func typeRank(v lua.LValue) int {
	switch v.Type() {
	case lua.LTNil:
		return 0
	case lua.LTBool:
		return 1
	case lua.LTNumber:
		return 2
	case lua.LTString:
		return 3
	case lua.LTTable:
		return 4
	default:
		return 5
	}
}

// compare orders two values. Tables compare equal when their contents do.
func compare(a, b lua.LValue) int {
	if ra, rb := typeRank(a), typeRank(b); ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch x := a.(type) {
	case *lua.LNilType:
		return 0
	case lua.LBool:
		return cmp.Compare(boolRank(x), boolRank(b.(lua.LBool)))
	case lua.LNumber:
		return cmp.Compare(float64(x), float64(b.(lua.LNumber)))
	case lua.LString:
		return strings.Compare(string(x), string(b.(lua.LString)))
	case *lua.LTable:
		return strings.Compare(canonical(x), canonical(b))
	default:
		if a == b {
			return 0
		}
		return strings.Compare(a.String(), b.String())
	}
}

func boolRank(b lua.LBool) int {
	if b {
		return 1
	}
	return 0
}

// canonical renders a value so that structurally equal tables render identically.
func canonical(v lua.LValue) string {
	var b strings.Builder
	render(&b, v, make(map[*lua.LTable]bool), true)
	return b.String()
}

// display renders a value for people: strings are not quoted.
func display(v lua.LValue) string {
	var b strings.Builder
	render(&b, v, make(map[*lua.LTable]bool), false)
	return b.String()
}

func render(b *strings.Builder, v lua.LValue, visiting map[*lua.LTable]bool, quote bool) {
	switch x := v.(type) {
	case lua.LString:
		if quote {
			b.WriteString(strconv.Quote(string(x)))
		} else {
			b.WriteString(string(x))
		}
	case *lua.LTable:
		if visiting[x] {
			b.WriteString("{...}")
			return
		}
		visiting[x] = true
		defer delete(visiting, x)

		var entries []string
		x.ForEach(func(key, value lua.LValue) {
			var e strings.Builder
			render(&e, key, visiting, true)
			e.WriteByte('=')
			render(&e, value, visiting, quote)
			entries = append(entries, e.String())
		})
		slices.Sort(entries)

		b.WriteByte('{')
		b.WriteString(strings.Join(entries, ", "))
		b.WriteByte('}')
	default:
		b.WriteString(v.String())
	}
}
