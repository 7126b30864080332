package scene

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"minautomata/internal/sims/sand"
)

// LuaScript is a scene expressed as a Lua chunk. The chunk sees the globals
// width(), height(), paint(x, y, kind), rect(x, y, w, h, kind),
// line(x0, y0, x1, y1, kind), kind_at(x, y) and tick([n]).
type LuaScript struct {
	Name   string
	Source string
}

// Apply executes the script against c. Cancelling ctx aborts the script.
func (s *LuaScript) Apply(ctx context.Context, c Canvas) error {
	vm := lua.NewState()
	defer vm.Close()
	vm.SetContext(ctx)

	size := c.Size()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("width", vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(size.W))
		return 1
	}))
	vm.SetGlobal("height", vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(size.H))
		return 1
	}))
	vm.SetGlobal("paint", vm.NewFunction(func(L *lua.LState) int {
		k := checkKind(L, 3)
		if err := c.Paint(L.CheckInt(1), L.CheckInt(2), k); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))
	vm.SetGlobal("rect", vm.NewFunction(func(L *lua.LState) int {
		k := checkKind(L, 5)
		if err := fillRect(c, L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), k); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))
	vm.SetGlobal("line", vm.NewFunction(func(L *lua.LState) int {
		k := checkKind(L, 5)
		if err := drawLine(c, L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), k); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))
	vm.SetGlobal("kind_at", vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(c.KindAt(L.CheckInt(1), L.CheckInt(2)).String()))
		return 1
	}))
	vm.SetGlobal("tick", vm.NewFunction(func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		for i := 0; i < n; i++ {
			c.Tick()
		}
		return 0
	}))

	if err := vm.DoString(s.Source); err != nil {
		return fmt.Errorf("lua scene %s: %w", s.Name, err)
	}
	return nil
}

func checkKind(L *lua.LState, n int) sand.Kind {
	k, err := sand.ParseKind(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return k
}
