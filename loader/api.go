package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the quest database constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Header "Zone" { [qid] = { title = "...", lvl = n }, ... }
	// curried: Header("Zone") returns a function that takes a table.
	L.SetGlobal("Header", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.headers = append(coll.headers, rawHeader{
				name:  name,
				table: tbl,
				order: coll.nextSourceOrder(),
			})
			return 0
		}))
		return 1
	}))
}
