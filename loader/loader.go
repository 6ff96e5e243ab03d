package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/shururuun/TourGuide-Utils/internal/log"
)

// globalTable is the name of the table form of the quest database.
const globalTable = "QUESTDB"

// collector accumulates Lua definitions during file execution.
type collector struct {
	headers []rawHeader
	order   int
}

func (c *collector) nextSourceOrder() int {
	c.order++
	return c.order
}

// Load reads a quest database from a .lua file, or from every .lua file of
// a directory, compiles it and validates it. The Lua VM is discarded after
// loading.
func Load(path string) (*QuestDB, error) {
	files, err := luaFiles(path)
	if err != nil {
		return nil, err
	}

	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range files {
		if err := L.DoFile(f); err != nil {
			return nil, fmt.Errorf("executing %s: %w", filepath.Base(f), err)
		}
	}
	coll.collectGlobal(L)

	ve := &ValidationError{}
	db := compile(coll, ve)
	if err := validate(db, ve); err != nil {
		return nil, err
	}

	log.Debug("quest database loaded", "path", path, "headers", len(db.order), "quests", len(db.quests))
	return db, nil
}

// luaFiles lists the files to execute for path, sorted by name.
func luaFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading quest database %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading quest database directory %s: %w", path, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", path)
	}
	sort.Strings(files)
	return files, nil
}

// collectGlobal picks up headers defined through the QUESTDB table.
func (c *collector) collectGlobal(L *lua.LState) {
	tbl, ok := L.GetGlobal(globalTable).(*lua.LTable)
	if !ok {
		return
	}
	var names []string
	tbl.ForEach(func(k, v lua.LValue) {
		if name, ok := k.(lua.LString); ok {
			if _, ok := v.(*lua.LTable); ok {
				names = append(names, string(name))
			}
		}
	})
	// Table iteration order is not stable.
	sort.Strings(names)
	for _, name := range names {
		c.headers = append(c.headers, rawHeader{
			name:  name,
			table: tbl.RawGetString(name).(*lua.LTable),
			order: c.nextSourceOrder(),
		})
	}
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the VM.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require", "module",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}
