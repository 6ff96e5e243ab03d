package loader

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shururuun/TourGuide-Utils/types"
)

// WriteLua writes quests in the Header form read by Load. header names the
// header a quest is listed under. Headers are written in name order, quests
// by id; zero fields are left out.
func WriteLua(w io.Writer, quests []types.QuestInfo, header func(types.QuestInfo) string) error {
	groups := map[string][]types.QuestInfo{}
	for _, q := range quests {
		h := header(q)
		groups[h] = append(groups[h], q)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "-- Generated quest database.")
	for _, name := range names {
		qs := groups[name]
		sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })

		fmt.Fprintf(bw, "\nHeader %s {\n", luaQuote(name))
		for _, q := range qs {
			fmt.Fprintf(bw, "    [%d] = { %s },\n", q.ID, strings.Join(questFieldsOf(q), ", "))
		}
		fmt.Fprintln(bw, "}")
	}
	return bw.Flush()
}

func questFieldsOf(q types.QuestInfo) []string {
	fields := []string{"title = " + luaQuote(q.Name)}
	add := func(key string, v int) {
		if v != 0 {
			fields = append(fields, fmt.Sprintf("%s = %d", key, v))
		}
	}
	add("lvl", q.Levels.Quest)
	add("min", q.Levels.Min)
	add("max", q.Levels.Max)
	add("sort", q.SortArea)
	add("races", q.Requirements.Races)
	add("classes", q.Requirements.Classes)
	add("prev", q.Links.Prev)
	add("next", q.Links.Next)
	return fields
}

// luaQuote quotes s as a Lua string literal. Control bytes use decimal
// escapes, the only numeric form every Lua understands.
func luaQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\%03d`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
