package enrich

import (
	"sort"
	"strings"
)

// Race and class ids as used by the quest requirement bitmasks. Bit n-1 of
// a mask stands for id n.
var raceIDs = map[int]string{
	1:  "Human",
	2:  "Orc",
	3:  "Dwarf",
	4:  "Night Elf",
	5:  "Undead",
	6:  "Tauren",
	7:  "Gnome",
	8:  "Troll",
	10: "Blood Elf",
	11: "Draenei",
}

var classIDs = map[int]string{
	1:  "Warrior",
	2:  "Paladin",
	3:  "Hunter",
	4:  "Rogue",
	5:  "Priest",
	7:  "Shaman",
	8:  "Mage",
	9:  "Warlock",
	11: "Druid",
}

var (
	allRaces   = fullMask(raceIDs)
	allClasses = fullMask(classIDs)
)

func fullMask(ids map[int]string) int {
	mask := 0
	for id := range ids {
		mask |= 1 << (id - 1)
	}
	return mask
}

// RaceNames turns a race mask into an R tag value. It returns "" when the
// mask does not restrict anything.
func RaceNames(mask int) string {
	return names(mask, allRaces, raceIDs)
}

// ClassNames turns a class mask into a C tag value. It returns "" when the
// mask does not restrict anything.
func ClassNames(mask int) string {
	return names(mask, allClasses, classIDs)
}

func names(mask, all int, ids map[int]string) string {
	mask &= all
	if mask == 0 || mask == all {
		return ""
	}
	var keys []int
	for id := range ids {
		if mask&(1<<(id-1)) != 0 {
			keys = append(keys, id)
		}
	}
	sort.Ints(keys)
	out := make([]string, len(keys))
	for i, id := range keys {
		out[i] = ids[id]
	}
	return strings.Join(out, ",")
}
