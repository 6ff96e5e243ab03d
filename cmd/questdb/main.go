// Questdb exports the quests of a world database as a Lua quest database
// for the tourguide filter.
// Usage: questdb --db FILE [-o FILE]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shururuun/TourGuide-Utils/engine/coords"
	"github.com/shururuun/TourGuide-Utils/internal/log"
	"github.com/shururuun/TourGuide-Utils/loader"
	"github.com/shururuun/TourGuide-Utils/store"
	"github.com/shururuun/TourGuide-Utils/types"
)

func main() {
	var dbPath, outFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--db", "-o":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a file path\n", args[i])
				os.Exit(1)
			}
			if args[i] == "--db" {
				dbPath = args[i+1]
			} else {
				outFile = args[i+1]
			}
			i++
		case "-v", "--verbose":
			log.SetLevel("debug")
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %s\n", args[i])
			os.Exit(1)
		}
	}
	if dbPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: questdb --db FILE [-o FILE]\n")
		os.Exit(1)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening world database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	quests, err := st.AllQuests()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading quests: %v\n", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := loader.WriteLua(w, quests, headerOf); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing quest database: %v\n", err)
		os.Exit(1)
	}
	log.Info("quest database exported", "quests", len(quests))
}

// headerOf names a quest's header after the zone of its sort area. Negative
// sort areas are quest categories, not zones.
func headerOf(q types.QuestInfo) string {
	if z, ok := coords.ZoneByID(q.SortArea); ok {
		return z.Name
	}
	return fmt.Sprintf("Other %d", q.SortArea)
}
