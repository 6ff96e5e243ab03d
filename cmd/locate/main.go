// Locate prints guide coordinates for creatures of a world database.
// Usage: locate [-z ZONE] --db FILE NAME...
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shururuun/TourGuide-Utils/engine/coords"
	"github.com/shururuun/TourGuide-Utils/engine/grammar"
	"github.com/shururuun/TourGuide-Utils/store"
	"github.com/shururuun/TourGuide-Utils/types"
)

func main() {
	var dbPath, zone string
	var names []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-z", "--zone", "--db":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a value\n", args[i])
				os.Exit(1)
			}
			if args[i] == "--db" {
				dbPath = args[i+1]
			} else {
				zone = args[i+1]
			}
			i++
		default:
			names = append(names, args[i])
		}
	}
	if dbPath == "" || len(names) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: locate [-z ZONE] --db FILE NAME...\n")
		os.Exit(1)
	}
	if zone != "" && !coords.KnownZone(zone) {
		fmt.Fprintf(os.Stderr, "Unknown zone '%s'\n", zone)
		os.Exit(1)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening world database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	for _, name := range names {
		locs, err := st.FindCreatures(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error looking up '%s': %v\n", name, err)
			os.Exit(1)
		}
		if len(locs) == 0 {
			fmt.Fprintf(os.Stderr, "No creature matching '%s'\n", name)
			continue
		}
		for _, loc := range locs {
			printLocation(os.Stdout, loc, zone)
		}
	}
}

// printLocation writes the guide tags of one spawn, followed by its
// projection into zone when that differs from the natural zone.
func printLocation(w io.Writer, loc types.Location, zone string) {
	pos := types.WorldPosition{Map: loc.Map, X: loc.X, Y: loc.Y}
	best, ok := coords.ToZone(pos, "")
	if !ok {
		fmt.Fprintf(w, "%5d %-30s (map %d, %.1f, %.1f) outside any zone\n", loc.Entry, loc.Name, loc.Map, loc.X, loc.Y)
		return
	}
	fmt.Fprintf(w, "%5d %-30s |M|%s|Z|%s|\n", loc.Entry, loc.Name, grammar.FormatCoord(best.X, best.Y), best.Zone)

	if zone == "" || zone == best.Zone {
		return
	}
	if zc, ok := coords.ToZone(pos, zone); ok && zc.Zone == zone {
		fmt.Fprintf(w, "%5s %-30s |M|%s|Z|%s|\n", "", "", grammar.FormatCoord(zc.X, zc.Y), zc.Zone)
	}
}
