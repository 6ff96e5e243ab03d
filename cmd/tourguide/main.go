// TourGuide rewrites WoWPro guide files into canonical form and reports
// problems found along the way.
// Usage: tourguide [flags] [guide.lua ...]
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/shururuun/TourGuide-Utils/cli"
	"github.com/shururuun/TourGuide-Utils/config"
	"github.com/shururuun/TourGuide-Utils/engine/enrich"
	"github.com/shururuun/TourGuide-Utils/engine/report"
	"github.com/shururuun/TourGuide-Utils/internal/log"
	"github.com/shururuun/TourGuide-Utils/loader"
	"github.com/shururuun/TourGuide-Utils/store"
	"github.com/shururuun/TourGuide-Utils/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: tourguide [--version] [-z HEADER] [--questdb FILE] [--db FILE] [--enrich] [--config FILE] [--report FILE] [--review] [-v] [--log FILE] [guide.lua ...]"

func main() {
	var (
		header     string
		questDB    string
		dbPath     string
		configFile string
		reportFile string
		logFile    string
		enrichOn   bool
		review     bool
		verbose    bool
		files      []string
	)

	args := os.Args[1:]
	value := func(i *int) string {
		flag := args[*i]
		if *i+1 >= len(args) {
			fmt.Fprintf(os.Stderr, "%s requires a value\n", flag)
			os.Exit(1)
		}
		*i++
		return args[*i]
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("tourguide %s (commit %s, built %s)\n", version, commit, date)
			return
		case "-h", "--help":
			fmt.Println(usage)
			return
		case "-z", "--zone":
			header = value(&i)
		case "--questdb":
			questDB = value(&i)
		case "--db":
			dbPath = value(&i)
		case "--enrich":
			enrichOn = true
		case "--config":
			configFile = value(&i)
		case "--report":
			reportFile = value(&i)
		case "--review":
			review = true
		case "-v", "--verbose":
			verbose = true
		case "--log":
			logFile = value(&i)
		default:
			if strings.HasPrefix(args[i], "-") && args[i] != "-" {
				fmt.Fprintf(os.Stderr, "unknown flag %s\n%s\n", args[i], usage)
				os.Exit(1)
			}
			files = append(files, args[i])
		}
	}

	cfg, err := config.LoadOptional(configFile)
	if err != nil {
		fail("Error loading config: %v", err)
	}
	config.FromEnv(cfg)
	if questDB != "" {
		cfg.QuestDB = questDB
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if enrichOn {
		cfg.Database.Enrich.Enabled = true
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if err := cfg.Validate(); err != nil {
		fail("Error in configuration: %v", err)
	}

	log.SetLevel(cfg.Log.Level)
	if cfg.Log.File != "" {
		if err := log.SetFileOutput(cfg.Log.File); err != nil {
			fail("Error opening log file: %v", err)
		}
	}
	defer log.Close()

	c := cli.New()
	c.Color = useColor(cfg.Output.Color)
	c.Header = header
	// "-" is standard input, same as no files at all
	for _, f := range files {
		if f != "-" {
			c.Files = append(c.Files, f)
		}
	}

	if cfg.QuestDB != "" {
		db, err := loader.Load(cfg.QuestDB)
		if err != nil {
			fail("Error loading quest database: %v", err)
		}
		log.Info("quest database loaded", "path", cfg.QuestDB, "quests", db.Len(), "headers", len(db.Headers()))
		c.Quests = db
	}

	if cfg.Database.Enrich.Enabled {
		st, err := store.Open(cfg.Database.Path)
		if err != nil {
			fail("Error opening world database: %v", err)
		}
		defer st.Close()
		e := cfg.Database.Enrich
		c.Enricher = enrich.New(st, st, enrich.Options{
			Titles:       e.Titles,
			Requirements: e.Requirements,
			Coords:       e.Coords,
		})
	}

	var captured bytes.Buffer
	if review {
		c.Out = io.MultiWriter(os.Stdout, &captured)
	}

	if err := c.Run(); err != nil {
		fail("Error: %v", err)
	}

	f := c.Filter
	if reportFile != "" {
		if err := report.WriteFile(reportFile, report.Build(f.Guide, f.Counts, f.Diags)); err != nil {
			fail("Error writing report: %v", err)
		}
		log.Info("report written", "path", reportFile)
	}

	if review {
		lines := strings.Split(strings.TrimSuffix(captured.String(), "\n"), "\n")
		sum := tui.Summary{
			Started:   len(f.Guide.Started),
			Completed: len(f.Guide.Completed),
			Counts:    f.Counts,
		}
		if err := tui.Run(lines, sum); err != nil {
			fail("Error: %v", err)
		}
	}
}

// useColor resolves a color mode; "auto" styles only a terminal stderr.
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	log.Close()
	os.Exit(1)
}
