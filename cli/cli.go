// Package cli runs the guide filter over files or standard input and
// prints diagnostics and the quest checks to the terminal.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shururuun/TourGuide-Utils/engine"
	"github.com/shururuun/TourGuide-Utils/engine/enrich"
	"github.com/shururuun/TourGuide-Utils/loader"
	"github.com/shururuun/TourGuide-Utils/types"
)

// StdinName is the file name reported for standard input.
const StdinName = "<stdin>"

// CLI handles one filter run.
type CLI struct {
	Quests   *loader.QuestDB // nil disables the quest id checks
	Enricher *enrich.Enricher
	Files    []string // read In when empty
	Header   string   // quest database header to check for unhandled quests
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	Color    bool

	// Filter is the filter of the last Run, for reports and review.
	Filter *engine.Filter

	styles styles
}

// New creates a CLI on the standard streams.
func New() *CLI {
	return &CLI{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Run filters every input and prints the summary and the unhandled quest
// check. Errors are setup or source failures; guide problems are reported
// as diagnostics.
func (c *CLI) Run() error {
	c.styles = newStyles(c.Err, c.Color)

	if c.Header != "" && c.Quests == nil {
		return errors.New("checking a header needs a quest database")
	}
	knownHeader := true
	if c.Header != "" {
		if _, ok := c.Quests.Header(c.Header); !ok {
			knownHeader = false
			c.printError(fmt.Sprintf("ERROR: Zone/Header '%s' not known in Quest DB", c.Header))
		}
	}

	opts := engine.Options{
		Enricher: c.Enricher,
		Report:   c.printDiagnostic,
	}
	if c.Quests != nil {
		opts.Quests = c.Quests
	}
	f := engine.New(c.Out, c.Err, opts)
	c.Filter = f

	if len(c.Files) == 0 {
		if err := f.Run(StdinName, c.In); err != nil {
			return err
		}
	}
	for _, name := range c.Files {
		if err := c.runFile(f, name); err != nil {
			return err
		}
	}
	f.Finish()

	if c.Header != "" && knownHeader {
		quests, _ := c.Quests.Header(c.Header)
		c.printUnhandled(f.Unhandled(quests))
	}
	return nil
}

func (c *CLI) runFile(f *engine.Filter, name string) error {
	in, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("opening guide: %w", err)
	}
	defer in.Close()
	return f.Run(name, in)
}

func (c *CLI) printDiagnostic(d types.Diagnostic) {
	fmt.Fprintln(c.Err, c.styles.diagnostic(d).Render(engine.FormatDiagnostic(d)))
}

func (c *CLI) printError(text string) {
	fmt.Fprintln(c.Err, c.styles.error.Render(text))
}

// printUnhandled writes the unhandled quest list, highlighting the quest
// lines.
func (c *CLI) printUnhandled(quests []types.QuestEntry) {
	var buf strings.Builder
	engine.WriteUnhandled(&buf, c.Header, quests)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, line := range lines {
		if i == 0 {
			fmt.Fprintln(c.Err, c.styles.heading.Render(line))
			continue
		}
		fmt.Fprintln(c.Err, c.styles.quest.Render(line))
	}
}
