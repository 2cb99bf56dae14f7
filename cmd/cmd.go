package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/zsdotkr/picomap/mapfile"
	"github.com/zsdotkr/picomap/models"
)

// PicomapCmd is the shared harness for subcommands: it owns the flag set,
// builds the Config, parses the map file, and hands the result to the
// command's RunMap hook.
type PicomapCmd struct {
	Config *models.Config
	Map    *mapfile.MapFile

	SetupFlags func() error
	RunMap     func(m *mapfile.MapFile) error

	Flags *flag.FlagSet
}

func NewPicomapCmd() *PicomapCmd {
	fs := flag.NewFlagSet("cli", flag.ExitOnError)
	return &PicomapCmd{Flags: fs}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PrintError prints an error to stderr, with the pkg/errors stack trace
// when one is attached and verbose output is on.
func (c *PicomapCmd) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	if c.Config == nil || !c.Config.Verbose {
		return
	}
	if st, ok := err.(stackTracer); ok {
		for _, f := range st.StackTrace() {
			fmt.Fprintf(os.Stderr, "  %s\n\t%s:%d\n", fmt.Sprintf("%n", f), fmt.Sprintf("%s", f), f)
		}
	}
}

// findRules looks for a rules.yaml in the user's picomap config dir.
func findRules() string {
	configDirs := configdir.New("picomap", "rules")
	folder := configDirs.QueryFolderContainsFile("rules.yaml")
	if folder == nil {
		return ""
	}
	return filepath.Join(folder.Path, "rules.yaml")
}

func (c *PicomapCmd) Run(argv []string) {
	fs := c.Flags
	nocolor := fs.Bool("no-color", false, "disable colored output")
	rulesPath := fs.String("rules", "", "section classification rules file (YAML)")
	verbose := fs.Bool("v", false, "verbose output (error stack traces)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <map-file>\n\nOptions:\n", argv[0])
		models.PrintFlags(fs)
		fmt.Fprintf(os.Stderr, "\nThe map file is generated by passing -M/--print-map to ld when linking.\n")
	}
	if c.SetupFlags != nil {
		if err := c.SetupFlags(); err != nil {
			panic(err)
		}
	}
	fs.Parse(argv[1:])

	args := fs.Args()
	if len(args) < 1 {
		fs.Usage()
		os.Exit(1)
	}

	color := !*nocolor && isatty.IsTerminal(os.Stdout.Fd())
	c.Config = &models.Config{
		Color:   color,
		Output:  os.Stdout,
		Rules:   models.DefaultRules,
		Verbose: *verbose,
	}
	if color {
		c.Config.Output = colorable.NewColorableStdout()
	}

	path := *rulesPath
	if path == "" {
		path = findRules()
	}
	if path != "" {
		rules, err := models.LoadRules(path)
		if err != nil {
			c.PrintError(err)
			os.Exit(1)
		}
		c.Config.Rules = rules
	}

	m, err := mapfile.ParseFile(args[0], c.Config.Rules)
	if err != nil {
		c.PrintError(err)
		os.Exit(1)
	}
	c.Map = m

	if c.RunMap != nil {
		if err := c.RunMap(m); err != nil {
			c.PrintError(err)
			os.Exit(1)
		}
	}
}
