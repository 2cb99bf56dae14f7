// Package repl is an interactive shell over one parsed map report, for
// poking at regions and per-object sizes without re-running the linker.
package repl

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lunixbochs/fvbommel-util/sortorder"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/zsdotkr/picomap/mapfile"
	"github.com/zsdotkr/picomap/report"
)

var errQuit = errors.New("quit")

type Repl struct {
	m  *mapfile.MapFile
	p  *report.Printer
	w  io.Writer
	rl *readline.Instance
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("regions"),
		readline.PcItem("sections"),
		readline.PcItem("files",
			readline.PcItem("total"), readline.PcItem("code"),
			readline.PcItem("rodata"), readline.PcItem("data"),
			readline.PcItem("bss")),
		readline.PcItem("top"),
		readline.PcItem("find"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func New(m *mapfile.MapFile, color bool) (*Repl, error) {
	// keep history under the user cache dir
	configDirs := configdir.New("picomap", "repl")
	cacheDir := configDirs.QueryCacheFolder()
	historyPath := ""
	if err := cacheDir.MkdirAll(); err == nil {
		historyPath = filepath.Join(cacheDir.Path, "history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "picomap> ",
		InterruptPrompt: "\n",
		HistoryFile:     historyPath,
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	w := rl.Stdout()
	return &Repl{
		m:  m,
		p:  report.NewPrinter(w, color),
		w:  w,
		rl: rl,
	}, nil
}

func (r *Repl) Close() error {
	return r.rl.Close()
}

func (r *Repl) Run() error {
	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err != nil {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := r.dispatch(fields); err == errQuit {
			return nil
		} else if err != nil {
			fmt.Fprintf(r.w, "error: %s\n", err)
		}
	}
}

func (r *Repl) dispatch(fields []string) error {
	switch fields[0] {
	case "regions":
		r.p.Regions(r.m)
	case "sections":
		if len(fields) < 2 {
			return errors.New("usage: sections <region>")
		}
		return r.sections(fields[1])
	case "files":
		key := report.SortTotal
		if len(fields) > 1 {
			var err error
			if key, err = report.ParseSortKey(fields[1]); err != nil {
				return err
			}
		}
		r.p.Files(r.m, key)
	case "top":
		if len(fields) < 2 {
			return errors.New("usage: top <n>")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return errors.Errorf("bad count %q", fields[1])
		}
		r.top(n)
	case "find":
		if len(fields) < 2 {
			return errors.New("usage: find <substring>")
		}
		r.find(fields[1])
	case "help":
		fmt.Fprint(r.w, "regions             region utilization table\n"+
			"sections <region>   placements inside one region\n"+
			"files [category]    per-file table (total/code/rodata/data/bss)\n"+
			"top <n>             n largest contributors by total size\n"+
			"find <substring>    per-file rows matching a path substring\n"+
			"quit                exit\n")
	case "quit", "exit", "q":
		return errQuit
	default:
		return errors.Errorf("unknown command %q (try help)", fields[0])
	}
	return nil
}

func (r *Repl) sections(name string) error {
	reg := r.m.Regions.Find(name)
	if reg == nil {
		return errors.Errorf("no region named %q", name)
	}
	names := reg.Sections()
	sort.Slice(names, func(i, j int) bool {
		return sortorder.NaturalLess(names[i], names[j])
	})
	for _, sec := range names {
		pl, ok := reg.Placement(sec)
		if !ok {
			continue
		}
		fmt.Fprintf(r.w, "%-20s %08xh  %6dB\n", sec, pl.Start, pl.Size)
	}
	return nil
}

func (r *Repl) top(n int) {
	sources := report.SortedSources(r.m.Accounts, report.SortTotal)
	fmt.Fprintln(r.w, " Total FILE")
	for i := len(sources) - 1; i >= 0 && i >= len(sources)-n; i-- {
		a := r.m.Accounts.Account(sources[i])
		fmt.Fprintf(r.w, "%6d %s\n", a.Total(), sources[i])
	}
}

func (r *Repl) find(substr string) {
	fmt.Fprintln(r.w, " Total   code rodata   data    bss  other FILE")
	for _, source := range r.m.Accounts.Sources() {
		if !strings.Contains(source, substr) {
			continue
		}
		a := r.m.Accounts.Account(source)
		fmt.Fprintf(r.w, "%6d %6d %6d %6d %6d %6d %s\n",
			a.Total(), a.Code, a.ROData, a.Data, a.BSS, a.Other, source)
	}
}
