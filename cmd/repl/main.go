package repl

import (
	"github.com/zsdotkr/picomap/cmd"
	"github.com/zsdotkr/picomap/mapfile"
	"github.com/zsdotkr/picomap/repl"
)

func Main(args []string) {
	c := cmd.NewPicomapCmd()
	c.RunMap = func(m *mapfile.MapFile) error {
		r, err := repl.New(m, c.Config.Color)
		if err != nil {
			return err
		}
		defer r.Close()
		return r.Run()
	}
	c.Run(args)
}

func init() { cmd.Register("repl", "interactively query a parsed map", Main) }
